package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	got := Normalize(Project{ID: "1", Title: "Site"})

	assert.Equal(t, []string{}, got.TechStack)
	assert.Equal(t, []string{}, got.Features)
	assert.Equal(t, DefaultGithubURL, got.Github)
	assert.Equal(t, "Site", got.Title)
}

func TestNormalizeKeepsPresentFields(t *testing.T) {
	in := Project{
		ID:        "2",
		Github:    "https://github.com/someone/thing",
		TechStack: []string{"React", "Python"},
		Features:  []string{"Fast"},
	}
	got := Normalize(in)

	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("normalize changed a complete record (-want +got):\n%s", diff)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	records := []Project{
		{},
		{ID: "a", Github: PrivateSource},
		{ID: "b", TechStack: []string{}, Features: nil},
		{ID: "c", TechStack: []string{"Go"}, Features: []string{"x", "y"}, Img: "i.png"},
		{ID: "d", Extra: map[string]json.RawMessage{"year": json.RawMessage(`2024`)}},
	}
	for _, rec := range records {
		once := Normalize(rec)
		twice := Normalize(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("normalize not idempotent for %q (-once +twice):\n%s", rec.ID, diff)
		}
	}
}

func TestStatsCountsSequences(t *testing.T) {
	cases := []struct {
		tech, features []string
	}{
		{nil, nil},
		{[]string{}, []string{"a"}},
		{[]string{"React", "Python", "CSS"}, []string{"a", "b"}},
	}
	for _, tc := range cases {
		p := Normalize(Project{TechStack: tc.tech, Features: tc.features})
		stats := p.Stats()
		assert.Equal(t, len(tc.tech), stats.Technologies)
		assert.Equal(t, len(tc.features), stats.Features)
	}
}

func TestImageURLFallsBackToPlaceholder(t *testing.T) {
	assert.Equal(t, PlaceholderImageURL, Project{}.ImageURL())
	assert.Equal(t, "https://cdn.example.com/a.png", Project{Img: "https://cdn.example.com/a.png"}.ImageURL())
}

func TestIsPrivateSourceIsExact(t *testing.T) {
	assert.True(t, Project{Github: "Private"}.IsPrivateSource())
	assert.False(t, Project{Github: "private"}.IsPrivateSource())
	assert.False(t, Project{Github: " Private"}.IsPrivateSource())
	assert.False(t, Project{Github: DefaultGithubURL}.IsPrivateSource())
}

func TestMarshalJSONUsesStoredFieldNames(t *testing.T) {
	p := Normalize(Project{
		ID:    "7",
		Title: "Blog",
		Extra: map[string]json.RawMessage{"category": json.RawMessage(`"web"`)},
	})

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "7", out["id"])
	assert.Equal(t, "Blog", out["Title"])
	assert.Equal(t, "web", out["category"])
	assert.Equal(t, []any{}, out["TechStack"])
	assert.NotContains(t, out, "img")
}

func TestUnmarshalJSONIsLenient(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id": 12, "Title": "Calc", "Features": ""}`), &p))

	assert.Equal(t, "12", p.ID)
	assert.Equal(t, "Calc", p.Title)
	assert.Nil(t, p.Features)

	assert.Error(t, p.UnmarshalJSON([]byte(`{"id":`)))
}
