package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"portfolio.dev/internal/metrics"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/storage"
	"portfolio.dev/internal/storage/memory"
)

const sampleCollection = `[
	{"id": 1, "Title": "Portfolio", "Description": "Personal site", "Link": "https://me.dev",
	 "Github": "https://github.com/me/site", "TechStack": ["React", "Tailwind"], "Features": ["Dark mode", "Animations"]},
	{"id": 2, "Title": "Payroll", "Description": "Internal tool", "Github": "Private"},
	{"id": "2", "Title": "Shadowed duplicate"},
	"not a record"
]`

func newService(t *testing.T, collection string) (*ProjectService, *metrics.Metrics) {
	t.Helper()
	store := memory.New()
	if collection != "" {
		require.NoError(t, store.Put(context.Background(), "projects", []byte(collection)))
	}
	m := metrics.New()
	return NewProjectService(store, "projects", zap.NewNop(), m), m
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

type failingStore struct{ storage.Store }

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestLoadNormalizesFirstMatch(t *testing.T) {
	svc, m := newService(t, sampleCollection)

	p, err := svc.Load(context.Background(), "2")
	require.NoError(t, err)

	assert.Equal(t, "Payroll", p.Title, "first match wins over later duplicates")
	assert.Equal(t, "Internal tool", p.Description)
	assert.Equal(t, []string{}, p.TechStack)
	assert.Equal(t, []string{}, p.Features)
	assert.True(t, p.IsPrivateSource())
	assert.Contains(t, scrape(t, m), `portfolio_projects_loads_total{result="loaded"} 1`)
}

func TestLoadKeepsVerbatimFields(t *testing.T) {
	svc, _ := newService(t, sampleCollection)

	p, err := svc.Load(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", p.Title)
	assert.Equal(t, "Personal site", p.Description)
	assert.Equal(t, "https://me.dev", p.Link)
	assert.Equal(t, "https://github.com/me/site", p.Github)
	assert.Equal(t, []string{"React", "Tailwind"}, p.TechStack)
	assert.Equal(t, 2, p.Stats().Features)
}

func TestLoadNoMatchNeverFallsBack(t *testing.T) {
	svc, m := newService(t, sampleCollection)

	for _, id := range []string{"3", "01", " 1", "Portfolio", ""} {
		p, err := svc.Load(context.Background(), id)
		assert.ErrorIs(t, err, ErrProjectNotFound, id)
		assert.Equal(t, models.Project{}, p, id)
	}
	assert.Contains(t, scrape(t, m), `portfolio_projects_loads_total{result="not_found"} 5`)
}

func TestLoadMissingOrMalformedStoreIsEmpty(t *testing.T) {
	for name, collection := range map[string]string{"absent": "", "malformed": "{oops", "object": `{"id":1}`} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t, collection)

			all, err := svc.GetAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)

			_, err = svc.Load(context.Background(), "1")
			assert.ErrorIs(t, err, ErrProjectNotFound)
		})
	}
}

func TestLoadStoreFailure(t *testing.T) {
	m := metrics.New()
	svc := NewProjectService(failingStore{}, "projects", nil, m)

	_, err := svc.Load(context.Background(), "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProjectNotFound)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Contains(t, scrape(t, m), `portfolio_projects_loads_total{result="error"} 1`)
}

func TestGetAllSkipsNonRecordsAndNormalizes(t *testing.T) {
	svc, _ := newService(t, sampleCollection)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, p := range all {
		assert.NotNil(t, p.TechStack)
		assert.NotNil(t, p.Features)
		assert.NotEmpty(t, p.Github)
	}
}

func TestGetByIDReturnsStoredRecord(t *testing.T) {
	svc, _ := newService(t, sampleCollection)

	p, err := svc.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Nil(t, p.TechStack, "GetByID does not normalize")
}

func TestLoadWritesDebugTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	store := memory.New()
	require.NoError(t, store.Put(context.Background(), "projects", []byte(sampleCollection)))
	svc := NewProjectService(store, "projects", zap.New(core), nil)

	_, err := svc.Load(context.Background(), "1")
	require.NoError(t, err)

	entries := logs.FilterMessage("loaded project").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].ContextMap()["id"])
	assert.Equal(t, "Portfolio", entries[0].ContextMap()["title"])
}
