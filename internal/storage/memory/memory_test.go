package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/storage"
)

func TestGetMissingKey(t *testing.T) {
	_, err := New().Get(context.Background(), "projects")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPutGetCopiesValue(t *testing.T) {
	ctx := context.Background()
	s := New()

	value := []byte(`[{"id":1}]`)
	require.NoError(t, s.Put(ctx, "projects", value))
	value[0] = 'X'

	got, err := s.Get(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))

	got[0] = 'Y'
	again, err := s.Get(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(again))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	assert.ErrorIs(t, s.Put(ctx, "k", nil), context.Canceled)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
