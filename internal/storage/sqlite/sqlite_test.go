package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/storage"
	"portfolio.dev/internal/storage/sqlite/migrations"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

func TestGetMissingKey(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.Get(context.Background(), "projects")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPutGetOverwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)

	require.NoError(t, store.Put(ctx, "projects", []byte(`[{"id":1}]`)))
	require.NoError(t, store.Put(ctx, "projects", []byte(`[{"id":2}]`)))

	got, err := store.Get(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":2}]`, string(got))
}

func TestPutRequiresKey(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	assert.Error(t, store.Put(context.Background(), " ", []byte(`[]`)))
}

func TestReopenKeepsDataAndSkipsAppliedMigrations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	first, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "projects", []byte(`[]`)))
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	content := "-- +migrate Up\nCREATE TABLE a (x INT);\n-- +migrate Down\nDROP TABLE a;\n"
	assert.Equal(t, "\nCREATE TABLE a (x INT);\n", upSection(content))
	assert.Equal(t, "SELECT 1;", upSection("SELECT 1;"))
}

func TestMigrationVersion(t *testing.T) {
	t.Parallel()

	v, err := migrationVersion("001_kv.sql")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = migrationVersion("kv.sql")
	assert.Error(t, err)
}

func TestMigrateSetsSchemaVersionOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")
	store, err := Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	var version int
	require.NoError(t, store.sqlDB.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, 1, version)

	// Re-running must not try to create the kv table again.
	require.NoError(t, migrate(ctx, store.sqlDB, migrations.FS))
}

func TestNilStore(t *testing.T) {
	t.Parallel()

	var store *Store
	_, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.NoError(t, store.Close())
}
