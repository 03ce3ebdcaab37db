package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewStore(tmpDir)

	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, filepath.Join(tmpDir, "history.db"), store.Path())
}

func TestStore_RecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := domain.SearchRun{
		Pattern:      "invoice",
		Title:        "Q3 audit",
		StartedAt:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Duration:     1500 * time.Millisecond,
		FilesScanned: 12,
		MatchCount:   34,
		HTMLPath:     "out/gpdf-2026-03-14-001.html",
		MergePath:    "out/gpdf-2026-03-14-001.pdf",
	}
	require.NoError(t, store.Record(ctx, run))

	runs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.NotEmpty(t, got.ID) // assigned on record
	assert.Equal(t, "invoice", got.Pattern)
	assert.Equal(t, "Q3 audit", got.Title)
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	assert.Equal(t, 12, got.FilesScanned)
	assert.Equal(t, 34, got.MatchCount)
	assert.Equal(t, "out/gpdf-2026-03-14-001.html", got.HTMLPath)
	assert.Equal(t, "out/gpdf-2026-03-14-001.pdf", got.MergePath)
}

func TestStore_Record_KeepsExplicitID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := domain.SearchRun{ID: "run-1", Pattern: "alpha", StartedAt: time.Now().UTC()}
	require.NoError(t, store.Record(ctx, run))

	runs, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
}

func TestStore_List_NewestFirstWithLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i, pattern := range []string{"first", "second", "third"} {
		require.NoError(t, store.Record(ctx, domain.SearchRun{
			Pattern:   pattern,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	runs, err := store.List(ctx, 2)
	require.NoError(t, err)

	require.Len(t, runs, 2)
	assert.Equal(t, "third", runs[0].Pattern)
	assert.Equal(t, "second", runs[1].Pattern)
}

func TestStore_List_Empty(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.List(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	store1, err := NewStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Record(ctx, domain.SearchRun{Pattern: "alpha", StartedAt: time.Now().UTC()}))
	require.NoError(t, store1.Close())

	store2, err := NewStore(tmpDir)
	require.NoError(t, err)
	defer store2.Close()

	runs, err := store2.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "alpha", runs[0].Pattern)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	// Opening again re-runs the migration check without error.
	store2, err := NewStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store2.Close())
}
