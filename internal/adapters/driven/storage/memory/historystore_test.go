package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

func TestHistoryStore_RecordAssignsID(t *testing.T) {
	store := NewHistoryStore()

	require.NoError(t, store.Record(context.Background(), domain.SearchRun{Pattern: "alpha"}))

	runs, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.NotEmpty(t, runs[0].ID)
}

func TestHistoryStore_List_NewestFirstWithLimit(t *testing.T) {
	store := NewHistoryStore()
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

func TestHistoryStore_Concurrency(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			_ = store.Record(ctx, domain.SearchRun{Pattern: "p", StartedAt: time.Now()})
			_, _ = store.List(ctx, 5)
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 10)
}
