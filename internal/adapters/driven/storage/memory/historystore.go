// Package memory provides in-memory implementations of driven port
// interfaces, used in tests and when persistence is unavailable.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu   sync.RWMutex
	runs []domain.SearchRun
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record stores one completed run. Runs without an ID are assigned one.
func (s *HistoryStore) Record(_ context.Context, run domain.SearchRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// List returns the most recent runs, newest first, at most limit.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.SearchRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.SearchRun, len(s.runs))
	copy(runs, s.runs)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Close is a no-op for the in-memory store.
func (s *HistoryStore) Close() error {
	return nil
}
