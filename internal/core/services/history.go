package services

import (
	"context"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
	"github.com/custodia-labs/gpdf/internal/core/ports/driving"
)

var _ driving.HistoryService = (*HistoryService)(nil)

// defaultHistoryLimit caps listings when the caller does not set one.
const defaultHistoryLimit = 20

// HistoryService exposes recorded search runs.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service over the given store.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the most recent runs, newest first. A non-positive limit
// uses the default.
func (h *HistoryService) List(ctx context.Context, limit int) ([]domain.SearchRun, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return h.store.List(ctx, limit)
}
