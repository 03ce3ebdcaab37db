package driven

import (
	"context"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

// HistoryStore persists completed search runs.
// Implementations handle storage (e.g. SQLite) and ordering.
type HistoryStore interface {
	// Record stores one completed run.
	Record(ctx context.Context, run domain.SearchRun) error

	// List returns the most recent runs, newest first, at most limit.
	List(ctx context.Context, limit int) ([]domain.SearchRun, error)

	// Close releases the underlying storage.
	Close() error
}
