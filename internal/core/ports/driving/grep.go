package driving

import (
	"context"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

// GrepService runs the match-and-assemble pipeline for external actors.
type GrepService interface {
	// Run scans every candidate document for the pattern and writes the
	// requested artifacts. Per-file failures are warnings; only batch-level
	// failures (invalid pattern, no inputs, naming exhaustion) return an
	// error.
	Run(ctx context.Context, opts domain.RunOptions) (*domain.RunResult, error)
}

// HistoryService lists recorded search runs.
type HistoryService interface {
	// List returns the most recent runs, newest first, at most limit.
	List(ctx context.Context, limit int) ([]domain.SearchRun, error)
}
