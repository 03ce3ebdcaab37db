package mcp

import (
	"context"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

// mockGrepService implements driving.GrepService for tests.
type mockGrepService struct {
	result   *domain.RunResult
	err      error
	lastOpts domain.RunOptions
}

func (m *mockGrepService) Run(_ context.Context, opts domain.RunOptions) (*domain.RunResult, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.RunResult{}, nil
}

// mockHistoryService implements driving.HistoryService for tests.
type mockHistoryService struct {
	runs []domain.SearchRun
	err  error
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.SearchRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.runs) > limit {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}
