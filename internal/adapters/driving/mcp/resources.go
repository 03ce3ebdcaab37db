package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for gpdf resources.
	uriScheme = "gpdf://"

	// historyLookback bounds how far back the run template searches.
	historyLookback = 200
)

// runInfo is the JSON shape of a recorded run exposed over MCP.
type runInfo struct {
	ID           string `json:"id"`
	Pattern      string `json:"pattern"`
	Title        string `json:"title,omitempty"`
	StartedAt    string `json:"started_at"`
	DurationMS   int64  `json:"duration_ms"`
	FilesScanned int    `json:"files_scanned"`
	MatchCount   int    `json:"match_count"`
	HTMLPath     string `json:"html_path,omitempty"`
	MergePath    string `json:"merge_path,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the recent run history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent search runs, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for a single recorded run.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "A single recorded search run",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

// handleHistoryResource returns the recent run history.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	runs, err := s.ports.History.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	infos := make([]runInfo, len(runs))
	for i, run := range runs {
		infos[i] = newRunInfo(run)
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRunResource returns one recorded run by ID.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract runId from URI: gpdf://runs/{runId}
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	runs, err := s.ports.History.List(ctx, historyLookback)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	for _, run := range runs {
		if run.ID != runID {
			continue
		}
		data, err := json.MarshalIndent(newRunInfo(run), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshalling run: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			}},
		}, nil
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func newRunInfo(run domain.SearchRun) runInfo {
	return runInfo{
		ID:           run.ID,
		Pattern:      run.Pattern,
		Title:        run.Title,
		StartedAt:    run.StartedAt.UTC().Format(time.RFC3339),
		DurationMS:   run.Duration.Milliseconds(),
		FilesScanned: run.FilesScanned,
		MatchCount:   run.MatchCount,
		HTMLPath:     run.HTMLPath,
		MergePath:    run.MergePath,
	}
}

// extractRunID extracts the run ID from a URI like gpdf://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
