package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

// defaultContext is the context window used when the caller does not set one.
const defaultContext = 120

// GrepInput is the input schema for the grep tool.
type GrepInput struct {
	Pattern string   `json:"pattern" jsonschema:"case-insensitive regular expression to search for"`
	Paths   []string `json:"paths,omitempty" jsonschema:"PDF files or directories to search (default: current directory)"`
	Context int      `json:"context,omitempty" jsonschema:"context window size around each match (default 120)"`
}

// GrepOutput is the output schema for the grep tool.
type GrepOutput struct {
	Matches      []MatchOutput `json:"matches"`
	Count        int           `json:"count"`
	FilesScanned int           `json:"files_scanned"`
}

// MatchOutput represents a single match.
type MatchOutput struct {
	File    string  `json:"file"`
	Title   string  `json:"title"`
	Page    int     `json:"page"`
	Pages   int     `json:"pages"`
	Percent float64 `json:"percent"`
	Context string  `json:"context"`
	Match   string  `json:"match"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "grep_pdfs",
		Description: "Search PDF files page by page with a case-insensitive regular expression",
	}, s.handleGrep)
}

// handleGrep handles the grep tool invocation. It runs a scan-only
// search; artifact generation stays with the CLI.
func (s *Server) handleGrep(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GrepInput,
) (*mcp.CallToolResult, GrepOutput, error) {
	window := input.Context
	if window <= 0 {
		window = defaultContext
	}

	opts := domain.RunOptions{
		Pattern:       input.Pattern,
		Paths:         input.Paths,
		ContextWindow: window,
	}
	result, err := s.ports.Grep.Run(ctx, opts)
	if err != nil {
		return nil, GrepOutput{}, err
	}

	output := GrepOutput{
		Matches:      make([]MatchOutput, len(result.Records)),
		Count:        len(result.Records),
		FilesScanned: result.FilesScanned,
	}

	for i := range result.Records {
		record := result.Records[i]
		output.Matches[i] = MatchOutput{
			File:    record.SourcePath,
			Title:   record.Title,
			Page:    record.PageNumber,
			Pages:   record.PageCount,
			Percent: record.Percent,
			Context: record.Context.Text,
			Match:   record.Context.Match(),
		}
	}

	return nil, output, nil
}
