package mcp

import (
	"github.com/custodia-labs/gpdf/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Grep runs pattern searches over PDF collections.
	Grep driving.GrepService

	// History lists recorded search runs.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Grep == nil {
		return ErrMissingGrepService
	}
	// History is optional; the history resource degrades to an empty list.
	return nil
}
