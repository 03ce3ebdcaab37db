// Package tui provides an interactive terminal form for building PDF
// search reports. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/gpdf/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Grep runs pattern searches over PDF collections.
	Grep driving.GrepService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Grep == nil {
		return ErrMissingGrepService
	}
	return nil
}
