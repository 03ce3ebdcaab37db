// Package domain defines the core business entities for gpdf.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MatchRecord: A single pattern match with its page context
//   - Highlight: A normalized context string with a marked span
//   - MergedPageEntry / PageMap: Provenance of pages copied into the composite
//   - RunOptions / RunResult: One pipeline invocation
//   - SearchRun: A recorded history entry for a completed run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
