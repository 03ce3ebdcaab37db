package domain

import "time"

// SearchRun records one completed pipeline invocation for the history
// listing. Recording is best-effort and never fails the run itself.
type SearchRun struct {
	// ID is the unique identifier for the run.
	ID string

	// Pattern is the search pattern as supplied.
	Pattern string

	// Title is the report title used for generated artifacts.
	Title string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is the wall-clock time of the run.
	Duration time.Duration

	// FilesScanned is the number of input documents processed.
	FilesScanned int

	// MatchCount is the total number of matches found.
	MatchCount int

	// HTMLPath is the written index path, if any.
	HTMLPath string

	// MergePath is the written composite path, if any.
	MergePath string
}
