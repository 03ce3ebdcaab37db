package domain

// MatchRecord represents a single pattern match on one page of a document.
// Records are immutable once created: the Scanner produces them and the
// report builders consume them read-only.
type MatchRecord struct {
	// SourcePath is the path of the scanned document.
	SourcePath string

	// Title is the display title: the document's metadata title when
	// non-empty after trimming, otherwise the file's base name.
	Title string

	// PageNumber is the 1-based page the match was found on.
	PageNumber int

	// PageCount is the total number of pages in the document.
	PageCount int

	// Percent is the reading position of the page, 0-100.
	Percent float64

	// Context is the normalized context window around the match,
	// with the matched span marked by offsets.
	Context Highlight
}

// NewMatchRecord builds a MatchRecord for a match on the given 1-based page.
// Percent is (pageNumber / pageCount) * 100, or 0 for an empty document.
func NewMatchRecord(sourcePath, title string, pageNumber, pageCount int, context Highlight) MatchRecord {
	percent := 0.0
	if pageCount > 0 {
		percent = float64(pageNumber) / float64(pageCount) * 100.0
	}
	return MatchRecord{
		SourcePath: sourcePath,
		Title:      title,
		PageNumber: pageNumber,
		PageCount:  pageCount,
		Percent:    percent,
		Context:    context,
	}
}

// FileMatches pairs a scanned file with its deduplicated, ascending set of
// 0-based matched page indices. The assembler copies exactly these pages.
type FileMatches struct {
	// Path is the source document path.
	Path string

	// PageIndices holds the 0-based indices of pages with at least one
	// match, sorted ascending without duplicates.
	PageIndices []int
}
