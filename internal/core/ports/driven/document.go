package driven

import "github.com/custodia-labs/gpdf/internal/core/domain"

// Library opens existing documents and creates composite ones.
// It is the single entry point to the physical PDF layer.
type Library interface {
	// Open opens an existing document for reading.
	// Opening a malformed file must fail immediately rather than hang.
	Open(path string) (Document, error)

	// Create returns a new, empty document that pages can be copied into.
	Create() Document
}

// Document is a scoped handle on one document. Handles acquired from a
// Library must be closed on every exit path; no handle outlives the
// processing of its file.
//
// Page indices are 0-based throughout this interface. 1-based numbering
// exists only in domain types presented to users.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// MetadataTitle returns the document's metadata title, or "" when
	// absent. Callers apply their own fallback.
	MetadataTitle() string

	// PageText extracts the plain text of one page. An empty string with
	// no error is a valid result (e.g. a scanned image page).
	PageText(pageIndex int) (string, error)

	// CopyPageInto copies one page of this document to the end of dst.
	CopyPageInto(dst Document, pageIndex int) error

	// InsertBlankPage inserts an empty page at the given index, shifting
	// later pages.
	InsertBlankPage(pageIndex int) error

	// InsertText stamps text onto a page at a position given in points
	// from the page's top-left corner.
	InsertText(pageIndex int, at Point, text string, fontSize float64) error

	// InsertLink attaches a clickable region to a page.
	InsertLink(pageIndex int, region Rect, target LinkTarget) error

	// SetOutline replaces the document's bookmark outline.
	SetOutline(entries []domain.OutlineEntry) error

	// Save persists the document to path.
	Save(path string) error

	// Close releases the handle. Safe to call more than once.
	Close() error
}

// Point is a position in points, origin at the page's top-left corner.
type Point struct {
	X float64
	Y float64
}

// Rect is a region in points, origin at the page's top-left corner.
type Rect struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// LinkTarget is either an internal page jump or an external URI.
// When URI is non-empty it wins; otherwise Page is the 1-based
// destination inside the same document.
type LinkTarget struct {
	Page int
	URI  string
}
