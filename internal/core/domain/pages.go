package domain

// contentsPageShift is the number of pages prepended to the composite
// before the copied pages (the generated contents page).
const contentsPageShift = 1

// PageKey identifies one page of a source document.
type PageKey struct {
	// SourcePath is the source document path.
	SourcePath string

	// PageNumber is the 1-based page number within the source.
	PageNumber int
}

// PageMap maps a source page to its 1-based position in the composite
// document, including the contents-page shift.
type PageMap map[PageKey]int

// MergedPageEntry records the provenance of one page copied into the
// still-building composite. Entries are created in file-then-page order
// and are immutable; the contents page, outline, and page map are all
// derived from them.
type MergedPageEntry struct {
	// Title is the source document's display title.
	Title string

	// SourcePath is the source document path.
	SourcePath string

	// SourcePageNumber is the 1-based page number within the source.
	SourcePageNumber int

	// CopyIndex is the 0-based position among the copied pages, before
	// the contents page is prepended.
	CopyIndex int
}

// FinalPageNumber is the single conversion point between copy order and
// final composite page numbers: the 1-based position of this page in the
// saved composite, after the contents page is prepended.
func (e MergedPageEntry) FinalPageNumber() int {
	return e.CopyIndex + 1 + contentsPageShift
}

// Key returns the page-map key for this entry.
func (e MergedPageEntry) Key() PageKey {
	return PageKey{SourcePath: e.SourcePath, PageNumber: e.SourcePageNumber}
}

// BuildPageMap derives the completed page map from the copy entries.
// Exactly one entry per copied page, keyed by (sourcePath, sourcePage).
func BuildPageMap(entries []MergedPageEntry) PageMap {
	m := make(PageMap, len(entries))
	for _, e := range entries {
		m[e.Key()] = e.FinalPageNumber()
	}
	return m
}

// OutlineEntry is one bookmark in a document outline, built incrementally
// as an ordered sequence and converted once to whatever native outline
// representation the document library requires.
type OutlineEntry struct {
	// Level is the nesting depth, starting at 1.
	Level int

	// Title is the bookmark text.
	Title string

	// TargetPage is the 1-based destination page.
	TargetPage int
}
