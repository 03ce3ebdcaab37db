package pdf

import (
	"fmt"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
)

var _ driven.Document = (*compositeDocument)(nil)

// textStamp is one recorded InsertText call, positions top-left based.
type textStamp struct {
	at       driven.Point
	text     string
	fontSize float64
}

// linkStamp is one recorded InsertLink call, regions top-left based.
type linkStamp struct {
	region driven.Rect
	target driven.LinkTarget
}

// compositePage is one page of a composite under construction. A page
// either references a source page or is generated (blank plus stamps).
type compositePage struct {
	sourcePath string // "" for a generated page
	sourcePage int    // 0-based index in the source
	texts      []textStamp
	links      []linkStamp
}

// generated reports whether the page has no backing source page.
func (p *compositePage) generated() bool { return p.sourcePath == "" }

// compositeDocument records page composition in memory; nothing touches
// the filesystem until Save materialises the document with pdfcpu.
// Recording keeps the write pipeline in one place and lets page inserts
// renumber cheaply.
type compositeDocument struct {
	pages   []*compositePage
	outline []domain.OutlineEntry
	closed  bool
}

func newComposite() *compositeDocument {
	return &compositeDocument{}
}

// PageCount returns the number of recorded pages.
func (c *compositeDocument) PageCount() int { return len(c.pages) }

// MetadataTitle is empty; composites carry no source metadata.
func (c *compositeDocument) MetadataTitle() string { return "" }

// PageText is not supported on a composite under construction.
func (c *compositeDocument) PageText(int) (string, error) {
	return "", fmt.Errorf("composite page text: %w", domain.ErrInvalidInput)
}

// CopyPageInto is not supported; composites are targets, not sources.
func (c *compositeDocument) CopyPageInto(driven.Document, int) error {
	return fmt.Errorf("composite as copy source: %w", domain.ErrInvalidInput)
}

// appendSourcePage records one source page at the end of the composite.
func (c *compositeDocument) appendSourcePage(path string, pageIndex int) error {
	if c.closed {
		return domain.ErrDocumentClosed
	}
	c.pages = append(c.pages, &compositePage{sourcePath: path, sourcePage: pageIndex})
	return nil
}

// InsertBlankPage inserts a generated page at pageIndex, shifting later
// pages. Stamps recorded on shifted pages move with them.
func (c *compositeDocument) InsertBlankPage(pageIndex int) error {
	if c.closed {
		return domain.ErrDocumentClosed
	}
	if pageIndex < 0 || pageIndex > len(c.pages) {
		return fmt.Errorf("insert at %d: %w", pageIndex, domain.ErrInvalidInput)
	}
	pages := make([]*compositePage, 0, len(c.pages)+1)
	pages = append(pages, c.pages[:pageIndex]...)
	pages = append(pages, &compositePage{})
	pages = append(pages, c.pages[pageIndex:]...)
	c.pages = pages
	return nil
}

// InsertText records a text stamp on one page.
func (c *compositeDocument) InsertText(pageIndex int, at driven.Point, text string, fontSize float64) error {
	page, err := c.page(pageIndex)
	if err != nil {
		return err
	}
	page.texts = append(page.texts, textStamp{at: at, text: text, fontSize: fontSize})
	return nil
}

// InsertLink records a clickable region on one page.
func (c *compositeDocument) InsertLink(pageIndex int, region driven.Rect, target driven.LinkTarget) error {
	page, err := c.page(pageIndex)
	if err != nil {
		return err
	}
	page.links = append(page.links, linkStamp{region: region, target: target})
	return nil
}

// SetOutline replaces the recorded bookmark outline.
func (c *compositeDocument) SetOutline(entries []domain.OutlineEntry) error {
	if c.closed {
		return domain.ErrDocumentClosed
	}
	c.outline = entries
	return nil
}

// Save materialises the recorded composition at path.
func (c *compositeDocument) Save(path string) error {
	if c.closed {
		return domain.ErrDocumentClosed
	}
	if len(c.pages) == 0 {
		return fmt.Errorf("empty composite: %w", domain.ErrInvalidInput)
	}
	return materialize(c, path)
}

// Close discards the recording. Safe to call more than once.
func (c *compositeDocument) Close() error {
	c.closed = true
	return nil
}

func (c *compositeDocument) page(pageIndex int) (*compositePage, error) {
	if c.closed {
		return nil, domain.ErrDocumentClosed
	}
	if pageIndex < 0 || pageIndex >= len(c.pages) {
		return nil, fmt.Errorf("page %d: %w", pageIndex, domain.ErrInvalidInput)
	}
	return c.pages[pageIndex], nil
}
