package pdf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
)

// errReadOnly is returned when a mutation is attempted on an opened
// source document. Only composites accept writes.
var errReadOnly = errors.New("document is read-only")

var _ driven.Document = (*readerDocument)(nil)

// readerDocument is a read handle on one PDF file.
//
// The underlying parser panics on some malformed inputs rather than
// returning an error, so every call into it runs behind a recover.
type readerDocument struct {
	path   string
	file   *os.File
	reader *pdf.Reader
	closed bool
}

// openReader opens path for reading.
func openReader(path string) (doc *readerDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("opening %s: %v", path, r)
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &readerDocument{path: path, file: file, reader: reader}, nil
}

// PageCount returns the number of pages, 0 if the page tree is broken.
func (d *readerDocument) PageCount() (count int) {
	defer func() {
		if recover() != nil {
			count = 0
		}
	}()
	return d.reader.NumPage()
}

// MetadataTitle returns the Info dictionary's Title, or "" when absent
// or unreadable.
func (d *readerDocument) MetadataTitle() (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()
	return strings.TrimSpace(d.reader.Trailer().Key("Info").Key("Title").Text())
}

// PageText extracts the plain text of one 0-based page. A page without a
// text layer yields an empty string.
func (d *readerDocument) PageText(pageIndex int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("extracting page %d of %s: %v", pageIndex+1, d.path, r)
		}
	}()

	page := d.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return "", nil
	}
	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extracting page %d of %s: %w", pageIndex+1, d.path, err)
	}
	return text, nil
}

// CopyPageInto schedules one page of this document for inclusion in dst,
// which must be a composite created by this library.
func (d *readerDocument) CopyPageInto(dst driven.Document, pageIndex int) error {
	composite, ok := dst.(*compositeDocument)
	if !ok {
		return fmt.Errorf("copy target: %w", domain.ErrInvalidInput)
	}
	if pageIndex < 0 || pageIndex >= d.PageCount() {
		return fmt.Errorf("page %d of %s: %w", pageIndex+1, d.path, domain.ErrInvalidInput)
	}
	return composite.appendSourcePage(d.path, pageIndex)
}

func (d *readerDocument) InsertBlankPage(int) error { return errReadOnly }

func (d *readerDocument) InsertText(int, driven.Point, string, float64) error { return errReadOnly }

func (d *readerDocument) InsertLink(int, driven.Rect, driven.LinkTarget) error { return errReadOnly }

func (d *readerDocument) SetOutline([]domain.OutlineEntry) error { return errReadOnly }

func (d *readerDocument) Save(string) error { return errReadOnly }

// Close releases the underlying file. Safe to call more than once.
func (d *readerDocument) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.file.Close()
}
