package pdf

import (
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
)

var _ driven.Library = (*Library)(nil)

// Library is the file-backed document library.
type Library struct{}

// NewLibrary creates the library.
func NewLibrary() *Library {
	return &Library{}
}

// Open opens an existing PDF for reading.
func (l *Library) Open(path string) (driven.Document, error) {
	return openReader(path)
}

// Create returns a new, empty composite document.
func (l *Library) Create() driven.Document {
	return newComposite()
}
