package services

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
	"github.com/custodia-labs/gpdf/internal/logger"
)

// Scanner applies a compiled pattern to one document's pages, producing
// match records and the set of matched page indices.
type Scanner struct {
	library driven.Library
}

// NewScanner creates a scanner backed by the given document library.
func NewScanner(library driven.Library) *Scanner {
	return &Scanner{library: library}
}

// Scan opens the document at path and finds all non-overlapping matches on
// every page. It returns the records in page-then-match order plus the
// deduplicated, ascending 0-based indices of pages with at least one match.
//
// An open failure is a warning, not an error: the batch must continue, so
// Scan returns empty results. The document handle is closed on every path.
func (s *Scanner) Scan(path string, pattern *regexp.Regexp, window int) ([]domain.MatchRecord, []int) {
	doc, err := s.library.Open(path)
	if err != nil {
		logger.Warn("failed to open %s: %v", path, err)
		return nil, nil
	}
	defer doc.Close()

	title := displayTitle(doc.MetadataTitle(), path)
	pageCount := doc.PageCount()
	logger.Debug("Scanning %s: %d pages", path, pageCount)

	var records []domain.MatchRecord
	var matchedPages []int

	for pageIndex := 0; pageIndex < pageCount; pageIndex++ {
		text, err := doc.PageText(pageIndex)
		if err != nil {
			// Unextractable pages (scanned images, broken streams)
			// are skipped, not failed.
			logger.Debug("page %d of %s: no extractable text: %v", pageIndex+1, path, err)
			continue
		}
		if text == "" {
			continue
		}

		matches := pattern.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}

		for _, m := range matches {
			context := domain.ExtractContext(text, m[0], m[1], window)
			records = append(records, domain.NewMatchRecord(path, title, pageIndex+1, pageCount, context))
		}
		matchedPages = append(matchedPages, pageIndex)
	}

	logger.Debug("%s: %d matches on %d pages", path, len(records), len(matchedPages))
	return records, matchedPages
}

// displayTitle resolves the title shown for a document: the metadata title
// when non-empty after trimming, otherwise the file's base name.
func displayTitle(metadataTitle, path string) string {
	if title := strings.TrimSpace(metadataTitle); title != "" {
		return title
	}
	return filepath.Base(path)
}
