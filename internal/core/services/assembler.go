package services

import (
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
	"github.com/custodia-labs/gpdf/internal/logger"
)

// Composite page geometry, in points from the top-left corner.
const (
	stampLabelX    = 36
	stampLabelY    = 36
	stampFontSize  = 9
	stampBandTop   = 24
	stampBandBot   = 40
	stampBandRight = 550

	contentsHeadingSize  = 16
	contentsLineSize     = 10
	contentsFirstLineY   = 60
	contentsLineHeight   = 14
	contentsPageColX     = 420
	contentsPageColEndX  = 455
	contentsSourceColX   = 470
	contentsSourceColEnd = 540
)

// Assembler copies matched pages from all scanned documents into one
// composite, with provenance stamps, cross-links and a generated contents
// page and outline.
type Assembler struct {
	library driven.Library
}

// NewAssembler creates an assembler backed by the given document library.
func NewAssembler(library driven.Library) *Assembler {
	return &Assembler{library: library}
}

// Assemble builds the composite at outputPath from the matched pages of
// each file, in batch order. Files whose matched-page set is empty
// contribute nothing; a file that fails to open is skipped with a warning.
//
// Nothing is written when no page is copied: absence of output is the
// successful outcome of "no matches". The returned page map has one entry
// per copied page, keyed by (sourcePath, 1-based source page).
func (a *Assembler) Assemble(outputPath string, files []domain.FileMatches) (domain.PageMap, error) {
	composite := a.library.Create()
	defer composite.Close()

	var entries []domain.MergedPageEntry

	for _, file := range files {
		if len(file.PageIndices) == 0 {
			continue
		}
		entries = a.copyMatchedPages(composite, file, entries)
	}

	if len(entries) == 0 {
		logger.Debug("no pages matched, composite not written")
		return domain.PageMap{}, nil
	}

	if err := a.writeContentsPage(composite, entries); err != nil {
		return nil, fmt.Errorf("contents page: %w", err)
	}
	if err := composite.SetOutline(buildOutline(entries)); err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	if err := composite.Save(outputPath); err != nil {
		return nil, fmt.Errorf("saving composite: %w", err)
	}

	logger.Debug("composite written: %d copied pages plus contents", len(entries))
	return domain.BuildPageMap(entries), nil
}

// copyMatchedPages copies one file's matched pages into the composite,
// stamping each copy with its provenance and a link back to the source.
func (a *Assembler) copyMatchedPages(
	composite driven.Document, file domain.FileMatches, entries []domain.MergedPageEntry,
) []domain.MergedPageEntry {
	src, err := a.library.Open(file.Path)
	if err != nil {
		logger.Warn("failed to open %s: %v", file.Path, err)
		return entries
	}
	defer src.Close()

	title := displayTitle(src.MetadataTitle(), file.Path)

	for _, pageIndex := range file.PageIndices {
		copyIndex := composite.PageCount()
		if err := src.CopyPageInto(composite, pageIndex); err != nil {
			logger.Warn("failed to copy page %d of %s: %v", pageIndex+1, file.Path, err)
			continue
		}

		entry := domain.MergedPageEntry{
			Title:            title,
			SourcePath:       file.Path,
			SourcePageNumber: pageIndex + 1,
			CopyIndex:        copyIndex,
		}
		entries = append(entries, entry)

		a.stampProvenance(composite, copyIndex, entry)
	}

	return entries
}

// stampProvenance writes the "Source: <file> page <n>" label onto a fixed
// header band of the copied page and makes the band link back to the
// original file and page.
func (a *Assembler) stampProvenance(composite driven.Document, pageIndex int, entry domain.MergedPageEntry) {
	label := fmt.Sprintf("Source: %s page %d", filepath.Base(entry.SourcePath), entry.SourcePageNumber)
	at := driven.Point{X: stampLabelX, Y: stampLabelY}
	if err := composite.InsertText(pageIndex, at, label, stampFontSize); err != nil {
		logger.Warn("failed to stamp %s: %v", label, err)
		return
	}

	band := driven.Rect{X0: stampLabelX, Y0: stampBandTop, X1: stampBandRight, Y1: stampBandBot}
	target := driven.LinkTarget{URI: sourcePageURI(entry.SourcePath, entry.SourcePageNumber)}
	if err := composite.InsertLink(pageIndex, band, target); err != nil {
		logger.Warn("failed to link %s: %v", label, err)
	}
}

// writeContentsPage prepends the generated contents page: one line per
// copied page, each with an internal jump to the page's shifted position
// and an external link to the original file and page.
func (a *Assembler) writeContentsPage(composite driven.Document, entries []domain.MergedPageEntry) error {
	if err := composite.InsertBlankPage(0); err != nil {
		return err
	}

	heading := driven.Point{X: stampLabelX, Y: stampLabelY}
	if err := composite.InsertText(0, heading, "Contents", contentsHeadingSize); err != nil {
		return err
	}

	y := float64(contentsFirstLineY)
	for _, entry := range entries {
		display := fmt.Sprintf("%s - page %d", entry.Title, entry.SourcePageNumber)
		if err := composite.InsertText(0, driven.Point{X: stampLabelX, Y: y}, display, contentsLineSize); err != nil {
			return err
		}
		if err := composite.InsertText(0, driven.Point{X: contentsPageColX, Y: y}, "page", contentsLineSize); err != nil {
			return err
		}
		if err := composite.InsertText(0, driven.Point{X: contentsSourceColX, Y: y}, "source", contentsLineSize); err != nil {
			return err
		}

		internal := driven.Rect{X0: contentsPageColX, Y0: y - 2, X1: contentsPageColEndX, Y1: y + 10}
		jump := driven.LinkTarget{Page: entry.FinalPageNumber()}
		if err := composite.InsertLink(0, internal, jump); err != nil {
			return err
		}

		external := driven.Rect{X0: contentsSourceColX, Y0: y - 2, X1: contentsSourceColEnd, Y1: y + 10}
		source := driven.LinkTarget{URI: sourcePageURI(entry.SourcePath, entry.SourcePageNumber)}
		if err := composite.InsertLink(0, external, source); err != nil {
			return err
		}

		y += contentsLineHeight
	}

	return nil
}

// buildOutline produces one top-level bookmark per copied page, pointing
// at its shifted position behind the contents page.
func buildOutline(entries []domain.MergedPageEntry) []domain.OutlineEntry {
	outline := make([]domain.OutlineEntry, len(entries))
	for i, entry := range entries {
		outline[i] = domain.OutlineEntry{
			Level:      1,
			Title:      fmt.Sprintf("%s - page %d", entry.Title, entry.SourcePageNumber),
			TargetPage: entry.FinalPageNumber(),
		}
	}
	return outline
}

// sourcePageURI builds the external link target for one source page.
func sourcePageURI(path string, pageNumber int) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return fmt.Sprintf("file://%s#page=%d", abs, pageNumber)
}
