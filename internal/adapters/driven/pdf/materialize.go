package pdf

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Generated pages are laid out on A4.
const (
	a4Width  = 595.27
	a4Height = 841.89
)

// materialize renders the recorded composition at outPath: one
// single-page extract per recorded page, merged in order, then text
// stamps, bookmarks and link annotations applied to the merged file.
func materialize(c *compositeDocument, outPath string) error {
	tmpDir, err := os.MkdirTemp("", "gpdf-merge-")
	if err != nil {
		return fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pageFiles := make([]string, len(c.pages))
	for i, page := range c.pages {
		pageFile := filepath.Join(tmpDir, fmt.Sprintf("page-%04d.pdf", i+1))
		if page.generated() {
			err = createGeneratedPage(page, pageFile, tmpDir, conf)
		} else {
			err = api.TrimFile(page.sourcePath, pageFile, []string{strconv.Itoa(page.sourcePage + 1)}, conf)
		}
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		pageFiles[i] = pageFile
	}

	merged := filepath.Join(tmpDir, "merged.pdf")
	if err := api.MergeCreateFile(pageFiles, merged, false, conf); err != nil {
		return fmt.Errorf("merging pages: %w", err)
	}

	if err := applyTextStamps(c, merged, conf); err != nil {
		return err
	}
	if err := applyOutline(c, merged, conf); err != nil {
		return err
	}
	if err := applyLinks(c, merged, conf); err != nil {
		return err
	}

	return moveFile(merged, outPath)
}

// applyTextStamps stamps the recorded texts of copied pages onto the
// merged file. Generated pages carry their text from creation.
func applyTextStamps(c *compositeDocument, merged string, conf *model.Configuration) error {
	for i, page := range c.pages {
		if page.generated() {
			continue
		}
		for _, stamp := range page.texts {
			desc := fmt.Sprintf(
				"fontname:Helvetica, points:%g, scale:1 abs, pos:tl, off:%g %g, rot:0, opacity:1",
				stamp.fontSize, stamp.at.X, -stamp.at.Y)
			pages := []string{strconv.Itoa(i + 1)}
			if err := api.AddTextWatermarksFile(merged, "", pages, true, stamp.text, desc, conf); err != nil {
				return fmt.Errorf("stamping page %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// applyOutline replaces the merged file's bookmarks with the recorded
// outline.
func applyOutline(c *compositeDocument, merged string, conf *model.Configuration) error {
	if len(c.outline) == 0 {
		return nil
	}
	bms := make([]pdfcpu.Bookmark, len(c.outline))
	for i, entry := range c.outline {
		bms[i] = pdfcpu.Bookmark{Title: entry.Title, PageFrom: entry.TargetPage}
	}
	if err := api.AddBookmarksFile(merged, "", bms, true, conf); err != nil {
		return fmt.Errorf("outline: %w", err)
	}
	return nil
}

// applyLinks attaches the recorded link annotations. Regions are
// recorded top-left based and converted per page height.
func applyLinks(c *compositeDocument, merged string, conf *model.Configuration) error {
	dims, err := api.PageDimsFile(merged)
	if err != nil {
		return fmt.Errorf("page dimensions: %w", err)
	}

	for i, page := range c.pages {
		if len(page.links) == 0 {
			continue
		}
		height := a4Height
		if i < len(dims) {
			height = dims[i].Height
		}
		pages := []string{strconv.Itoa(i + 1)}
		for _, link := range page.links {
			ann := linkAnnotation(link, height)
			if err := api.AddAnnotationsFile(merged, "", pages, ann, conf, false); err != nil {
				return fmt.Errorf("linking page %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// linkAnnotation builds a pdfcpu link annotation from a recorded stamp,
// flipping the region to the PDF's bottom-left coordinate system.
func linkAnnotation(link linkStamp, pageHeight float64) model.LinkAnnotation {
	rect := types.NewRectangle(
		link.region.X0, pageHeight-link.region.Y1,
		link.region.X1, pageHeight-link.region.Y0)

	var dest *model.Destination
	if link.target.URI == "" {
		dest = &model.Destination{Typ: model.DestFit, PageNr: link.target.Page}
	}

	return model.NewLinkAnnotation(
		*rect,
		0,
		"", "",
		"",
		0,
		nil,
		dest,
		link.target.URI,
		nil,
		false,
		0,
		model.BSSolid,
	)
}

// Generated-page JSON, fed to pdfcpu's create API.
type createPageText struct {
	Value    string     `json:"value"`
	Position [2]float64 `json:"position"`
	Font     createFont `json:"font"`
}

type createFont struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

type createContent struct {
	Text []createPageText `json:"text"`
}

type createPage struct {
	Content createContent `json:"content"`
}

type createSpec struct {
	PaperSize string                `json:"paperSize"`
	Pages     map[string]createPage `json:"pages"`
}

// createGeneratedPage renders a generated page (the contents page) as a
// standalone single-page file with its recorded texts.
func createGeneratedPage(page *compositePage, pageFile, tmpDir string, conf *model.Configuration) error {
	texts := make([]createPageText, len(page.texts))
	for i, stamp := range page.texts {
		texts[i] = createPageText{
			Value:    stamp.text,
			Position: [2]float64{stamp.at.X, a4Height - stamp.at.Y},
			Font:     createFont{Name: "Helvetica", Size: stamp.fontSize},
		}
	}

	spec := createSpec{
		PaperSize: "A4",
		Pages: map[string]createPage{
			"1": {Content: createContent{Text: texts}},
		},
	}
	payload, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("page spec: %w", err)
	}

	specFile := filepath.Join(tmpDir, filepath.Base(pageFile)+".json")
	if err := os.WriteFile(specFile, payload, 0644); err != nil {
		return fmt.Errorf("writing page spec: %w", err)
	}
	if err := api.CreateFile("", specFile, pageFile, conf); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// moveFile moves src to dst, falling back to copy when rename crosses
// filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
