package services

import (
	"fmt"
	"html"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/logger"
)

// patternRecoveryLimit bounds how much of each report file is read when
// recovering its embedded pattern; the meta element sits in the head.
const patternRecoveryLimit = 4096

// unknownPatternLabel is the fallback shown for report files whose
// pattern cannot be recovered.
const unknownPatternLabel = "unknown pattern"

// patternMetaRe recovers the embedded pattern, case-insensitively, from a
// generated report page.
var patternMetaRe = regexp.MustCompile(
	`(?i)<meta name="` + patternMetaName + `" content="([^"]*)"\s*/?>`)

// dirIndexEntry is one row of the master listing.
type dirIndexEntry struct {
	Name    string
	Href    string
	Pattern string
}

// dirIndexPage is the template payload for the master listing.
type dirIndexPage struct {
	Title   string
	Entries []dirIndexEntry
}

// BuildReportsDirectoryIndex aggregates previously generated report pages
// under outputDir into a master index.html. It scans the html/
// subdirectory when present (the bundle layout), otherwise outputDir
// itself, skipping its own output file.
func BuildReportsDirectoryIndex(outputDir, title string) error {
	scanDir := outputDir
	linkPrefix := ""
	if info, err := os.Stat(filepath.Join(outputDir, domain.ReportHTMLDir)); err == nil && info.IsDir() {
		scanDir = filepath.Join(outputDir, domain.ReportHTMLDir)
		linkPrefix = domain.ReportHTMLDir + "/"
	}

	dirEntries, err := os.ReadDir(scanDir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", scanDir, err)
	}

	var entries []dirIndexEntry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".html") {
			continue
		}
		if name == domain.ReportIndexFile {
			continue
		}
		entries = append(entries, dirIndexEntry{
			Name:    name,
			Href:    linkPrefix + name,
			Pattern: recoverPattern(filepath.Join(scanDir, name)),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	var b strings.Builder
	page := dirIndexPage{Title: title, Entries: entries}
	if err := dirIndexTemplate.Execute(&b, page); err != nil {
		return fmt.Errorf("rendering directory index: %w", err)
	}

	indexPath := filepath.Join(outputDir, domain.ReportIndexFile)
	if err := os.WriteFile(indexPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", indexPath, err)
	}
	return nil
}

// recoverPattern reads a bounded prefix of a report file and extracts the
// embedded pattern. Unreadable files or missing metadata fall back to the
// placeholder label; the file is still listed.
func recoverPattern(path string) string {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("failed to read %s: %v", path, err)
		return unknownPatternLabel
	}
	defer f.Close()

	prefix := make([]byte, patternRecoveryLimit)
	n, err := io.ReadFull(f, prefix)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		logger.Warn("failed to read %s: %v", path, err)
		return unknownPatternLabel
	}

	m := patternMetaRe.FindSubmatch(prefix[:n])
	if m == nil {
		return unknownPatternLabel
	}
	return html.UnescapeString(string(m[1]))
}

var dirIndexTemplate = template.Must(template.New("dirindex").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>gpdf reports</title>
<style>
` + reportStyle + `
</style>
</head>
<body>
<div class="wrap">
<div class="header">
  <div class="title">{{.Title}}</div>
  <div class="subtitle">created by gpdf</div>
</div>
<table>
<thead>
<tr><th>Pattern</th><th>Report</th></tr>
</thead>
<tbody>
{{range .Entries}}<tr><td>{{.Pattern}}</td><td><a href="{{.Href}}">{{.Name}}</a></td></tr>
{{end}}</tbody>
</table>
</div>
</body>
</html>
`))
