package services

import (
	"fmt"
	"html"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

// patternMetaName is the metadata element carrying the exact search
// pattern inside every generated per-search HTML page. The directory
// indexer recovers the pattern from it without re-running the search.
const patternMetaName = "gpdf-pattern"

// RenderHighlightHTML renders a highlight as escaped HTML with the marked
// span wrapped in <strong>. Escaping is applied per segment, so the
// injected markup itself can never be escaped or corrupted.
func RenderHighlightHTML(h domain.Highlight) template.HTML {
	var b strings.Builder
	b.WriteString(html.EscapeString(h.Before()))
	b.WriteString("<strong>")
	b.WriteString(html.EscapeString(h.Match()))
	b.WriteString("</strong>")
	b.WriteString(html.EscapeString(h.After()))
	return template.HTML(b.String()) //nolint:gosec // segments are escaped above
}

// reportRow is one rendered table row of the index.
type reportRow struct {
	File        string
	Page        int
	Context     template.HTML
	SourceHref  string
	SummaryHref string
}

// reportPage is the template payload for one index page.
type reportPage struct {
	Title    string
	Pattern  string
	MetaName string
	BackHref string
	Rows     []reportRow
}

// RenderReportIndex renders the collected match records into one HTML
// index page. Link prefixes come from the layout so the same builder
// serves flat, bundled and caller-custom placements.
//
// The summary column links to the composite's page only when a summary
// file and a page map were supplied and the record's (path, page) key is
// present in the map.
func RenderReportIndex(
	records []domain.MatchRecord,
	pattern string,
	layout domain.LinkLayout,
	summaryFile string,
	pageMap domain.PageMap,
	title string,
) (string, error) {
	rows := make([]reportRow, 0, len(records))
	for _, rec := range records {
		row := reportRow{
			File:       filepath.Base(rec.SourcePath),
			Page:       rec.PageNumber,
			Context:    RenderHighlightHTML(rec.Context),
			SourceHref: layout.SourcePrefix + filepath.Base(rec.SourcePath),
		}
		if summaryFile != "" && pageMap != nil {
			key := domain.PageKey{SourcePath: rec.SourcePath, PageNumber: rec.PageNumber}
			if mergedPage, ok := pageMap[key]; ok {
				row.SummaryHref = fmt.Sprintf("%s%s#page=%d", layout.SummaryPrefix, summaryFile, mergedPage)
			}
		}
		rows = append(rows, row)
	}

	page := reportPage{
		Title:    title,
		Pattern:  pattern,
		MetaName: patternMetaName,
		BackHref: layout.BackHref,
		Rows:     rows,
	}

	var b strings.Builder
	if err := reportIndexTemplate.Execute(&b, page); err != nil {
		return "", fmt.Errorf("rendering report index: %w", err)
	}
	return b.String(), nil
}

var reportIndexTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="{{.MetaName}}" content="{{.Pattern}}" />
<title>gpdf results</title>
<style>
` + reportStyle + `
</style>
</head>
<body>
<div class="wrap">
<div class="header">
  <div class="header-top">
    <div class="title">{{.Title}}</div>
    {{if .BackHref}}<a class="back-link" href="{{.BackHref}}">&larr; Back</a>{{end}}
  </div>
  <div class="subtitle">created by gpdf</div>
  <div class="pattern">Pattern: <code>{{.Pattern}}</code></div>
</div>
<table>
<thead>
<tr>
<th>File</th>
<th>Page</th>
<th>Context</th>
<th>Links</th>
</tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td>{{.File}}</td>
<td>{{.Page}}</td>
<td class="context">{{.Context}}</td>
<td><a href="{{.SourceHref}}">source</a>{{if .SummaryHref}}<br><a href="{{.SummaryHref}}">summary</a>{{end}}</td>
</tr>
{{end}}</tbody>
</table>
</div>
</body>
</html>
`))

// reportStyle is the shared look of the generated pages.
const reportStyle = `body {
  margin: 0;
  background: #f5f1ea;
  color: #2a2a2a;
  font-family: "Iowan Old Style", "Palatino Linotype", "Book Antiqua", Palatino, serif;
}
.wrap {
  max-width: 1100px;
  margin: 32px auto 48px;
  padding: 0 24px;
}
.header {
  background: #fffaf2;
  border: 1px solid #e6dccb;
  border-radius: 14px;
  padding: 18px 20px;
  box-shadow: 0 6px 16px rgba(80, 64, 32, 0.08);
}
.header-top {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
  gap: 12px;
}
.back-link {
  font-size: 12px;
  color: #2b5c7d;
}
.title {
  font-size: 24px;
  margin: 0 0 6px 0;
}
.subtitle {
  font-size: 12px;
  color: #7a6a52;
  text-transform: uppercase;
  letter-spacing: 0.08em;
}
.pattern {
  font-size: 14px;
  color: #5a4a35;
}
.pattern code {
  font-family: "Menlo", "Consolas", "Liberation Mono", monospace;
  background: #f0e6d6;
  padding: 2px 6px;
  border-radius: 6px;
}
table {
  width: 100%;
  border-collapse: separate;
  border-spacing: 0;
  background: #fff;
  border: 1px solid #e1d7c5;
  border-radius: 14px;
  overflow: hidden;
  margin-top: 18px;
  box-shadow: 0 8px 20px rgba(80, 64, 32, 0.08);
}
th, td {
  padding: 10px 12px;
  vertical-align: top;
  border-bottom: 1px solid #eee3d4;
}
th {
  background: #efe6d7;
  text-align: left;
  letter-spacing: 0.04em;
  font-size: 12px;
  text-transform: uppercase;
  color: #5a4a35;
}
tr:hover td {
  background: #fff6e8;
}
.context {
  font-family: "Menlo", "Consolas", "Liberation Mono", monospace;
  font-size: 13px;
}
a {
  color: #2b5c7d;
  text-decoration: none;
}
a:hover {
  text-decoration: underline;
}`
