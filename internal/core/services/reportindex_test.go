package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

func highlightFor(t *testing.T, text, needle string, window int) domain.Highlight {
	t.Helper()
	start := strings.Index(text, needle)
	require.GreaterOrEqual(t, start, 0, "needle not found")
	return domain.ExtractContext(text, start, start+len(needle), window)
}

func TestRenderHighlightHTML_WrapsMatch(t *testing.T) {
	h := highlightFor(t, "before alpha after", "alpha", 100)

	got := string(RenderHighlightHTML(h))

	assert.Equal(t, "before <strong>alpha</strong> after", got)
}

func TestRenderHighlightHTML_EscapesSegments(t *testing.T) {
	h := highlightFor(t, `a<b & "x" match c>d`, "match", 100)

	got := string(RenderHighlightHTML(h))

	assert.Contains(t, got, "a&lt;b &amp;")
	assert.Contains(t, got, "<strong>match</strong>")
	assert.Contains(t, got, "c&gt;d")
	assert.NotContains(t, got, "<b ")
}

func TestRenderReportIndex_RowsAndLinks(t *testing.T) {
	records := []domain.MatchRecord{
		domain.NewMatchRecord("docs/a.pdf", "Alpha", 3, 10, highlightFor(t, "x alpha y", "alpha", 50)),
		domain.NewMatchRecord("docs/b.pdf", "Beta", 1, 2, highlightFor(t, "x alpha y", "alpha", 50)),
	}
	pageMap := domain.PageMap{
		{SourcePath: "docs/a.pdf", PageNumber: 3}: 2,
		// b.pdf page 1 deliberately absent.
	}
	layout := domain.LinkLayout{SourcePrefix: "../source/", SummaryPrefix: "../summaries/", BackHref: "../index.html"}

	out, err := RenderReportIndex(records, "alpha", layout, "merged.pdf", pageMap, "Weekly sweep")
	require.NoError(t, err)

	assert.Contains(t, out, `<meta name="gpdf-pattern" content="alpha" />`)
	assert.Contains(t, out, "Weekly sweep")
	assert.Contains(t, out, `href="../index.html"`)
	assert.Contains(t, out, `href="../source/a.pdf"`)
	assert.Contains(t, out, `href="../source/b.pdf"`)
	assert.Contains(t, out, `href="../summaries/merged.pdf#page=2"`)

	// Only the mapped record gets a summary link.
	assert.Equal(t, 1, strings.Count(out, "summaries/merged.pdf#page="))
}

func TestRenderReportIndex_WithoutSummary(t *testing.T) {
	records := []domain.MatchRecord{
		domain.NewMatchRecord("a.pdf", "A", 1, 1, highlightFor(t, "alpha", "alpha", 10)),
	}

	out, err := RenderReportIndex(records, "alpha", domain.LinkLayout{}, "", nil, "gpdf results")
	require.NoError(t, err)

	assert.Contains(t, out, `href="a.pdf"`)
	assert.NotContains(t, out, "#page=")
	assert.NotContains(t, out, "Back")
}

func TestRenderReportIndex_EscapesPatternInMeta(t *testing.T) {
	out, err := RenderReportIndex(nil, `foo"bar<baz>`, domain.LinkLayout{}, "", nil, "t")
	require.NoError(t, err)

	assert.NotContains(t, out, `content="foo"bar`)
	assert.Contains(t, out, "gpdf-pattern")
}
