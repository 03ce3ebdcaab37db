package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
)

func TestComposite_AppendSourcePage(t *testing.T) {
	c := newComposite()

	require.NoError(t, c.appendSourcePage("a.pdf", 0))
	require.NoError(t, c.appendSourcePage("a.pdf", 2))

	assert.Equal(t, 2, c.PageCount())
	assert.Equal(t, "a.pdf", c.pages[0].sourcePath)
	assert.Equal(t, 2, c.pages[1].sourcePage)
	assert.False(t, c.pages[0].generated())
}

func TestComposite_InsertBlankPage_ShiftsStampedPages(t *testing.T) {
	c := newComposite()
	require.NoError(t, c.appendSourcePage("a.pdf", 0))
	require.NoError(t, c.InsertText(0, driven.Point{X: 36, Y: 36}, "Source: a.pdf page 1", 9))

	require.NoError(t, c.InsertBlankPage(0))

	require.Equal(t, 2, c.PageCount())
	assert.True(t, c.pages[0].generated())
	assert.Empty(t, c.pages[0].texts)
	require.Len(t, c.pages[1].texts, 1)
	assert.Equal(t, "Source: a.pdf page 1", c.pages[1].texts[0].text)
}

func TestComposite_InsertBlankPage_OutOfRange(t *testing.T) {
	c := newComposite()

	err := c.InsertBlankPage(1)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComposite_InsertLink_RecordsTargets(t *testing.T) {
	c := newComposite()
	require.NoError(t, c.InsertBlankPage(0))

	jump := driven.LinkTarget{Page: 2}
	external := driven.LinkTarget{URI: "file:///docs/a.pdf#page=1"}
	require.NoError(t, c.InsertLink(0, driven.Rect{X0: 420, Y0: 58, X1: 455, Y1: 70}, jump))
	require.NoError(t, c.InsertLink(0, driven.Rect{X0: 470, Y0: 58, X1: 540, Y1: 70}, external))

	require.Len(t, c.pages[0].links, 2)
	assert.Equal(t, jump, c.pages[0].links[0].target)
	assert.Equal(t, external, c.pages[0].links[1].target)
}

func TestComposite_InsertText_OutOfRange(t *testing.T) {
	c := newComposite()

	err := c.InsertText(0, driven.Point{}, "x", 9)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComposite_ClosedRejectsWrites(t *testing.T) {
	c := newComposite()
	require.NoError(t, c.InsertBlankPage(0))
	require.NoError(t, c.Close())

	assert.ErrorIs(t, c.appendSourcePage("a.pdf", 0), domain.ErrDocumentClosed)
	assert.ErrorIs(t, c.InsertBlankPage(0), domain.ErrDocumentClosed)
	assert.ErrorIs(t, c.InsertText(0, driven.Point{}, "x", 9), domain.ErrDocumentClosed)
	assert.ErrorIs(t, c.SetOutline(nil), domain.ErrDocumentClosed)
	assert.ErrorIs(t, c.Save("out.pdf"), domain.ErrDocumentClosed)

	// Close is idempotent.
	require.NoError(t, c.Close())
}

func TestComposite_SaveEmpty(t *testing.T) {
	c := newComposite()

	err := c.Save("out.pdf")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComposite_SetOutline(t *testing.T) {
	c := newComposite()
	entries := []domain.OutlineEntry{{Level: 1, Title: "Alpha - page 1", TargetPage: 2}}

	require.NoError(t, c.SetOutline(entries))

	assert.Equal(t, entries, c.outline)
}
