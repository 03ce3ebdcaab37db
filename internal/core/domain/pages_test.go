package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergedPageEntry_FinalPageNumber tests the copy-order to final page
// number conversion including the contents-page shift
func TestMergedPageEntry_FinalPageNumber(t *testing.T) {
	first := MergedPageEntry{CopyIndex: 0}
	assert.Equal(t, 2, first.FinalPageNumber(), "first copied page sits behind the contents page")

	third := MergedPageEntry{CopyIndex: 2}
	assert.Equal(t, 4, third.FinalPageNumber())
}

// TestBuildPageMap tests that the page map has exactly one entry per
// copied page, keyed by source path and 1-based source page
func TestBuildPageMap(t *testing.T) {
	entries := []MergedPageEntry{
		{Title: "A", SourcePath: "/a.pdf", SourcePageNumber: 1, CopyIndex: 0},
		{Title: "A", SourcePath: "/a.pdf", SourcePageNumber: 3, CopyIndex: 1},
		{Title: "B", SourcePath: "/b.pdf", SourcePageNumber: 1, CopyIndex: 2},
	}

	m := BuildPageMap(entries)
	require.Len(t, m, len(entries))
	assert.Equal(t, 2, m[PageKey{SourcePath: "/a.pdf", PageNumber: 1}])
	assert.Equal(t, 3, m[PageKey{SourcePath: "/a.pdf", PageNumber: 3}])
	assert.Equal(t, 4, m[PageKey{SourcePath: "/b.pdf", PageNumber: 1}])
}

// TestBuildPageMap_Empty tests the empty case
func TestBuildPageMap_Empty(t *testing.T) {
	m := BuildPageMap(nil)
	assert.Empty(t, m)
}

// TestBuildPageMap_SamePageNumberAcrossFiles tests that identical page
// numbers in different files stay distinct keys
func TestBuildPageMap_SamePageNumberAcrossFiles(t *testing.T) {
	entries := []MergedPageEntry{
		{SourcePath: "/a.pdf", SourcePageNumber: 1, CopyIndex: 0},
		{SourcePath: "/b.pdf", SourcePageNumber: 1, CopyIndex: 1},
	}

	m := BuildPageMap(entries)
	assert.Len(t, m, 2)
}
