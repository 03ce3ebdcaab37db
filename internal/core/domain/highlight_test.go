package domain

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeWhitespace_Collapse tests whitespace run collapsing
func TestNormalizeWhitespace_Collapse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"inner run", "hello \t\n world", "hello world"},
		{"leading and trailing", "  \n hello \t ", "hello"},
		{"newlines only", "a\nb\nc", "a b c"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"unicode spaces", "a  b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWhitespace(tt.in))
		})
	}
}

// TestNormalizeWhitespace_Idempotent tests that normalizing an already
// normalized string is a no-op
func TestNormalizeWhitespace_Idempotent(t *testing.T) {
	inputs := []string{
		"invoice  42\n\ttotal due",
		"  spread \n across \t lines  ",
		"already normal",
		"",
	}

	for _, in := range inputs {
		once := NormalizeWhitespace(in)
		assert.Equal(t, once, NormalizeWhitespace(once))
	}
}

// TestExtractContext_Window tests window clipping at both document edges
func TestExtractContext_Window(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	start := strings.Index(text, "gamma")
	end := start + len("gamma")

	tests := []struct {
		name   string
		window int
		want   string
	}{
		{"zero window", 0, "gamma"},
		{"small window", 3, "ta gamma de"},
		{"clips at both ends", 1000, text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ExtractContext(text, start, end, tt.window)
			assert.Equal(t, tt.want, h.Text)
			assert.Equal(t, "gamma", h.Match())
		})
	}
}

// TestExtractContext_RoundTrip tests that the marked span equals the
// normalized match text for every match position and window size
func TestExtractContext_RoundTrip(t *testing.T) {
	text := "The  quick\nbrown fox\tjumps over the lazy dog.\nThe fox again."
	re := regexp.MustCompile(`(?i)fox`)

	for _, window := range []int{0, 1, 5, 20, 1000} {
		for _, m := range re.FindAllStringIndex(text, -1) {
			h := ExtractContext(text, m[0], m[1], window)
			assert.Equal(t, NormalizeWhitespace(text[m[0]:m[1]]), h.Match())
			assert.Equal(t, h.Text, h.Before()+h.Match()+h.After())
		}
	}
}

// TestExtractContext_Normalized tests that the context itself is fully
// whitespace-normalized
func TestExtractContext_Normalized(t *testing.T) {
	text := "  left \t side   match  right \n side  "
	start := strings.Index(text, "match")
	h := ExtractContext(text, start, start+len("match"), 100)

	require.Equal(t, "left side match right side", h.Text)
	assert.Equal(t, "match", h.Match())
	assert.Equal(t, NormalizeWhitespace(h.Text), h.Text)
}

// TestExtractContext_MatchWithInnerWhitespace tests a match spanning a
// whitespace run
func TestExtractContext_MatchWithInnerWhitespace(t *testing.T) {
	text := "pay the\n\ttotal amount now"
	start := strings.Index(text, "the")
	end := strings.Index(text, "total") + len("total")

	h := ExtractContext(text, start, end, 100)
	assert.Equal(t, "pay the total amount now", h.Text)
	assert.Equal(t, "the total", h.Match())
}

// TestExtractContext_MatchAtEdges tests matches at the very start and end
// of the page text
func TestExtractContext_MatchAtEdges(t *testing.T) {
	text := "start middle end"

	h := ExtractContext(text, 0, len("start"), 4)
	assert.Equal(t, "start", h.Match())
	assert.Equal(t, 0, h.Start)

	h = ExtractContext(text, len(text)-len("end"), len(text), 4)
	assert.Equal(t, "end", h.Match())
	assert.Equal(t, len(h.Text), h.End)
}

// TestExtractContext_MatchWithEdgeWhitespace tests that whitespace at the
// match boundaries binds outside the span, matching normalization of the
// match text itself
func TestExtractContext_MatchWithEdgeWhitespace(t *testing.T) {
	text := "alpha beta gamma"
	// Match " beta " including both surrounding spaces.
	start := strings.Index(text, " beta ")
	end := start + len(" beta ")

	h := ExtractContext(text, start, end, 100)
	assert.Equal(t, "alpha beta gamma", h.Text)
	assert.Equal(t, "beta", h.Match())
}

// TestExtractContext_WhitespaceOnlyMatch tests a match consisting solely
// of whitespace
func TestExtractContext_WhitespaceOnlyMatch(t *testing.T) {
	text := "one \t\n two"
	start := strings.Index(text, " ")
	end := strings.LastIndex(text, " ") + 1

	h := ExtractContext(text, start, end, 100)
	assert.Equal(t, "one two", h.Text)
	assert.Empty(t, h.Match())
	assert.LessOrEqual(t, h.Start, h.End)
}

// TestExtractContext_MultibyteWindow tests that byte windows never split
// a multi-byte character
func TestExtractContext_MultibyteWindow(t *testing.T) {
	text := "héllo wörld match möre téxt"
	start := strings.Index(text, "match")
	end := start + len("match")

	for window := 0; window <= len(text); window++ {
		h := ExtractContext(text, start, end, window)
		assert.True(t, utf8.ValidString(h.Text), "window %d produced invalid UTF-8", window)
		assert.Equal(t, "match", h.Match())
	}
}
