package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Zero-width span markers inserted into the raw text before whitespace
// collapsing. They must never appear in extracted page text; the C0 range
// is stripped by every PDF text extractor we drive.
const (
	markSpanStart = '\x01'
	markSpanEnd   = '\x02'
)

// Highlight is a normalized context string with one contiguous marked span.
// Start and End are byte offsets into Text. The marked substring equals the
// original regex match after whitespace normalization; rendering to ANSI or
// HTML is a pure function of this value.
type Highlight struct {
	Text  string
	Start int
	End   int
}

// Before returns the context preceding the marked span.
func (h Highlight) Before() string { return h.Text[:h.Start] }

// Match returns the marked span itself.
func (h Highlight) Match() string { return h.Text[h.Start:h.End] }

// After returns the context following the marked span.
func (h Highlight) After() string { return h.Text[h.End:] }

// NormalizeWhitespace collapses every run of whitespace to a single space
// and trims leading and trailing whitespace. It is idempotent.
func NormalizeWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// ExtractContext builds the normalized context window around a match.
// matchStart and matchEnd are byte offsets into pageText; window is the
// number of bytes of context requested on each side, clipped to the text
// and widened outward to rune boundaries so no character is split.
//
// The span markers are carried through collapsing as zero-width values:
// they bind to the nearest non-whitespace character on their inner side,
// so edge whitespace of the raw match is excluded and the marked substring
// equals NormalizeWhitespace of the matched text.
func ExtractContext(pageText string, matchStart, matchEnd, window int) Highlight {
	if matchStart < 0 {
		matchStart = 0
	}
	if matchEnd > len(pageText) {
		matchEnd = len(pageText)
	}
	if matchEnd < matchStart {
		matchEnd = matchStart
	}

	left := matchStart - window
	if left < 0 {
		left = 0
	}
	for left > 0 && !utf8.RuneStart(pageText[left]) {
		left--
	}
	right := matchEnd + window
	if right > len(pageText) {
		right = len(pageText)
	}
	for right < len(pageText) && !utf8.RuneStart(pageText[right]) {
		right++
	}

	var raw strings.Builder
	raw.Grow(right - left + 2)
	raw.WriteString(pageText[left:matchStart])
	raw.WriteRune(markSpanStart)
	raw.WriteString(pageText[matchStart:matchEnd])
	raw.WriteRune(markSpanEnd)
	raw.WriteString(pageText[matchEnd:right])

	return collapseMarked(raw.String())
}

// collapseMarked normalizes whitespace in a string carrying the two span
// markers, resolving the markers to offsets into the normalized result.
func collapseMarked(raw string) Highlight {
	var b strings.Builder
	b.Grow(len(raw))

	space := false
	startSeen, endSeen := false, false
	start, end := -1, -1

	for _, r := range raw {
		switch {
		case r == markSpanStart:
			startSeen = true
		case r == markSpanEnd:
			end = b.Len()
			endSeen = true
		case unicode.IsSpace(r):
			space = true
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			if startSeen && !endSeen && start == -1 {
				start = b.Len()
			}
			b.WriteRune(r)
		}
	}

	text := b.String()
	if end == -1 {
		end = len(text)
	}
	if start == -1 {
		// Match contained no printable characters; collapse to an
		// empty span at the end-marker position.
		start = end
	}
	if end < start {
		end = start
	}
	return Highlight{Text: text, Start: start, End: end}
}
