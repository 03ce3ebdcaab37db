package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

var matchColor = color.New(color.FgRed, color.Bold)

// TerminalSink returns a record sink that prints each match as a
// grep-style line: "file.pdf:page N: context", with the matched span
// highlighted when w is a colour-capable terminal. Context is clipped
// to the terminal width so one match stays on one line.
func TerminalSink(w io.Writer) domain.RecordSink {
	width := terminalWidth(w)
	return func(record domain.MatchRecord) {
		printRecord(w, record, width)
	}
}

func printRecord(w io.Writer, record domain.MatchRecord, width int) {
	prefix := fmt.Sprintf("%s:%s: ", filepath.Base(record.SourcePath), locationOf(record))

	h := record.Context
	if width > 0 {
		h = clipHighlight(h, width-len(prefix))
	}

	fmt.Fprint(w, prefix)
	fmt.Fprint(w, h.Before())
	matchColor.Fprint(w, h.Match())
	fmt.Fprintln(w, h.After())
}

// locationOf describes where in the document the match sits. Documents
// that report no page count fall back to a percentage position.
func locationOf(record domain.MatchRecord) string {
	if record.PageCount > 0 {
		return fmt.Sprintf("page %d", record.PageNumber)
	}
	return fmt.Sprintf("%.1f%%", record.Percent)
}

// clipHighlight trims the context to at most max bytes, cutting from
// both ends around the marked span so the match itself stays visible.
// Cut points widen outward to rune boundaries so multi-byte runes are
// never split; the result may exceed max by a few bytes.
func clipHighlight(h domain.Highlight, max int) domain.Highlight {
	if max <= 0 || len(h.Text) <= max {
		return h
	}

	span := h.End - h.Start
	budget := max - span
	if budget < 0 {
		// Match alone overflows the line; keep its head.
		end := h.Start + max
		for end < len(h.Text) && !utf8.RuneStart(h.Text[end]) {
			end++
		}
		return domain.Highlight{Text: h.Text[h.Start:end], Start: 0, End: end - h.Start}
	}

	before := budget / 2
	after := budget - before
	if before > h.Start {
		after += before - h.Start
		before = h.Start
	}
	if tail := len(h.Text) - h.End; after > tail {
		before += after - tail
		after = tail
		if before > h.Start {
			before = h.Start
		}
	}

	left := h.Start - before
	right := h.End + after
	for left > 0 && !utf8.RuneStart(h.Text[left]) {
		left--
	}
	for right < len(h.Text) && !utf8.RuneStart(h.Text[right]) {
		right++
	}
	return domain.Highlight{
		Text:  h.Text[left:right],
		Start: h.Start - left,
		End:   h.End - left,
	}
}

// terminalWidth reports the column width of w, or 0 when w is not a
// terminal (piped output is never clipped).
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
