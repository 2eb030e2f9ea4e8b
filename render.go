package parcom

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Location is a human-oriented position in the input: 1-based line,
// 1-based rune column, plus the raw byte offset.
type Location struct {
	Line   int
	Column int
	Offset int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// lineIndex maps byte offsets to line/column locations.  lineStart
// holds the 0-based byte offset of each line start; columns are counted
// in runes from the line start.
type lineIndex struct {
	src       string
	lineStart []int
}

func newLineIndex(src string) *lineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			// next line starts after '\n'
			lineStart = append(lineStart, i+1)
		}
	}
	return &lineIndex{src: src, lineStart: lineStart}
}

// LocationAt converts a byte offset into a Location.  Offsets outside
// the buffer are clamped.
func (ix *lineIndex) LocationAt(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(ix.src) {
		offset = len(ix.src)
	}

	// Find first lineStart > offset, then step back one.
	line := sort.Search(len(ix.lineStart), func(i int) bool {
		return ix.lineStart[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	col := utf8.RuneCountInString(ix.src[ix.lineStart[line]:offset]) + 1
	return Location{Line: line + 1, Column: col, Offset: offset}
}

// lineAt returns the full text of the 1-based line, without the
// terminating newline.
func (ix *lineIndex) lineAt(line int) string {
	start := ix.lineStart[line-1]
	end := len(ix.src)
	if line < len(ix.lineStart) {
		end = ix.lineStart[line] - 1
	}
	return ix.src[start:end]
}

// Render produces a human-readable explanation of the error against the
// input it was produced from.  Contexts are printed outermost
// explanation first, each annotated with the line/column of its
// recorded span, and the innermost cause is followed by the offending
// source line with a caret under its span.
//
// The input must be the same buffer the parse ran on; the recorded
// spans are meaningless against any other string.
func (e *Error) Render(input string) string {
	ix := newLineIndex(input)

	var b strings.Builder
	for i := len(e.stack) - 1; i >= 0; i-- {
		ctx := e.stack[i]
		fmt.Fprintf(&b, "%d: %s", i, ctx.cause)
		if span, ok := ctx.Span(); ok {
			fmt.Fprintf(&b, " @ %s", ix.LocationAt(span.Start))
		}
		b.WriteByte('\n')
	}

	span, ok := e.stack[0].Span()
	if !ok {
		return b.String()
	}

	loc := ix.LocationAt(span.Start)
	line := ix.lineAt(loc.Line)
	fmt.Fprintf(&b, "\n%s\n", line)

	// clip the caret to the offending line
	end := span.End
	if lineEnd := ix.lineStart[loc.Line-1] + len(line); end > lineEnd {
		end = lineEnd
	}
	if end < span.Start {
		end = span.Start
	}
	width := utf8.RuneCountInString(input[span.Start:end])
	if width == 0 {
		width = 1
	}
	b.WriteString(strings.Repeat(" ", loc.Column-1))
	b.WriteString(strings.Repeat("^", width))
	b.WriteByte('\n')

	return b.String()
}
