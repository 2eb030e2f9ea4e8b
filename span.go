package parcom

import "fmt"

// Span is a half-open byte range into a specific input buffer,
// guaranteeing that Start is never greater than End.  Offsets are byte
// offsets, not rune counts, and are only meaningful against the buffer
// they were created from.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a new span from start to end.  It panics if start is
// greater than end; see TrySpan for a constructor that can't panic.
func NewSpan(start, end int) Span {
	if start > end {
		panic("span start must be less or equal to end")
	}
	return Span{Start: start, End: end}
}

// TrySpan returns a span and true, or the zero span and false if start
// is greater than end.
func TrySpan(start, end int) (Span, bool) {
	if start > end {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}

func (s Span) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d", s.Start)
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Text returns the substring of input the span points at.
func (s Span) Text(input string) string {
	return input[s.Start:s.End]
}

// Contains reports whether s fully contains other.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Len is the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty reports whether the span covers no input.
func (s Span) IsEmpty() bool { return s.Start == s.End }
