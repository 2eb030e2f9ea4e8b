package parcom

// State is a parser's view of the input: the original buffer plus a
// byte offset into it.  Matchers never copy the buffer; a parser that
// consumes input returns a new State with a larger offset against the
// same buffer, so the remaining input is a suffix of the input it was
// given by construction.
//
// Because spans are byte offsets into the original buffer, a State
// created from one buffer must never be mixed with spans or states from
// another.
type State struct {
	src string
	off int
}

// NewState wraps input into a State positioned at its start.
func NewState(input string) State {
	return State{src: input}
}

// Rest returns the remaining, not yet consumed input.
func (s State) Rest() string { return s.src[s.off:] }

// Offset returns the current byte offset into the original buffer.
func (s State) Offset() int { return s.off }

// Source returns the original buffer the state indexes into.
func (s State) Source() string { return s.src }

// Empty reports whether all input has been consumed.
func (s State) Empty() bool { return s.off >= len(s.src) }

// Advance moves the offset n bytes forward.  The caller must keep the
// offset within the buffer and on a character boundary; the primitive
// matchers only ever advance by the width of what they matched.
func (s State) Advance(n int) State {
	s.off += n
	return s
}

// SpanTo returns the byte span between s and the later state end.
func (s State) SpanTo(end State) Span {
	return NewSpan(s.off, end.off)
}

// SpanNext returns a span covering the next n bytes of input, clamped
// to the end of the buffer.
func (s State) SpanNext(n int) Span {
	end := s.off + n
	if end > len(s.src) {
		end = len(s.src)
	}
	return NewSpan(s.off, end)
}
