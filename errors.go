package parcom

import (
	"errors"
	"fmt"
	"strings"
)

// EndOfInputError is the cause reported when a matcher needs more input
// than is available.
type EndOfInputError struct {
	// Expected describes what the matcher was looking for.  May be
	// empty.
	Expected string
}

func (e *EndOfInputError) Error() string {
	if e.Expected == "" {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
}

// UnmatchedError is the cause reported when input is present but does
// not satisfy the matcher.
type UnmatchedError struct {
	// Expected describes what the matcher wanted.  May be empty.
	Expected string
	// Found is the input prefix the matcher encountered instead.
	Found string
}

func (e *UnmatchedError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("failed to match %q", e.Found)
	}
	return fmt.Sprintf("expected %s but got %q", e.Expected, e.Found)
}

// NotAtEndError is the cause reported by EOF when input remains.
type NotAtEndError struct{}

func (e *NotAtEndError) Error() string { return "input not empty" }

// NumericError is the cause reported when a well-formed-looking numeric
// literal can't be converted to the target type, e.g. on overflow.  It
// wraps the strconv error.
type NumericError struct {
	// Literal is the offending substring of the input.
	Literal string
	Err     error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("failed to parse number %q: %v", e.Literal, e.Err)
}

func (e *NumericError) Unwrap() error { return e.Err }

// ContextError is the cause attached by WithContext: an explanation of
// what an enclosing rule was doing when an inner failure happened.
type ContextError struct {
	Message string
}

func (e *ContextError) Error() string { return e.Message }

// Context is one recorded cause of failure, optionally tagged with the
// span of the offending input region.  Contexts are immutable once
// constructed.
type Context struct {
	span    Span
	hasSpan bool
	cause   error
}

// NewContext creates a context from a cause, without a span.
func NewContext(cause error) Context {
	return Context{cause: cause}
}

// WithSpan returns a copy of the context tagged with span.
func (c Context) WithSpan(span Span) Context {
	c.span = span
	c.hasSpan = true
	return c
}

// Span returns the context's span and whether one was recorded.
func (c Context) Span() (Span, bool) { return c.span, c.hasSpan }

// Cause returns the underlying error.
func (c Context) Cause() error { return c.cause }

func (c Context) String() string { return c.cause.Error() }

// Error is the failure type every parser in this package returns.  It
// is an ordered, non-empty stack of contexts: index zero holds the
// original, most specific cause, and each enclosing combinator may push
// one more context explaining what it was parsing when the inner
// failure happened.  Wrapping never discards the original cause.
type Error struct {
	// invariant: never empty
	stack []Context
}

// NewError creates an error from its innermost cause.  A cause that
// already is an *Error is returned as is.
func NewError(cause error) *Error {
	if e, ok := cause.(*Error); ok {
		return e
	}
	return &Error{stack: []Context{NewContext(cause)}}
}

// NewErrorAt creates an error from its innermost cause, tagged with the
// span of the offending input region.
func NewErrorAt(cause error, span Span) *Error {
	return &Error{stack: []Context{NewContext(cause).WithSpan(span)}}
}

// Push adds an enclosing context on top of the stack and returns the
// error for chaining.  The original cause stays at index zero.
func (e *Error) Push(ctx Context) *Error {
	e.stack = append(e.stack, ctx)
	return e
}

// Source returns the innermost, most specific cause.
func (e *Error) Source() Context { return e.stack[0] }

// Contexts returns the stack, innermost cause first.
func (e *Error) Contexts() []Context { return e.stack }

// Error renders the stack from the outermost explanation down to the
// original cause, one numbered line each.
func (e *Error) Error() string {
	var b strings.Builder
	for i := len(e.stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%d: %s", i, e.stack[i].cause)
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Unwrap exposes the innermost cause to the errors package.
func (e *Error) Unwrap() error { return e.stack[0].cause }

// As matches target against every cause in the stack, innermost first.
func (e *Error) As(target any) bool {
	for _, ctx := range e.stack {
		if errors.As(ctx.cause, target) {
			return true
		}
	}
	return false
}

// Is reports whether any cause in the stack matches target.
func (e *Error) Is(target error) bool {
	for _, ctx := range e.stack {
		if errors.Is(ctx.cause, target) {
			return true
		}
	}
	return false
}

func errEndOfInput(src, expected string) error {
	span := NewSpan(len(src), len(src))
	return NewErrorAt(&EndOfInputError{Expected: expected}, span)
}

func errUnmatched(src string, start, width int, expected string) error {
	end := start + width
	if end > len(src) {
		end = len(src)
	}
	span := NewSpan(start, end)
	return NewErrorAt(&UnmatchedError{Expected: expected, Found: span.Text(src)}, span)
}
