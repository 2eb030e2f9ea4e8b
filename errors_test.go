package parcom

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStack_Order(t *testing.T) {
	inner := &UnmatchedError{Expected: "`x`", Found: "y"}
	err := NewErrorAt(inner, NewSpan(5, 6)).
		Push(NewContext(&ContextError{Message: "while parsing a rule"})).
		Push(NewContext(&ContextError{Message: "while parsing a document"}))

	require.Len(t, err.Contexts(), 3)
	assert.Same(t, inner, err.Source().Cause())

	span, ok := err.Source().Span()
	require.True(t, ok)
	assert.Equal(t, NewSpan(5, 6), span)

	_, ok = err.Contexts()[1].Span()
	assert.False(t, ok)
}

func TestErrorStack_Message(t *testing.T) {
	err := NewErrorAt(&EndOfInputError{}, NewSpan(3, 3)).
		Push(NewContext(&ContextError{Message: "while parsing a list"}))

	assert.Equal(t, "1: while parsing a list\n0: unexpected end of input", err.Error())
}

func TestErrorStack_Downcast(t *testing.T) {
	err := NewErrorAt(&EndOfInputError{Expected: "`)`"}, NewSpan(10, 10)).
		Push(NewContext(&ContextError{Message: "while parsing a group"}))

	var eof *EndOfInputError
	require.True(t, errors.As(err, &eof))
	assert.Equal(t, "`)`", eof.Expected)

	var ctx *ContextError
	require.True(t, errors.As(err, &ctx))
	assert.Equal(t, "while parsing a group", ctx.Message)

	var unmatched *UnmatchedError
	assert.False(t, errors.As(err, &unmatched))
}

func TestErrorStack_NumericCause(t *testing.T) {
	_, cause := strconv.ParseUint("99999999999999999999", 10, 64)
	require.Error(t, cause)

	err := NewErrorAt(&NumericError{Literal: "99999999999999999999", Err: cause}, NewSpan(0, 20))

	var numeric *NumericError
	require.True(t, errors.As(err, &numeric))
	assert.Equal(t, "99999999999999999999", numeric.Literal)
	assert.True(t, errors.Is(err, strconv.ErrRange))
}

func TestErrorCauseMessages(t *testing.T) {
	tests := []struct {
		name     string
		cause    error
		expected string
	}{
		{
			name:     "end of input",
			cause:    &EndOfInputError{},
			expected: "unexpected end of input",
		},
		{
			name:     "end of input with expectation",
			cause:    &EndOfInputError{Expected: "4 characters"},
			expected: "unexpected end of input, expected 4 characters",
		},
		{
			name:     "unmatched",
			cause:    &UnmatchedError{Found: "xyz"},
			expected: `failed to match "xyz"`,
		},
		{
			name:     "unmatched with expectation",
			cause:    &UnmatchedError{Expected: `"let"`, Found: "lut"},
			expected: `expected "let" but got "lut"`,
		},
		{
			name:     "not at end",
			cause:    &NotAtEndError{},
			expected: "input not empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cause.Error())
		})
	}
}

func TestRender(t *testing.T) {
	input := "abc\ndef"
	err := NewErrorAt(&UnmatchedError{Expected: "`x`", Found: "e"}, NewSpan(5, 6)).
		Push(NewContext(&ContextError{Message: "while parsing a rule"}).WithSpan(NewSpan(0, 0)))

	out := err.Render(input)

	assert.Contains(t, out, "1: while parsing a rule @ 1:1")
	assert.Contains(t, out, `0: expected `+"`x`"+` but got "e" @ 2:2`)
	assert.Contains(t, out, "def\n ^\n")
}

func TestRender_SpanAtEndOfInput(t *testing.T) {
	input := "(notclosed"
	err := NewErrorAt(&EndOfInputError{Expected: `")"`}, NewSpan(10, 10))

	out := err.Render(input)

	assert.Contains(t, out, "@ 1:11")
	assert.Contains(t, out, "(notclosed\n          ^\n")
}

func TestRender_MultibyteColumns(t *testing.T) {
	input := "héllo wörld"
	// byte offset of 'w' is 7 because of the two-byte runes
	err := NewErrorAt(&UnmatchedError{Found: "w"}, NewSpan(7, 8))

	out := err.Render(input)

	assert.Contains(t, out, "@ 1:7")
	assert.Contains(t, out, "héllo wörld\n      ^\n")
}
