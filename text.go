package parcom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Literal matches lit exactly at the start of the input, consuming
// exactly len(lit) bytes and returning the matched prefix.
func Literal(lit string) Parser[string] {
	return func(s State) (string, State, error) {
		rest := s.Rest()
		if strings.HasPrefix(rest, lit) {
			return rest[:len(lit)], s.Advance(len(lit)), nil
		}
		expected := fmt.Sprintf("%q", lit)
		if len(rest) < len(lit) {
			return "", s, errEndOfInput(s.src, expected)
		}
		return "", s, errUnmatched(s.src, s.off, len(lit), expected)
	}
}

// AnyCase matches lit ignoring case.  Only ASCII letters are folded;
// any non-ASCII character must match exactly, so mixed-case non-ASCII
// input fails rather than silently matching.
func AnyCase(lit string) Parser[string] {
	return func(s State) (string, State, error) {
		rest := s.Rest()
		expected := fmt.Sprintf("%q (any case)", lit)
		n := 0
		for _, want := range lit {
			got, size := utf8.DecodeRuneInString(rest[n:])
			if size == 0 {
				return "", s, errEndOfInput(s.src, expected)
			}
			if asciiLower(want) != asciiLower(got) {
				return "", s, errUnmatched(s.src, s.off, n+size, expected)
			}
			n += size
		}
		return rest[:n], s.Advance(n), nil
	}
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Rune matches the single leading character if pred accepts it,
// consuming exactly that character's encoded width.  The output is the
// matched character as a substring of the input, which keeps its
// location recoverable.
func Rune(pred func(rune) bool) Parser[string] {
	return func(s State) (string, State, error) {
		r, size := utf8.DecodeRuneInString(s.Rest())
		if size == 0 {
			return "", s, errEndOfInput(s.src, "a character")
		}
		if !pred(r) {
			return "", s, errUnmatched(s.src, s.off, size, "")
		}
		return s.Rest()[:size], s.Advance(size), nil
	}
}

// AnyRune matches whatever character is first in the input.
var AnyRune = Rune(func(rune) bool { return true })

// OneOfRune matches the leading character if it is one of chars.
func OneOfRune(chars string) Parser[string] {
	return Rune(func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// NoneOfRune matches the leading character if it is not one of chars.
func NoneOfRune(chars string) Parser[string] {
	return Rune(func(r rune) bool { return !strings.ContainsRune(chars, r) })
}

// Take consumes exactly n leading characters (not bytes).
func Take(n int) Parser[string] {
	return func(s State) (string, State, error) {
		rest := s.Rest()
		count, width := 0, 0
		for width < len(rest) && count < n {
			_, size := utf8.DecodeRuneInString(rest[width:])
			width += size
			count++
		}
		if count < n {
			return "", s, errEndOfInput(s.src, fmt.Sprintf("%d characters", n))
		}
		return rest[:width], s.Advance(width), nil
	}
}

// TakeWhile consumes the maximal leading run of characters satisfying
// pred.  It fails if the run is shorter than min characters: when the
// run was cut short by the end of input it reports end of input,
// otherwise it reports the character that stopped it.
//
// With min of zero the parser never fails and may succeed consuming
// nothing; see Fold for the hazard of repeating such a parser.
func TakeWhile(pred func(rune) bool, min int) Parser[string] {
	return func(s State) (string, State, error) {
		rest := s.Rest()
		count, width := 0, 0
		for width < len(rest) {
			r, size := utf8.DecodeRuneInString(rest[width:])
			if !pred(r) {
				break
			}
			width += size
			count++
		}
		if count < min {
			if width >= len(rest) {
				return "", s, errEndOfInput(s.src, "")
			}
			_, size := utf8.DecodeRuneInString(rest[width:])
			return "", s, errUnmatched(s.src, s.off+width, size, "")
		}
		return rest[:width], s.Advance(width), nil
	}
}

// Common character-class matchers, all requiring at least one
// character.
var (
	// Whitespace matches a run of Unicode whitespace.
	Whitespace = TakeWhile(unicode.IsSpace, 1)
	// Alphabetic matches a run of Unicode letters.
	Alphabetic = TakeWhile(unicode.IsLetter, 1)
	// Alphanumeric matches a run of Unicode letters and digits.
	Alphanumeric = TakeWhile(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}, 1)
)

// Or0 returns the empty string when p fails, consuming nothing.  The
// empty match is zero-width; see Fold before repeating it.
func Or0(p Parser[string]) Parser[string] {
	return func(s State) (string, State, error) {
		out, next, err := p(s)
		if err != nil {
			return "", s, nil
		}
		return out, next, nil
	}
}

// Digits matches one or more digits in the given radix, up to 36.
// Letter digits are accepted in either case.
func Digits(radix int) Parser[string] {
	return TakeWhile(func(r rune) bool { return isDigit(r, radix) }, 1)
}

func isDigit(r rune, radix int) bool {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return false
	}
	return v < radix
}

var (
	decimalDigits = Digits(10)

	sign0 = Or0(OneOfRune("+-"))

	floatBody = Choice(
		Consume(Then(decimalDigits, Then(Literal("."), Or0(decimalDigits)))),
		Consume(Then(Or0(decimalDigits), Then(Literal("."), decimalDigits))),
		decimalDigits,
	)

	floatExponent = Consume(Then(AnyCase("e"), Then(sign0, decimalDigits)))

	// infinity before inf so the longer literal wins
	floatLiteral = Consume(Then(sign0, Choice(
		AnyCase("infinity"),
		AnyCase("inf"),
		AnyCase("nan"),
		Consume(Then(floatBody, Or0(floatExponent))),
	)))
)

// Uint64 parses a decimal unsigned integer.  Signs are not accepted;
// leading zeros are, so "007" parses to 7.  Overflow is reported as a
// NumericError carrying the offending literal and its span.
var Uint64 Parser[uint64] = func(s State) (uint64, State, error) {
	lit, next, err := decimalDigits(s)
	if err != nil {
		return 0, s, err
	}
	out, cerr := strconv.ParseUint(lit, 10, 64)
	if cerr != nil {
		return 0, s, numericErr(s, lit, cerr)
	}
	return out, next, nil
}

// Int64 parses a decimal integer with an optional leading plus or minus
// sign.
var Int64 Parser[int64] = func(s State) (int64, State, error) {
	lit, next, err := Consume(Then(sign0, decimalDigits))(s)
	if err != nil {
		return 0, s, err
	}
	out, cerr := strconv.ParseInt(lit, 10, 64)
	if cerr != nil {
		return 0, s, numericErr(s, lit, cerr)
	}
	return out, next, nil
}

// Float64 parses a floating point number: an optional sign, then either
// one of the case-insensitive literals "inf", "infinity" and "nan", or
// a mandatory digits-or-fraction body ("12.", ".5", "3.14" or "3")
// followed by an optional exponent ("e10", "E-10").
var Float64 Parser[float64] = func(s State) (float64, State, error) {
	lit, next, err := floatLiteral(s)
	if err != nil {
		return 0, s, err
	}
	body := lit
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	// strconv rejects a signed NaN
	if strings.EqualFold(body, "nan") {
		return math.NaN(), next, nil
	}
	out, cerr := strconv.ParseFloat(lit, 64)
	if cerr != nil {
		return 0, s, numericErr(s, lit, cerr)
	}
	return out, next, nil
}

func numericErr(s State, lit string, cause error) error {
	return NewErrorAt(&NumericError{Literal: lit, Err: cause}, s.SpanNext(len(lit)))
}

// EOF succeeds only when all input has been consumed.
var EOF Parser[struct{}] = func(s State) (struct{}, State, error) {
	if s.Empty() {
		return struct{}{}, s, nil
	}
	span := NewSpan(s.off, len(s.src))
	return struct{}{}, s, NewErrorAt(&NotAtEndError{}, span)
}

// LineEnd matches a "\n" or "\r\n" line ending.
var LineEnd = Choice(Literal("\n"), Literal("\r\n"))

// Line matches a newline-terminated line and returns it without the
// terminator.  A line ended by "\r\n" keeps the carriage return in the
// output.
var Line = Before(
	TakeWhile(func(r rune) bool { return r != '\n' }, 0),
	LineEnd,
)
