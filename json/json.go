// Package json implements an example JSON grammar on top of the parcom
// engine.  It exists to exercise the engine end to end; it is not a
// drop-in replacement for encoding/json.
package json

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/parcom/parcom"
)

// Value is the unified output type of the grammar.  The concrete
// variants are Null, Bool, Number, String, Array and Object.
type Value interface {
	fmt.Stringer
	isValue()
}

type Null struct{}

type Bool bool

type Number float64

type String string

type Array []Value

type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

func (Null) String() string { return "null" }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (s String) String() string { return strconv.Quote(string(s)) }

func (a Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (o Object) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		b.WriteString(o[k].String())
	}
	b.WriteByte('}')
	return b.String()
}

// Parse parses input as a single JSON document, requiring the entire
// input to be consumed.
func Parse(input string) (Value, error) {
	p := parcom.Before(parcom.Parser[Value](parseValue), parcom.EOF).
		WithContext("while parsing a JSON document")
	out, _, err := p.Parse(input)
	return out, err
}

// whitespace is the JSON insignificant-character run; it matches zero
// or more characters and therefore must never sit inside a Fold.
var whitespace = parcom.TakeWhile(func(r rune) bool {
	return r == ' ' || r == '\n' || r == '\r' || r == '\t'
}, 0)

func parseValue(s parcom.State) (Value, parcom.State, error) {
	p := parcom.Delimited(whitespace, parcom.Choice(
		parcom.Map(parcom.Parser[Object](parseObject), func(o Object) Value { return o }),
		parcom.Map(parcom.Parser[Array](parseArray), func(a Array) Value { return a }),
		parcom.Map(parcom.Parser[string](parseString), func(v string) Value { return String(v) }),
		parcom.Map(parcom.Parser[float64](parseNumber), func(v float64) Value { return Number(v) }),
		parcom.To(parcom.Literal("true"), Value(Bool(true))),
		parcom.To(parcom.Literal("false"), Value(Bool(false))),
		parcom.To(parcom.Literal("null"), Value(Null{})),
	), whitespace)
	return p(s)
}

func parseString(s parcom.State) (string, parcom.State, error) {
	unicodeEscape := parcom.TryMap(
		parcom.Skip(parcom.Literal(`\u`), parcom.Take(4)),
		func(hex string) (rune, error) {
			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, &parcom.NumericError{Literal: hex, Err: err}
			}
			return rune(n), nil
		},
	)

	character := parcom.Choice(
		parcom.To(parcom.Literal(`\"`), '"'),
		parcom.To(parcom.Literal(`\\`), '\\'),
		parcom.To(parcom.Literal(`\/`), '/'),
		parcom.To(parcom.Literal(`\b`), '\b'),
		parcom.To(parcom.Literal(`\f`), '\f'),
		parcom.To(parcom.Literal(`\n`), '\n'),
		parcom.To(parcom.Literal(`\r`), '\r'),
		parcom.To(parcom.Literal(`\t`), '\t'),
		unicodeEscape,
		parcom.Map(parcom.NoneOfRune(`\"`), firstRune),
	)

	body := parcom.Fold(character, []rune(nil),
		func(acc []rune, ch rune) []rune { return append(acc, ch) })

	quote := parcom.Literal(`"`)
	p := parcom.Map(parcom.Delimited(quote, body, quote),
		func(rs []rune) string { return string(rs) })
	return p.WithContext("while parsing a string")(s)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func parseNumber(s parcom.State) (float64, parcom.State, error) {
	digits := parcom.Digits(10)

	// JSON forbids a multi-digit integer part with a leading zero;
	// that rule lives here in the grammar, not in the engine.
	integer := parcom.TryMap(digits, func(lit string) (string, error) {
		if len(lit) > 1 && lit[0] == '0' {
			return "", &parcom.UnmatchedError{
				Expected: "a number without a leading zero",
				Found:    lit,
			}
		}
		return lit, nil
	})

	sign := parcom.Or0(parcom.Literal("-"))
	fraction := parcom.Or0(parcom.Consume(parcom.Then(parcom.Literal("."), digits)))
	expSign := parcom.Or0(parcom.OneOfRune("+-"))
	exponent := parcom.Or0(parcom.Consume(
		parcom.Then(parcom.AnyCase("e"), parcom.Then(expSign, digits))))

	literal := parcom.Consume(
		parcom.Then(sign, parcom.Then(integer, parcom.Then(fraction, exponent))))

	lit, next, err := literal(s)
	if err != nil {
		return 0, s, err
	}
	out, cerr := strconv.ParseFloat(lit, 64)
	if cerr != nil {
		span := parcom.NewSpan(s.Offset(), s.Offset()+len(lit))
		return 0, s, parcom.NewErrorAt(&parcom.NumericError{Literal: lit, Err: cerr}, span)
	}
	return out, next, nil
}

func parseArray(s parcom.State) (Array, parcom.State, error) {
	value := parcom.Parser[Value](parseValue)

	tail := parcom.Fold(parcom.Skip(parcom.Literal(","), value), []Value(nil),
		func(acc []Value, v Value) []Value { return append(acc, v) })

	elements := parcom.Map(parcom.Optional(parcom.Then(value, tail)),
		func(m parcom.Maybe[parcom.Pair[Value, []Value]]) Array {
			if !m.OK {
				return Array{}
			}
			return append(Array{m.Value.First}, m.Value.Second...)
		})

	p := parcom.Delimited(
		parcom.Literal("["),
		elements,
		parcom.Skip(whitespace, parcom.Literal("]")),
	)
	return p.WithContext("while parsing an array")(s)
}

func parseObject(s parcom.State) (Object, parcom.State, error) {
	key := parcom.Delimited(whitespace, parcom.Parser[string](parseString), whitespace)
	member := parcom.Then(
		parcom.Before(key, parcom.Literal(":")),
		parcom.Parser[Value](parseValue),
	)

	tail := parcom.Fold(parcom.Skip(parcom.Literal(","), member),
		[]parcom.Pair[string, Value](nil),
		func(acc []parcom.Pair[string, Value], m parcom.Pair[string, Value]) []parcom.Pair[string, Value] {
			return append(acc, m)
		})

	members := parcom.Map(parcom.Optional(parcom.Then(member, tail)),
		func(m parcom.Maybe[parcom.Pair[parcom.Pair[string, Value], []parcom.Pair[string, Value]]]) Object {
			out := Object{}
			if !m.OK {
				return out
			}
			out[m.Value.First.First] = m.Value.First.Second
			for _, kv := range m.Value.Second {
				out[kv.First] = kv.Second
			}
			return out
		})

	p := parcom.Delimited(
		parcom.Literal("{"),
		members,
		parcom.Skip(whitespace, parcom.Literal("}")),
	)
	return p.WithContext("while parsing an object")(s)
}
