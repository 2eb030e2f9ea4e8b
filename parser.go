package parcom

// Parser is the composition contract every matcher and combinator in
// this package implements: given the current input state, return the
// output, the state advanced past whatever was consumed, and a nil
// error; or leave the state alone and return a non-nil *Error
// describing the failure.
//
// Parsers are pure.  The same state always yields the same outcome, no
// parser retains state between calls, and a composed parser graph can
// be shared across goroutines, each parsing its own input.
type Parser[O any] func(s State) (O, State, error)

// Parse runs the parser against input and returns the output together
// with the remaining, unconsumed suffix of input.
func (p Parser[O]) Parse(input string) (O, string, error) {
	out, next, err := p(NewState(input))
	if err != nil {
		var zero O
		return zero, input, err
	}
	return out, next.Rest(), nil
}

// WithContext wraps every failure of p with an explanatory message
// tagged with the position where p was applied.  The inner cause keeps
// its place at the bottom of the error stack.
func (p Parser[O]) WithContext(msg string) Parser[O] {
	return func(s State) (O, State, error) {
		out, next, err := p(s)
		if err == nil {
			return out, next, nil
		}
		ctx := NewContext(&ContextError{Message: msg}).
			WithSpan(NewSpan(s.off, s.off))
		return out, s, NewError(err).Push(ctx)
	}
}

// Map converts the output of p with f.
func Map[O, X any](p Parser[O], f func(O) X) Parser[X] {
	return func(s State) (X, State, error) {
		out, next, err := p(s)
		if err != nil {
			var zero X
			return zero, s, err
		}
		return f(out), next, nil
	}
}

// TryMap converts the output of p with f, which may itself fail.  A
// conversion failure becomes a parse error whose span covers the input
// p consumed.
func TryMap[O, X any](p Parser[O], f func(O) (X, error)) Parser[X] {
	return func(s State) (X, State, error) {
		var zero X
		out, next, err := p(s)
		if err != nil {
			return zero, s, err
		}
		x, err := f(out)
		if err != nil {
			if perr, ok := err.(*Error); ok {
				return zero, s, perr
			}
			return zero, s, NewErrorAt(err, s.SpanTo(next))
		}
		return x, next, nil
	}
}

// To discards the output of p and replaces it with a fixed value.
func To[O, X any](p Parser[O], value X) Parser[X] {
	return Map(p, func(O) X { return value })
}
