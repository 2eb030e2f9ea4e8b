package parcom

// Pair is the output of Then: the two sub-outputs in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the output of Optional.  OK reports whether the inner parser
// matched; when it is false, Value holds the zero value.
type Maybe[O any] struct {
	Value O
	OK    bool
}

// Choice tries each alternative in order against the same input and
// returns the first success.  When every alternative fails, only the
// error of the last one is returned; earlier failures are discarded.
func Choice[O any](parsers ...Parser[O]) Parser[O] {
	return func(s State) (O, State, error) {
		var (
			zero O
			err  error
		)
		for _, p := range parsers {
			out, next, perr := p(s)
			if perr == nil {
				return out, next, nil
			}
			err = perr
		}
		if err == nil {
			err = errUnmatched(s.src, s.off, 0, "one of the alternatives")
		}
		return zero, s, err
	}
}

// Then applies a and then b on the remaining input, returning both
// outputs.  Longer sequences chain pairwise: Then(a, Then(b, c)).
func Then[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(s State) (Pair[A, B], State, error) {
		av, next, err := a(s)
		if err != nil {
			return Pair[A, B]{}, s, err
		}
		bv, next, err := b(next)
		if err != nil {
			return Pair[A, B]{}, s, err
		}
		return Pair[A, B]{First: av, Second: bv}, next, nil
	}
}

// Before applies a and then b, keeping only a's output.
func Before[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Then(a, b), func(p Pair[A, B]) A { return p.First })
}

// Skip applies a and then b, keeping only b's output.
func Skip[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Then(a, b), func(p Pair[A, B]) B { return p.Second })
}

// Seq applies each parser in order, threading the remaining input
// forward, and collects the outputs.  The first failure is propagated
// as is and any partial progress is discarded.
func Seq[O any](parsers ...Parser[O]) Parser[[]O] {
	return func(s State) ([]O, State, error) {
		out := make([]O, 0, len(parsers))
		next := s
		for _, p := range parsers {
			v, rest, err := p(next)
			if err != nil {
				return nil, s, err
			}
			out = append(out, v)
			next = rest
		}
		return out, next, nil
	}
}

// Fold greedily repeats p, combining each output into the accumulator,
// and stops without error at p's first failure, returning the input as
// it stood before the failing attempt.  combine must return the updated
// accumulator and must not retain state outside it, or the parser stops
// being pure.
//
// If p can succeed while consuming no input, Fold never terminates.
// The engine does not guard against this; it is the caller's job to
// keep zero-width parsers (Or0, TakeWhile with a min of zero, Optional)
// out of the repeated position.
func Fold[O, A any](p Parser[O], seed A, combine func(A, O) A) Parser[A] {
	return func(s State) (A, State, error) {
		acc := seed
		next := s
		for {
			out, rest, err := p(next)
			if err != nil {
				return acc, next, nil
			}
			acc = combine(acc, out)
			next = rest
		}
	}
}

// Optional applies p; a failure is discarded entirely and nothing is
// consumed, so Optional never reports why the inner parser didn't
// match.
func Optional[O any](p Parser[O]) Parser[Maybe[O]] {
	return func(s State) (Maybe[O], State, error) {
		out, next, err := p(s)
		if err != nil {
			return Maybe[O]{}, s, nil
		}
		return Maybe[O]{Value: out, OK: true}, next, nil
	}
}

// Delimited matches left, content and right in order, returning only
// content's output.  Whichever of the three fails first has its error
// propagated as is.
func Delimited[L, O, R any](left Parser[L], content Parser[O], right Parser[R]) Parser[O] {
	return func(s State) (O, State, error) {
		var zero O
		_, next, err := left(s)
		if err != nil {
			return zero, s, err
		}
		out, next, err := content(next)
		if err != nil {
			return zero, s, err
		}
		_, next, err = right(next)
		if err != nil {
			return zero, s, err
		}
		return out, next, nil
	}
}

// Not inverts p: when p fails, Not succeeds with p's error as its
// output; when p succeeds, Not fails and records the span and text of
// the input p would have consumed.  Either way nothing is consumed,
// which makes Not a negative lookahead.
func Not[O any](p Parser[O]) Parser[error] {
	return func(s State) (error, State, error) {
		_, next, err := p(s)
		if err == nil {
			span := s.SpanTo(next)
			return nil, s, NewErrorAt(&UnmatchedError{
				Expected: "the inner parser to fail",
				Found:    span.Text(s.src),
			}, span)
		}
		return err, s, nil
	}
}

// Consume runs p and returns the exact input prefix it consumed,
// discarding its output.  Consumption is computed from the byte offsets
// of the states before and after the call.
func Consume[O any](p Parser[O]) Parser[string] {
	return func(s State) (string, State, error) {
		_, next, err := p(s)
		if err != nil {
			return "", s, err
		}
		return s.src[s.off:next.off], next, nil
	}
}
