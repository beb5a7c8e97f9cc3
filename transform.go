package biparse

// Transform maps the parse result by the total function to and the printed
// value by the total inverse from. Neither direction can fail; whether
// (to, from) are true inverses is the caller's responsibility and is not
// enforced.
//
// Each Transform variant maps the parse result forward with to and the
// printed value backward with from before delegating to the underlying
// behaviors. Go methods cannot introduce type parameters, so every
// combinator that changes V or R is a free function taking the syntax as
// its first argument.
func Transform[V, R, V2, R2 any](s *Syntax[V, R], to func(R) R2, from func(V2) V) *Syntax[V2, R2] {
	return newSyntax(
		func(c *cursor) (R2, error) {
			r, err := s.node.eval(c)
			if err != nil {
				var zero R2
				return zero, err
			}
			return to(r), nil
		},
		func(v V2, t Target) error {
			return s.print(from(v), t)
		},
	)
}

// TransformEither maps both directions through fallible functions. A
// successful parse piped through a failing to surfaces as a domain parse
// error carrying the returned failure; the printer applies from first and
// aborts identically on failure, producing no output for this syntax.
func TransformEither[V, R, V2, R2 any](s *Syntax[V, R], to func(R) (R2, error), from func(V2) (V, error)) *Syntax[V2, R2] {
	return newSyntax(
		func(c *cursor) (R2, error) {
			var zero R2
			r, err := s.node.eval(c)
			if err != nil {
				return zero, err
			}
			r2, terr := to(r)
			if terr != nil {
				return zero, failDomain(c.pos, terr)
			}
			return r2, nil
		},
		func(v V2, t Target) error {
			u, ferr := from(v)
			if ferr != nil {
				return ferr
			}
			return s.print(u, t)
		},
	)
}

// TransformOption is TransformEither specialized to mappings whose failure
// is an absent value rather than a custom payload. A false return from to
// fails the parse with an empty domain payload; a false return from from
// fails the print the same way.
func TransformOption[V, R, V2, R2 any](s *Syntax[V, R], to func(R) (R2, bool), from func(V2) (V, bool)) *Syntax[V2, R2] {
	return newSyntax(
		func(c *cursor) (R2, error) {
			var zero R2
			r, err := s.node.eval(c)
			if err != nil {
				return zero, err
			}
			r2, ok := to(r)
			if !ok {
				return zero, failDomain(c.pos, ErrNoValue)
			}
			return r2, nil
		},
		func(v V2, t Target) error {
			u, ok := from(v)
			if !ok {
				return ErrNoValue
			}
			return s.print(u, t)
		},
	)
}

// TransformTo maps the parse result by the total function to, while the
// print direction narrows through tryNarrow, which is defined only on a
// subset of values. Printing a value outside that subset fails with
// failure before producing output. This lets a closed family of narrow
// syntaxes combine into one wide syntax, each constraining what it can
// print through the domain of its own narrowing.
func TransformTo[V, R, V2, R2 any](s *Syntax[V, R], to func(R) R2, tryNarrow func(V2) (V, bool), failure error) *Syntax[V2, R2] {
	return newSyntax(
		func(c *cursor) (R2, error) {
			r, err := s.node.eval(c)
			if err != nil {
				var zero R2
				return zero, err
			}
			return to(r), nil
		},
		func(v V2, t Target) error {
			u, ok := tryNarrow(v)
			if !ok {
				return failure
			}
			return s.print(u, t)
		},
	)
}

// WidenWith broadens both the printed-value and result types to a common
// wide type W, supplying the narrowing used on the print path. It is a
// convenience over TransformTo for Syntax[T, T]-shaped values.
func WidenWith[T, W any](s *Syntax[T, T], widen func(T) W, tryNarrow func(W) (T, bool), failure error) *Syntax[W, W] {
	return TransformTo(s, widen, tryNarrow, failure)
}
