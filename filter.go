package biparse

// Filter applies the same predicate to both directions: parsing succeeds
// only when the parsed value satisfies cond, failing with failure
// otherwise; printing refuses a value that does not satisfy cond, failing
// with the same failure before producing any output. The shared predicate
// is what keeps the two directions consistent, which is why Filter requires
// the printed-value and result types to coincide.
func Filter[T any](s *Syntax[T, T], cond func(T) bool, failure error) *Syntax[T, T] {
	return newSyntax(
		func(c *cursor) (T, error) {
			r, err := s.node.eval(c)
			if err != nil {
				return r, err
			}
			if !cond(r) {
				var zero T
				return zero, failDomain(c.pos, failure)
			}
			return r, nil
		},
		func(v T, t Target) error {
			if !cond(v) {
				return failure
			}
			return s.print(v, t)
		},
	)
}

// Not succeeds, consuming nothing, exactly when s would fail at the current
// position, and fails with failure when s would succeed. It is parse-only:
// negation has no meaningful inverse, so its print behavior is a fixed
// no-op that always succeeds.
func Not[V, R any](s *Syntax[V, R], failure error) *Syntax[Unit, Unit] {
	return newSyntax(
		func(c *cursor) (Unit, error) {
			start := c.pos
			_, err := s.node.eval(c)
			c.pos = start
			if err != nil {
				return Unit{}, nil
			}
			return Unit{}, failDomain(start, failure)
		},
		func(Unit, Target) error {
			return nil
		},
	)
}
