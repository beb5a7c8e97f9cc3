package biparse

// Zip concatenates two syntaxes, pairing both results and both printed
// values. Parsing runs a then b; printing runs a's printer on the first
// component, then b's on the second.
func Zip[VA, RA, VB, RB any](a *Syntax[VA, RA], b *Syntax[VB, RB]) *Syntax[Pair[VA, VB], Pair[RA, RB]] {
	return newSyntax(
		func(c *cursor) (Pair[RA, RB], error) {
			var zero Pair[RA, RB]
			ra, err := a.node.eval(c)
			if err != nil {
				return zero, err
			}
			rb, err := b.node.eval(c)
			if err != nil {
				return zero, err
			}
			return PairOf(ra, rb), nil
		},
		func(v Pair[VA, VB], t Target) error {
			if err := a.print(v.First, t); err != nil {
				return err
			}
			return b.print(v.Second, t)
		},
	)
}

// ZipLeft concatenates s with a following trivial-valued syntax, keeping
// only s's result. Printing runs s's printer with the caller's value, then
// that's printer with a synthesized Unit. Only Syntax[Unit, Unit] may
// occupy the discarded position: a printer cannot invent an arbitrary value
// for a branch whose data is never supplied.
func (s *Syntax[V, R]) ZipLeft(that *Syntax[Unit, Unit]) *Syntax[V, R] {
	return newSyntax(
		func(c *cursor) (R, error) {
			r, err := s.node.eval(c)
			if err != nil {
				return r, err
			}
			if _, err := that.node.eval(c); err != nil {
				var zero R
				return zero, err
			}
			return r, nil
		},
		func(v V, t Target) error {
			if err := s.print(v, t); err != nil {
				return err
			}
			return that.print(Unit{}, t)
		},
	)
}

// TerminatedBy is an alias for ZipLeft.
func (s *Syntax[V, R]) TerminatedBy(that *Syntax[Unit, Unit]) *Syntax[V, R] {
	return s.ZipLeft(that)
}

// ZipRight concatenates a leading trivial-valued syntax with s, keeping only
// s's result, under the same restriction as ZipLeft.
func ZipRight[V, R any](that *Syntax[Unit, Unit], s *Syntax[V, R]) *Syntax[V, R] {
	return newSyntax(
		func(c *cursor) (R, error) {
			if _, err := that.node.eval(c); err != nil {
				var zero R
				return zero, err
			}
			return s.node.eval(c)
		},
		func(v V, t Target) error {
			if err := that.print(Unit{}, t); err != nil {
				return err
			}
			return s.print(v, t)
		},
	)
}

// Between sandwiches s between two trivial-valued syntaxes.
func (s *Syntax[V, R]) Between(left, right *Syntax[Unit, Unit]) *Syntax[V, R] {
	return ZipRight(left, s.ZipLeft(right))
}

// SurroundedBy sandwiches s between two occurrences of the same
// trivial-valued syntax.
func (s *Syntax[V, R]) SurroundedBy(other *Syntax[Unit, Unit]) *Syntax[V, R] {
	return s.Between(other, other)
}
