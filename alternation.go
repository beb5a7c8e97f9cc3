package biparse

// OrElse attempts s and, when it fails, falls back to that. In auto
// backtracking mode a failed left attempt restores the pre-attempt position
// before the fallback runs. In manual mode the fallback only runs when the
// left attempt left the position untouched; a partially consumed left branch
// fails the whole alternation, so already-consumed input is never re-read
// without an explicit Backtrack marker.
//
// Printing always uses s's printer; the alternative never participates.
func (s *Syntax[V, R]) OrElse(that *Syntax[V, R]) *Syntax[V, R] {
	return newSyntax(
		func(c *cursor) (R, error) {
			start := c.pos
			r, err := s.node.eval(c)
			if err == nil {
				return r, nil
			}
			if !restoreAfter(c, start, s.effAuto(c)) {
				return r, err
			}
			return that.node.eval(c)
		},
		s.print,
	)
}

// OrElseEither is OrElse for syntaxes of different shapes: the result tags
// which branch succeeded instead of unifying the types. Printing dispatches
// on the tag, running the left syntax's printer for a left-tagged value and
// the right syntax's for a right-tagged one.
func OrElseEither[VL, RL, VR, RR any](left *Syntax[VL, RL], right *Syntax[VR, RR]) *Syntax[Either[VL, VR], Either[RL, RR]] {
	return newSyntax(
		func(c *cursor) (Either[RL, RR], error) {
			var zero Either[RL, RR]
			start := c.pos
			rl, err := left.node.eval(c)
			if err == nil {
				return LeftOf[RL, RR](rl), nil
			}
			if !restoreAfter(c, start, left.effAuto(c)) {
				return zero, err
			}
			rr, err := right.node.eval(c)
			if err != nil {
				return zero, err
			}
			return RightOf[RL](rr), nil
		},
		func(v Either[VL, VR], t Target) error {
			if v.IsRight {
				return right.print(v.Right, t)
			}
			return left.print(v.Left, t)
		},
	)
}
