package biparse

// parseRepeated collects elements of s until an attempt fails, honoring the
// active backtracking mode: under auto mode the failing attempt's partial
// consumption is rolled back, landing exactly after the last successful
// element; under manual mode a partially consumed attempt fails the whole
// repetition. A zero-width success stops the loop, since it would never
// advance.
func parseRepeated[V, R any](s *Syntax[V, R], c *cursor) ([]R, error) {
	var out []R
	for {
		start := c.pos
		r, err := s.node.eval(c)
		if err != nil {
			if !restoreAfter(c, start, s.effAuto(c)) {
				return nil, err
			}
			return out, nil
		}
		out = append(out, r)
		if c.pos == start {
			return out, nil
		}
	}
}

func printRepeated[V, R any](s *Syntax[V, R], vs []V, t Target) error {
	for _, v := range vs {
		if err := s.print(v, t); err != nil {
			return err
		}
	}
	return nil
}

// AtLeast repeats s into an ordered sequence, stopping at the first failed
// attempt, and fails the whole repetition when fewer than min elements were
// produced. Printing writes each element back-to-back with no separators.
func AtLeast[V, R any](min int, s *Syntax[V, R]) *Syntax[[]V, []R] {
	return newSyntax(
		func(c *cursor) ([]R, error) {
			out, err := parseRepeated(s, c)
			if err != nil {
				return nil, err
			}
			if len(out) < min {
				return nil, failKind(KindTooFewRepetitions, c.pos)
			}
			return out, nil
		},
		func(vs []V, t Target) error {
			return printRepeated(s, vs, t)
		},
	)
}

// Repeat0 repeats s zero or more times.
func Repeat0[V, R any](s *Syntax[V, R]) *Syntax[[]V, []R] {
	return AtLeast(0, s)
}

// Repeat repeats s one or more times.
func Repeat[V, R any](s *Syntax[V, R]) *Syntax[[]V, []R] {
	return AtLeast(1, s)
}

// parseSeparated collects sep-then-element continuations after a first
// element has already been parsed. The separator and the element that
// follows it form one atomic attempt: when either fails, its own
// backtracking mode decides whether the position rolls back to just after
// the last complete element, so a trailing separator is never consumed
// under auto mode.
func parseSeparated[V, R any](s *Syntax[V, R], sep *Syntax[Unit, Unit], c *cursor, out []R) ([]R, error) {
	for {
		start := c.pos
		if _, err := sep.node.eval(c); err != nil {
			if !restoreAfter(c, start, sep.effAuto(c)) {
				return nil, err
			}
			return out, nil
		}
		r, err := s.node.eval(c)
		if err != nil {
			if !restoreAfter(c, start, s.effAuto(c)) {
				return nil, err
			}
			return out, nil
		}
		out = append(out, r)
		if c.pos == start {
			return out, nil
		}
	}
}

// RepeatWithSep repeats s one or more times with a required trivial-valued
// separator strictly between consecutive elements, never leading or
// trailing. Printing interleaves the separator the same way.
func RepeatWithSep[V, R any](s *Syntax[V, R], sep *Syntax[Unit, Unit]) *Syntax[[]V, []R] {
	return newSyntax(
		func(c *cursor) ([]R, error) {
			first, err := s.node.eval(c)
			if err != nil {
				return nil, err
			}
			return parseSeparated(s, sep, c, []R{first})
		},
		func(vs []V, t Target) error {
			return printSeparated(s, sep, vs, t)
		},
	)
}

// RepeatWithSep0 is RepeatWithSep accepting zero elements: a failed first
// element parses as the empty sequence, under the usual backtracking rule.
func RepeatWithSep0[V, R any](s *Syntax[V, R], sep *Syntax[Unit, Unit]) *Syntax[[]V, []R] {
	return newSyntax(
		func(c *cursor) ([]R, error) {
			start := c.pos
			first, err := s.node.eval(c)
			if err != nil {
				if !restoreAfter(c, start, s.effAuto(c)) {
					return nil, err
				}
				return nil, nil
			}
			return parseSeparated(s, sep, c, []R{first})
		},
		func(vs []V, t Target) error {
			return printSeparated(s, sep, vs, t)
		},
	)
}

func printSeparated[V, R any](s *Syntax[V, R], sep *Syntax[Unit, Unit], vs []V, t Target) error {
	for i, v := range vs {
		if i > 0 {
			if err := sep.print(Unit{}, t); err != nil {
				return err
			}
		}
		if err := s.print(v, t); err != nil {
			return err
		}
	}
	return nil
}

// RepeatUntil repeats s until stop succeeds, checking stop before each
// element. The stop condition's own result is discarded; its consumed input
// belongs to the repetition on the parse side, and it contributes nothing
// on the print path. An element failure before stop has matched fails the
// whole combinator.
func RepeatUntil[V, R, SV, SR any](s *Syntax[V, R], stop *Syntax[SV, SR]) *Syntax[[]V, []R] {
	return newSyntax(
		func(c *cursor) ([]R, error) {
			var out []R
			for {
				start := c.pos
				_, serr := stop.node.eval(c)
				if serr == nil {
					return out, nil
				}
				if !restoreAfter(c, start, stop.effAuto(c)) {
					return nil, serr
				}
				r, err := s.node.eval(c)
				if err != nil {
					return nil, err
				}
				out = append(out, r)
			}
		},
		func(vs []V, t Target) error {
			return printRepeated(s, vs, t)
		},
	)
}

// Optional parses zero or one occurrence of s, converting a failed attempt
// into an absent result under the same backtracking rule as OrElse.
// Printing a present value runs s's printer; absence prints nothing.
func Optional[V, R any](s *Syntax[V, R]) *Syntax[Option[V], Option[R]] {
	return newSyntax(
		func(c *cursor) (Option[R], error) {
			start := c.pos
			r, err := s.node.eval(c)
			if err != nil {
				if !restoreAfter(c, start, s.effAuto(c)) {
					return None[R](), err
				}
				return None[R](), nil
			}
			return Some(r), nil
		},
		func(v Option[V], t Target) error {
			if !v.OK {
				return nil
			}
			return s.print(v.Value, t)
		},
	)
}
