package biparse

// Backtrack restores the position on failure unconditionally, regardless of
// the active backtracking mode.
//
// Every parse attempt runs in one of two modes. In auto mode, the default
// for fresh invocations, combinators that swallow failures (OrElse,
// Optional, the repetitions) restore the pre-attempt position before moving
// on. In manual mode nothing is restored unless an explicit Backtrack
// marker says so; a partially consumed failed attempt then blocks the
// enclosing combinator from re-reading consumed input. The mode affects
// only the parse side; printers ignore it entirely.
func (s *Syntax[V, R]) Backtrack() *Syntax[V, R] {
	return newSyntax(
		func(c *cursor) (R, error) {
			start := c.pos
			r, err := s.node.eval(c)
			if err != nil {
				c.pos = start
			}
			return r, err
		},
		s.print,
	)
}

// restoreAfter applies the mode-dependent restoration rule at an attempt
// boundary: under auto mode the position rolls back to start; either way
// the caller learns whether the fallback path is allowed to run, which it
// is exactly when the position ends up back at start.
func restoreAfter(c *cursor, start int, auto bool) bool {
	if auto {
		c.pos = start
	}
	return c.pos == start
}

// SetAutoBacktracking rewrites the backtracking mode over the entire
// sub-tree of s: the ambient mode becomes auto for the duration of the
// sub-tree's evaluation, and the returned node itself is pinned to it, so
// an enclosing combinator attempting this syntax honors the override.
func (s *Syntax[V, R]) SetAutoBacktracking(auto bool) *Syntax[V, R] {
	n := newSyntax(
		func(c *cursor) (R, error) {
			prev := c.auto
			c.auto = auto
			r, err := s.node.eval(c)
			c.auto = prev
			return r, err
		},
		s.print,
	)
	n.mode = &auto
	return n
}

// AutoBacktracking enables automatic position restoration over the sub-tree.
func (s *Syntax[V, R]) AutoBacktracking() *Syntax[V, R] {
	return s.SetAutoBacktracking(true)
}

// ManualBacktracking disables automatic position restoration over the
// sub-tree, leaving restoration to explicit Backtrack markers.
func (s *Syntax[V, R]) ManualBacktracking() *Syntax[V, R] {
	return s.SetAutoBacktracking(false)
}
