package biparse

// printFunc renders a value onto a target, or reports the first failure.
// Printing never partially recovers: a failing sub-printer aborts the whole
// invocation.
type printFunc[V any] func(v V, t Target) error

// Syntax pairs a parse behavior and a print behavior over shared value
// shapes. V is the type the printer consumes; R is the type the parser
// produces. A Syntax is immutable once built: every combinator returns a new
// value, no invocation state is attached, and a single instance may be used
// concurrently from many goroutines.
type Syntax[V, R any] struct {
	node  *parserNode[R]
	print printFunc[V]
	// mode pins the backtracking mode of this node: nil inherits the
	// ambient mode, otherwise SetAutoBacktracking fixed it.
	mode *bool
	// inner is the pre-decoration syntax recorded by Named, so Strip can
	// undo the decoration.
	inner *Syntax[V, R]
}

func newSyntax[V, R any](parse parseFunc[R], print printFunc[V]) *Syntax[V, R] {
	return &Syntax[V, R]{node: newNode(parse), print: print}
}

// effAuto resolves the backtracking mode governing an attempt of s: the
// node's own pinned mode when set, the invocation's ambient mode otherwise.
func (s *Syntax[V, R]) effAuto(c *cursor) bool {
	if s.mode != nil {
		return *s.mode
	}
	return c.auto
}

// Named attaches a diagnostic label. On parse failure the label is prepended
// to the reported context chain; on the print side the label marks a
// display-only span on targets that record annotations. Naming never
// changes parse or print outcomes.
func (s *Syntax[V, R]) Named(name string) *Syntax[V, R] {
	n := newSyntax(
		func(c *cursor) (R, error) {
			r, err := s.node.eval(c)
			if err != nil {
				return r, asParseError(err).withName(name)
			}
			return r, nil
		},
		func(v V, t Target) error {
			if a, ok := t.(annotator); ok {
				a.beginSpan(name)
				err := s.print(v, t)
				a.endSpan(name)
				return err
			}
			return s.print(v, t)
		},
	)
	n.mode = s.mode
	n.inner = s
	return n
}

// Strip removes the name decoration applied directly to this value,
// returning the underlying syntax. Stripping an undecorated syntax returns
// it unchanged.
func (s *Syntax[V, R]) Strip() *Syntax[V, R] {
	if s.inner != nil {
		return s.inner
	}
	return s
}

// MapError rewrites the domain payload of parse failures. Structural
// failures (end of input, unexpected character, unconsumed input, unmet
// repetition minimum) pass through untouched, as do position and name-chain
// metadata. The print side is unaffected.
func (s *Syntax[V, R]) MapError(f func(error) error) *Syntax[V, R] {
	n := newSyntax(
		func(c *cursor) (R, error) {
			r, err := s.node.eval(c)
			if err != nil {
				pe := asParseError(err)
				if pe.Kind == KindDomain && pe.Payload != nil {
					return r, pe.withPayload(f(pe.Payload))
				}
			}
			return r, err
		},
		s.print,
	)
	n.mode = s.mode
	return n
}
