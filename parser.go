package biparse

// cursor is the per-invocation parse state: the materialized input, the
// current rune offset, the active backtracking mode, and, under the
// memoizing strategy, a table of previously computed sub-results. Nothing
// on the cursor escapes the invocation, so a Syntax may be shared freely.
type cursor struct {
	input []rune
	pos   int
	// auto selects automatic position restoration on failure. Fresh
	// invocations start in auto mode; SetAutoBacktracking rewrites it for
	// the duration of a sub-tree.
	auto bool
	// memo is nil under the recursive strategy. When set, node results are
	// cached by (node, position, mode) and replayed on revisit.
	memo map[memoKey]memoEntry
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) peek() (rune, bool) {
	if c.atEnd() {
		return 0, false
	}
	return c.input[c.pos], true
}

type memoKey struct {
	node any
	pos  int
	auto bool
}

type memoEntry struct {
	val any
	err error
	end int
}

// parseFunc evaluates a node against the cursor, returning the node's result
// or a *ParseError. It advances c.pos by exactly the consumed span; on
// failure the position is wherever the failing attempt stopped, and the
// enclosing combinator decides whether to restore it.
type parseFunc[R any] func(c *cursor) (R, error)

// parserNode gives a parse behavior an identity. The memoizing strategy
// keys its table on the node pointer, so structurally shared sub-syntaxes
// are evaluated once per (position, mode).
type parserNode[R any] struct {
	run parseFunc[R]
}

func newNode[R any](run parseFunc[R]) *parserNode[R] {
	return &parserNode[R]{run: run}
}

// eval runs the node under the active strategy. Both strategies agree on
// outcome and consumed position; the memoizing one replays cached results
// instead of re-walking the sub-tree.
func (p *parserNode[R]) eval(c *cursor) (R, error) {
	if c.memo == nil {
		return p.run(c)
	}
	key := memoKey{node: p, pos: c.pos, auto: c.auto}
	if m, ok := c.memo[key]; ok {
		c.pos = m.end
		if m.err != nil {
			var zero R
			return zero, m.err
		}
		return m.val.(R), nil
	}
	val, err := p.run(c)
	entry := memoEntry{err: err, end: c.pos}
	if err == nil {
		entry.val = val
	}
	c.memo[key] = entry
	return val, err
}
