package biparse

// Strategy selects the execution engine for one parse invocation. All
// strategies agree on success or failure and on the consumed position; they
// differ only in how the behavior tree is walked.
type Strategy int

const (
	// StrategyRecursive interprets the behavior tree by direct recursion.
	StrategyRecursive Strategy = iota
	// StrategyMemoizing caches sub-results by node, position and
	// backtracking mode, trading memory for re-walk avoidance on grammars
	// that revisit positions.
	StrategyMemoizing
)

// Parse runs the parse behavior over the complete input with the default
// recursive strategy. Full-input consumption is only required when the
// syntax itself ends in End.
func (s *Syntax[V, R]) Parse(input string) (R, error) {
	return s.ParseWith(input, StrategyRecursive)
}

// ParseWith is Parse with an explicit execution strategy.
func (s *Syntax[V, R]) ParseWith(input string, strategy Strategy) (R, error) {
	c := &cursor{input: []rune(input), auto: true}
	if strategy == StrategyMemoizing {
		c.memo = make(map[memoKey]memoEntry)
	}
	return s.node.eval(c)
}

// Print runs the print behavior over value and an arbitrary target,
// returning the first sub-printer failure, if any.
func (s *Syntax[V, R]) Print(value V, t Target) error {
	return s.print(value, t)
}

// PrintString prints value into a fresh string target and returns the
// produced output.
func (s *Syntax[V, R]) PrintString(value V) (string, error) {
	t := NewStringTarget()
	if err := s.print(value, t); err != nil {
		return "", err
	}
	return t.String(), nil
}

// PrintStyled prints value into a string target carrying a name-to-style
// lookup, returning the produced output together with the display spans the
// lookup selected. The styles affect only the returned annotations, never
// the content.
func (s *Syntax[V, R]) PrintStyled(value V, styles map[string]string) (string, []StyledSpan, error) {
	t := NewStringTarget(WithStyles(styles))
	if err := s.print(value, t); err != nil {
		return "", nil, err
	}
	return t.String(), t.Spans(), nil
}
