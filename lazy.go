package biparse

import "sync"

// Lazy defers construction of a syntax until it first executes, so
// recursive grammars can refer to themselves without infinite eager
// construction:
//
//	var expr *Syntax[string, string]
//	expr = /* ... uses Lazy(func() *Syntax[string, string] { return expr }) ... */
//
// The factory runs at most once; the resolved syntax is reused by every
// subsequent parse or print.
func Lazy[V, R any](f func() *Syntax[V, R]) *Syntax[V, R] {
	var once sync.Once
	var resolved *Syntax[V, R]
	get := func() *Syntax[V, R] {
		once.Do(func() { resolved = f() })
		return resolved
	}
	return newSyntax(
		func(c *cursor) (R, error) {
			return get().node.eval(c)
		},
		func(v V, t Target) error {
			return get().print(v, t)
		},
	)
}
