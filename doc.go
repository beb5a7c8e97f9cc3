// Package biparse provides invertible parser/printer combinators: a single
// declarative Syntax value acts simultaneously as a parser, turning a
// character stream into a structured result, and as a printer, turning a
// value back into a character stream. Printing a successfully parsed result
// reproduces equivalent input, and for combinators that support it, parsing
// printed output reproduces the original value.
//
// # Building syntaxes
//
// Leaves come from the pattern engine: Char, CharIn, Literal, Digit,
// MatchPattern and friends. Combinators compose leaves into larger trees:
//
//	letter := biparse.Letter()
//	comma := biparse.Char(',')
//	letters := biparse.RepeatWithSep(letter, comma)
//
//	rs, err := letters.Parse("a,b,c")   // [a b c]
//	out, err := letters.PrintString(rs) // "a,b,c"
//
// Combinators that change the value or result type are free functions
// (Transform, Repeat0, OrElseEither, ...); combinators that keep the types
// are methods (OrElse, ZipLeft, Named, ...). Every combinator combines the
// two sides structurally, never inspecting the opposite side: invertibility
// is a static discipline enforced by combinator contracts. The visible
// corner of that discipline is Unit: only trivial-valued syntaxes may
// occupy discarded positions, because a printer cannot invent a value for a
// branch it is never given data for.
//
// # Backtracking
//
// A failed attempt either restores the stream position (auto mode, the
// default) or leaves it where the failure stopped (manual mode), which
// blocks fallbacks from re-reading consumed input unless an explicit
// Backtrack marker restores it. AutoBacktracking, ManualBacktracking and
// Backtrack control this per sub-tree; the print side ignores it.
//
// # Errors
//
// Parse failures surface as *ParseError: a classification kind, the rune
// position, a diagnostic name chain built by Named, and the caller-supplied
// payload for domain failures. MapError rewrites payloads without touching
// structure; printing aborts on the first failing sub-printer.
//
// # Sharing and recursion
//
// A Syntax is immutable after construction and attaches no invocation
// state, so one instance may be reused concurrently without
// synchronization. Self-referential grammars are built with Lazy, which
// resolves its factory on first use.
package biparse
