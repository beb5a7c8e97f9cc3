package biparse

import "fmt"

// charSyntax builds the common single-character leaf: parse one character
// accepted by p, print a character after re-checking it against p so both
// directions agree on the accepted set. fail produces the parse error for a
// rejected or missing character.
func charSyntax(p Pattern, fail func(pos int) *ParseError) *Syntax[rune, rune] {
	return newSyntax(
		func(c *cursor) (rune, error) {
			r, ok := c.peek()
			if !ok {
				return 0, failKind(KindUnexpectedEnd, c.pos)
			}
			if p.Match(c.input, c.pos) != 1 {
				return 0, fail(c.pos)
			}
			c.pos++
			return r, nil
		},
		func(v rune, t Target) error {
			if p.Match([]rune{v}, 0) != 1 {
				return fmt.Errorf("cannot print character %q here", v)
			}
			return t.WriteRune(v)
		},
	)
}

func structuralChar(pos int) *ParseError {
	return failKind(KindUnexpectedChar, pos)
}

// Char consumes exactly the character c on the parse side and produces
// exactly c on the print side. Its value is trivial, so it may occupy
// discarded positions.
func Char(c rune) *Syntax[Unit, Unit] {
	p := PatternChar(c)
	return newSyntax(
		func(cur *cursor) (Unit, error) {
			if cur.atEnd() {
				return Unit{}, failKind(KindUnexpectedEnd, cur.pos)
			}
			if p.Match(cur.input, cur.pos) != 1 {
				return Unit{}, structuralChar(cur.pos)
			}
			cur.pos++
			return Unit{}, nil
		},
		func(_ Unit, t Target) error {
			return t.WriteRune(c)
		},
	)
}

// NotChar parses any single character except c, failing with failure on c
// itself. Printing refuses c for the same reason.
func NotChar(c rune, failure error) *Syntax[rune, rune] {
	return charSyntax(PatternNotChar(c), func(pos int) *ParseError {
		return failDomain(pos, failure)
	})
}

// CharIn parses any single character contained in set.
func CharIn(set string) *Syntax[rune, rune] {
	return charSyntax(PatternIn(set), structuralChar)
}

// CharNotIn parses any single character not contained in set.
func CharNotIn(set string) *Syntax[rune, rune] {
	return charSyntax(PatternNotIn(set), structuralChar)
}

// FilterChar parses a single character satisfying pred, failing with
// failure otherwise.
func FilterChar(pred func(rune) bool, failure error) *Syntax[rune, rune] {
	return charSyntax(PatternFunc(pred), func(pos int) *ParseError {
		return failDomain(pos, failure)
	})
}

// AnyChar parses any single character unconditionally.
func AnyChar() *Syntax[rune, rune] {
	return charSyntax(PatternAny(), structuralChar)
}

// Digit parses a single decimal digit.
func Digit() *Syntax[rune, rune] {
	return charSyntax(PatternDigit(), structuralChar)
}

// Letter parses a single letter.
func Letter() *Syntax[rune, rune] {
	return charSyntax(PatternLetter(), structuralChar)
}

// AlphaNumeric parses a single letter or digit.
func AlphaNumeric() *Syntax[rune, rune] {
	return charSyntax(PatternAlphaNumeric(), structuralChar)
}

// WhitespaceChar parses a single whitespace character.
func WhitespaceChar() *Syntax[rune, rune] {
	return charSyntax(PatternWhitespace(), structuralChar)
}

// Literal parses exactly text and discards it; printing emits text
// regardless of the caller's value, since the parsed content is constant.
func Literal(text string) *Syntax[Unit, Unit] {
	return LiteralTo(text, Unit{})
}

// LiteralTo parses exactly text into the caller-fixed result value.
// Printing ignores the supplied value and emits text: a constant span needs
// nothing from the data.
func LiteralTo[T any](text string, value T) *Syntax[T, T] {
	p := PatternLiteral(text)
	lit := []rune(text)
	return newSyntax(
		func(c *cursor) (T, error) {
			var zero T
			n := p.Match(c.input, c.pos)
			if n == noMatch {
				// Distinguish truncation from a genuine mismatch: input
				// that ends mid-literal while agreeing on every remaining
				// character ran out, it did not disagree.
				rest := c.input[c.pos:]
				if len(rest) < len(lit) && string(rest) == string(lit[:len(rest)]) {
					return zero, failKind(KindUnexpectedEnd, c.pos)
				}
				return zero, structuralChar(c.pos)
			}
			c.pos += n
			return value, nil
		},
		func(_ T, t Target) error {
			return t.WriteString(text)
		},
	)
}

// MatchPattern parses the span p consumes at the current position,
// returning it as a string and failing with failure on a mismatch.
// Printing emits the supplied span verbatim after checking p consumes all
// of it, keeping the two directions honest with each other.
func MatchPattern(p Pattern, failure error) *Syntax[string, string] {
	return newSyntax(
		func(c *cursor) (string, error) {
			n := p.Match(c.input, c.pos)
			if n == noMatch {
				return "", failDomain(c.pos, failure)
			}
			span := string(c.input[c.pos : c.pos+n])
			c.pos += n
			return span, nil
		},
		func(v string, t Target) error {
			rs := []rune(v)
			if p.Match(rs, 0) != len(rs) {
				return failure
			}
			return t.WriteString(v)
		},
	)
}

// MatchPatternUnsafe is MatchPattern for patterns asserted to never fail,
// such as greedy Many matchers. The assertion stands in for an error type
// with no values: a mismatch is a defect in the assertion itself and
// panics.
func MatchPatternUnsafe(p Pattern) *Syntax[string, string] {
	return newSyntax(
		func(c *cursor) (string, error) {
			n := p.Match(c.input, c.pos)
			if n == noMatch {
				panic("biparse: pattern asserted infallible failed to match")
			}
			span := string(c.input[c.pos : c.pos+n])
			c.pos += n
			return span, nil
		},
		func(v string, t Target) error {
			rs := []rune(v)
			if p.Match(rs, 0) != len(rs) {
				panic("biparse: pattern asserted infallible rejects printed span")
			}
			return t.WriteString(v)
		},
	)
}

// Position parses the current stream position without consuming input. It
// is informational and parse-only: a position cannot be reconstructed from
// a value, so the print side trivially succeeds and emits nothing.
func Position() *Syntax[Unit, int] {
	return newSyntax(
		func(c *cursor) (int, error) {
			return c.pos, nil
		},
		func(Unit, Target) error {
			return nil
		},
	)
}

// End asserts the whole input has been consumed, failing when elements
// remain. Printing emits nothing.
func End() *Syntax[Unit, Unit] {
	return newSyntax(
		func(c *cursor) (Unit, error) {
			if !c.atEnd() {
				return Unit{}, failKind(KindUnconsumedInput, c.pos)
			}
			return Unit{}, nil
		},
		func(Unit, Target) error {
			return nil
		},
	)
}

// Succeed parses nothing and yields value; printing accepts any value and
// emits nothing.
func Succeed[T any](value T) *Syntax[T, T] {
	return newSyntax(
		func(*cursor) (T, error) {
			return value, nil
		},
		func(T, Target) error {
			return nil
		},
	)
}

// FailWith fails both directions with the supplied payload, consuming and
// producing nothing.
func FailWith[V, R any](failure error) *Syntax[V, R] {
	return newSyntax(
		func(c *cursor) (R, error) {
			var zero R
			return zero, failDomain(c.pos, failure)
		},
		func(V, Target) error {
			return failure
		},
	)
}
