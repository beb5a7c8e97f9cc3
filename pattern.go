package biparse

import (
	"strings"
	"unicode"
)

// noMatch is returned by a pattern that does not apply at the position.
const noMatch = -1

// Pattern is a compiled description of a character-level shape: a fixed
// character, set membership, a predicate, a wildcard, or a literal string,
// optionally repeated greedily. Matching is deterministic and never
// backtracks: a pattern either consumes a fixed-length or maximal-greedy
// span, or reports no match. Patterns carry no result value of their own;
// leaf syntaxes decide what the consumed span means.
type Pattern struct {
	match func(input []rune, pos int) int
}

// Match reports the number of runes the pattern consumes at pos, or -1 if
// the pattern does not match there.
func (p Pattern) Match(input []rune, pos int) int {
	return p.match(input, pos)
}

// Many returns a greedy matcher consuming zero or more occurrences of p.
// It always matches; an empty span is a valid result.
func (p Pattern) Many() Pattern {
	return Pattern{match: func(input []rune, pos int) int {
		total := 0
		for {
			n := p.match(input, pos+total)
			if n <= 0 {
				return total
			}
			total += n
		}
	}}
}

// Many1 returns a greedy matcher consuming one or more occurrences of p.
func (p Pattern) Many1() Pattern {
	many := p.Many()
	return Pattern{match: func(input []rune, pos int) int {
		n := many.match(input, pos)
		if n == 0 {
			return noMatch
		}
		return n
	}}
}

func patternOne(pred func(rune) bool) Pattern {
	return Pattern{match: func(input []rune, pos int) int {
		if pos >= len(input) || !pred(input[pos]) {
			return noMatch
		}
		return 1
	}}
}

// PatternChar matches exactly the character c.
func PatternChar(c rune) Pattern {
	return patternOne(func(r rune) bool { return r == c })
}

// PatternNotChar matches any single character except c.
func PatternNotChar(c rune) Pattern {
	return patternOne(func(r rune) bool { return r != c })
}

// PatternIn matches any single character contained in set.
func PatternIn(set string) Pattern {
	return patternOne(func(r rune) bool { return strings.ContainsRune(set, r) })
}

// PatternNotIn matches any single character not contained in set.
func PatternNotIn(set string) Pattern {
	return patternOne(func(r rune) bool { return !strings.ContainsRune(set, r) })
}

// PatternFunc matches a single character satisfying pred.
func PatternFunc(pred func(rune) bool) Pattern {
	return patternOne(pred)
}

// PatternAny matches any single character.
func PatternAny() Pattern {
	return patternOne(func(rune) bool { return true })
}

// PatternLiteral matches the exact character sequence of text.
func PatternLiteral(text string) Pattern {
	lit := []rune(text)
	return Pattern{match: func(input []rune, pos int) int {
		if pos+len(lit) > len(input) {
			return noMatch
		}
		for i, r := range lit {
			if input[pos+i] != r {
				return noMatch
			}
		}
		return len(lit)
	}}
}

// PatternDigit matches a single decimal digit.
func PatternDigit() Pattern {
	return patternOne(unicode.IsDigit)
}

// PatternLetter matches a single letter.
func PatternLetter() Pattern {
	return patternOne(unicode.IsLetter)
}

// PatternAlphaNumeric matches a single letter or decimal digit.
func PatternAlphaNumeric() Pattern {
	return patternOne(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
}

// PatternWhitespace matches a single whitespace character.
func PatternWhitespace() Pattern {
	return patternOne(unicode.IsSpace)
}
