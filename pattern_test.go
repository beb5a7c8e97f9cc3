package biparse

import "testing"

func TestPatternSingles(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		input   string
		pos     int
		want    int
	}{
		{"char match", PatternChar('a'), "abc", 0, 1},
		{"char mismatch", PatternChar('a'), "abc", 1, noMatch},
		{"char at end", PatternChar('a'), "abc", 3, noMatch},
		{"not char", PatternNotChar('a'), "abc", 1, 1},
		{"not char rejects", PatternNotChar('a'), "abc", 0, noMatch},
		{"in set", PatternIn("xyz"), "yak", 0, 1},
		{"not in set", PatternNotIn("xyz"), "yak", 1, 1},
		{"not in set rejects", PatternNotIn("xyz"), "yak", 0, noMatch},
		{"func", PatternFunc(func(r rune) bool { return r == 'k' }), "yak", 2, 1},
		{"any", PatternAny(), "a", 0, 1},
		{"any at end", PatternAny(), "a", 1, noMatch},
		{"literal", PatternLiteral("ab"), "abc", 0, 2},
		{"literal mismatch", PatternLiteral("ab"), "acb", 0, noMatch},
		{"literal too long", PatternLiteral("abcd"), "abc", 0, noMatch},
		{"digit", PatternDigit(), "7x", 0, 1},
		{"letter", PatternLetter(), "7x", 1, 1},
		{"alnum rejects", PatternAlphaNumeric(), " ", 0, noMatch},
		{"whitespace", PatternWhitespace(), "\tx", 0, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.pattern.Match([]rune(test.input), test.pos)
			if got != test.want {
				t.Errorf("Match(%q, %d) = %d, want %d", test.input, test.pos, got, test.want)
			}
		})
	}
}

func TestPatternMany(t *testing.T) {
	digits := PatternDigit().Many()

	if got := digits.Match([]rune("123ab"), 0); got != 3 {
		t.Errorf("Many over digits consumed %d, want 3", got)
	}
	if got := digits.Match([]rune("abc"), 0); got != 0 {
		t.Errorf("Many with no occurrence consumed %d, want 0", got)
	}
	if got := digits.Match([]rune(""), 0); got != 0 {
		t.Errorf("Many on empty input consumed %d, want 0", got)
	}
}

func TestPatternMany1(t *testing.T) {
	digits := PatternDigit().Many1()

	if got := digits.Match([]rune("42x"), 0); got != 2 {
		t.Errorf("Many1 consumed %d, want 2", got)
	}
	if got := digits.Match([]rune("x42"), 0); got != noMatch {
		t.Errorf("Many1 with no occurrence = %d, want no match", got)
	}
}

func TestPatternManyLiteral(t *testing.T) {
	// Many composes with multi-character matchers too.
	abs := PatternLiteral("ab").Many()
	if got := abs.Match([]rune("ababx"), 0); got != 4 {
		t.Errorf("Many over literal consumed %d, want 4", got)
	}
}
