package biparse

import (
	"errors"
	"strings"
	"testing"
)

func TestNamedContextChain(t *testing.T) {
	inner := Char('x').Named("atom")
	outer := ZipRight(Char('('), inner.ZipLeft(Char(')'))).Named("group")

	_, err := outer.Parse("(y)")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a *ParseError, got %v", err)
	}

	want := []string{"atom", "group"}
	if len(pe.Names) != len(want) {
		t.Fatalf("name chain = %v, want %v", pe.Names, want)
	}
	for i, name := range want {
		if pe.Names[i] != name {
			t.Errorf("name chain[%d] = %q, want %q", i, pe.Names[i], name)
		}
	}
	if !strings.Contains(pe.Error(), "atom") {
		t.Errorf("rendered error %q should mention the inner name", pe.Error())
	}
}

func TestStripRemovesName(t *testing.T) {
	named := Char('x').Named("atom")

	_, err := named.Parse("y")
	pe := asParseError(err)
	if len(pe.Names) != 1 || pe.Names[0] != "atom" {
		t.Fatalf("named failure chain = %v, want [atom]", pe.Names)
	}

	_, err = named.Strip().Parse("y")
	pe = asParseError(err)
	if len(pe.Names) != 0 {
		t.Errorf("stripped failure chain = %v, want empty", pe.Names)
	}

	// Stripping never changes parse outcomes.
	if _, err := named.Strip().Parse("x"); err != nil {
		t.Errorf("stripped syntax failed on valid input: %v", err)
	}
}

func TestStripOnUndecorated(t *testing.T) {
	plain := Char('x')
	if plain.Strip() != plain {
		t.Error("Strip of an undecorated syntax should return it unchanged")
	}
}

func TestMapErrorDomainOnly(t *testing.T) {
	base := errors.New("base failure")
	wrapped := errors.New("wrapped failure")

	s := NotChar('q', base).MapError(func(err error) error {
		if errors.Is(err, base) {
			return wrapped
		}
		return err
	})

	// Domain payloads are rewritten.
	_, err := s.Parse("q")
	if !errors.Is(err, wrapped) {
		t.Errorf("domain payload = %v, want %v", err, wrapped)
	}

	// Structural failures pass through untouched, metadata intact.
	_, err = s.Parse("")
	pe := asParseError(err)
	if pe.Kind != KindUnexpectedEnd || pe.Payload != nil {
		t.Errorf("structural failure = %+v, want untouched KindUnexpectedEnd", pe)
	}
}

func TestMapErrorKeepsPosition(t *testing.T) {
	base := errors.New("base failure")
	s := ZipRight(Char('a'), NotChar('q', base)).MapError(func(error) error {
		return errors.New("renamed")
	})

	_, err := s.Parse("aq")
	pe := asParseError(err)
	if pe.Pos != 1 {
		t.Errorf("mapped failure position = %d, want 1", pe.Pos)
	}
}

func TestParseErrorEqual(t *testing.T) {
	payload := errors.New("boom")
	a := &ParseError{Kind: KindDomain, Payload: payload, Pos: 3, Names: []string{"x"}}
	b := &ParseError{Kind: KindDomain, Payload: payload, Pos: 3, Names: []string{"x"}}

	if !a.Equal(b) {
		t.Error("identical errors should compare equal")
	}

	tests := []struct {
		name  string
		other *ParseError
	}{
		{"different position", &ParseError{Kind: KindDomain, Payload: payload, Pos: 4, Names: []string{"x"}}},
		{"different payload", &ParseError{Kind: KindDomain, Payload: errors.New("boom"), Pos: 3, Names: []string{"x"}}},
		{"different chain", &ParseError{Kind: KindDomain, Payload: payload, Pos: 3, Names: []string{"y"}}},
		{"different kind", &ParseError{Kind: KindUnexpectedEnd, Pos: 3, Names: []string{"x"}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if a.Equal(test.other) {
				t.Error("errors should compare unequal")
			}
		})
	}
}

func TestParseErrorRendering(t *testing.T) {
	pe := &ParseError{Kind: KindUnexpectedEnd, Pos: 7}
	if got := pe.Error(); got != "unexpected end of input at 7" {
		t.Errorf("Error() = %q", got)
	}

	pe = &ParseError{Kind: KindDomain, Payload: errors.New("boom"), Pos: 2, Names: []string{"a", "b"}}
	if got := pe.Error(); got != "boom at 2 (in a < b)" {
		t.Errorf("Error() = %q", got)
	}
}
