package biparse

import "testing"

func TestZip(t *testing.T) {
	s := Zip(Letter(), Digit())

	r, err := s.Parse("a1")
	if err != nil {
		t.Fatalf("Parse(\"a1\") failed: %v", err)
	}
	if r.First != 'a' || r.Second != '1' {
		t.Errorf("Parse(\"a1\") = %v, want (a, 1)", r)
	}

	out, err := s.PrintString(PairOf('b', '2'))
	if err != nil || out != "b2" {
		t.Errorf("PrintString = %q, %v", out, err)
	}

	if _, err := s.Parse("ab"); err == nil {
		t.Error("Parse(\"ab\") should fail on the second element")
	}
}

func TestZipLeft(t *testing.T) {
	s := Digit().ZipLeft(Char(';'))

	r, err := s.Parse("5;")
	if err != nil {
		t.Fatalf("Parse(\"5;\") failed: %v", err)
	}
	if r != '5' {
		t.Errorf("Parse(\"5;\") = %q, want '5'", r)
	}

	// The discarded side prints from a synthesized trivial value.
	out, err := s.PrintString('7')
	if err != nil || out != "7;" {
		t.Errorf("PrintString('7') = %q, %v", out, err)
	}

	if _, err := s.Parse("5:"); err == nil {
		t.Error("Parse(\"5:\") should fail on the discarded side")
	}
}

func TestTerminatedBy(t *testing.T) {
	s := Digit().TerminatedBy(Char('\n'))
	if r, err := s.Parse("4\n"); err != nil || r != '4' {
		t.Errorf("Parse = %q, %v", r, err)
	}
}

func TestZipRight(t *testing.T) {
	s := ZipRight(Char('#'), Digit())

	r, err := s.Parse("#9")
	if err != nil {
		t.Fatalf("Parse(\"#9\") failed: %v", err)
	}
	if r != '9' {
		t.Errorf("Parse(\"#9\") = %q, want '9'", r)
	}

	out, err := s.PrintString('1')
	if err != nil || out != "#1" {
		t.Errorf("PrintString('1') = %q, %v", out, err)
	}
}

func TestBetween(t *testing.T) {
	s := Digit().Between(Char('('), Char(')'))

	r, err := s.Parse("(5)")
	if err != nil {
		t.Fatalf("Parse(\"(5)\") failed: %v", err)
	}
	if r != '5' {
		t.Errorf("Parse(\"(5)\") = %q, want '5'", r)
	}

	out, err := s.PrintString('5')
	if err != nil || out != "(5)" {
		t.Errorf("PrintString('5') = %q, %v", out, err)
	}

	if _, err := s.Parse("(5"); err == nil {
		t.Error("Parse(\"(5\") should fail on the missing closer")
	}
}

func TestSurroundedBy(t *testing.T) {
	s := Letter().SurroundedBy(Char('"'))

	r, err := s.Parse(`"x"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r != 'x' {
		t.Errorf("Parse = %q, want 'x'", r)
	}

	out, err := s.PrintString('y')
	if err != nil || out != `"y"` {
		t.Errorf("PrintString('y') = %q, %v", out, err)
	}
}
