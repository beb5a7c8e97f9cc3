package biparse

import "strings"

// Target is the destination a print behavior writes to. Elements arrive
// incrementally, one rune or one string at a time.
type Target interface {
	WriteRune(r rune) error
	WriteString(s string) error
}

// annotator is implemented by targets that record display-only span
// annotations for named syntaxes. Annotations never alter produced content.
type annotator interface {
	beginSpan(name string)
	endSpan(name string)
}

// SliceTarget collects printed runes into a slice.
type SliceTarget struct {
	runes []rune
}

// WriteRune appends a single rune.
func (t *SliceTarget) WriteRune(r rune) error {
	t.runes = append(t.runes, r)
	return nil
}

// WriteString appends every rune of s.
func (t *SliceTarget) WriteString(s string) error {
	t.runes = append(t.runes, []rune(s)...)
	return nil
}

// Runes returns the collected output.
func (t *SliceTarget) Runes() []rune {
	return t.runes
}

// StyledSpan records that a named region of the output should be displayed
// with a style. Start and End are rune offsets; the content itself is
// untouched.
type StyledSpan struct {
	Name  string
	Style string
	Start int
	End   int
}

type openSpan struct {
	name  string
	start int
}

// StringTarget is the character-specialized sink, accumulating output into
// a string. When built with WithStyles it additionally records display
// spans for named syntaxes present in the style lookup.
type StringTarget struct {
	b      strings.Builder
	count  int
	styles map[string]string
	spans  []StyledSpan
	open   []openSpan
}

// StringTargetOption configures a StringTarget.
type StringTargetOption func(*StringTarget)

// WithStyles attaches a name-to-style lookup. Printing a syntax named in
// the lookup records a StyledSpan covering its output; names absent from
// the lookup record nothing.
func WithStyles(styles map[string]string) StringTargetOption {
	return func(t *StringTarget) {
		t.styles = styles
	}
}

// NewStringTarget creates a string sink.
func NewStringTarget(opts ...StringTargetOption) *StringTarget {
	t := &StringTarget{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WriteRune appends a single rune.
func (t *StringTarget) WriteRune(r rune) error {
	t.b.WriteRune(r)
	t.count++
	return nil
}

// WriteString appends s.
func (t *StringTarget) WriteString(s string) error {
	t.b.WriteString(s)
	t.count += len([]rune(s))
	return nil
}

// String returns the accumulated output.
func (t *StringTarget) String() string {
	return t.b.String()
}

// Spans returns the recorded display annotations in completion order.
func (t *StringTarget) Spans() []StyledSpan {
	return t.spans
}

func (t *StringTarget) beginSpan(name string) {
	if t.styles == nil {
		return
	}
	if _, ok := t.styles[name]; !ok {
		return
	}
	t.open = append(t.open, openSpan{name: name, start: t.count})
}

func (t *StringTarget) endSpan(name string) {
	if t.styles == nil {
		return
	}
	if _, ok := t.styles[name]; !ok {
		return
	}
	last := len(t.open) - 1
	if last < 0 || t.open[last].name != name {
		return
	}
	span := t.open[last]
	t.open = t.open[:last]
	t.spans = append(t.spans, StyledSpan{
		Name:  name,
		Style: t.styles[name],
		Start: span.start,
		End:   t.count,
	})
}
