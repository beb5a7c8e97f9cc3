package biparse

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoValue is the failure both directions of TransformOption report when
// a mapping comes back absent: there is no custom payload to carry.
var ErrNoValue = errors.New("no value")

// ErrKind classifies a ParseError.
type ErrKind int

const (
	// KindDomain marks a failure whose payload was supplied by the caller
	// through a failure parameter or a failing transformation.
	KindDomain ErrKind = iota
	// KindUnexpectedEnd marks a read past the end of the input.
	KindUnexpectedEnd
	// KindUnexpectedChar marks an input character a leaf syntax rejected.
	KindUnexpectedChar
	// KindUnconsumedInput marks leftover input rejected by End.
	KindUnconsumedInput
	// KindTooFewRepetitions marks a repetition that stopped below its minimum.
	KindTooFewRepetitions
)

// ParseError is the structured error returned by parse entry points. Values
// are immutable: decoration returns a fresh copy, so a shared error is safe
// to hold across calls.
type ParseError struct {
	// Kind classifies the failure. Only KindDomain failures carry a Payload.
	Kind ErrKind
	// Payload is the caller-supplied error for domain failures, nil otherwise.
	Payload error
	// Pos is the rune offset the failure was recorded at.
	Pos int
	// Names is the diagnostic context chain, innermost label first.
	Names []string
}

func (e *ParseError) message() string {
	switch e.Kind {
	case KindUnexpectedEnd:
		return "unexpected end of input"
	case KindUnexpectedChar:
		return "unexpected character"
	case KindUnconsumedInput:
		return "unconsumed input remains"
	case KindTooFewRepetitions:
		return "fewer repetitions than required"
	default:
		if e.Payload != nil {
			return e.Payload.Error()
		}
		return "parse failed"
	}
}

// Error renders the failure with its position and, when present, name chain.
func (e *ParseError) Error() string {
	if len(e.Names) > 0 {
		return fmt.Sprintf("%s at %d (in %s)", e.message(), e.Pos, strings.Join(e.Names, " < "))
	}
	return fmt.Sprintf("%s at %d", e.message(), e.Pos)
}

// Unwrap exposes the domain payload to errors.Is and errors.As traversal.
func (e *ParseError) Unwrap() error {
	return e.Payload
}

// Equal reports whether two errors agree on kind, payload, position and
// name chain. Payloads compare by identity, falling back to errors.Is so
// wrapped sentinels still match.
func (e *ParseError) Equal(o *ParseError) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Kind != o.Kind || e.Pos != o.Pos || !slices.Equal(e.Names, o.Names) {
		return false
	}
	if e.Payload == o.Payload {
		return true
	}
	if e.Payload == nil || o.Payload == nil {
		return false
	}
	return errors.Is(e.Payload, o.Payload)
}

// withName returns a copy with name appended to the context chain.
// Decorators fire innermost-first as a failure propagates outward, so
// appending keeps the innermost label at index 0.
func (e *ParseError) withName(name string) *ParseError {
	n := *e
	n.Names = append(slices.Clone(e.Names), name)
	return &n
}

// withPayload returns a copy carrying a replacement domain payload.
func (e *ParseError) withPayload(payload error) *ParseError {
	n := *e
	n.Payload = payload
	return &n
}

func failDomain(pos int, payload error) *ParseError {
	return &ParseError{Kind: KindDomain, Payload: payload, Pos: pos}
}

func failKind(kind ErrKind, pos int) *ParseError {
	return &ParseError{Kind: kind, Pos: pos}
}

// asParseError recovers the structured error from a parse failure. Every
// failure produced inside the library is a *ParseError already.
func asParseError(err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return &ParseError{Kind: KindDomain, Payload: err}
}
