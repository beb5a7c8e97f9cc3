package biparse

// Unit is the trivial printed value. Syntaxes whose printed content is fully
// determined by the grammar itself (fixed characters, literals, separators)
// carry Unit, which lets them occupy discarded positions in ZipLeft, ZipRight,
// Between and SurroundedBy: a printer can always synthesize a Unit, while it
// could never invent an arbitrary discarded value.
type Unit struct{}

// Pair holds the results of two sequenced syntaxes.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Either is a two-case tagged union produced by OrElseEither. Exactly one of
// Left and Right is meaningful, selected by IsRight.
type Either[L, R any] struct {
	Left    L
	Right   R
	IsRight bool
}

// LeftOf builds a left-tagged Either.
func LeftOf[L, R any](v L) Either[L, R] {
	return Either[L, R]{Left: v}
}

// RightOf builds a right-tagged Either.
func RightOf[L, R any](v R) Either[L, R] {
	return Either[L, R]{Right: v, IsRight: true}
}

// Option is a value that may be absent, produced and consumed by Optional.
type Option[T any] struct {
	Value T
	OK    bool
}

// Some builds a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, OK: true}
}

// None builds an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}
