package compare

import "cmp"

// Ordering is the result of a three-way comparison between two values.
// It is one of Less, Equal, or Greater. The integer representation keeps
// the usual sign convention (negative, zero, positive), so an Ordering
// can be handed directly to sort primitives that expect an int.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns a human-readable name for the Ordering.
func (o Ordering) String() string {
	switch {
	case o < 0:
		return "less"
	case o > 0:
		return "greater"
	default:
		return "equal"
	}
}

// Reversed returns the sign-inverted Ordering. Equal is unchanged.
func (o Ordering) Reversed() Ordering {
	return -o
}

// Of performs an explicit three-way comparison of two ordered values.
// It never uses subtraction, which overflows for bounded integer types;
// the result is always exactly Less, Equal, or Greater.
func Of[T cmp.Ordered](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
