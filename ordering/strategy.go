package ordering

import (
	"cmp"

	"github.com/amp-labs/amp-ordering/compare"
)

// Strategy compares two elements and reports their relative order.
// A Strategy must be reflexive, antisymmetric, transitive, and deterministic,
// and must not mutate either element. It may fail with
// errors.ErrIncomparableValues when it cannot produce a valid three-way
// result for the pair; the failure propagates to the caller of the sort or
// search instead of being treated as equal.
type Strategy[T any] func(a, b T) (compare.Ordering, error)

// OfOrdered returns a strategy that orders values of any built-in ordered
// type (integers, floats, strings) ascending.
func OfOrdered[T cmp.Ordered]() Strategy[T] {
	return func(a, b T) (compare.Ordering, error) {
		return compare.Of(a, b), nil
	}
}

// FromLess adapts a boolean less-than function into a strategy.
// The function is called at most twice per comparison.
func FromLess[T any](less func(a, b T) bool) Strategy[T] {
	return func(a, b T) (compare.Ordering, error) {
		switch {
		case less(a, b):
			return compare.Less, nil
		case less(b, a):
			return compare.Greater, nil
		default:
			return compare.Equal, nil
		}
	}
}

// FromOrdered returns a strategy backed by the type's own CompareTo method.
// Unlike Natural, the capability is proven at compile time by the type
// constraint.
func FromOrdered[T compare.Ordered[T]]() Strategy[T] {
	return func(a, b T) (compare.Ordering, error) {
		return a.CompareTo(b), nil
	}
}
