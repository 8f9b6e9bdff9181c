package ordering

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-ordering/compare"
	errs "github.com/amp-labs/amp-ordering/errors"
)

// ThenBy composes two strategies into one. The result evaluates primary
// first and consults secondary only to break ties. Composition nests to any
// depth: ThenBy(ThenBy(a, b), c) orders by a, then b, then c.
//
// Neither input is mutated; the returned strategy is a new, independent
// value and may share components with any number of other composites.
func ThenBy[T any](primary, secondary Strategy[T]) Strategy[T] {
	return func(a, b T) (compare.Ordering, error) {
		ord, err := primary(a, b)
		if err != nil || ord != compare.Equal {
			return ord, err
		}

		return secondary(a, b)
	}
}

// Then is ThenBy with the receiver as the primary strategy, for fluent
// chaining: byYear.Then(byName).Then(byId).
func (s Strategy[T]) Then(secondary Strategy[T]) Strategy[T] {
	return ThenBy(s, secondary)
}

// Chain composes any number of strategies in priority order. Later
// strategies break ties in earlier ones.
func Chain[T any](first Strategy[T], rest ...Strategy[T]) Strategy[T] {
	combined := first
	for _, s := range rest {
		combined = ThenBy(combined, s)
	}

	return combined
}

// Reversed returns a strategy producing the sign-inverted result of s.
// Equal results and errors pass through unchanged.
func Reversed[T any](s Strategy[T]) Strategy[T] {
	return func(a, b T) (compare.Ordering, error) {
		ord, err := s(a, b)
		if err != nil {
			return ord, err
		}

		return ord.Reversed(), nil
	}
}

// Reversed returns the sign-inverted strategy, for fluent chaining.
func (s Strategy[T]) Reversed() Strategy[T] {
	return Reversed(s)
}

// ByKey orders elements by a projected key of any built-in ordered type,
// ascending. The extractor must be a pure, total function over valid
// elements.
func ByKey[T any, K cmp.Ordered](key func(T) K) Strategy[T] {
	return ByKeyWith(key, OfOrdered[K]())
}

// ByKeyWith orders elements by a projected key, comparing keys with the
// given key strategy. The extractor must be a pure, total function over
// valid elements.
func ByKeyWith[T, K any](key func(T) K, order Strategy[K]) Strategy[T] {
	return func(a, b T) (compare.Ordering, error) {
		return order(key(a), key(b))
	}
}

// ByMaybeKey orders elements by a key that may be absent. When the extractor
// reports the key missing from either element, the comparison fails with
// errors.ErrIncomparableValues instead of silently treating the pair as
// equal.
func ByMaybeKey[T, K any](key func(T) (K, bool), order Strategy[K]) Strategy[T] {
	return func(a, b T) (compare.Ordering, error) {
		ka, ok := key(a)
		if !ok {
			return compare.Equal, fmt.Errorf("left element has no key: %w", errs.ErrIncomparableValues)
		}

		kb, ok := key(b)
		if !ok {
			return compare.Equal, fmt.Errorf("right element has no key: %w", errs.ErrIncomparableValues)
		}

		return order(ka, kb)
	}
}

// ForPointer lifts a strategy over T to one over *T. A nil element fails the
// comparison with errors.ErrInvalidArgument; nil is an absent value, not a
// smallest one.
func ForPointer[T any](s Strategy[T]) Strategy[*T] {
	return func(a, b *T) (compare.Ordering, error) {
		if a == nil || b == nil {
			return compare.Equal, fmt.Errorf("nil element: %w", errs.ErrInvalidArgument)
		}

		return s(*a, *b)
	}
}
