// Package sorting reorders and searches sequences using pluggable
// comparison strategies. Sorts are stable and in place; element movement is
// delegated to the standard library's stable sort, with the strategy as the
// sole comparison function.
package sorting

import (
	"slices"

	"github.com/amp-labs/amp-ordering/compare"
	errs "github.com/amp-labs/amp-ordering/errors"
	"github.com/amp-labs/amp-ordering/ordering"
)

// resolve falls back to the element type's natural ordering when no
// explicit strategy was supplied.
func resolve[T any](s ordering.Strategy[T]) (ordering.Strategy[T], error) {
	if s != nil {
		return s, nil
	}

	return ordering.Natural[T]()
}

// Sort reorders xs in place so that every adjacent pair compares Less or
// Equal under the strategy. The sort is stable: elements that compare Equal
// keep their original relative order, which is what makes composed
// tie-breaker strategies meaningful.
//
// A nil strategy resolves to the element type's natural ordering and fails
// with errors.ErrNoOrdering when the type declares none.
//
// If the strategy fails on some pair, Sort returns a
// *errors.ComparisonError naming that pair and xs is left in an unspecified
// but valid order: elements may have moved, but none are lost or duplicated.
func Sort[T any](xs []T, s ordering.Strategy[T]) error {
	strat, err := resolve(s)
	if err != nil {
		return err
	}

	var cmpErr error

	slices.SortStableFunc(xs, func(a, b T) int {
		// After the first failure the remaining comparisons answer
		// Equal so the underlying sort terminates; the first error is
		// what the caller sees.
		if cmpErr != nil {
			return 0
		}

		ord, err := strat(a, b)
		if err != nil {
			cmpErr = &errs.ComparisonError{Left: a, Right: b, Err: err}

			return 0
		}

		return int(ord)
	})

	return cmpErr
}

// IsSorted reports whether xs is already ordered consistently with the
// strategy. A nil strategy resolves to the natural ordering, as in Sort.
func IsSorted[T any](xs []T, s ordering.Strategy[T]) (bool, error) {
	strat, err := resolve(s)
	if err != nil {
		return false, err
	}

	for i := 1; i < len(xs); i++ {
		ord, err := strat(xs[i-1], xs[i])
		if err != nil {
			return false, &errs.ComparisonError{Left: xs[i-1], Right: xs[i], Err: err}
		}

		if ord == compare.Greater {
			return false, nil
		}
	}

	return true, nil
}
