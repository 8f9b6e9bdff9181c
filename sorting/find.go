package sorting

import (
	"github.com/amp-labs/amp-ordering/compare"
	errs "github.com/amp-labs/amp-ordering/errors"
	"github.com/amp-labs/amp-ordering/ordering"
)

// Find binary-searches xs for target. It returns the index of the first
// element that compares Equal to target and found=true, or the index at
// which target would be inserted to keep xs ordered and found=false.
//
// Precondition: xs must already be ordered consistently with the strategy.
// This is not checked at runtime; searching an unordered sequence yields an
// undefined result. A nil strategy resolves to the natural ordering.
func Find[T any](xs []T, target T, s ordering.Strategy[T]) (int, bool, error) {
	strat, err := resolve(s)
	if err != nil {
		return 0, false, err
	}

	lo, hi := 0, len(xs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)

		ord, err := strat(xs[mid], target)
		if err != nil {
			return 0, false, &errs.ComparisonError{Left: xs[mid], Right: target, Err: err}
		}

		if ord == compare.Less {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo == len(xs) {
		return lo, false, nil
	}

	ord, err := strat(xs[lo], target)
	if err != nil {
		return 0, false, &errs.ComparisonError{Left: xs[lo], Right: target, Err: err}
	}

	return lo, ord == compare.Equal, nil
}
