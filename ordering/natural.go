package ordering

import (
	"github.com/amp-labs/amp-ordering/compare"
	errs "github.com/amp-labs/amp-ordering/errors"
)

// Natural resolves the natural ordering of T, if T declares one by
// implementing compare.Ordered on its value receiver. It returns
// errors.ErrNoOrdering when the type carries no such capability; there is no
// fallback ordering by memory address, insertion order, or field guessing.
//
// The check is performed once, when Natural is called; the returned strategy
// dispatches straight to the type's CompareTo.
func Natural[T any]() (Strategy[T], error) {
	var zero T
	if _, ok := any(zero).(compare.Ordered[T]); !ok {
		return nil, errs.ErrNoOrdering
	}

	return func(a, b T) (compare.Ordering, error) {
		return any(a).(compare.Ordered[T]).CompareTo(b), nil
	}, nil
}
