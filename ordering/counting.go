package ordering

import (
	"github.com/amp-labs/amp-ordering/compare"
	"go.uber.org/atomic"
)

// Counted wraps a strategy so that every comparison increments the given
// counter. The counter is atomic, so a counted strategy remains safe to use
// from concurrent sorts over distinct sequences.
func Counted[T any](s Strategy[T], counter *atomic.Int64) Strategy[T] {
	return func(a, b T) (compare.Ordering, error) {
		counter.Inc()

		return s(a, b)
	}
}
