// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-ordering/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]
	compare.Ordered[T]
}
