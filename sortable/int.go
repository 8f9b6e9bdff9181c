package sortable

import "github.com/amp-labs/amp-ordering/compare"

// Int is a sortable wrapper type for the built-in int type.
// It carries a natural ordering, so slices of Int sort without an explicit
// strategy.
//
// Example:
//
//	values := []sortable.Int{5, 3, 7}
//	_ = sorting.Sort(values, nil)
//	// values is now [3, 5, 7]
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// CompareTo reports the numeric order of this Int relative to the other Int.
func (i Int) CompareTo(other Int) compare.Ordering {
	return compare.Of(int(i), int(other))
}
