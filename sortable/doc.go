// Package sortable provides wrapper types for primitive types that carry a
// natural ordering, enabling their use with sorts that take no explicit
// strategy.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common types: [Int], [Byte], [String],
// [Time], and [UUID]. These types work anywhere a natural ordering is
// resolved, in particular [github.com/amp-labs/amp-ordering/sorting.Sort]
// called with a nil strategy and
// [github.com/amp-labs/amp-ordering/ordering.Natural].
//
// The Sortable interface combines
// [github.com/amp-labs/amp-ordering/compare.Comparable] (equality) with
// [github.com/amp-labs/amp-ordering/compare.Ordered] (three-way comparison).
//
// # Creating Custom Sortable Types
//
// To give a custom type a natural ordering, implement the Sortable interface
// on the value receiver:
//
//	type Album struct {
//	    Year int
//	    Name string
//	}
//
//	func (a Album) Equals(other Album) bool {
//	    return a.Year == other.Year && a.Name == other.Name
//	}
//
//	func (a Album) CompareTo(other Album) compare.Ordering {
//	    if ord := compare.Of(a.Year, other.Year); ord != compare.Equal {
//	        return ord
//	    }
//	    return compare.Of(a.Name, other.Name)
//	}
//
// # When to Use Natural Ordering vs Strategies
//
// Give a type a natural ordering when:
//   - One ordering is clearly canonical for the type
//   - Callers should be able to sort without choosing criteria
//
// Use explicit [github.com/amp-labs/amp-ordering/ordering.Strategy] values when:
//   - The same type needs several mutually exclusive orderings
//   - The ordering depends on call-site context (locale, direction, keys)
//   - The element type is not yours to extend
//
// # Thread Safety
//
// The wrapper types in this package are value types and their comparison
// methods hold no state, so they are safe to use from concurrent sorts over
// distinct sequences.
package sortable
