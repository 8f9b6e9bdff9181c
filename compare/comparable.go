// Package compare provides the three-way comparison primitives the rest of
// the module is built on: the Ordering result type, the Comparable equality
// interface, and the Ordered natural-ordering capability.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordered is the natural-ordering capability. A type that implements Ordered
// declares its own intrinsic comparison, used whenever a sort or search is
// requested without an explicit strategy.
//
// CompareTo must be reflexive, antisymmetric, transitive, and deterministic,
// and must not mutate either value. Implement it on the value receiver so
// capability detection works on plain values of the type.
type Ordered[T any] interface {
	CompareTo(other T) Ordering
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
