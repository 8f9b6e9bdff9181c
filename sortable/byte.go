package sortable

import "github.com/amp-labs/amp-ordering/compare"

// Byte is a sortable wrapper type for the built-in byte type.
// It carries a natural ordering, so slices of Byte sort without an explicit
// strategy.
//
// To convert back to a regular byte, use a type conversion:
//
//	var s sortable.Byte = 'x'
//	regularByte := byte(s)
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// CompareTo reports the numeric order of this Byte relative to the other Byte.
func (b Byte) CompareTo(other Byte) compare.Ordering {
	return compare.Of(byte(b), byte(other))
}
