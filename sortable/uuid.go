package sortable

import (
	"bytes"

	"github.com/amp-labs/amp-ordering/compare"
	"github.com/google/uuid"
)

// UUID is a sortable wrapper for uuid.UUID, ordered lexicographically by the
// 16 raw bytes. For version-7 UUIDs this matches creation-time order.
type UUID uuid.UUID

var _ Sortable[UUID] = (*UUID)(nil)

func (u UUID) Equals(other UUID) bool {
	return uuid.UUID(u) == uuid.UUID(other)
}

func (u UUID) CompareTo(other UUID) compare.Ordering {
	return compare.Of(bytes.Compare(u[:], other[:]), 0)
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}
