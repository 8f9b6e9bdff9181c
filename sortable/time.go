package sortable

import (
	"time"

	"github.com/amp-labs/amp-ordering/compare"
)

// Time is a sortable wrapper for time.Time, ordered chronologically.
// Comparison uses time.Time.Compare, so instants compare equal across
// locations when they represent the same moment.
type Time time.Time

var _ Sortable[Time] = (*Time)(nil)

func (t Time) Equals(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

func (t Time) CompareTo(other Time) compare.Ordering {
	return compare.Of(time.Time(t).Compare(time.Time(other)), 0)
}
