package sortable

import "github.com/amp-labs/amp-ordering/compare"

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) CompareTo(other String) compare.Ordering {
	return compare.Of(string(s), string(other))
}
