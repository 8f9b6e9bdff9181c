package ordering

import (
	"sync"

	"facette.io/natsort"
	"github.com/amp-labs/amp-ordering/compare"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalText orders strings in natural (human) order, where embedded
// numbers compare by value: "item2" sorts before "item10". Distinct strings
// that tie in natural order ("a01" and "a1") fall back to byte order, so the
// strategy stays antisymmetric and total.
func NaturalText() Strategy[string] {
	return func(a, b string) (compare.Ordering, error) {
		// natsort.Compare answers true on ties, identical strings
		// included, so equality and ties must be resolved before its
		// answer can be trusted as a strict less-than.
		if a == b {
			return compare.Equal, nil
		}

		if natsort.Compare(a, b) {
			if natsort.Compare(b, a) {
				return compare.Of(a, b), nil
			}

			return compare.Less, nil
		}

		return compare.Greater, nil
	}
}

// Collated orders strings according to the collation rules of the given
// language. Options such as collate.IgnoreCase and collate.Numeric are
// passed through to the collator.
//
// The underlying collator is not safe for concurrent use, so the returned
// strategy serializes comparisons internally. Build one strategy per
// language and reuse it.
func Collated(tag language.Tag, opts ...collate.Option) Strategy[string] {
	var mu sync.Mutex

	coll := collate.New(tag, opts...)

	return func(a, b string) (compare.Ordering, error) {
		mu.Lock()
		defer mu.Unlock()

		return compare.Of(coll.CompareString(a, b), 0), nil
	}
}
