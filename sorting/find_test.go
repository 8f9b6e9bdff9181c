package sorting_test

import (
	"testing"

	errs "github.com/amp-labs/amp-ordering/errors"
	"github.com/amp-labs/amp-ordering/ordering"
	"github.com/amp-labs/amp-ordering/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	t.Parallel()

	albums := []album{
		{num: 21, name: "Park"},
		{num: 32, name: "John"},
		{num: 42, name: "Moon"},
	}

	tests := []struct {
		name          string
		target        album
		expectedIndex int
		expectedFound bool
	}{
		{name: "first element", target: album{num: 21}, expectedIndex: 0, expectedFound: true},
		{name: "middle element", target: album{num: 32}, expectedIndex: 1, expectedFound: true},
		{name: "last element", target: album{num: 42}, expectedIndex: 2, expectedFound: true},
		{name: "absent, would insert in middle", target: album{num: 30}, expectedIndex: 1, expectedFound: false},
		{name: "absent, before all", target: album{num: 5}, expectedIndex: 0, expectedFound: false},
		{name: "absent, after all", target: album{num: 99}, expectedIndex: 3, expectedFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idx, found, err := sorting.Find(albums, tt.target, byNumber)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIndex, idx)
			assert.Equal(t, tt.expectedFound, found)
		})
	}
}

func TestFind_FirstOfEqualRun(t *testing.T) {
	t.Parallel()

	albums := []album{
		{num: 1, name: "a"},
		{num: 2, name: "b"},
		{num: 2, name: "c"},
		{num: 2, name: "d"},
		{num: 3, name: "e"},
	}

	idx, found, err := sorting.Find(albums, album{num: 2}, byNumber)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, idx, "binary search lands on the first equal element")
}

func TestFind_EmptySequence(t *testing.T) {
	t.Parallel()

	idx, found, err := sorting.Find(nil, album{num: 2}, byNumber)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, idx)
}

func TestFind_NoOrdering(t *testing.T) {
	t.Parallel()

	_, _, err := sorting.Find([]album{{num: 1}}, album{num: 1}, nil)
	require.ErrorIs(t, err, errs.ErrNoOrdering)
}

func TestFind_PropagatesComparisonErrors(t *testing.T) {
	t.Parallel()

	byKnownYear := ordering.ByMaybeKey(func(a album) (int, bool) {
		return a.year, a.year != 0
	}, ordering.OfOrdered[int]())

	albums := []album{{year: 1969}, {year: 1971}}

	_, _, err := sorting.Find(albums, album{}, byKnownYear)
	require.ErrorIs(t, err, errs.ErrIncomparableValues)

	var cmpErr *errs.ComparisonError
	require.ErrorAs(t, err, &cmpErr)
}
