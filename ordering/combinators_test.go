package ordering_test

import (
	"testing"

	"github.com/amp-labs/amp-ordering/compare"
	errs "github.com/amp-labs/amp-ordering/errors"
	"github.com/amp-labs/amp-ordering/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// album is the running example element type: multiple comparable fields,
// no single obvious order.
type album struct {
	num  int
	name string
	year int
}

var (
	byNumber = ordering.ByKey(func(a album) int { return a.num })
	byName   = ordering.ByKey(func(a album) string { return a.name })
	byYear   = ordering.ByKey(func(a album) int { return a.year })
)

func TestThenBy_PrimaryDecides(t *testing.T) {
	t.Parallel()

	combined := ordering.ThenBy(byYear, byName)

	a := album{num: 1, name: "Zebra", year: 1990}
	b := album{num: 2, name: "Aardvark", year: 1995}

	// Years differ, so the name never matters.
	ord, err := combined(a, b)
	require.NoError(t, err)
	assert.Equal(t, compare.Less, ord)

	ord, err = combined(b, a)
	require.NoError(t, err)
	assert.Equal(t, compare.Greater, ord)
}

func TestThenBy_SecondaryBreaksTies(t *testing.T) {
	t.Parallel()

	combined := ordering.ThenBy(byYear, byName)

	a := album{num: 1, name: "Moon", year: 1990}
	b := album{num: 2, name: "John", year: 1990}

	ord, err := combined(a, b)
	require.NoError(t, err)
	assert.Equal(t, compare.Greater, ord, "equal years order by name")
}

func TestThenBy_ComposesToDepth(t *testing.T) {
	t.Parallel()

	combined := byYear.Then(byName).Then(byNumber)

	a := album{num: 7, name: "Twin", year: 1990}
	b := album{num: 3, name: "Twin", year: 1990}

	ord, err := combined(a, b)
	require.NoError(t, err)
	assert.Equal(t, compare.Greater, ord, "year and name tie, number decides")
}

func TestChain_MatchesNestedThenBy(t *testing.T) {
	t.Parallel()

	chained := ordering.Chain(byYear, byName, byNumber)
	nested := ordering.ThenBy(ordering.ThenBy(byYear, byName), byNumber)

	albums := []album{
		{num: 7, name: "Twin", year: 1990},
		{num: 3, name: "Twin", year: 1990},
		{num: 1, name: "Moon", year: 1990},
		{num: 1, name: "Moon", year: 1985},
	}

	for _, a := range albums {
		for _, b := range albums {
			want, err := nested(a, b)
			require.NoError(t, err)

			got, err := chained(a, b)
			require.NoError(t, err)

			assert.Equal(t, want, got, "chain(%v, %v)", a, b)
		}
	}
}

func TestReversed_InvertsSign(t *testing.T) {
	t.Parallel()

	reversed := byNumber.Reversed()

	albums := []album{
		{num: 21, name: "Park"},
		{num: 32, name: "John"},
		{num: 32, name: "Moon"},
		{num: 42, name: "Moon"},
	}

	for _, a := range albums {
		for _, b := range albums {
			forward, err := byNumber(a, b)
			require.NoError(t, err)

			backward, err := reversed(a, b)
			require.NoError(t, err)

			assert.Equal(t, forward.Reversed(), backward)
		}
	}
}

func TestReversed_Twice_IsOriginal(t *testing.T) {
	t.Parallel()

	twice := byNumber.Reversed().Reversed()

	a := album{num: 21}
	b := album{num: 42}

	want, err := byNumber(a, b)
	require.NoError(t, err)

	got, err := twice(a, b)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestByKeyWith(t *testing.T) {
	t.Parallel()

	// Compare names by length via a custom key strategy.
	byLen := ordering.FromLess(func(a, b string) bool {
		return len(a) < len(b)
	})

	byNameLen := ordering.ByKeyWith(func(a album) string { return a.name }, byLen)

	ord, err := byNameLen(album{name: "Up"}, album{name: "Revolver"})
	require.NoError(t, err)
	assert.Equal(t, compare.Less, ord)
}

func TestByMaybeKey_MissingKeyFails(t *testing.T) {
	t.Parallel()

	// Year zero means unknown here.
	byKnownYear := ordering.ByMaybeKey(func(a album) (int, bool) {
		return a.year, a.year != 0
	}, ordering.OfOrdered[int]())

	t.Run("both keys present", func(t *testing.T) {
		t.Parallel()

		ord, err := byKnownYear(album{year: 1969}, album{year: 1971})
		require.NoError(t, err)
		assert.Equal(t, compare.Less, ord)
	})

	t.Run("left key missing", func(t *testing.T) {
		t.Parallel()

		_, err := byKnownYear(album{}, album{year: 1971})
		require.ErrorIs(t, err, errs.ErrIncomparableValues)
	})

	t.Run("right key missing", func(t *testing.T) {
		t.Parallel()

		_, err := byKnownYear(album{year: 1969}, album{})
		require.ErrorIs(t, err, errs.ErrIncomparableValues)
	})
}

func TestForPointer(t *testing.T) {
	t.Parallel()

	byNumberPtr := ordering.ForPointer(byNumber)

	t.Run("dereferences concrete elements", func(t *testing.T) {
		t.Parallel()

		ord, err := byNumberPtr(&album{num: 21}, &album{num: 42})
		require.NoError(t, err)
		assert.Equal(t, compare.Less, ord)
	})

	t.Run("nil element is an invalid argument", func(t *testing.T) {
		t.Parallel()

		_, err := byNumberPtr(nil, &album{num: 42})
		require.ErrorIs(t, err, errs.ErrInvalidArgument)

		_, err = byNumberPtr(&album{num: 21}, nil)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestCombinators_DoNotShareState(t *testing.T) {
	t.Parallel()

	// The same component strategy feeds two composites; each composite is an
	// independent value and neither changes the component's behavior.
	asc := ordering.ThenBy(byYear, byName)
	desc := ordering.ThenBy(byYear.Reversed(), byName)

	a := album{name: "Moon", year: 1969}
	b := album{name: "John", year: 1971}

	ord, err := asc(a, b)
	require.NoError(t, err)
	assert.Equal(t, compare.Less, ord)

	ord, err = desc(a, b)
	require.NoError(t, err)
	assert.Equal(t, compare.Greater, ord)

	// The shared component is untouched.
	ord, err = byYear(a, b)
	require.NoError(t, err)
	assert.Equal(t, compare.Less, ord)
}
