package ordering_test

import (
	"testing"

	"github.com/amp-labs/amp-ordering/compare"
	"github.com/amp-labs/amp-ordering/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestCounted(t *testing.T) {
	t.Parallel()

	var counter atomic.Int64

	counted := ordering.Counted(byNumber, &counter)

	a := album{num: 21}
	b := album{num: 42}

	ord, err := counted(a, b)
	require.NoError(t, err)
	assert.Equal(t, compare.Less, ord)

	_, err = counted(b, a)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counter.Load())
}
