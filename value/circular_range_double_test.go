package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-data/valuegen/value"
)

func TestCircularRangeDouble_WrapsAtHi(t *testing.T) {
	rng, err := value.NewDoubleRange(0, 3)
	require.NoError(t, err)
	c := value.NewCircularRangeDouble(rng, 1)

	want := []float64{0, 1, 2, 0, 1, 2}
	for i, w := range want {
		out, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, w, out, "call %d", i)
	}
}
