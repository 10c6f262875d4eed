package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-data/valuegen/dist"
	"github.com/corvid-data/valuegen/value"
)

func TestRangeDouble_StaysInBounds(t *testing.T) {
	rng, err := value.NewDoubleRange(0, 10)
	require.NoError(t, err)
	r := value.NewRangeDouble(rng, false, dist.NewUniform(0))

	for range 50 {
		v, err := r.Next()
		require.NoError(t, err)
		f := v.(float64)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 10.0)
	}
}

func TestRangeDouble_EdgeEmissionIsClosedInterval(t *testing.T) {
	rng, err := value.NewDoubleRange(0, 10)
	require.NoError(t, err)
	r := value.NewRangeDouble(rng, true, dist.NewUniform(0))

	v1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 0.0, v1)

	v2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 10.0, v2)
}
