package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-data/valuegen/dist"
	"github.com/corvid-data/valuegen/value"
)

func TestRangeLong_StaysInBounds(t *testing.T) {
	rng, err := value.NewLongRange(1, 4)
	require.NoError(t, err)
	r := value.NewRangeLong(rng, false, dist.NewUniform(0))

	for range 50 {
		v, err := r.Next()
		require.NoError(t, err)
		n := v.(int64)
		assert.GreaterOrEqual(t, n, int64(1))
		assert.Less(t, n, int64(4))
		assert.Equal(t, n, r.Current())
	}
}

func TestRangeLong_EdgeEmission(t *testing.T) {
	rng, err := value.NewLongRange(1, 4)
	require.NoError(t, err)
	r := value.NewRangeLong(rng, true, dist.NewUniform(0))

	v1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)

	v2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(3), v2)

	v3, err := r.Next()
	require.NoError(t, err)
	n := v3.(int64)
	assert.GreaterOrEqual(t, n, int64(1))
	assert.Less(t, n, int64(4))
}

func TestRangeLong_ResetRestartsEdges(t *testing.T) {
	rng, err := value.NewLongRange(1, 4)
	require.NoError(t, err)
	r := value.NewRangeLong(rng, true, dist.NewUniform(0))

	_, _ = r.Next()
	_, _ = r.Next()
	_, _ = r.Next()

	r.Reset()
	v, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}
