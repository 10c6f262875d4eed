package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/dist"
)

func TestUniform_NextInt_InBounds(t *testing.T) {
	u := dist.NewUniform(1)
	for range 200 {
		v := u.NextInt(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestUniform_NextLong_InBounds(t *testing.T) {
	u := dist.NewUniform(2)
	for range 200 {
		v := u.NextLong(5, 15)
		assert.GreaterOrEqual(t, v, int64(5))
		assert.Less(t, v, int64(15))
	}
}

func TestUniform_NextDouble_InBounds(t *testing.T) {
	u := dist.NewUniform(3)
	for range 200 {
		v := u.NextDouble(-1.5, 1.5)
		assert.GreaterOrEqual(t, v, -1.5)
		assert.Less(t, v, 1.5)
	}
}

func TestUniform_NextBoolean_BothOutcomes(t *testing.T) {
	u := dist.NewUniform(4)
	sawTrue, sawFalse := false, false
	for range 200 {
		if u.NextBoolean() {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	assert.True(t, sawTrue)
	assert.True(t, sawFalse)
}

func TestUniform_SameSeedReproducible(t *testing.T) {
	a := dist.NewUniform(42)
	b := dist.NewUniform(42)
	for range 20 {
		assert.Equal(t, a.NextLong(0, 1000), b.NextLong(0, 1000))
	}
}

func TestUniform_NextInt_PanicsOnNonPositiveN(t *testing.T) {
	u := dist.NewUniform(5)
	assert.Panics(t, func() { u.NextInt(0) })
	assert.Panics(t, func() { u.NextInt(-1) })
}

func TestUniform_NextLong_PanicsOnBadRange(t *testing.T) {
	u := dist.NewUniform(6)
	assert.Panics(t, func() { u.NextLong(10, 10) })
	assert.Panics(t, func() { u.NextLong(10, 5) })
}
