package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-data/valuegen/value"
)

func TestCircular_CyclesInOrder(t *testing.T) {
	children := []value.Value{
		value.NewPrimitive(1),
		value.NewPrimitive(2),
		value.NewPrimitive(3),
	}
	c := value.NewCircular("c", children, value.NewGuard(0))

	want := []int{1, 2, 3, 1, 2, 3, 1}
	for i, w := range want {
		out, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, w, out, "call %d", i)
	}
}

func TestCircular_ResetRestartsAtFirstChild(t *testing.T) {
	children := []value.Value{value.NewPrimitive("a"), value.NewPrimitive("b")}
	c := value.NewCircular("c", children, value.NewGuard(0))

	_, _ = c.Next()
	_, _ = c.Next()
	c.Reset()

	out, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", out)
}

func TestCircular_PanicsOnEmptyChildren(t *testing.T) {
	assert.Panics(t, func() {
		value.NewCircular("c", nil, value.NewGuard(0))
	})
}
