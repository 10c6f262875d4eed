package value_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-data/valuegen/value"
)

func TestProxy_DelegatesTransparentlyOnceBound(t *testing.T) {
	p := value.NewProxy("a.x", value.NewGuard(0))
	assert.False(t, p.Bound())

	target := value.NewPrimitive(7)
	require.NoError(t, p.Bind(target))
	assert.True(t, p.Bound())

	out, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, 7, out)
	assert.Equal(t, 7, p.Current())
}

func TestProxy_NextFailsWhenUnbound(t *testing.T) {
	p := value.NewProxy("a.x", value.NewGuard(0))
	_, err := p.Next()
	assert.Error(t, err)
}

func TestProxy_BindRejectsNilAndSelf(t *testing.T) {
	p := value.NewProxy("a.x", value.NewGuard(0))
	assert.Error(t, p.Bind(nil))
	assert.Error(t, p.Bind(p))
}

func TestProxy_CycleTripsRecursionGuard(t *testing.T) {
	guard := value.NewGuard(4)
	a := value.NewProxy("a", guard)
	b := value.NewProxy("b", guard)
	require.NoError(t, a.Bind(b))
	require.NoError(t, b.Bind(a))

	_, err := a.Next()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrEvaluationCycle))
}
