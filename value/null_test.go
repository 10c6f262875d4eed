package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/value"
)

func TestNull(t *testing.T) {
	n := value.NewNull()
	assert.Nil(t, n.Current())

	out, err := n.Next()
	assert.NoError(t, err)
	assert.Nil(t, out)

	n.Reset()
	assert.Nil(t, n.Current())
}

func TestPrimitive(t *testing.T) {
	p := value.NewPrimitive(42)
	assert.Equal(t, 42, p.Current())

	out, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 42, out)
	assert.Equal(t, 42, p.Current())

	p.Reset()
	assert.Equal(t, 42, p.Current())
}
