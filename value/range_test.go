package value_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/value"
)

func TestNewLongRange(t *testing.T) {
	_, err := value.NewLongRange(1, 10)
	assert.NoError(t, err)

	_, err = value.NewLongRange(10, 10)
	assert.Error(t, err)

	_, err = value.NewLongRange(10, 1)
	assert.Error(t, err)
}

func TestNewDoubleRange(t *testing.T) {
	_, err := value.NewDoubleRange(0.5, 1.5)
	assert.NoError(t, err)

	_, err = value.NewDoubleRange(1.5, 1.5)
	assert.Error(t, err)
}

func TestNewDateRange(t *testing.T) {
	lo := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	_, err := value.NewDateRange(lo, hi)
	assert.NoError(t, err)

	_, err = value.NewDateRange(hi, lo)
	assert.Error(t, err)

	_, err = value.NewDateRange(lo, lo)
	assert.Error(t, err)
}
