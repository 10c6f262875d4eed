package value_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-data/valuegen/value"
)

func TestNow_AdvancesWallClock(t *testing.T) {
	n := value.NewNow()
	before := time.Now()
	out, err := n.Next()
	require.NoError(t, err)
	after := time.Now()

	got := out.(time.Time)
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestNowDate_HasNoTimeComponent(t *testing.T) {
	n := value.NewNowDate()
	out, err := n.Next()
	require.NoError(t, err)
	got := out.(time.Time)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
}

func TestNowLocalDate_HasNoTimeComponent(t *testing.T) {
	n := value.NewNowLocalDate()
	out, err := n.Next()
	require.NoError(t, err)
	got := out.(time.Time)
	assert.Equal(t, 0, got.Hour())
}

func TestNowLocalDateTime_AdvancesWallClock(t *testing.T) {
	n := value.NewNowLocalDateTime()
	before := time.Now()
	out, err := n.Next()
	require.NoError(t, err)
	got := out.(time.Time)
	assert.False(t, got.Before(before.Add(-time.Second)))
}
