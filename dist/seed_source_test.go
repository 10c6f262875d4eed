package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/dist"
)

func TestCounterSeedSource_Reproducible(t *testing.T) {
	a := dist.NewSeedSource(123)
	b := dist.NewSeedSource(123)
	for range 20 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestCounterSeedSource_ProducesDistinctValues(t *testing.T) {
	s := dist.NewSeedSource(1)
	seen := map[uint64]bool{}
	for range 50 {
		v := s.Next()
		assert.False(t, seen[v])
		seen[v] = true
	}
}
