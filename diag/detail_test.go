package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-data/valuegen/diag"
)

func TestExpectedGot(t *testing.T) {
	got := diag.ExpectedGot("0 or 4", "2")
	assert.Equal(t, []diag.Detail{
		{Key: diag.DetailKeyExpected, Value: "0 or 4"},
		{Key: diag.DetailKeyGot, Value: "2"},
	}, got)
}
