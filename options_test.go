package valuegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-data/valuegen"
	"github.com/corvid-data/valuegen/value"
)

func TestWithMaxRecursionDepth_TripsEarlier(t *testing.T) {
	g, err := valuegen.Build(map[string]string{
		"a": "$b",
		"b": "$a",
	}, valuegen.WithMaxRecursionDepth(2))
	require.NoError(t, err)

	root, ok := g.Root("a")
	require.True(t, ok)
	_, err = root.Next()
	require.Error(t, err)
}

func TestWithDefaultCharRanges_AppliesToBareCalls(t *testing.T) {
	g, err := valuegen.Build(map[string]string{
		"s": "randomLengthString(10)",
	}, valuegen.WithDefaultCharRanges([]value.CharRange{{Lo: 'x', Hi: 'x'}}))
	require.NoError(t, err)

	root, ok := g.Root("s")
	require.True(t, ok)
	v, err := root.Next()
	require.NoError(t, err)
	assert.Equal(t, "xxxxxxxxxx", v)
}

func TestWithIssueLimit_StopsCollectingUnresolvedBeyondLimit(t *testing.T) {
	_, err := valuegen.Build(map[string]string{
		"a": "$missingA",
		"b": "$missingB",
		"c": "$missingC",
	}, valuegen.WithIssueLimit(1))
	require.Error(t, err)
}
