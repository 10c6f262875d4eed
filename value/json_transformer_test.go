package value_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-data/valuegen/value"
)

func TestJSONTransformer_RoundTripsPrimitives(t *testing.T) {
	cases := []any{42, "hello", true, 3.5, nil}
	for _, c := range cases {
		p := value.NewPrimitive(c)
		_, _ = p.Next()
		jt := value.NewJSONTransformer(p)

		out, err := jt.Next()
		require.NoError(t, err)

		var decoded any
		require.NoError(t, json.Unmarshal([]byte(out.(string)), &decoded))
		assert.EqualValues(t, c, decoded)
	}
}

func TestJSONTransformer_DoesNotAdvanceInner(t *testing.T) {
	p := value.NewPrimitive(1)
	_, _ = p.Next()
	jt := value.NewJSONTransformer(p)

	_, err := jt.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, p.Current())
}
