package value

import "encoding/json"

// JSONTransformer serializes its inner value's current output as JSON. It
// never advances inner (§4.2); JSON-decoding the result reproduces inner's
// current value for any primitive (§8 round-trip property).
type JSONTransformer struct {
	inner   Value
	current string
}

// NewJSONTransformer constructs a JSONTransformer over inner.
func NewJSONTransformer(inner Value) *JSONTransformer {
	return &JSONTransformer{inner: inner}
}

// Current implements Value.
func (n *JSONTransformer) Current() any { return n.current }

// Next implements Value.
func (n *JSONTransformer) Next() (any, error) {
	b, err := json.Marshal(n.inner.Current())
	if err != nil {
		return nil, &FormatError{Format: "json", Detail: err.Error()}
	}
	n.current = string(b)
	return n.current, nil
}

// Reset implements Value.
func (n *JSONTransformer) Reset() {
	n.current = ""
	n.inner.Reset()
}

// value implements Value.
func (*JSONTransformer) value() {}
