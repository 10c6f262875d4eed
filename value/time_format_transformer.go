package value

import "time"

// TimeFormatTransformer formats its inner value's current output — a
// time.Time — using a Go reference-time layout string (§3). It never
// advances inner (§4.2).
type TimeFormatTransformer struct {
	pattern string
	inner   Value
	current string
}

// NewTimeFormatTransformer constructs a TimeFormatTransformer over inner
// using pattern as a time.Format layout string.
func NewTimeFormatTransformer(pattern string, inner Value) *TimeFormatTransformer {
	return &TimeFormatTransformer{pattern: pattern, inner: inner}
}

// Current implements Value.
func (n *TimeFormatTransformer) Current() any { return n.current }

// Next implements Value.
func (n *TimeFormatTransformer) Next() (any, error) {
	t, ok := n.inner.Current().(time.Time)
	if !ok {
		return nil, &FormatError{Format: n.pattern, Detail: "inner value is not a temporal value"}
	}
	n.current = t.Format(n.pattern)
	return n.current, nil
}

// Reset implements Value.
func (n *TimeFormatTransformer) Reset() {
	n.current = ""
	n.inner.Reset()
}

// value implements Value.
func (*TimeFormatTransformer) value() {}
