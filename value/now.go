package value

import "time"

// Now yields the current wall-clock instant per Next.
type Now struct {
	current time.Time
}

// NewNow constructs a Now node.
func NewNow() *Now { return &Now{} }

// Current implements Value.
func (n *Now) Current() any { return n.current }

// Next implements Value.
func (n *Now) Next() (any, error) {
	n.current = time.Now()
	return n.current, nil
}

// Reset implements Value.
func (n *Now) Reset() { n.current = time.Time{} }

// value implements Value.
func (*Now) value() {}

// NowDate yields the current calendar date (no time-of-day component) per
// Next.
type NowDate struct {
	current time.Time
}

// NewNowDate constructs a NowDate node.
func NewNowDate() *NowDate { return &NowDate{} }

// Current implements Value.
func (n *NowDate) Current() any { return n.current }

// Next implements Value.
func (n *NowDate) Next() (any, error) {
	n.current = toLocalDate(time.Now())
	return n.current, nil
}

// Reset implements Value.
func (n *NowDate) Reset() { n.current = time.Time{} }

// value implements Value.
func (*NowDate) value() {}

// NowLocalDate yields the current date in the local timezone (no
// time-of-day component) per Next.
type NowLocalDate struct {
	current time.Time
}

// NewNowLocalDate constructs a NowLocalDate node.
func NewNowLocalDate() *NowLocalDate { return &NowLocalDate{} }

// Current implements Value.
func (n *NowLocalDate) Current() any { return n.current }

// Next implements Value.
func (n *NowLocalDate) Next() (any, error) {
	local := time.Now().Local()
	y, m, d := local.Date()
	n.current = time.Date(y, m, d, 0, 0, 0, 0, local.Location())
	return n.current, nil
}

// Reset implements Value.
func (n *NowLocalDate) Reset() { n.current = time.Time{} }

// value implements Value.
func (*NowLocalDate) value() {}

// NowLocalDateTime yields the current instant in the local timezone per
// Next.
type NowLocalDateTime struct {
	current time.Time
}

// NewNowLocalDateTime constructs a NowLocalDateTime node.
func NewNowLocalDateTime() *NowLocalDateTime { return &NowLocalDateTime{} }

// Current implements Value.
func (n *NowLocalDateTime) Current() any { return n.current }

// Next implements Value.
func (n *NowLocalDateTime) Next() (any, error) {
	n.current = time.Now().Local()
	return n.current, nil
}

// Reset implements Value.
func (n *NowLocalDateTime) Reset() { n.current = time.Time{} }

// value implements Value.
func (*NowLocalDateTime) value() {}
