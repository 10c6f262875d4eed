package value

// Primitive is a constant node: every Next returns the same stored value as
// Current.
type Primitive struct {
	val any
}

// NewPrimitive constructs a Primitive wrapping val.
func NewPrimitive(val any) *Primitive {
	return &Primitive{val: val}
}

// Current implements Value.
func (p *Primitive) Current() any { return p.val }

// Next implements Value.
func (p *Primitive) Next() (any, error) { return p.val, nil }

// Reset implements Value.
func (*Primitive) Reset() {}

// value implements Value.
func (*Primitive) value() {}
