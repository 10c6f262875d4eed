package value

// Null always yields a null output.
type Null struct{}

// NewNull constructs a Null node.
func NewNull() *Null { return &Null{} }

// Current implements Value.
func (*Null) Current() any { return nil }

// Next implements Value.
func (*Null) Next() (any, error) { return nil, nil }

// Reset implements Value.
func (*Null) Reset() {}

// value implements Value.
func (*Null) value() {}
