package value

// Circular cycles through its children in insertion order, wrapping. It
// never consults a Distribution; selection is strictly deterministic
// (§4.2).
type Circular struct {
	children []Value
	guard    *Guard
	name     string
	idx      int
	current  any
}

// NewCircular constructs a Circular over a non-empty children slice.
func NewCircular(name string, children []Value, guard *Guard) *Circular {
	if len(children) == 0 {
		panic("value: Circular requires at least one child")
	}
	return &Circular{children: children, guard: guard, name: name}
}

// Current implements Value.
func (n *Circular) Current() any { return n.current }

// Next implements Value.
func (n *Circular) Next() (any, error) {
	if err := n.guard.enter(n.name); err != nil {
		return nil, err
	}
	defer n.guard.leave()

	chosen := n.children[n.idx]
	out, err := chosen.Next()
	if err != nil {
		return nil, err
	}
	n.idx = (n.idx + 1) % len(n.children)
	n.current = out
	return out, nil
}

// Reset implements Value.
func (n *Circular) Reset() {
	n.idx = 0
	n.current = nil
	for _, c := range n.children {
		c.Reset()
	}
}

// value implements Value.
func (*Circular) value() {}
