package value

// List is a composite whose output is formed by advancing every child
// once, left to right, on each Next (§4.2). Current is a snapshot of the
// most recent list.
type List struct {
	children []Value
	guard    *Guard
	name     string
	current  []any
}

// NewList constructs a List over children, which may be empty (an empty
// list value).
func NewList(name string, children []Value, guard *Guard) *List {
	return &List{children: children, guard: guard, name: name}
}

// Current implements Value.
func (n *List) Current() any {
	out := make([]any, len(n.current))
	copy(out, n.current)
	return out
}

// Next implements Value.
func (n *List) Next() (any, error) {
	if err := n.guard.enter(n.name); err != nil {
		return nil, err
	}
	defer n.guard.leave()

	out := make([]any, len(n.children))
	for i, c := range n.children {
		v, err := c.Next()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	n.current = out
	return n.Current(), nil
}

// Reset implements Value.
func (n *List) Reset() {
	n.current = nil
	for _, c := range n.children {
		c.Reset()
	}
}

// value implements Value.
func (*List) value() {}
