package value

import "github.com/corvid-data/valuegen/dist"

// Discrete picks one child per Next via a Distribution; the chosen child is
// advanced, the others are left untouched (§4.2).
type Discrete struct {
	children []Value
	dist     dist.Distribution
	guard    *Guard
	name     string
	current  any
}

// NewDiscrete constructs a Discrete over a non-empty children slice.
// Constructing with zero children is a programmer error from the parser's
// perspective (the grammar rejects an empty discrete([...]) at parse time);
// it panics here rather than silently misbehaving.
func NewDiscrete(name string, children []Value, d dist.Distribution, guard *Guard) *Discrete {
	if len(children) == 0 {
		panic("value: Discrete requires at least one child")
	}
	return &Discrete{children: children, dist: d, guard: guard, name: name}
}

// Current implements Value.
func (n *Discrete) Current() any { return n.current }

// Next implements Value.
func (n *Discrete) Next() (any, error) {
	if err := n.guard.enter(n.name); err != nil {
		return nil, err
	}
	defer n.guard.leave()

	idx := n.dist.NextInt(len(n.children))
	chosen := n.children[idx]
	out, err := chosen.Next()
	if err != nil {
		return nil, err
	}
	n.current = out
	return out, nil
}

// Reset implements Value.
func (n *Discrete) Reset() {
	n.current = nil
	for _, c := range n.children {
		c.Reset()
	}
}

// value implements Value.
func (*Discrete) value() {}
