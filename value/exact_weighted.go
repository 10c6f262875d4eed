package value

import (
	"sort"

	"github.com/corvid-data/valuegen/dist"
)

// ExactCountPair pairs a child Value with how many times it must appear
// per full cycle. Invariant: count >= 1.
type ExactCountPair struct {
	Child Value
	Count int64
}

// ExactWeighted produces a deterministic multiset: across one cycle of
// length Σcount, child i is emitted exactly count_i times, with the order
// within a cycle randomized by drawing uniformly among children weighted
// by their remaining count (§4.2). When every remaining count reaches
// zero, counts refill to their initial values and a new cycle begins.
type ExactWeighted struct {
	pairs     []ExactCountPair
	remaining []int64
	dist      dist.Distribution
	guard     *Guard
	name      string
	current   any
}

// NewExactWeighted constructs an ExactWeighted over a non-empty pairs
// slice. Every count must be >= 1; the parser enforces this before
// construction, so a bad count here panics rather than failing gracefully.
func NewExactWeighted(name string, pairs []ExactCountPair, d dist.Distribution, guard *Guard) *ExactWeighted {
	if len(pairs) == 0 {
		panic("value: ExactWeighted requires at least one pair")
	}
	remaining := make([]int64, len(pairs))
	for i, p := range pairs {
		if p.Count < 1 {
			panic("value: ExactWeighted requires count >= 1")
		}
		remaining[i] = p.Count
	}
	return &ExactWeighted{pairs: pairs, remaining: remaining, dist: d, guard: guard, name: name}
}

// Current implements Value.
func (n *ExactWeighted) Current() any { return n.current }

// Next implements Value.
func (n *ExactWeighted) Next() (any, error) {
	if err := n.guard.enter(n.name); err != nil {
		return nil, err
	}
	defer n.guard.leave()

	if n.allExhausted() {
		n.refill()
	}

	prefix := make([]float64, len(n.remaining))
	var total float64
	for i, r := range n.remaining {
		total += float64(r)
		prefix[i] = total
	}

	u := n.dist.NextDouble(0, total)
	idx := sort.Search(len(prefix), func(i int) bool { return prefix[i] > u })
	if idx == len(prefix) {
		idx = len(prefix) - 1
	}

	out, err := n.pairs[idx].Child.Next()
	if err != nil {
		return nil, err
	}
	n.remaining[idx]--
	n.current = out
	return out, nil
}

func (n *ExactWeighted) allExhausted() bool {
	for _, r := range n.remaining {
		if r > 0 {
			return false
		}
	}
	return true
}

func (n *ExactWeighted) refill() {
	for i, p := range n.pairs {
		n.remaining[i] = p.Count
	}
}

// Reset implements Value.
func (n *ExactWeighted) Reset() {
	n.current = nil
	n.refill()
	for _, p := range n.pairs {
		p.Child.Reset()
	}
}

// value implements Value.
func (*ExactWeighted) value() {}
