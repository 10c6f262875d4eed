package value

import (
	"sort"

	"github.com/corvid-data/valuegen/dist"
)

// WeightedPair pairs a child Value with its selection weight. Weight must
// be non-negative; a weight of zero is a legitimate way to describe a
// child that is never selected (§8 end-to-end scenario 5), so only
// negative weights are rejected.
type WeightedPair struct {
	Child  Value
	Weight float64
}

// Weighted selects one child per Next with probability proportional to its
// weight: it computes prefix sums, draws u uniformly in [0, Σweight), and
// binary-searches for the pair that interval falls in (§4.2). Only the
// selected child is advanced.
type Weighted struct {
	pairs       []WeightedPair
	prefixSums  []float64
	totalWeight float64
	dist        dist.Distribution
	guard       *Guard
	name        string
	current     any
}

// NewWeighted constructs a Weighted over a non-empty pairs slice with a
// positive total weight. A negative individual weight, or a total of zero
// (every child unreachable), panics: the parser rejects both with a parse
// error (E_PARSE) before construction is ever reached.
func NewWeighted(name string, pairs []WeightedPair, d dist.Distribution, guard *Guard) *Weighted {
	if len(pairs) == 0 {
		panic("value: Weighted requires at least one pair")
	}
	prefix := make([]float64, len(pairs))
	var total float64
	for i, p := range pairs {
		if p.Weight < 0 {
			panic("value: Weighted requires non-negative weights")
		}
		total += p.Weight
		prefix[i] = total
	}
	if total <= 0 {
		panic("value: Weighted requires a positive total weight")
	}
	return &Weighted{pairs: pairs, prefixSums: prefix, totalWeight: total, dist: d, guard: guard, name: name}
}

// Current implements Value.
func (n *Weighted) Current() any { return n.current }

// Next implements Value.
func (n *Weighted) Next() (any, error) {
	if err := n.guard.enter(n.name); err != nil {
		return nil, err
	}
	defer n.guard.leave()

	u := n.dist.NextDouble(0, n.totalWeight)
	idx := sort.Search(len(n.prefixSums), func(i int) bool { return n.prefixSums[i] > u })
	if idx == len(n.prefixSums) {
		idx = len(n.prefixSums) - 1
	}
	out, err := n.pairs[idx].Child.Next()
	if err != nil {
		return nil, err
	}
	n.current = out
	return out, nil
}

// Reset implements Value.
func (n *Weighted) Reset() {
	n.current = nil
	for _, p := range n.pairs {
		p.Child.Reset()
	}
}

// value implements Value.
func (*Weighted) value() {}
