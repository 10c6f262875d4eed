package value

import "github.com/corvid-data/valuegen/dist"

// RangeLong samples int64 values from a half-open [lo, hi) range, either
// uniformly or via an arbitrary Distribution. When useEdges is set, the
// first two outputs of the stream are the deterministic edge values lo and
// hi-1 (§4.2); sampling begins only after both edges have been emitted.
type RangeLong struct {
	rng      LongRange
	dist     dist.Distribution
	useEdges bool
	edgeIdx  int
	current  int64
}

// NewRangeLong constructs a RangeLong over rng using d for non-edge draws.
func NewRangeLong(rng LongRange, useEdges bool, d dist.Distribution) *RangeLong {
	return &RangeLong{rng: rng, dist: d, useEdges: useEdges}
}

// Current implements Value.
func (r *RangeLong) Current() any { return r.current }

// Next implements Value.
func (r *RangeLong) Next() (any, error) {
	var v int64
	switch {
	case r.useEdges && r.edgeIdx == 0:
		v = r.rng.Lo
		r.edgeIdx++
	case r.useEdges && r.edgeIdx == 1:
		v = r.rng.Hi - 1
		r.edgeIdx++
	default:
		v = r.dist.NextLong(r.rng.Lo, r.rng.Hi)
	}
	r.current = v
	return v, nil
}

// Reset implements Value. Edge-case emission restarts from lo.
func (r *RangeLong) Reset() {
	r.edgeIdx = 0
}

// value implements Value.
func (*RangeLong) value() {}
