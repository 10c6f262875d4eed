package value

import "github.com/corvid-data/valuegen/dist"

// RangeDouble samples float64 values from a half-open [lo, hi) range for
// ordinary draws. Edge-case emission is the one deliberate exception (§4.6
// open-question resolution): it treats the range as closed, so the first
// two outputs of a useEdges stream are exactly lo and hi.
type RangeDouble struct {
	rng      DoubleRange
	dist     dist.Distribution
	useEdges bool
	edgeIdx  int
	current  float64
}

// NewRangeDouble constructs a RangeDouble over rng using d for non-edge
// draws.
func NewRangeDouble(rng DoubleRange, useEdges bool, d dist.Distribution) *RangeDouble {
	return &RangeDouble{rng: rng, dist: d, useEdges: useEdges}
}

// Current implements Value.
func (r *RangeDouble) Current() any { return r.current }

// Next implements Value.
func (r *RangeDouble) Next() (any, error) {
	var v float64
	switch {
	case r.useEdges && r.edgeIdx == 0:
		v = r.rng.Lo
		r.edgeIdx++
	case r.useEdges && r.edgeIdx == 1:
		v = r.rng.Hi
		r.edgeIdx++
	default:
		v = r.dist.NextDouble(r.rng.Lo, r.rng.Hi)
	}
	r.current = v
	return v, nil
}

// Reset implements Value. Edge-case emission restarts from lo.
func (r *RangeDouble) Reset() {
	r.edgeIdx = 0
}

// value implements Value.
func (*RangeDouble) value() {}
