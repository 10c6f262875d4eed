package value

import (
	"fmt"
	"strings"

	"github.com/corvid-data/valuegen/dist"
)

// RandomLengthString generates a fixed-length string whose characters are
// drawn uniformly from the union of a set of inclusive code-point ranges
// (§4.2). When no ranges are supplied, DefaultCharRanges is used.
type RandomLengthString struct {
	length int
	ranges []CharRange
	total  int64
	dist   dist.Distribution
	current string
}

// NewRandomLengthString constructs a RandomLengthString. length must be
// non-negative. ranges defaults to DefaultCharRanges when empty.
func NewRandomLengthString(length int, ranges []CharRange, d dist.Distribution) (*RandomLengthString, error) {
	if length < 0 {
		return nil, fmt.Errorf("value: randomLengthString requires a non-negative length, got %d", length)
	}
	if len(ranges) == 0 {
		ranges = DefaultCharRanges
	}
	var total int64
	for _, r := range ranges {
		if r.Hi < r.Lo {
			return nil, fmt.Errorf("value: invalid char range [%q, %q]", r.Lo, r.Hi)
		}
		total += r.size()
	}
	return &RandomLengthString{length: length, ranges: ranges, total: total, dist: d}, nil
}

// Current implements Value.
func (n *RandomLengthString) Current() any { return n.current }

// Next implements Value.
func (n *RandomLengthString) Next() (any, error) {
	var sb strings.Builder
	sb.Grow(n.length)
	for range n.length {
		sb.WriteRune(n.pickRune())
	}
	n.current = sb.String()
	return n.current, nil
}

func (n *RandomLengthString) pickRune() rune {
	idx := int64(n.dist.NextInt(int(n.total)))
	for _, r := range n.ranges {
		if idx < r.size() {
			return r.Lo + rune(idx)
		}
		idx -= r.size()
	}
	// Unreachable: idx is drawn from [0, total) and the loop above covers
	// every range's share of that span.
	return n.ranges[0].Lo
}

// Reset implements Value.
func (n *RandomLengthString) Reset() {
	n.current = ""
}

// value implements Value.
func (*RandomLengthString) value() {}
