package value

import (
	"time"

	"github.com/corvid-data/valuegen/dist"
)

const epochDayLayout = "2006-01-02"

// RangeLocalDate samples calendar dates (no time-of-day component) from a
// half-open [lo, hi) range of days, drawing via Distribution.NextLong over
// epoch-day offsets. useEdges emits lo then hi.minusDays(1) as the first
// two outputs, matching RangeLong's integer edge pairing (§4.2).
type RangeLocalDate struct {
	rng      DateRange
	dist     dist.Distribution
	useEdges bool
	edgeIdx  int
	current  time.Time
}

// NewRangeLocalDate constructs a RangeLocalDate over rng using d for
// non-edge draws. rng.Lo and rng.Hi are normalized to UTC midnight.
func NewRangeLocalDate(rng DateRange, useEdges bool, d dist.Distribution) *RangeLocalDate {
	rng.Lo = toLocalDate(rng.Lo)
	rng.Hi = toLocalDate(rng.Hi)
	return &RangeLocalDate{rng: rng, dist: d, useEdges: useEdges}
}

// Current implements Value.
func (r *RangeLocalDate) Current() any { return r.current }

// Next implements Value.
func (r *RangeLocalDate) Next() (any, error) {
	var v time.Time
	switch {
	case r.useEdges && r.edgeIdx == 0:
		v = r.rng.Lo
		r.edgeIdx++
	case r.useEdges && r.edgeIdx == 1:
		v = r.rng.Hi.AddDate(0, 0, -1)
		r.edgeIdx++
	default:
		loDay, hiDay := epochDay(r.rng.Lo), epochDay(r.rng.Hi)
		v = fromEpochDay(r.dist.NextLong(loDay, hiDay))
	}
	r.current = v
	return v, nil
}

// Reset implements Value. Edge-case emission restarts from lo.
func (r *RangeLocalDate) Reset() {
	r.edgeIdx = 0
}

// value implements Value.
func (*RangeLocalDate) value() {}

func toLocalDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func epochDay(t time.Time) int64 {
	return t.Unix() / int64(24*time.Hour/time.Second)
}

func fromEpochDay(day int64) time.Time {
	return time.Unix(day*int64(24*time.Hour/time.Second), 0).UTC()
}
