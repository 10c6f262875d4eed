package value

import (
	"fmt"
	"time"
)

// LongRange is an immutable, type-checked [lo, hi) bound pair for integer
// ranges. Invariant: lo < hi.
type LongRange struct {
	Lo, Hi int64
}

// NewLongRange validates lo < hi and returns the range descriptor.
func NewLongRange(lo, hi int64) (LongRange, error) {
	if !(lo < hi) {
		return LongRange{}, fmt.Errorf("value: invalid range: lo (%d) must be < hi (%d)", lo, hi)
	}
	return LongRange{Lo: lo, Hi: hi}, nil
}

// DoubleRange is an immutable, type-checked [lo, hi) bound pair for
// floating-point ranges. Invariant: lo < hi.
type DoubleRange struct {
	Lo, Hi float64
}

// NewDoubleRange validates lo < hi and returns the range descriptor.
func NewDoubleRange(lo, hi float64) (DoubleRange, error) {
	if !(lo < hi) {
		return DoubleRange{}, fmt.Errorf("value: invalid range: lo (%g) must be < hi (%g)", lo, hi)
	}
	return DoubleRange{Lo: lo, Hi: hi}, nil
}

// DateRange is an immutable, type-checked [lo, hi) bound pair over calendar
// dates (time.Time values truncated to the day). Invariant: lo < hi.
type DateRange struct {
	Lo, Hi time.Time
}

// NewDateRange validates lo < hi and returns the range descriptor.
func NewDateRange(lo, hi time.Time) (DateRange, error) {
	if !lo.Before(hi) {
		return DateRange{}, fmt.Errorf("value: invalid range: lo (%s) must be < hi (%s)", lo, hi)
	}
	return DateRange{Lo: lo, Hi: hi}, nil
}
