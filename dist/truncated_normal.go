package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// maxRejectionAttempts bounds TruncatedNormal's reject-and-resample loop
// (§4.5); after this many out-of-range draws it falls back to a clamped
// value instead of looping forever.
const maxRejectionAttempts = 100

// TruncatedNormal samples from a normal distribution with the given mean
// and standard deviation, rejecting and resampling while the draw falls
// outside the bounds supplied to each Next* call.
//
// The bounds passed to NextDouble/NextLong/NextInt are authoritative for
// truncation, not any lo/hi given at construction: a `normal(mean, stddev,
// lo, hi)` literal's lo/hi are checked only for lo < hi at construction,
// are not compared with the enclosing range's bounds, and are not
// re-applied at sampling time.
type TruncatedNormal struct {
	rng    *rand.Rand
	mean   float64
	stddev float64
}

// NewTruncatedNormal constructs a TruncatedNormal seeded from the given
// value. lo and hi are validated against the standard range ordering
// invariant (lo < hi) but are not retained; every Next* call supplies its
// own bounds.
func NewTruncatedNormal(seed uint64, mean, stddev, lo, hi float64) (*TruncatedNormal, error) {
	if stddev <= 0 {
		return nil, fmt.Errorf("dist: stddev must be positive, got %g", stddev)
	}
	if hi <= lo {
		return nil, fmt.Errorf("dist: hi must be > lo, got lo=%g hi=%g", lo, hi)
	}
	return &TruncatedNormal{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		mean:   mean,
		stddev: stddev,
	}, nil
}

// sample draws from the normal distribution, rejecting values outside
// [lo, hi) up to maxRejectionAttempts times before clamping.
func (t *TruncatedNormal) sample(lo, hi float64) float64 {
	for range maxRejectionAttempts {
		v := t.mean + t.stddev*t.normFloat64()
		if v >= lo && v < hi {
			return v
		}
	}
	return clampHalfOpen(t.mean+t.stddev*t.normFloat64(), lo, hi)
}

// normFloat64 draws a standard-normal sample via the Box-Muller transform.
func (t *TruncatedNormal) normFloat64() float64 {
	u1 := t.rng.Float64()
	for u1 == 0 {
		u1 = t.rng.Float64()
	}
	u2 := t.rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// clampHalfOpen restricts v to [lo, hi), mapping hi itself to the largest
// representable value strictly below hi so the half-open invariant holds
// even for a clamp-fallback draw that landed exactly on the boundary.
func clampHalfOpen(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v >= hi {
		return math.Nextafter(hi, lo)
	}
	return v
}

// NextInt returns a value in [0, n), rejecting draws outside that window
// before clamping (§4.5).
func (t *TruncatedNormal) NextInt(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("dist.TruncatedNormal.NextInt: n must be positive, got %d", n))
	}
	return int(t.sample(0, float64(n)))
}

// NextLong returns a value in [lo, hi).
func (t *TruncatedNormal) NextLong(lo, hi int64) int64 {
	if hi <= lo {
		panic(fmt.Sprintf("dist.TruncatedNormal.NextLong: hi must be > lo, got lo=%d hi=%d", lo, hi))
	}
	return int64(math.Floor(t.sample(float64(lo), float64(hi))))
}

// NextDouble returns a value in [lo, hi).
func (t *TruncatedNormal) NextDouble(lo, hi float64) float64 {
	if hi <= lo {
		panic(fmt.Sprintf("dist.TruncatedNormal.NextDouble: hi must be > lo, got lo=%g hi=%g", lo, hi))
	}
	return t.sample(lo, hi)
}

// NextBoolean returns a pseudo-random boolean with equal probability,
// independent of the truncation parameters.
func (t *TruncatedNormal) NextBoolean() bool {
	return t.rng.IntN(2) == 1
}
