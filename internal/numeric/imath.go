package numeric

// IntType is a type constraint for all integer types (signed and unsigned).
//
// This custom constraint is used instead of the standard library's
// cmp.Ordered because it restricts to integer types only, preventing
// accidental use with floats or strings in integer-specific contexts (e.g.,
// recursion-depth counters, circular-index arithmetic).
type IntType interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// Min returns the smaller of the two given integer values.
func Min[T IntType](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of the two given integer values.
func Max[T IntType](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T IntType](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}
