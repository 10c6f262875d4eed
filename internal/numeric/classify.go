package numeric

import "strconv"

// Kind identifies which of the two numeric literal forms a token takes.
type Kind int

const (
	// LongKind is a bare integer literal with no '.' or exponent.
	LongKind Kind = iota
	// DoubleKind is a literal with a '.' or an exponent, or one that
	// overflows int64.
	DoubleKind
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case LongKind:
		return "long"
	case DoubleKind:
		return "double"
	default:
		return "unknown"
	}
}

// ClassifyLiteral determines whether a numeric literal token is a long or a
// double and parses it accordingly.
//
// This implements the tie-break rule the grammar names for longRange vs.
// doubleRange (§6): a token containing '.' or an exponent marker ('e'/'E')
// is always a double; otherwise the long parse is tried first, falling back
// to double only when the long parse fails (e.g. the literal overflows
// int64).
func ClassifyLiteral(text string) (kind Kind, longVal int64, doubleVal float64, err error) {
	if hasDoubleMarker(text) {
		doubleVal, err = strconv.ParseFloat(text, 64)
		return DoubleKind, 0, doubleVal, err
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return LongKind, n, 0, nil
	}

	doubleVal, err = strconv.ParseFloat(text, 64)
	return DoubleKind, 0, doubleVal, err
}

// hasDoubleMarker reports whether text contains a '.' or an exponent marker,
// which forces double classification regardless of whether the value would
// otherwise fit in an int64.
func hasDoubleMarker(text string) bool {
	for _, r := range text {
		switch r {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}
