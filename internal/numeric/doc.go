// Package numeric provides small numeric helpers: integer generics (Min,
// Max, Clamp) and the long-vs-double literal classification the parser
// applies to a number token.
//
// # Internal package
//
// This package is internal to the module and is not importable outside it.
//
// # Literal classification
//
// [ClassifyLiteral] implements the tie-break described in §6: a bare number
// token is a long unless it contains a '.' or an exponent, in which case it
// is a double. The probe itself is int64-then-float64.
package numeric
