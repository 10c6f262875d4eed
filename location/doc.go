// Package location provides source position and span tracking for parse
// diagnostics.
//
// This package sits at the foundation tier and can be imported by all other
// packages without introducing circular dependencies.
//
// # SourceID
//
// SourceID identifies which named definition (from the name -> expression-text
// map passed to Build) a [Span] belongs to. Unlike file-backed source systems,
// there is no filesystem here: a SourceID is simply a definition name,
// NFC-normalized so visually identical Unicode spellings compare equal.
//
// # Position
//
// Position identifies a point in a UTF-8 encoded expression string:
//   - Line: 1-based line number (0 = unknown)
//   - Column: 1-based column counting Unicode code points (runes), not bytes
//   - Byte: 0-based byte offset (-1 = unknown)
//
// # Span
//
// Span represents a half-open range [Start, End) within one definition's
// text. Create spans via Point, PointWithByte, or RangeWithBytes; the latter
// panics if End precedes Start (a construction bug in the lexer/parser).
// Merge combines two spans from the same source, used when a parsed
// sub-expression's span is folded into its enclosing call's span.
//
// # Dependencies
//
// This package depends only on the standard library and
// golang.org/x/text/unicode/norm (for NFC normalization), enabling it to be
// imported by every other package without cycles.
package location
