package location

import "fmt"

// Span represents a half-open range [Start, End) within one named definition's
// expression text.
//
// Span is a value type with exported fields. Always pass by value.
// The zero value represents "no location"; use IsZero to check.
type Span struct {
	// Source is the identity key for this span (the definition name being parsed).
	Source SourceID

	// Start is the inclusive start position of the span.
	Start Position

	// End is the exclusive end position of the span.
	// For single-point spans, End equals Start.
	End Position
}

// Point creates a single-point Span where Start == End.
// This is the canonical way to create spans from lexer token positions when
// a byte offset is not yet known.
func Point(source SourceID, line, column int) Span {
	pos := Position{Line: line, Column: column, Byte: -1}
	return Span{Source: source, Start: pos, End: pos}
}

// PointWithByte creates a single-point Span with a known byte offset.
func PointWithByte(source SourceID, line, column, byteOffset int) Span {
	pos := Position{Line: line, Column: column, Byte: byteOffset}
	return Span{Source: source, Start: pos, End: pos}
}

// RangeWithBytes creates a Span from start to end positions with known byte
// offsets. Panics if end is before start (geometric soundness invariant),
// catching construction bugs in the lexer/parser early.
func RangeWithBytes(source SourceID, startLine, startCol, startByte, endLine, endCol, endByte int) Span {
	start := Position{Line: startLine, Column: startCol, Byte: startByte}
	end := Position{Line: endLine, Column: endCol, Byte: endByte}
	if endByte < startByte {
		panic(fmt.Sprintf("location.RangeWithBytes: end byte %d before start byte %d", endByte, startByte))
	}
	return Span{Source: source, Start: start, End: end}
}

// IsZero reports whether the span is the zero value.
func (s Span) IsZero() bool {
	return s.Source.IsZero() && s.Start.IsZero() && s.End.IsZero()
}

// IsPoint reports whether the span represents a single point (Start == End).
func (s Span) IsPoint() bool {
	return s.Start == s.End
}

// String returns a human-readable representation of the span:
// "<no location>" for zero spans, "source:line:column" for point spans, or
// "source:startLine:startCol-endLine:endCol" for range spans.
func (s Span) String() string {
	if s.IsZero() {
		return "<no location>"
	}
	src := s.Source.String()
	if s.IsPoint() {
		return fmt.Sprintf("%s:%s", src, s.Start.String())
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", src, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// Merge combines two spans from the same source into one covering both.
// Panics if the sources differ; callers merging sub-expression spans during
// parsing control both operands and know they share a source.
func Merge(a, b Span) Span {
	if a.Source != b.Source {
		panic(fmt.Sprintf("location.Merge: source mismatch: %q vs %q", a.Source.String(), b.Source.String()))
	}
	start := a.Start
	if positionBefore(b.Start, a.Start) {
		start = b.Start
	}
	end := a.End
	if positionBefore(a.End, b.End) {
		end = b.End
	}
	return Span{Source: a.Source, Start: start, End: end}
}

// positionBefore reports whether a is strictly before b using line/column.
// Returns false if either position is not fully known.
func positionBefore(a, b Position) bool {
	if !a.IsKnown() || !b.IsKnown() {
		return false
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
