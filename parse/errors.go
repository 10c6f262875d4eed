package parse

import (
	"fmt"

	"github.com/corvid-data/valuegen/diag"
	"github.com/corvid-data/valuegen/location"
)

// ParseError reports a syntax error encountered while reading an
// expression's text (§6's ParseError{line,col,rule,snippet} surface name).
type ParseError struct {
	Line    int
	Col     int
	Byte    int
	Rule    string
	Snippet string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: in %s: %s (near %q)", e.Line, e.Col, e.Rule, e.Message, e.Snippet)
}

// snippet returns up to width runes of src starting at byteOffset, used to
// give ParseError a short excerpt of the offending text.
func snippet(src string, byteOffset, width int) string {
	if byteOffset < 0 || byteOffset > len(src) {
		return ""
	}
	rest := src[byteOffset:]
	runes := []rune(rest)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}

func (p *Parser) errorf(pos location.Position, rule, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	pe := &ParseError{
		Line:    pos.Line,
		Col:     pos.Column,
		Byte:    pos.Byte,
		Rule:    rule,
		Snippet: snippet(p.src, pos.Byte, 16),
		Message: msg,
	}
	if p.collector != nil {
		span := location.PointWithByte(p.source, pos.Line, pos.Column, pos.Byte)
		issue := diag.NewIssue(diag.Error, diag.E_PARSE, msg).WithSpan(span).Build()
		p.collector.Collect(issue)
	}
	return pe
}
