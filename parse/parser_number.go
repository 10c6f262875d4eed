package parse

import (
	"github.com/corvid-data/valuegen/internal/numeric"
	"github.com/corvid-data/valuegen/value"
)

// parseNumberLiteral implements the numberLit production: classify the
// token text as long or double via internal/numeric and wrap it as a
// constant value.Primitive.
func (p *Parser) parseNumberLiteral() (value.Value, error) {
	tok := p.lex.Next()
	kind, longVal, doubleVal, err := numeric.ClassifyLiteral(tok.Text)
	if err != nil {
		return nil, p.errorf(tok.Pos, "literal", "invalid number literal %q: %v", tok.Text, err)
	}
	switch kind {
	case numeric.LongKind:
		return value.NewPrimitive(longVal), nil
	default:
		return value.NewPrimitive(doubleVal), nil
	}
}

// numLit is the result of scanning a bare numeric literal without wrapping
// it in a Value, used by range and distribution-parameter rules that need
// the raw long/double value rather than a Value node.
type numLit struct {
	kind numeric.Kind
	long int64
	dbl  float64
}

func (n numLit) asDouble() float64 {
	if n.kind == numeric.LongKind {
		return float64(n.long)
	}
	return n.dbl
}

func (p *Parser) parseNumLit(rule string) (numLit, error) {
	tok := p.lex.Next()
	if tok.Kind != Number {
		return numLit{}, p.errorf(tok.Pos, rule, "expected number, got %s", tok.Kind)
	}
	kind, longVal, doubleVal, err := numeric.ClassifyLiteral(tok.Text)
	if err != nil {
		return numLit{}, p.errorf(tok.Pos, rule, "invalid number literal %q: %v", tok.Text, err)
	}
	return numLit{kind: kind, long: longVal, dbl: doubleVal}, nil
}

// rangeLit is the intermediate `Range` helper the grammar comment in §4.1
// mentions: either a long range or a double range, disambiguated per §6's
// longRange/doubleRange tie-break (a '.' or exponent anywhere forces
// double; otherwise both endpoints must parse as long for a long range).
type rangeLit struct {
	isDouble bool
	longLo   int64
	longHi   int64
	dblLo    float64
	dblHi    float64
}

// parseRange implements `longRange | doubleRange`: numberLit '..' numberLit,
// with the whole range widened to double if either endpoint is a double.
func (p *Parser) parseRange(rule string) (rangeLit, error) {
	lo, err := p.parseNumLit(rule)
	if err != nil {
		return rangeLit{}, err
	}
	if err := p.expect(DotDot, rule); err != nil {
		return rangeLit{}, err
	}
	hi, err := p.parseNumLit(rule)
	if err != nil {
		return rangeLit{}, err
	}
	if lo.kind == numeric.LongKind && hi.kind == numeric.LongKind {
		return rangeLit{isDouble: false, longLo: lo.long, longHi: hi.long}, nil
	}
	return rangeLit{isDouble: true, dblLo: lo.asDouble(), dblHi: hi.asDouble()}, nil
}
