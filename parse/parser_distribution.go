package parse

import (
	"github.com/corvid-data/valuegen/dist"
)

// parseDistribution implements `distribution := 'uniform' '(' ')' |
// 'normal' '(' [numberLit{4}] ')'`. rangeLo/rangeHi are the enclosing
// range's own bounds, used to default a zero-arg normal()'s mean, stddev,
// and truncation window.
func (p *Parser) parseDistribution(rangeLo, rangeHi float64) (dist.Distribution, error) {
	nameTok := p.lex.Next()
	if nameTok.Kind != Ident {
		return nil, p.errorf(nameTok.Pos, "distribution", "expected a distribution name, got %s", nameTok.Kind)
	}
	switch nameTok.Text {
	case "uniform":
		if err := p.expectCall("uniform"); err != nil {
			return nil, err
		}
		return dist.NewUniform(p.nextSeed()), nil
	case "normal":
		return p.parseNormal(rangeLo, rangeHi)
	default:
		return nil, p.errorf(nameTok.Pos, "distribution", "unknown distribution %q", nameTok.Text)
	}
}

func (p *Parser) parseNormal(rangeLo, rangeHi float64) (dist.Distribution, error) {
	openTok := p.lex.Peek()
	if err := p.expect(LParen, "normal"); err != nil {
		return nil, err
	}
	if p.lex.Peek().Kind == RParen {
		p.lex.Next()
		mean := (rangeLo + rangeHi) / 2
		stddev := (rangeHi - rangeLo) / 6
		nd, err := dist.NewTruncatedNormal(p.nextSeed(), mean, stddev, rangeLo, rangeHi)
		if err != nil {
			return nil, p.errorf(openTok.Pos, "normal", "invalid implicit normal parameters: %v", err)
		}
		return nd, nil
	}

	params := make([]float64, 0, 4)
	for {
		n, err := p.parseNumLit("normal")
		if err != nil {
			return nil, err
		}
		params = append(params, n.asDouble())
		tok := p.lex.Peek()
		if tok.Kind == Comma {
			p.lex.Next()
			continue
		}
		break
	}
	closeTok := p.lex.Peek()
	if err := p.expect(RParen, "normal"); err != nil {
		return nil, err
	}
	if len(params) != 4 {
		return nil, p.errorf(closeTok.Pos, "normal", "normal() takes exactly 0 or 4 arguments, got %d", len(params))
	}
	nd, err := dist.NewTruncatedNormal(p.nextSeed(), params[0], params[1], params[2], params[3])
	if err != nil {
		return nil, p.errorf(closeTok.Pos, "normal", "invalid normal parameters: %v", err)
	}
	return nd, nil
}
