package parse

import (
	"github.com/corvid-data/valuegen/value"
)

// parseStringTransformer implements
// `transformer := 'string' '(' stringLit (',' value)* ')'`.
func (p *Parser) parseStringTransformer() (value.Value, error) {
	p.lex.Next() // 'string'
	if err := p.expect(LParen, "string"); err != nil {
		return nil, err
	}
	formatTok := p.lex.Next()
	if formatTok.Kind != String {
		return nil, p.errorf(formatTok.Pos, "string", "expected a format string literal, got %s", formatTok.Kind)
	}
	var args []value.Value
	for p.lex.Peek().Kind == Comma {
		p.lex.Next()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if err := p.expect(RParen, "string"); err != nil {
		return nil, err
	}
	st, err := value.NewStringTransformer(formatTok.Text, args)
	if err != nil {
		return nil, p.errorf(formatTok.Pos, "string", "%v", err)
	}
	return st, nil
}

// parseJSONTransformer implements `'json' '(' reference ')'`.
func (p *Parser) parseJSONTransformer() (value.Value, error) {
	p.lex.Next() // 'json'
	if err := p.expect(LParen, "json"); err != nil {
		return nil, err
	}
	refTok := p.lex.Peek()
	if refTok.Kind != Dollar {
		return nil, p.errorf(refTok.Pos, "json", "json() requires a reference argument, got %s", refTok.Kind)
	}
	inner, err := p.parseReference()
	if err != nil {
		return nil, err
	}
	if err := p.expect(RParen, "json"); err != nil {
		return nil, err
	}
	return value.NewJSONTransformer(inner), nil
}

// parseTimeTransformer implements `'time' '(' stringLit ',' value ')'`.
func (p *Parser) parseTimeTransformer() (value.Value, error) {
	p.lex.Next() // 'time'
	if err := p.expect(LParen, "time"); err != nil {
		return nil, err
	}
	patternTok := p.lex.Next()
	if patternTok.Kind != String {
		return nil, p.errorf(patternTok.Pos, "time", "expected a layout string literal, got %s", patternTok.Kind)
	}
	if err := p.expect(Comma, "time"); err != nil {
		return nil, err
	}
	inner, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.expect(RParen, "time"); err != nil {
		return nil, err
	}
	return value.NewTimeFormatTransformer(patternTok.Text, inner), nil
}
