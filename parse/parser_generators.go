package parse

import (
	"github.com/corvid-data/valuegen/dist"
	"github.com/corvid-data/valuegen/internal/numeric"
	"github.com/corvid-data/valuegen/value"
)

// parseRandom implements `random(...)`, which is either a discrete
// generator (`random([...])`) or a numeric range (`random(longRange|
// doubleRange, ...)`), disambiguated by what follows the opening paren.
func (p *Parser) parseRandom() (value.Value, error) {
	p.lex.Next() // 'random'
	if err := p.expect(LParen, "random"); err != nil {
		return nil, err
	}
	if p.lex.Peek().Kind == LBracket {
		return p.parseDiscreteBody()
	}
	return p.parseRangeBody()
}

// parseDiscreteBody implements the remainder of
// `discrete := 'random' '(' '[' valueList ']' (',' distribution)? ')'`
// after `random(` has already been consumed.
func (p *Parser) parseDiscreteBody() (value.Value, error) {
	children, err := p.parseValueList("discrete")
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		tok := p.lex.Peek()
		return nil, p.errorf(tok.Pos, "discrete", "discrete requires at least one value")
	}
	d, err := p.optionalTrailingDistribution("discrete", 0, float64(len(children)))
	if err != nil {
		return nil, err
	}
	if err := p.expect(RParen, "discrete"); err != nil {
		return nil, err
	}
	return value.NewDiscrete(p.scope, children, d, p.guard), nil
}

// parseRangeBody implements the remainder of `rangeLong`/`rangeDouble`
// after `random(` has already been consumed: a longRange or doubleRange,
// an optional `useEdges` bool, and an optional trailing distribution.
func (p *Parser) parseRangeBody() (value.Value, error) {
	rng, err := p.parseRange("random")
	if err != nil {
		return nil, err
	}
	useEdges := false
	var d dist.Distribution
	if p.lex.Peek().Kind == Comma {
		p.lex.Next()
		boolTok := p.lex.Next()
		b, err := parseBool(boolTok)
		if err != nil {
			return nil, p.errorf(boolTok.Pos, "random", "%v", err)
		}
		useEdges = b
		if p.lex.Peek().Kind == Comma {
			p.lex.Next()
			lo, hi := rng.dblLo, rng.dblHi
			if !rng.isDouble {
				lo, hi = float64(rng.longLo), float64(rng.longHi)
			}
			d, err = p.parseDistribution(lo, hi)
			if err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(RParen, "random"); err != nil {
		return nil, err
	}
	if d == nil {
		d = dist.NewUniform(p.nextSeed())
	}
	if rng.isDouble {
		dr, err := value.NewDoubleRange(rng.dblLo, rng.dblHi)
		if err != nil {
			return nil, wrapRangeErr(p, err)
		}
		return value.NewRangeDouble(dr, useEdges, d), nil
	}
	lr, err := value.NewLongRange(rng.longLo, rng.longHi)
	if err != nil {
		return nil, wrapRangeErr(p, err)
	}
	return value.NewRangeLong(lr, useEdges, d), nil
}

func wrapRangeErr(p *Parser, err error) error {
	return p.errorf(p.lex.Peek().Pos, "range", "%v", err)
}

func parseBool(tok Token) (bool, error) {
	switch {
	case tok.Kind == Ident && tok.Text == "true":
		return true, nil
	case tok.Kind == Ident && tok.Text == "false":
		return false, nil
	default:
		return false, &ParseError{Line: tok.Pos.Line, Col: tok.Pos.Column, Rule: "bool", Message: "expected 'true' or 'false'"}
	}
}

// optionalTrailingDistribution parses an optional `(',' distribution)?`
// tail, used by discrete.
func (p *Parser) optionalTrailingDistribution(rule string, lo, hi float64) (dist.Distribution, error) {
	if p.lex.Peek().Kind != Comma {
		return dist.NewUniform(p.nextSeed()), nil
	}
	p.lex.Next()
	return p.parseDistribution(lo, hi)
}

// parseCircular implements `circular := 'circular' '(' '[' valueList ']' ')'`
// and `circularRange := 'circular' '(' (longRange|doubleRange) ',' numLit ')'`.
func (p *Parser) parseCircular() (value.Value, error) {
	p.lex.Next() // 'circular'
	if err := p.expect(LParen, "circular"); err != nil {
		return nil, err
	}
	if p.lex.Peek().Kind == LBracket {
		children, err := p.parseValueList("circular")
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			tok := p.lex.Peek()
			return nil, p.errorf(tok.Pos, "circular", "circular requires at least one value")
		}
		if err := p.expect(RParen, "circular"); err != nil {
			return nil, err
		}
		return value.NewCircular(p.scope, children, p.guard), nil
	}

	rng, err := p.parseRange("circularRange")
	if err != nil {
		return nil, err
	}
	if err := p.expect(Comma, "circularRange"); err != nil {
		return nil, err
	}
	stepTok := p.lex.Peek()
	step, err := p.parseNumLit("circularRange")
	if err != nil {
		return nil, err
	}
	if err := p.expect(RParen, "circularRange"); err != nil {
		return nil, err
	}
	if step.asDouble() <= 0 {
		return nil, p.errorf(stepTok.Pos, "circularRange", "step must be positive, got %g", step.asDouble())
	}
	if rng.isDouble {
		dr, err := value.NewDoubleRange(rng.dblLo, rng.dblHi)
		if err != nil {
			return nil, p.errorf(stepTok.Pos, "circularRange", "%v", err)
		}
		return value.NewCircularRangeDouble(dr, step.asDouble()), nil
	}
	lr, err := value.NewLongRange(rng.longLo, rng.longHi)
	if err != nil {
		return nil, p.errorf(stepTok.Pos, "circularRange", "%v", err)
	}
	longStep := int64(step.asDouble())
	if longStep <= 0 {
		return nil, p.errorf(stepTok.Pos, "circularRange", "step for a long range must be at least 1, got %g", step.asDouble())
	}
	return value.NewCircularRangeLong(lr, longStep), nil
}

// parseList implements `list := 'list' '(' '[' valueList ']' ')'`.
func (p *Parser) parseList() (value.Value, error) {
	p.lex.Next() // 'list'
	if err := p.expect(LParen, "list"); err != nil {
		return nil, err
	}
	children, err := p.parseValueList("list")
	if err != nil {
		return nil, err
	}
	if err := p.expect(RParen, "list"); err != nil {
		return nil, err
	}
	return value.NewList(p.scope, children, p.guard), nil
}

// parseWeighted implements `weighted := 'weighted' '(' '[' wpairList ']' ')'`
// and `wpair := '(' value ',' numberLit ')'`.
func (p *Parser) parseWeighted() (value.Value, error) {
	p.lex.Next() // 'weighted'
	if err := p.expect(LParen, "weighted"); err != nil {
		return nil, err
	}
	if err := p.expect(LBracket, "weighted"); err != nil {
		return nil, err
	}
	var pairs []value.WeightedPair
	if p.lex.Peek().Kind != RBracket {
		for {
			pair, err := p.parseWeightedPair()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair)
			if p.lex.Peek().Kind == Comma {
				p.lex.Next()
				continue
			}
			break
		}
	}
	if err := p.expect(RBracket, "weighted"); err != nil {
		return nil, err
	}
	if err := p.expect(RParen, "weighted"); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		tok := p.lex.Peek()
		return nil, p.errorf(tok.Pos, "weighted", "weighted requires at least one pair")
	}
	var total float64
	for _, pair := range pairs {
		total += pair.Weight
	}
	if total <= 0 {
		tok := p.lex.Peek()
		return nil, p.errorf(tok.Pos, "weighted", "weighted requires a positive total weight, got %g", total)
	}
	return value.NewWeighted(p.scope, pairs, dist.NewUniform(p.nextSeed()), p.guard), nil
}

func (p *Parser) parseWeightedPair() (value.WeightedPair, error) {
	if err := p.expect(LParen, "wpair"); err != nil {
		return value.WeightedPair{}, err
	}
	child, err := p.parseValue()
	if err != nil {
		return value.WeightedPair{}, err
	}
	if err := p.expect(Comma, "wpair"); err != nil {
		return value.WeightedPair{}, err
	}
	weightTok := p.lex.Peek()
	weight, err := p.parseNumLit("wpair")
	if err != nil {
		return value.WeightedPair{}, err
	}
	if err := p.expect(RParen, "wpair"); err != nil {
		return value.WeightedPair{}, err
	}
	if weight.asDouble() < 0 {
		return value.WeightedPair{}, p.errorf(weightTok.Pos, "wpair", "weight must be non-negative, got %g", weight.asDouble())
	}
	return value.WeightedPair{Child: child, Weight: weight.asDouble()}, nil
}

// parseExactly implements `exactly := 'exactly' '(' '[' cpairList ']' ')'`
// and `cpair := '(' value ',' longLit ')'`.
func (p *Parser) parseExactly() (value.Value, error) {
	p.lex.Next() // 'exactly'
	if err := p.expect(LParen, "exactly"); err != nil {
		return nil, err
	}
	if err := p.expect(LBracket, "exactly"); err != nil {
		return nil, err
	}
	var pairs []value.ExactCountPair
	if p.lex.Peek().Kind != RBracket {
		for {
			pair, err := p.parseExactCountPair()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair)
			if p.lex.Peek().Kind == Comma {
				p.lex.Next()
				continue
			}
			break
		}
	}
	if err := p.expect(RBracket, "exactly"); err != nil {
		return nil, err
	}
	if err := p.expect(RParen, "exactly"); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		tok := p.lex.Peek()
		return nil, p.errorf(tok.Pos, "exactly", "exactly requires at least one pair")
	}
	return value.NewExactWeighted(p.scope, pairs, dist.NewUniform(p.nextSeed()), p.guard), nil
}

func (p *Parser) parseExactCountPair() (value.ExactCountPair, error) {
	if err := p.expect(LParen, "cpair"); err != nil {
		return value.ExactCountPair{}, err
	}
	child, err := p.parseValue()
	if err != nil {
		return value.ExactCountPair{}, err
	}
	if err := p.expect(Comma, "cpair"); err != nil {
		return value.ExactCountPair{}, err
	}
	countTok := p.lex.Peek()
	count, err := p.parseNumLit("cpair")
	if err != nil {
		return value.ExactCountPair{}, err
	}
	if err := p.expect(RParen, "cpair"); err != nil {
		return value.ExactCountPair{}, err
	}
	if count.kind != numeric.LongKind {
		return value.ExactCountPair{}, p.errorf(countTok.Pos, "cpair", "count must be a long literal")
	}
	if count.long <= 0 {
		return value.ExactCountPair{}, p.errorf(countTok.Pos, "cpair", "count must be positive, got %d", count.long)
	}
	return value.ExactCountPair{Child: child, Count: count.long}, nil
}

// parseRandomLengthString implements
// `randomLenStr := 'randomLengthString' '(' intLit (',' '[' charRangeList ']')? ')'`.
func (p *Parser) parseRandomLengthString() (value.Value, error) {
	p.lex.Next() // 'randomLengthString'
	if err := p.expect(LParen, "randomLengthString"); err != nil {
		return nil, err
	}
	lengthTok := p.lex.Peek()
	length, err := p.parseNumLit("randomLengthString")
	if err != nil {
		return nil, err
	}
	if length.kind != numeric.LongKind {
		return nil, p.errorf(lengthTok.Pos, "randomLengthString", "length must be a long literal")
	}
	ranges := p.defaultCharRanges
	if p.lex.Peek().Kind == Comma {
		p.lex.Next()
		ranges, err = p.parseCharRangeList()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(RParen, "randomLengthString"); err != nil {
		return nil, err
	}
	rs, err := value.NewRandomLengthString(int(length.long), ranges, dist.NewUniform(p.nextSeed()))
	if err != nil {
		return nil, p.errorf(lengthTok.Pos, "randomLengthString", "%v", err)
	}
	return rs, nil
}

// parseCharRangeList parses `'[' charRangeList ']'`, where each element is
// a two-character string literal naming an inclusive rune range (e.g.
// "az", "AZ", "09").
func (p *Parser) parseCharRangeList() ([]value.CharRange, error) {
	if err := p.expect(LBracket, "charRangeList"); err != nil {
		return nil, err
	}
	var ranges []value.CharRange
	if p.lex.Peek().Kind != RBracket {
		for {
			tok := p.lex.Next()
			if tok.Kind != String {
				return nil, p.errorf(tok.Pos, "charRange", "expected a two-character string literal, got %s", tok.Kind)
			}
			runes := []rune(tok.Text)
			if len(runes) != 2 {
				return nil, p.errorf(tok.Pos, "charRange", "char range literal must name exactly two runes, got %q", tok.Text)
			}
			ranges = append(ranges, value.CharRange{Lo: runes[0], Hi: runes[1]})
			if p.lex.Peek().Kind == Comma {
				p.lex.Next()
				continue
			}
			break
		}
	}
	if err := p.expect(RBracket, "charRangeList"); err != nil {
		return nil, err
	}
	return ranges, nil
}
