package parse

import (
	"github.com/corvid-data/valuegen/diag"
	"github.com/corvid-data/valuegen/dist"
	"github.com/corvid-data/valuegen/location"
	"github.com/corvid-data/valuegen/resolve"
	"github.com/corvid-data/valuegen/value"
)

// Parser turns one definition's expression text into a value.Value tree.
// It is constructed per definition by the graph builder, sharing the
// resolve.Table, value.Guard, and dist.SeedSource across every definition
// in the same build so references and recursion guards operate over the
// whole graph, not just one expression.
type Parser struct {
	src               string
	lex               *Lexer
	source            location.SourceID
	scope             string
	table             *resolve.Table
	guard             *value.Guard
	seeds             dist.SeedSource
	collector         *diag.Collector
	defaultCharRanges []value.CharRange
}

// NewParser constructs a Parser over src, the expression text bound to the
// definition named scope. table and guard are shared across every
// definition in a build; seeds mints independent per-node PRNG seeds;
// collector receives any parse diagnostics (may be nil).
func NewParser(src string, source location.SourceID, scope string, table *resolve.Table, guard *value.Guard, seeds dist.SeedSource, collector *diag.Collector) *Parser {
	return &Parser{
		src:       src,
		lex:       NewLexer(src),
		source:    source,
		scope:     scope,
		table:     table,
		guard:     guard,
		seeds:     seeds,
		collector: collector,
	}
}

// nextSeed mints the next PRNG seed for a distribution or PRNG-backed node.
func (p *Parser) nextSeed() uint64 {
	return p.seeds.Next()
}

// SetDefaultCharRanges overrides the char ranges a bare
// `randomLengthString(n)` (no explicit range list) draws from. Unset, each
// such call falls back to value.DefaultCharRanges.
func (p *Parser) SetDefaultCharRanges(ranges []value.CharRange) {
	p.defaultCharRanges = ranges
}

// ParseDefinition parses the whole of src as one definition's value. If the
// grammar cannot match any production at the top level, the entire source
// text is accepted as a naked (unquoted) string literal spanning to end of
// input, per §6's "naked strings... top-level bare text" rule.
func (p *Parser) ParseDefinition() (value.Value, error) {
	v, err := p.ParseStrict()
	if err != nil {
		return value.NewPrimitive(p.src), nil
	}
	return v, nil
}

// ParseStrict parses the whole of src as one value, without the
// naked-string fallback ParseDefinition applies on grammar failure. Used
// where a syntax error should be reported rather than silently downgraded
// to a literal.
func (p *Parser) ParseStrict() (value.Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	tok := p.lex.Peek()
	if tok.Kind != EOF {
		return nil, p.errorf(tok.Pos, "value", "unexpected trailing input")
	}
	return v, nil
}

// parseValue implements the `value` grammar rule: reference | generator |
// transformer | literal.
func (p *Parser) parseValue() (value.Value, error) {
	tok := p.lex.Peek()
	switch tok.Kind {
	case Dollar:
		return p.parseReference()
	case Number:
		return p.parseNumberLiteral()
	case String:
		p.lex.Next()
		return value.NewPrimitive(tok.Text), nil
	case Ident:
		return p.parseIdentForm()
	default:
		return nil, p.errorf(tok.Pos, "value", "unexpected %s", tok.Kind)
	}
}

// parseReference implements `reference := '$' identifier ('.' identifier)*`.
func (p *Parser) parseReference() (value.Value, error) {
	p.lex.Next() // '$'
	identTok := p.lex.Next()
	if identTok.Kind != Ident {
		return nil, p.errorf(identTok.Pos, "reference", "expected identifier after '$', got %s", identTok.Kind)
	}
	name := identTok.Text
	for p.lex.Peek().Kind == Dot {
		p.lex.Next()
		segTok := p.lex.Next()
		if segTok.Kind != Ident {
			return nil, p.errorf(segTok.Pos, "reference", "expected identifier after '.', got %s", segTok.Kind)
		}
		name += "." + segTok.Text
	}
	return p.table.Resolve(p.scope, name), nil
}

// parseIdentForm dispatches a bare identifier token to the keyword form it
// names (generator, transformer, or bool/null literal). An identifier that
// matches no known keyword is a parse error; bare identifiers are never
// themselves values (only `$name` references are).
func (p *Parser) parseIdentForm() (value.Value, error) {
	tok := p.lex.Peek()
	switch tok.Text {
	case "true":
		p.lex.Next()
		return value.NewPrimitive(true), nil
	case "false":
		p.lex.Next()
		return value.NewPrimitive(false), nil
	case "null":
		p.lex.Next()
		return value.NewNull(), nil
	case "random":
		return p.parseRandom()
	case "circular":
		return p.parseCircular()
	case "uuid":
		p.lex.Next()
		if err := p.expectCall("uuid"); err != nil {
			return nil, err
		}
		return value.NewSeededUUID(p.nextSeed()), nil
	case "list":
		return p.parseList()
	case "weighted":
		return p.parseWeighted()
	case "exactly":
		return p.parseExactly()
	case "randomLengthString":
		return p.parseRandomLengthString()
	case "now":
		p.lex.Next()
		if err := p.expectCall("now"); err != nil {
			return nil, err
		}
		return value.NewNow(), nil
	case "nowDate":
		p.lex.Next()
		if err := p.expectCall("nowDate"); err != nil {
			return nil, err
		}
		return value.NewNowDate(), nil
	case "nowLocalDate":
		p.lex.Next()
		if err := p.expectCall("nowLocalDate"); err != nil {
			return nil, err
		}
		return value.NewNowLocalDate(), nil
	case "nowLocalDateTime":
		p.lex.Next()
		if err := p.expectCall("nowLocalDateTime"); err != nil {
			return nil, err
		}
		return value.NewNowLocalDateTime(), nil
	case "string":
		return p.parseStringTransformer()
	case "json":
		return p.parseJSONTransformer()
	case "time":
		return p.parseTimeTransformer()
	default:
		return nil, p.errorf(tok.Pos, "value", "unknown identifier %q", tok.Text)
	}
}

// expectCall consumes a niladic call's empty parens, e.g. `uuid()`.
func (p *Parser) expectCall(form string) error {
	if err := p.expect(LParen, form); err != nil {
		return err
	}
	return p.expect(RParen, form)
}

func (p *Parser) expect(k Kind, rule string) error {
	tok := p.lex.Next()
	if tok.Kind != k {
		return p.errorf(tok.Pos, rule, "expected %s, got %s", k, tok.Kind)
	}
	return nil
}

// parseValueList parses `'[' valueList ']'` where valueList is a
// comma-separated (possibly empty) list of `value` rules.
func (p *Parser) parseValueList(rule string) ([]value.Value, error) {
	if err := p.expect(LBracket, rule); err != nil {
		return nil, err
	}
	var items []value.Value
	if p.lex.Peek().Kind == RBracket {
		p.lex.Next()
		return items, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		tok := p.lex.Peek()
		if tok.Kind == Comma {
			p.lex.Next()
			continue
		}
		break
	}
	if err := p.expect(RBracket, rule); err != nil {
		return nil, err
	}
	return items, nil
}
