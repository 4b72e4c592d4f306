package parser

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/token"
)

// parsePattern parses one match/if-let/let pattern: a wildcard, a literal,
// a tuple, an identifier binding, a (possibly qualified) enum-variant
// pattern, or a struct pattern (spec §3 "pattern").
func (p *Parser) parsePattern() ast.Node {
	start := p.peek().Pos()
	tok := p.peek()

	switch {
	case tok.Kind == token.Identifier && tok.Text == "_":
		p.advance()
		return ast.NewWildcardPattern(rangeFromPos(start, p.lastEndPos()))
	case tok.Kind == token.Integer:
		p.advance()
		lit := ast.NewIntLiteral(rangeFromPos(start, p.lastEndPos()), tok.IntValue)
		n := ast.NewLiteralPattern(rangeFromPos(start, p.lastEndPos()), lit)
		lit.Release()
		return n
	case tok.Kind == token.Minus && p.peekAhead(1).Kind == token.Integer:
		p.advance()
		intTok := p.advance()
		lit := ast.NewIntLiteral(rangeFromPos(start, p.lastEndPos()), -intTok.IntValue)
		n := ast.NewLiteralPattern(rangeFromPos(start, p.lastEndPos()), lit)
		lit.Release()
		return n
	case tok.Kind == token.Float:
		p.advance()
		lit := ast.NewFloatLiteral(rangeFromPos(start, p.lastEndPos()), tok.FloatValue)
		n := ast.NewLiteralPattern(rangeFromPos(start, p.lastEndPos()), lit)
		lit.Release()
		return n
	case tok.Kind == token.StringLit:
		p.advance()
		lit := ast.NewStringLiteral(rangeFromPos(start, p.lastEndPos()), tok.StringValue)
		n := ast.NewLiteralPattern(rangeFromPos(start, p.lastEndPos()), lit)
		lit.Release()
		return n
	case tok.Kind == token.CharLit:
		p.advance()
		lit := ast.NewCharLiteral(rangeFromPos(start, p.lastEndPos()), rune(tok.IntValue))
		n := ast.NewLiteralPattern(rangeFromPos(start, p.lastEndPos()), lit)
		lit.Release()
		return n
	case tok.Kind == token.Identifier && (tok.Text == "true" || tok.Text == "false"):
		p.advance()
		lit := ast.NewBoolLiteral(rangeFromPos(start, p.lastEndPos()), tok.Text == "true")
		n := ast.NewLiteralPattern(rangeFromPos(start, p.lastEndPos()), lit)
		lit.Release()
		return n
	case tok.Kind == token.LParen:
		return p.parseTuplePattern(start)
	case tok.Kind == token.Identifier || tok.Kind == token.KwOption || tok.Kind == token.KwResult:
		return p.parseIdentifierPattern(start)
	default:
		p.errorf(reporter.CodeInvalidExpr, tok.Pos(), "expected a pattern, found %s", tok.Kind)
		p.advance()
		return ast.NewWildcardPattern(rangeFromPos(start, p.lastEndPos()))
	}
}

func (p *Parser) parseTuplePattern(start source.Pos) ast.Node {
	p.advance() // (
	if _, ok := p.accept(token.RParen); ok {
		return ast.NewTuplePattern(rangeFromPos(start, p.lastEndPos()))
	}
	first := p.parsePattern()
	if _, ok := p.accept(token.RParen); ok {
		return first
	}
	elements := []ast.Node{first}
	for {
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
		if p.check(token.RParen) {
			break
		}
		elements = append(elements, p.parsePattern())
	}
	p.expect(token.RParen, "')' to close tuple pattern")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewTuplePattern(rng, elements...)
	for _, e := range elements {
		e.Release()
	}
	return n
}

// parseIdentifierPattern dispatches a leading identifier to an enum-variant
// pattern (qualified `EnumName.Variant` or bare `Variant(nested)`), a
// struct pattern (`Name { ... }`), or a plain binding.
func (p *Parser) parseIdentifierPattern(start source.Pos) ast.Node {
	name := p.advance().Text

	if p.check(token.Dot) && p.peekAhead(1).Kind == token.Identifier {
		p.advance()
		variant, _ := p.expect(token.Identifier, "enum variant name")
		nested := p.parseOptionalVariantPayloadPattern()
		n := ast.NewEnumPattern(rangeFromPos(start, p.lastEndPos()), name, variant.Text, nested)
		if nested != nil {
			nested.Release()
		}
		return n
	}

	if p.check(token.LBrace) {
		return p.parseStructPattern(start, name)
	}

	if p.check(token.LParen) {
		// Bare `Variant(nested)`: legal in pattern position even though
		// the analogous shorthand is rejected in expression position,
		// because the scrutinee's type disambiguates it (spec §4.C7).
		nested := p.parseOptionalVariantPayloadPattern()
		n := ast.NewEnumPattern(rangeFromPos(start, p.lastEndPos()), "", name, nested)
		if nested != nil {
			nested.Release()
		}
		return n
	}

	return ast.NewIdentPattern(rangeFromPos(start, p.lastEndPos()), name)
}

func (p *Parser) parseOptionalVariantPayloadPattern() ast.Node {
	if _, ok := p.accept(token.LParen); !ok {
		return nil
	}
	if p.check(token.RParen) {
		p.advance()
		return nil
	}
	nested := p.parsePattern()
	p.expect(token.RParen, "')' to close enum variant pattern payload")
	return nested
}

func (p *Parser) parseStructPattern(start source.Pos, typeName string) ast.Node {
	p.advance() // {
	var fields []ast.FieldPattern
	hasRest := false
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		if _, ok := p.accept(token.DotDotDot); ok {
			hasRest = true
			break
		}
		fname, _ := p.expect(token.Identifier, "field name")
		p.expect(token.Colon, "':' after field name")
		sub := p.parsePattern()
		fields = append(fields, ast.FieldPattern{Name: fname.Text, Pattern: sub})
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.RBrace, "'}' to close struct pattern")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewStructPattern(rng, typeName, nil, fields, hasRest)
	for _, f := range fields {
		f.Pattern.Release()
	}
	return n
}
