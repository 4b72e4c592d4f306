package parser

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/token"
)

// parseType parses one AST-level type node: a pointer, slice, array, tuple
// (or parenthesized single type), Option<T>, Result<T,E>, TaskHandle<T>, or
// a (possibly generic) named type (spec §3 "type").
func (p *Parser) parseType() ast.Node {
	start := p.peek().Pos()
	switch {
	case p.check(token.Star):
		return p.parsePointerType(start)
	case p.check(token.LBracket):
		return p.parseSliceOrArrayType(start)
	case p.check(token.LParen):
		return p.parseParenOrTupleType(start)
	case p.check(token.KwOption):
		p.advance()
		p.expect(token.Lt, "'<' after Option")
		val := p.parseType()
		p.expect(token.Gt, "'>' to close Option<...>")
		rng := rangeFromPos(start, p.lastEndPos())
		n := ast.NewOptionType(rng, val)
		val.Release()
		return n
	case p.check(token.KwResult):
		p.advance()
		p.expect(token.Lt, "'<' after Result")
		ok := p.parseType()
		p.expect(token.Comma, "',' between Result's Ok and Err types")
		errT := p.parseType()
		p.expect(token.Gt, "'>' to close Result<...>")
		rng := rangeFromPos(start, p.lastEndPos())
		n := ast.NewResultType(rng, ok, errT)
		ok.Release()
		errT.Release()
		return n
	case p.check(token.KwTaskHandle):
		p.advance()
		p.expect(token.Lt, "'<' after TaskHandle")
		res := p.parseType()
		p.expect(token.Gt, "'>' to close TaskHandle<...>")
		rng := rangeFromPos(start, p.lastEndPos())
		n := ast.NewTaskHandleType(rng, res)
		res.Release()
		return n
	case p.peek().Kind.IsTypeName() || p.check(token.Identifier):
		return p.parseNamedType(start)
	default:
		tok := p.peek()
		p.errorf(reporter.CodeUnexpectedToken, tok.Pos(), "expected a type, found %s", tok.Kind)
		return ast.NewNamedType(rangeFromPos(start, start), "<error>")
	}
}

func (p *Parser) parsePointerType(start source.Pos) ast.Node {
	p.advance() // *
	mutable := false
	switch {
	case p.check(token.KwMut):
		p.advance()
		mutable = true
	case p.check(token.KwConst):
		p.advance()
	default:
		tok := p.peek()
		p.errorf(reporter.CodeMissingToken, tok.Pos(), "expected 'mut' or 'const' after '*' in a pointer type")
	}
	pointee := p.parseType()
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewPointerType(rng, mutable, pointee)
	pointee.Release()
	return n
}

func (p *Parser) parseSliceOrArrayType(start source.Pos) ast.Node {
	p.advance() // [
	if _, ok := p.accept(token.RBracket); ok {
		elem := p.parseType()
		rng := rangeFromPos(start, p.lastEndPos())
		n := ast.NewSliceType(rng, elem)
		elem.Release()
		return n
	}
	size := p.parseExpr()
	p.expect(token.RBracket, "']' to close array size")
	elem := p.parseType()
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewArrayType(rng, elem, size)
	elem.Release()
	size.Release()
	return n
}

// parseParenOrTupleType disambiguates `(T)` (a parenthesized single type,
// equivalent to T) from `(T, U, ...)` (a tuple type), and `()` (void), per
// spec §4.C4 "Tuple type vs. parenthesized type": a trailing comma before
// the close paren, or more than one element, makes it a tuple.
func (p *Parser) parseParenOrTupleType(start source.Pos) ast.Node {
	p.advance() // (
	if _, ok := p.accept(token.RParen); ok {
		return ast.NewNamedType(rangeFromPos(start, p.lastEndPos()), "void")
	}
	first := p.parseType()
	if _, ok := p.accept(token.RParen); ok {
		// (T) - parenthesized single type, not a one-element tuple.
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
		elements = append(elements, p.parseType())
	}
	p.expect(token.RParen, "')' to close tuple type")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewTupleType(rng, elements...)
	for _, e := range elements {
		e.Release()
	}
	return n
}

func (p *Parser) parseNamedType(start source.Pos) ast.Node {
	tok := p.advance()
	name := tok.Text
	if name == "" {
		name = tok.Kind.String()
	}
	var args []ast.Node
	if p.check(token.Lt) {
		p.advance()
		for {
			args = append(args, p.parseType())
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
		}
		p.expect(token.Gt, "'>' to close type argument list")
	}
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewNamedType(rng, name, args...)
	for _, a := range args {
		a.Release()
	}
	return n
}
