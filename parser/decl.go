package parser

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/token"
	"github.com/asthra-lang/asthrac/types"
)

// parseAnnotations parses zero or more `#[name]` attributes, used for FFI
// ownership tags (spec §3 "ffi-annotation"). It is called only ahead of a
// top-level declaration; annotations on parameters are not parsed. Unknown annotation names are reported as a warning
// and otherwise ignored — they are recorded, never enforced (spec §1).
func (p *Parser) parseAnnotations() []types.Ownership {
	var out []types.Ownership
	for p.check(token.Hash) {
		p.advance()
		p.expect(token.LBracket, "'[' after '#'")
		name, _ := p.expect(token.Identifier, "annotation name")
		switch name.Text {
		case "transfer_full":
			out = append(out, types.TransferFull)
		case "transfer_none":
			out = append(out, types.TransferNone)
		case "borrowed":
			out = append(out, types.Borrowed)
		default:
			p.handler.Report(reporter.NewWarning(reporter.CodeUnusedImport, name.Pos(), "unrecognized annotation #[%s]", name.Text))
		}
		p.expect(token.RBracket, "']' to close annotation")
	}
	return out
}

func (p *Parser) parseVisibility() ast.Visibility {
	if _, ok := p.accept(token.KwPub); ok {
		return ast.Public
	}
	p.accept(token.KwPriv)
	return ast.Private
}

// parseTypeParams parses an optional `<A, B, ...>` generic parameter list.
func (p *Parser) parseTypeParams() []string {
	if !p.check(token.Lt) {
		return nil
	}
	p.advance()
	var params []string
	for {
		name, ok := p.expect(token.Identifier, "type parameter name")
		if ok {
			params = append(params, name.Text)
		}
		if _, ok := p.accept(token.Comma); ok {
			continue
		}
		break
	}
	p.expect(token.Gt, "'>' to close type parameter list")
	return params
}

// parseParamList parses `(name: Type, ...)`, or the literal `(none)` for
// an explicitly empty list (spec §4.C4 "Function-call arguments": empty
// argument lists are spelled f(none) at call sites; declarations accept the
// same spelling for symmetry, though an empty `()` is equally valid here).
func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.LParen, "'(' to start parameter list")
	var params []ast.Param
	if p.check(token.Identifier) && p.peek().Text == "none" && p.peekAhead(1).Kind == token.RParen {
		p.advance()
		p.expect(token.RParen, "')' to close parameter list")
		return nil
	}
	for !p.check(token.RParen) && !p.check(token.Eof) {
		name, _ := p.expect(token.Identifier, "parameter name")
		p.expect(token.Colon, "':' after parameter name")
		typ := p.parseType()
		params = append(params, ast.Param{Name: name.Text, Type: typ})
		// typ is released once, by the caller's releaseParamTypes after the
		// enclosing declaration node has retained it.
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.RParen, "')' to close parameter list")
	return params
}

func (p *Parser) parseReturnType(start source.Pos) ast.Node {
	if _, ok := p.accept(token.Arrow); ok {
		return p.parseType()
	}
	return ast.NewNamedType(source.Range{Start: start, End: start}, "void")
}

// parseTopLevelDecl parses one package-level declaration: an optional
// visibility prefix followed by extern/fn/struct/enum/impl (spec §3
// "Declarations"). Returns nil (and enters panic mode) on an unrecognized
// leading token.
func (p *Parser) parseTopLevelDecl() ast.Node {
	start := p.peek().Pos()
	ffi := p.parseAnnotations()
	vis := p.parseVisibility()

	switch {
	case p.check(token.KwExtern):
		return p.parseExternDecl(start, ffi)
	case p.check(token.KwFn):
		return p.parseFunctionDecl(start, vis, ffi)
	case p.check(token.KwStruct):
		return p.parseStructDecl(start, vis)
	case p.check(token.KwEnum):
		return p.parseEnumDecl(start, vis)
	case p.check(token.KwImpl):
		return p.parseImplDecl(start)
	default:
		tok := p.peek()
		p.errorf(reporter.CodeUnexpectedToken, tok.Pos(), "expected a top-level declaration, found %s", tok.Kind)
		return nil
	}
}

func (p *Parser) parseFunctionDecl(start source.Pos, vis ast.Visibility, ffi []types.Ownership) ast.Node {
	p.advance() // fn
	name, _ := p.expect(token.Identifier, "function name")
	typeParams := p.parseTypeParams()
	params := p.parseParamList()
	ret := p.parseReturnType(p.lastEndPos())

	var body ast.Node
	if p.check(token.LBrace) {
		body = p.parseBlock()
	} else {
		p.expect(token.Semi, "';' after extern-style function prototype, or a '{' body")
	}

	rng := rangeFromPos(start, p.lastEndPos())
	decl := ast.NewFunctionDecl(rng, name.Text, typeParams, params, ret, body, vis)
	decl.FFIAnnotations = ffi
	releaseParamTypes(params)
	ret.Release()
	if body != nil {
		body.Release()
	}
	return decl
}

func (p *Parser) parseStructDecl(start source.Pos, vis ast.Visibility) ast.Node {
	p.advance() // struct
	name, _ := p.expect(token.Identifier, "struct name")
	p.knownTypes[name.Text] = true
	typeParams := p.parseTypeParams()
	p.expect(token.LBrace, "'{' to start struct body")

	var fields []ast.Param
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		fname, _ := p.expect(token.Identifier, "field name")
		p.expect(token.Colon, "':' after field name")
		typ := p.parseType()
		fields = append(fields, ast.Param{Name: fname.Text, Type: typ})
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.RBrace, "'}' to close struct body")

	rng := rangeFromPos(start, p.lastEndPos())
	decl := ast.NewStructDecl(rng, name.Text, typeParams, fields, vis)
	releaseParamTypes(fields)
	return decl
}

func (p *Parser) parseEnumDecl(start source.Pos, vis ast.Visibility) ast.Node {
	p.advance() // enum
	name, _ := p.expect(token.Identifier, "enum name")
	p.knownTypes[name.Text] = true
	p.knownEnums[name.Text] = true
	typeParams := p.parseTypeParams()
	p.expect(token.LBrace, "'{' to start enum body")

	var variants []ast.EnumVariantDecl
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		vname, _ := p.expect(token.Identifier, "variant name")
		variant := ast.EnumVariantDecl{Name: vname.Text}
		switch {
		case p.check(token.LParen):
			p.advance()
			variant.TuplePayload = p.parseType()
			p.expect(token.RParen, "')' to close tuple-variant payload")
		case p.check(token.LBrace):
			p.advance()
			var sfields []ast.Param
			for !p.check(token.RBrace) && !p.check(token.Eof) {
				fname, _ := p.expect(token.Identifier, "field name")
				p.expect(token.Colon, "':' after field name")
				typ := p.parseType()
				sfields = append(sfields, ast.Param{Name: fname.Text, Type: typ})
				if _, ok := p.accept(token.Comma); !ok {
					break
				}
			}
			p.expect(token.RBrace, "'}' to close struct-variant payload")
			variant.StructFields = sfields
		}
		variants = append(variants, variant)
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.RBrace, "'}' to close enum body")

	rng := rangeFromPos(start, p.lastEndPos())
	decl := ast.NewEnumDecl(rng, name.Text, typeParams, variants, vis)
	for _, v := range variants {
		if v.TuplePayload != nil {
			v.TuplePayload.Release()
		}
		releaseParamTypes(v.StructFields)
	}
	return decl
}

func (p *Parser) parseImplDecl(start source.Pos) ast.Node {
	p.advance() // impl
	name, _ := p.expect(token.Identifier, "struct name")
	p.expect(token.LBrace, "'{' to start impl body")

	var methods []ast.Node
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		m := p.parseMethodDecl()
		if m != nil {
			methods = append(methods, m)
		}
		if p.panicking {
			p.recoverPanicMode()
		}
	}
	p.expect(token.RBrace, "'}' to close impl body")

	rng := rangeFromPos(start, p.lastEndPos())
	decl := ast.NewImplDecl(rng, name.Text, methods...)
	for _, m := range methods {
		m.Release()
	}
	return decl
}

// parseMethodDecl parses one `fn name(params) -> Ret { body }` inside an
// impl block. The method is an instance method iff its first parameter is
// literally named `self` (spec §4.C7 "Impl blocks").
func (p *Parser) parseMethodDecl() ast.Node {
	start := p.peek().Pos()
	vis := p.parseVisibility()
	if _, ok := p.expect(token.KwFn, "'fn'"); !ok {
		return nil
	}
	name, _ := p.expect(token.Identifier, "method name")
	typeParams := p.parseTypeParams()

	p.expect(token.LParen, "'(' to start parameter list")
	isInstance := false
	var params []ast.Param
	if p.check(token.KwSelf) {
		p.advance()
		isInstance = true
		p.accept(token.Comma)
	}
	for !p.check(token.RParen) && !p.check(token.Eof) {
		pname, _ := p.expect(token.Identifier, "parameter name")
		p.expect(token.Colon, "':' after parameter name")
		typ := p.parseType()
		params = append(params, ast.Param{Name: pname.Text, Type: typ})
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.RParen, "')' to close parameter list")

	ret := p.parseReturnType(p.lastEndPos())
	body := p.parseBlock()

	rng := rangeFromPos(start, p.lastEndPos())
	decl := ast.NewMethodDecl(rng, name.Text, typeParams, isInstance, params, ret, body, vis)
	releaseParamTypes(params)
	ret.Release()
	if body != nil {
		body.Release()
	}
	return decl
}

func (p *Parser) parseExternDecl(start source.Pos, ffi []types.Ownership) ast.Node {
	p.advance() // extern
	p.expect(token.KwFn, "'fn' after 'extern'")
	name, _ := p.expect(token.Identifier, "function name")
	params := p.parseParamList()
	ret := p.parseReturnType(p.lastEndPos())

	var externName string
	if _, ok := p.accept(token.Assign); ok {
		lit, ok := p.expect(token.StringLit, "extern symbol name string")
		if ok {
			externName = lit.StringValue
		}
	} else {
		externName = name.Text
	}
	p.expect(token.Semi, "';' after extern declaration")

	rng := rangeFromPos(start, p.lastEndPos())
	decl := ast.NewExternDecl(rng, name.Text, params, ret, externName, ffi)
	releaseParamTypes(params)
	ret.Release()
	return decl
}

func releaseParamTypes(params []ast.Param) {
	for _, pm := range params {
		if pm.Type != nil {
			pm.Type.Release()
		}
	}
}
