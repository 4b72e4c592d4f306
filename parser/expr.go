package parser

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/token"
)

// parseExpr is the entry point for expression parsing: precedence climbing
// from the weakest operator (||) down to unary/postfix (spec §4.C4's
// operator precedence table).
func (p *Parser) parseExpr() ast.Node {
	return p.parseLogicalOr()
}

// parseNestedExpr parses an expression that sits inside its own delimiters
// ((...), [...], a call's argument list), where the struct-literal-vs-block
// ambiguity that disables bare `Name { ... }` in a condition no longer
// applies (spec §4.C4 "Struct literal vs. block").
func (p *Parser) parseNestedExpr() ast.Node {
	save := p.allowStructLiteralHere
	p.allowStructLiteralHere = true
	e := p.parseExpr()
	p.allowStructLiteralHere = save
	return e
}

func (p *Parser) parseLogicalOr() ast.Node {
	left := p.parseLogicalAnd()
	for p.check(token.OrOr) {
		p.advance()
		right := p.parseLogicalAnd()
		left = p.combine(left, ast.OpOr, right)
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Node {
	left := p.parseBitOr()
	for p.check(token.AndAnd) {
		p.advance()
		right := p.parseBitOr()
		left = p.combine(left, ast.OpAnd, right)
	}
	return left
}

func (p *Parser) parseBitOr() ast.Node {
	left := p.parseBitXor()
	for p.check(token.Pipe) {
		p.advance()
		right := p.parseBitXor()
		left = p.combine(left, ast.OpBitOr, right)
	}
	return left
}

func (p *Parser) parseBitXor() ast.Node {
	left := p.parseBitAnd()
	for p.check(token.Caret) {
		p.advance()
		right := p.parseBitAnd()
		left = p.combine(left, ast.OpBitXor, right)
	}
	return left
}

func (p *Parser) parseBitAnd() ast.Node {
	left := p.parseEquality()
	for p.check(token.Amp) {
		p.advance()
		right := p.parseEquality()
		left = p.combine(left, ast.OpBitAnd, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.Node {
	left := p.parseRelational()
	for {
		var op ast.BinaryOp
		switch {
		case p.check(token.Eq):
			op = ast.OpEq
		case p.check(token.Neq):
			op = ast.OpNeq
		default:
			return left
		}
		p.advance()
		right := p.parseRelational()
		left = p.combine(left, op, right)
	}
}

func (p *Parser) parseRelational() ast.Node {
	left := p.parseShift()
	for {
		var op ast.BinaryOp
		switch {
		case p.check(token.Lt):
			op = ast.OpLt
		case p.check(token.Le):
			op = ast.OpLe
		case p.check(token.Gt):
			op = ast.OpGt
		case p.check(token.Ge):
			op = ast.OpGe
		default:
			return left
		}
		p.advance()
		right := p.parseShift()
		left = p.combine(left, op, right)
	}
}

func (p *Parser) parseShift() ast.Node {
	left := p.parseAdditive()
	for {
		var op ast.BinaryOp
		switch {
		case p.check(token.Shl):
			op = ast.OpShl
		case p.check(token.Shr):
			op = ast.OpShr
		default:
			return left
		}
		p.advance()
		right := p.parseAdditive()
		left = p.combine(left, op, right)
	}
}

func (p *Parser) parseAdditive() ast.Node {
	left := p.parseMultiplicative()
	for {
		var op ast.BinaryOp
		switch {
		case p.check(token.Plus):
			op = ast.OpAdd
		case p.check(token.Minus):
			op = ast.OpSub
		default:
			return left
		}
		p.advance()
		right := p.parseMultiplicative()
		left = p.combine(left, op, right)
	}
}

func (p *Parser) parseMultiplicative() ast.Node {
	left := p.parseUnary()
	for {
		var op ast.BinaryOp
		switch {
		case p.check(token.Star):
			op = ast.OpMul
		case p.check(token.Slash):
			op = ast.OpDiv
		case p.check(token.Percent):
			op = ast.OpMod
		default:
			return left
		}
		p.advance()
		right := p.parseUnary()
		left = p.combine(left, op, right)
	}
}

// combine builds a BinaryExpr spanning left..right and releases the
// caller's local handles on both operands (the new node retains its own).
func (p *Parser) combine(left ast.Node, op ast.BinaryOp, right ast.Node) ast.Node {
	rng := source.Range{Start: left.Range().Start, End: right.Range().End}
	n := ast.NewBinaryExpr(rng, op, left, right)
	left.Release()
	right.Release()
	return n
}

// parseUnary handles the prefix operators (spec §4.C4's unary tier):
// '-', '!', '~', '*' (deref), '&'/'&mut' (address-of).
func (p *Parser) parseUnary() ast.Node {
	start := p.peek().Pos()
	var op ast.UnaryOp
	switch {
	case p.check(token.Minus):
		op = ast.OpNeg
	case p.check(token.Bang):
		op = ast.OpNot
	case p.check(token.Tilde):
		op = ast.OpBitNot
	case p.check(token.Star):
		op = ast.OpDeref
	case p.check(token.Amp):
		p.advance()
		if _, ok := p.accept(token.KwMut); ok {
			operand := p.parseUnary()
			n := ast.NewUnaryExpr(rangeFromPos(start, p.lastEndPos()), ast.OpAddrOfMut, operand)
			operand.Release()
			return n
		}
		operand := p.parseUnary()
		n := ast.NewUnaryExpr(rangeFromPos(start, p.lastEndPos()), ast.OpAddrOf, operand)
		operand.Release()
		return n
	default:
		return p.parsePostfix()
	}
	p.advance()
	operand := p.parseUnary()
	n := ast.NewUnaryExpr(rangeFromPos(start, p.lastEndPos()), op, operand)
	operand.Release()
	return n
}

// parsePostfix parses field access, indexing/slicing, and call chains on a
// primary expression.
func (p *Parser) parsePostfix() ast.Node {
	start := p.peek().Pos()
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.Dot):
			p.advance()
			if tok, ok := p.accept(token.Float); ok {
				expr = p.applyChainedTupleIndex(start, expr, tok)
				continue
			}
			var field string
			if tok, ok := p.accept(token.Integer); ok {
				field = tok.Text
				if field == "" {
					field = itoa(tok.IntValue)
				}
			} else {
				name, _ := p.expect(token.Identifier, "field name or tuple index")
				field = name.Text
			}
			next := ast.NewFieldAccessExpr(rangeFromPos(start, p.lastEndPos()), expr, field)
			expr.Release()
			expr = next
		case p.check(token.LBracket):
			expr = p.parseIndexOrSlice(start, expr)
		case p.check(token.LParen):
			expr = p.parseCallArgs(start, expr)
		default:
			return expr
		}
	}
}

// applyChainedTupleIndex handles `x.0.1`: the lexer folds the second dot's
// digits into the preceding one, so `.0.1` arrives as a single Float token
// whose Text ("0.1") is split on '.' into two chained tuple-index accesses
// rather than parsed as a number (spec §4.C2's tuple-index/float
// disambiguation, Testable Property 3).
func (p *Parser) applyChainedTupleIndex(start source.Pos, expr ast.Node, tok token.Token) ast.Node {
	text := tok.Text
	dot := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		dot = len(text)
	}
	first, second := text[:dot], text[min(dot+1, len(text)):]

	next := ast.NewFieldAccessExpr(rangeFromPos(start, p.lastEndPos()), expr, first)
	expr.Release()
	expr = next
	if second == "" {
		return expr
	}
	next = ast.NewFieldAccessExpr(rangeFromPos(start, p.lastEndPos()), expr, second)
	expr.Release()
	return next
}

func (p *Parser) parseIndexOrSlice(start source.Pos, target ast.Node) ast.Node {
	p.advance() // [
	var startExpr, endExpr ast.Node
	if !p.check(token.Colon) {
		startExpr = p.parseNestedExpr()
	}
	if _, ok := p.accept(token.Colon); ok {
		if !p.check(token.RBracket) {
			endExpr = p.parseNestedExpr()
		}
		p.expect(token.RBracket, "']' to close slice expression")
		rng := rangeFromPos(start, p.lastEndPos())
		n := ast.NewSliceExpr(rng, target, startExpr, endExpr)
		target.Release()
		if startExpr != nil {
			startExpr.Release()
		}
		if endExpr != nil {
			endExpr.Release()
		}
		return n
	}
	p.expect(token.RBracket, "']' to close index expression")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewIndexExpr(rng, target, startExpr)
	target.Release()
	if startExpr != nil {
		startExpr.Release()
	}
	return n
}

// parseCallArgs parses `(args...)`, treating the literal `(none)` as an
// explicitly empty argument list (spec §4.C4 "Function-call arguments"):
// callers must write f(none) rather than a bare f(), and f(void) is
// rejected as a migration-era spelling.
func (p *Parser) parseCallArgs(start source.Pos, callee ast.Node) ast.Node {
	p.advance() // (
	var args []ast.Node
	switch {
	case p.check(token.Identifier) && p.peek().Text == "none" && p.peekAhead(1).Kind == token.RParen:
		p.advance()
	case p.check(token.KwVoid):
		tok := p.peek()
		p.errorf(reporter.CodeInvalidExpr, tok.Pos(), "f(void) is not valid Asthra syntax; write f(none) for an empty argument list")
		p.advance()
	default:
		for !p.check(token.RParen) && !p.check(token.Eof) {
			args = append(args, p.parseNestedExpr())
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
		}
	}
	p.expect(token.RParen, "')' to close call arguments")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewCallExpr(rng, callee, args...)
	callee.Release()
	for _, a := range args {
		a.Release()
	}
	return n
}

func (p *Parser) parsePrimary() ast.Node {
	start := p.peek().Pos()
	tok := p.peek()
	switch tok.Kind {
	case token.Integer:
		p.advance()
		return ast.NewIntLiteral(rangeFromPos(start, p.lastEndPos()), tok.IntValue)
	case token.Float:
		p.advance()
		return ast.NewFloatLiteral(rangeFromPos(start, p.lastEndPos()), tok.FloatValue)
	case token.StringLit:
		p.advance()
		return ast.NewStringLiteral(rangeFromPos(start, p.lastEndPos()), tok.StringValue)
	case token.CharLit:
		p.advance()
		return ast.NewCharLiteral(rangeFromPos(start, p.lastEndPos()), rune(tok.IntValue))
	case token.KwSelf:
		p.advance()
		return ast.NewIdentifierExpr(rangeFromPos(start, p.lastEndPos()), "self")
	case token.KwAwait:
		p.advance()
		handle := p.parseUnary()
		n := ast.NewAwaitExpr(rangeFromPos(start, p.lastEndPos()), handle)
		handle.Release()
		return n
	case token.KwSizeof:
		p.advance()
		p.expect(token.LParen, "'(' after sizeof")
		typ := p.parseType()
		p.expect(token.RParen, "')' to close sizeof(...)")
		n := ast.NewSizeofExpr(rangeFromPos(start, p.lastEndPos()), typ)
		typ.Release()
		return n
	case token.KwMatch:
		return p.parseMatchExpr(start)
	case token.LParen:
		return p.parseParenOrTupleExpr(start)
	case token.LBracket:
		return p.parseArrayLiteral(start)
	case token.Identifier:
		return p.parseIdentifierPrimary(start)
	default:
		p.errorf(reporter.CodeInvalidExpr, tok.Pos(), "expected an expression, found %s", tok.Kind)
		p.advance()
		return ast.NewUnitLiteral(rangeFromPos(start, p.lastEndPos()))
	}
}

func (p *Parser) parseIdentifierPrimary(start source.Pos) ast.Node {
	tok := p.advance()
	name := tok.Text

	switch name {
	case "true":
		return ast.NewBoolLiteral(rangeFromPos(start, p.lastEndPos()), true)
	case "false":
		return ast.NewBoolLiteral(rangeFromPos(start, p.lastEndPos()), false)
	}

	// Postfix '::' is legal only in Type::function position, right at the
	// start of an expression (spec §4.C4) — so it is handled here, before
	// any other postfix chaining can apply.
	if p.check(token.ColonColon) {
		p.advance()
		method, _ := p.expect(token.Identifier, "associated function name")
		p.expect(token.LParen, "'(' to start associated call arguments")
		var args []ast.Node
		if p.check(token.Identifier) && p.peek().Text == "none" && p.peekAhead(1).Kind == token.RParen {
			p.advance()
		} else {
			for !p.check(token.RParen) && !p.check(token.Eof) {
				args = append(args, p.parseNestedExpr())
				if _, ok := p.accept(token.Comma); !ok {
					break
				}
			}
		}
		p.expect(token.RParen, "')' to close associated call arguments")
		rng := rangeFromPos(start, p.lastEndPos())
		n := ast.NewAssocCallExpr(rng, name, method.Text, args...)
		for _, a := range args {
			a.Release()
		}
		return n
	}

	// EnumName.Variant(payload?) construction, recognized only when name
	// is a known enum declared earlier in this unit (spec §4.C4's
	// struct/enum disambiguation heuristics carry the same forward-
	// reference limitation documented on knownTypes).
	if p.knownEnums[name] && p.check(token.Dot) && p.peekAhead(1).Kind == token.Identifier {
		p.advance() // .
		variant, _ := p.expect(token.Identifier, "enum variant name")
		var payload ast.Node
		if _, ok := p.accept(token.LParen); ok {
			if !p.check(token.RParen) {
				payload = p.parseNestedExpr()
			}
			p.expect(token.RParen, "')' to close enum variant payload")
		}
		n := ast.NewEnumConstructExpr(rangeFromPos(start, p.lastEndPos()), name, variant.Text, payload)
		if payload != nil {
			payload.Release()
		}
		return n
	}

	if p.allowStructLiteralHere && p.check(token.Lt) && p.genericArgsFollowedByBrace() {
		return p.parseGenericStructLiteral(start, name)
	}

	if p.check(token.LBrace) && p.allowStructLiteralHere && p.looksLikeStructLiteral(name) {
		return p.parseStructLiteral(start, name, nil)
	}

	return ast.NewIdentifierExpr(rangeFromPos(start, p.lastEndPos()), name)
}

// genericArgsFollowedByBrace performs the bounded lookahead that
// disambiguates `Name<Type,...> { ... }` (a generic struct-literal
// construction) from `a < b`, the ordinary relational comparison: '<' is
// otherwise always read as a binary operator (spec §4.C4's worked example
// S5, `Vec<i32> { items: [] }`). It never consumes a token; a false result
// leaves parsing to fall through to the relational-operator path.
func (p *Parser) genericArgsFollowedByBrace() bool {
	const maxLookahead = 32
	depth := 0
	for i := 0; i < maxLookahead; i++ {
		tok := p.peekAhead(i)
		switch tok.Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
			if depth == 0 {
				return p.peekAhead(i + 1).Kind == token.LBrace
			}
		case token.Identifier, token.Comma, token.LBracket, token.RBracket,
			token.ColonColon, token.Amp, token.Star, token.KwConst, token.KwMut:
			// plausible pieces of a (possibly nested, pointer, or array) type
		default:
			if tok.Kind.IsTypeName() {
				continue
			}
			return false
		}
	}
	return false
}

// parseGenericStructLiteral parses `Name<Type,...> { field: expr, ... }`,
// populating StructLiteralExpr.TypeArgs (spec §4.C4's generic construction
// syntax).
func (p *Parser) parseGenericStructLiteral(start source.Pos, name string) ast.Node {
	p.advance() // <
	var typeArgs []ast.Node
	for {
		typeArgs = append(typeArgs, p.parseType())
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.Gt, "'>' to close type argument list")
	n := p.parseStructLiteral(start, name, typeArgs)
	for _, a := range typeArgs {
		a.Release()
	}
	return n
}

// looksLikeStructLiteral implements spec §4.C4's three-way OR for
// recognizing `Name { ... }` as a struct literal rather than a block
// following a bare identifier expression: (a) name is a known type, (b) the
// literal is empty (`{ }`), or (c) the first field is followed by ':'. (b)
// and (c) cover a struct forward-referenced later in the same unit, which
// knownTypes (a single forward pass) hasn't recorded yet.
func (p *Parser) looksLikeStructLiteral(name string) bool {
	if p.knownTypes[name] {
		return true
	}
	if p.peekAhead(1).Kind == token.RBrace {
		return true
	}
	return p.peekAhead(1).Kind == token.Identifier && p.peekAhead(2).Kind == token.Colon
}

func (p *Parser) parseStructLiteral(start source.Pos, typeName string, typeArgs []ast.Node) ast.Node {
	p.advance() // {
	var fields []ast.FieldInit
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		fname, _ := p.expect(token.Identifier, "field name")
		p.expect(token.Colon, "':' after field name")
		val := p.parseNestedExpr()
		fields = append(fields, ast.FieldInit{Name: fname.Text, Value: val})
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.RBrace, "'}' to close struct literal")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewStructLiteralExpr(rng, typeName, typeArgs, fields)
	for _, f := range fields {
		f.Value.Release()
	}
	return n
}

// parseArrayLiteral parses `[]` or `[elem, elem, ...]`, an in-place
// slice/array value (spec §4.C4's struct-literal example `Vec { items: [] }`).
func (p *Parser) parseArrayLiteral(start source.Pos) ast.Node {
	p.advance() // [
	var elements []ast.Node
	for !p.check(token.RBracket) && !p.check(token.Eof) {
		elements = append(elements, p.parseNestedExpr())
		if _, ok := p.accept(token.Comma); !ok {
			break
		}
	}
	p.expect(token.RBracket, "']' to close array literal")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewArrayLiteralExpr(rng, elements...)
	for _, e := range elements {
		e.Release()
	}
	return n
}

func (p *Parser) parseParenOrTupleExpr(start source.Pos) ast.Node {
	p.advance() // (
	if _, ok := p.accept(token.RParen); ok {
		return ast.NewUnitLiteral(rangeFromPos(start, p.lastEndPos()))
	}
	first := p.parseNestedExpr()
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
		elements = append(elements, p.parseNestedExpr())
	}
	p.expect(token.RParen, "')' to close tuple expression")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewTupleExpr(rng, elements...)
	for _, e := range elements {
		e.Release()
	}
	return n
}

// parseMatchExpr parses match used as an expression: `match scrutinee {
// pattern => body, ... }`.
func (p *Parser) parseMatchExpr(start source.Pos) ast.Node {
	p.advance() // match
	scrutinee := p.parseNestedExpr()
	p.expect(token.LBrace, "'{' to start match arms")

	var arms []ast.MatchArm
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		pat := p.parsePattern()
		p.expect(token.FatArrow, "'=>' after match pattern")
		var body ast.Node
		if p.check(token.LBrace) {
			body = p.parseBlock()
		} else {
			body = p.parseExpr()
		}
		arms = append(arms, ast.MatchArm{Pattern: pat, Body: body})
		if _, ok := p.accept(token.Comma); !ok && !p.check(token.RBrace) {
			break
		}
	}
	p.expect(token.RBrace, "'}' to close match arms")

	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewMatchExpr(rng, scrutinee, arms)
	scrutinee.Release()
	for _, a := range arms {
		a.Pattern.Release()
		a.Body.Release()
	}
	return n
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
