package parser

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/token"
)

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() ast.Node {
	start := p.peek().Pos()
	p.expect(token.LBrace, "'{' to start a block")
	var stmts []ast.Node
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		}
		if p.panicking {
			p.recoverPanicMode()
		}
	}
	p.expect(token.RBrace, "'}' to close block")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewBlockStmt(rng, stmts...)
	for _, s := range stmts {
		s.Release()
	}
	return n
}

// parseStmt parses one statement (spec §3 "Statements").
func (p *Parser) parseStmt() ast.Node {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwIf:
		return p.parseIfOrIfLetStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwMatch:
		return p.parseMatchStmtStmt()
	case token.KwSpawn:
		return p.parseSpawnStmt()
	case token.KwSpawnWithHandle:
		return p.parseSpawnWithHandleStmt()
	case token.KwUnsafe:
		return p.parseUnsafeBlockStmt()
	case token.KwBreak:
		start := p.advance().Pos()
		p.expect(token.Semi, "';' after break")
		return ast.NewBreakStmt(rangeFromPos(start, p.lastEndPos()))
	case token.KwContinue:
		start := p.advance().Pos()
		p.expect(token.Semi, "';' after continue")
		return ast.NewContinueStmt(rangeFromPos(start, p.lastEndPos()))
	case token.LBrace:
		return p.parseBlock()
	default:
		return p.parseAssignOrExprStmt()
	}
}

// parseLetStmt parses `let [mut] name: Type [= init] [#[ownership]];`. The
// type annotation is mandatory (spec §3 "let"); a missing one still parses
// (with a diagnostic already raised by expect/parseType) so the rest of the
// block recovers.
func (p *Parser) parseLetStmt() ast.Node {
	start := p.advance().Pos() // let
	mutable := false
	if _, ok := p.accept(token.KwMut); ok {
		mutable = true
	}
	name, _ := p.expect(token.Identifier, "variable name")
	p.expect(token.Colon, "':' after variable name (type annotations are mandatory)")
	typ := p.parseType()

	var init ast.Node
	if _, ok := p.accept(token.Assign); ok {
		init = p.parseExpr()
	}

	ownership := ""
	if _, ok := p.accept(token.Hash); ok {
		p.expect(token.LBracket, "'[' after '#'")
		tag, _ := p.expect(token.Identifier, "ownership zone name")
		ownership = tag.Text
		p.expect(token.RBracket, "']' to close ownership annotation")
	}
	p.expect(token.Semi, "';' after let statement")

	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewLetStmt(rng, mutable, name.Text, typ, init, ownership)
	typ.Release()
	if init != nil {
		init.Release()
	}
	return n
}

// parseReturnStmt parses `return [expr];`. Expr is never nil on the AST
// node: a bare `return;` is represented as an explicit UnitLiteral.
func (p *Parser) parseReturnStmt() ast.Node {
	start := p.advance().Pos() // return
	var expr ast.Node
	if !p.check(token.Semi) {
		expr = p.parseExpr()
	} else {
		expr = ast.NewUnitLiteral(rangeFromPos(p.lastEndPos(), p.lastEndPos()))
	}
	p.expect(token.Semi, "';' after return statement")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewReturnStmt(rng, expr)
	expr.Release()
	return n
}

// parseIfOrIfLetStmt parses `if cond { ... } [else ...]` or
// `if let pattern = expr { ... } [else ...]`. The controlling
// condition/expr is parsed with struct literals disabled so a bare
// `Name { ... }` there reads as the block, not a literal (spec §4.C4
// "Struct literal vs. block").
func (p *Parser) parseIfOrIfLetStmt() ast.Node {
	start := p.advance().Pos() // if

	if _, ok := p.accept(token.KwLet); ok {
		pat := p.parsePattern()
		p.expect(token.Assign, "'=' after if-let pattern")
		expr := p.parseGuardedExpr()
		then := p.parseBlock()
		els := p.parseOptionalElse()

		rng := rangeFromPos(start, p.lastEndPos())
		n := ast.NewIfLetStmt(rng, pat, expr, then, els)
		pat.Release()
		expr.Release()
		then.Release()
		if els != nil {
			els.Release()
		}
		return n
	}

	cond := p.parseGuardedExpr()
	then := p.parseBlock()
	els := p.parseOptionalElse()

	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewIfStmt(rng, cond, then, els)
	cond.Release()
	then.Release()
	if els != nil {
		els.Release()
	}
	return n
}

func (p *Parser) parseOptionalElse() ast.Node {
	if _, ok := p.accept(token.KwElse); !ok {
		return nil
	}
	if p.check(token.KwIf) {
		return p.parseIfOrIfLetStmt()
	}
	return p.parseBlock()
}

// parseGuardedExpr parses a bare controlling expression (if/for/match) with
// struct literals disabled, restoring the prior setting afterward.
func (p *Parser) parseGuardedExpr() ast.Node {
	save := p.allowStructLiteralHere
	p.allowStructLiteralHere = false
	e := p.parseExpr()
	p.allowStructLiteralHere = save
	return e
}

// parseForStmt parses `for name in iterable { body }`.
func (p *Parser) parseForStmt() ast.Node {
	start := p.advance().Pos() // for
	name, _ := p.expect(token.Identifier, "loop variable name")
	p.expect(token.KwIn, "'in' after loop variable name")
	iterable := p.parseGuardedExpr()
	body := p.parseBlock()

	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewForStmt(rng, name.Text, iterable, body)
	iterable.Release()
	body.Release()
	return n
}

// parseMatchStmtStmt parses match used as a statement: `match scrutinee {
// pattern => body, ... }`, where each arm body is a block or a single
// expression statement.
func (p *Parser) parseMatchStmtStmt() ast.Node {
	start := p.advance().Pos() // match
	scrutinee := p.parseGuardedExpr()
	p.expect(token.LBrace, "'{' to start match arms")

	var arms []ast.MatchArm
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		pat := p.parsePattern()
		p.expect(token.FatArrow, "'=>' after match pattern")
		var body ast.Node
		if p.check(token.LBrace) {
			body = p.parseBlock()
		} else {
			e := p.parseExpr()
			body = ast.NewExprStmt(e.Range(), e)
			e.Release()
		}
		arms = append(arms, ast.MatchArm{Pattern: pat, Body: body})
		if _, ok := p.accept(token.Comma); !ok && !p.check(token.RBrace) {
			break
		}
	}
	p.expect(token.RBrace, "'}' to close match arms")

	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewMatchStmt(rng, scrutinee, arms)
	scrutinee.Release()
	for _, a := range arms {
		a.Pattern.Release()
		a.Body.Release()
	}
	return n
}

// parseSpawnStmt parses `spawn call_expr;`, fire-and-forget concurrency
// (spec §4.C7).
func (p *Parser) parseSpawnStmt() ast.Node {
	start := p.advance().Pos() // spawn
	call := p.parseExpr()
	p.expect(token.Semi, "';' after spawn statement")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewSpawnStmt(rng, call)
	call.Release()
	return n
}

// parseSpawnWithHandleStmt parses `spawn_with_handle name = call_expr;`.
func (p *Parser) parseSpawnWithHandleStmt() ast.Node {
	start := p.advance().Pos() // spawn_with_handle
	name, _ := p.expect(token.Identifier, "handle variable name")
	p.expect(token.Assign, "'=' after handle variable name")
	call := p.parseExpr()
	p.expect(token.Semi, "';' after spawn_with_handle statement")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewSpawnWithHandleStmt(rng, name.Text, call)
	call.Release()
	return n
}

// parseUnsafeBlockStmt parses `unsafe { body }`, the only scope allowed to
// dereference raw pointers or call extern functions (spec §4.C7).
func (p *Parser) parseUnsafeBlockStmt() ast.Node {
	start := p.advance().Pos() // unsafe
	body := p.parseBlock()
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewUnsafeBlockStmt(rng, body)
	body.Release()
	return n
}

// parseAssignOrExprStmt parses either `lvalue = value;` or a bare
// `expr;`. Parsing the full expression first and checking for a trailing
// '=' avoids needing a separate lvalue grammar: whether the left side was
// actually assignable is a semantic check, not a syntactic one.
func (p *Parser) parseAssignOrExprStmt() ast.Node {
	start := p.peek().Pos()
	expr := p.parseExpr()

	if _, ok := p.accept(token.Assign); ok {
		value := p.parseExpr()
		p.expect(token.Semi, "';' after assignment")
		rng := rangeFromPos(start, p.lastEndPos())
		n := ast.NewAssignStmt(rng, expr, value)
		expr.Release()
		value.Release()
		return n
	}

	p.expect(token.Semi, "';' after expression statement")
	rng := rangeFromPos(start, p.lastEndPos())
	n := ast.NewExprStmt(rng, expr)
	expr.Release()
	return n
}
