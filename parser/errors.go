package parser

import (
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/token"
)

func rangeFromPos(start, end source.Pos) source.Range {
	return source.Range{Start: start, End: end}
}

// errorf records a diagnostic at pos and enters panic mode (spec §4.C4
// "Error recovery").
func (p *Parser) errorf(code reporter.Code, pos source.Pos, format string, args ...interface{}) {
	p.handler.Report(reporter.New(code, pos, format, args...))
	p.panicking = true
}

// expect consumes the next token if it has kind k; otherwise it records a
// "missing token" diagnostic (code 2001) describing what was wanted, and
// does NOT consume the unexpected token, so recovery can inspect it.
func (p *Parser) expect(k token.Kind, want string) (token.Token, bool) {
	if tok, ok := p.accept(k); ok {
		return tok, true
	}
	got := p.peek()
	p.errorf(reporter.CodeMissingToken, got.Pos(), "expected %s, found %s", want, got.Kind)
	return token.Token{}, false
}

// isStatementBoundaryStart reports whether k can start a fresh statement,
// one of the panic-mode recovery targets alongside ';', '{', and a
// matching '}' (spec §4.C4).
func isStatementBoundaryStart(k token.Kind) bool {
	switch k {
	case token.KwLet, token.KwReturn, token.KwIf, token.KwMatch, token.KwFor,
		token.KwBreak, token.KwContinue, token.KwSpawn, token.KwSpawnWithHandle,
		token.KwUnsafe, token.KwFn, token.KwStruct, token.KwEnum, token.KwImpl,
		token.KwExtern, token.KwPub, token.KwPriv:
		return true
	}
	return false
}

// recoverPanicMode advances past tokens until a statement/declaration
// boundary: a ';', a '{' (entering a nested block we don't try to balance
// here), a '}' , a recognized statement-starting keyword, or Eof. It
// always consumes at least one token, guaranteeing the parser makes
// progress even on a single stray character.
func (p *Parser) recoverPanicMode() {
	if !p.cfg.AllowIncompleteParse {
		// Without incomplete-parse support recovery skips only the
		// offending token and clears the flag; the calling loop then goes
		// on parsing, so later errors are still reported.
		p.advance()
		p.panicking = false
		return
	}

	first := true
	for {
		tok := p.peek()
		if tok.Kind == token.Eof {
			break
		}
		if !first && (tok.Kind == token.Semi || tok.Kind == token.LBrace || tok.Kind == token.RBrace || isStatementBoundaryStart(tok.Kind)) {
			break
		}
		if tok.Kind == token.Semi {
			p.advance()
			break
		}
		p.advance()
		first = false
	}
	p.panicking = false
}
