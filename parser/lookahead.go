package parser

import (
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/token"
)

// fill ensures the lookahead buffer holds at least n+1 tokens (so
// peekAhead(n) is valid), pulling fresh tokens from the lexer as needed.
// Spec §4.C4 calls for "one-token lookahead with explicit peek_ahead(k)
// for small k; no unbounded backtracking" — callers only ever request a
// bounded k: most decisions peek one or two tokens ahead, and
// genericArgsFollowedByBrace peeks at most to index maxLookahead (32), so
// this never grows unboundedly either.
func (p *Parser) fill(n int) {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lex.Next())
	}
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	p.fill(0)
	return p.buf[0]
}

// peekAhead returns the token k positions past the next one; peekAhead(0)
// is equivalent to peek().
func (p *Parser) peekAhead(k int) token.Token {
	p.fill(k)
	return p.buf[k]
}

// advance consumes and returns the next token.
func (p *Parser) advance() token.Token {
	p.fill(0)
	tok := p.buf[0]
	p.buf = p.buf[1:]
	p.lastEnd = tok.Range.End
	return tok
}

// lastEndPos returns the end position of the most recently consumed token,
// used to close out a Range for a just-finished production.
func (p *Parser) lastEndPos() source.Pos {
	return p.lastEnd
}

// check reports whether the next token has kind k, without consuming it.
func (p *Parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

// accept consumes and returns the next token if it has kind k.
func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}
