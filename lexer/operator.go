package lexer

import "github.com/asthra-lang/asthrac/token"

// threeCharOps and twoCharOps are tried longest-match-first, per spec
// §4.C2 "Operators": two- and three-character operators are attempted
// before single-character fallbacks.
var threeCharOps = map[string]token.Kind{
	"...": token.DotDotDot,
}

var twoCharOps = map[string]token.Kind{
	"==": token.Eq, "!=": token.Neq, "<=": token.Le, ">=": token.Ge,
	"&&": token.AndAnd, "||": token.OrOr, "->": token.Arrow,
	"=>": token.FatArrow, "<<": token.Shl, ">>": token.Shr,
	"::": token.ColonColon,
}

var oneCharOps = map[rune]token.Kind{
	'(': token.LParen, ')': token.RParen, '{': token.LBrace, '}': token.RBrace,
	'[': token.LBracket, ']': token.RBracket, ',': token.Comma, ';': token.Semi,
	':': token.Colon, '.': token.Dot, '=': token.Assign, '<': token.Lt,
	'>': token.Gt, '&': token.Amp, '|': token.Pipe, '^': token.Caret,
	'~': token.Tilde, '+': token.Plus, '-': token.Minus, '*': token.Star,
	'/': token.Slash, '%': token.Percent, '!': token.Bang, '@': token.At,
	'#': token.Hash,
}

// lexOperator scans punctuation/operator tokens, preferring the longest
// match. `*/` seen outside of a comment (i.e. here, at the top level) is a
// lexical error, per spec.
func (l *Lexer) lexOperator(start int) token.Token {
	three := string(l.peekBytes(3))
	if kind, ok := threeCharOps[three]; ok {
		l.advanceBytes(3)
		return token.Token{Kind: kind, Range: l.rangeFrom(start), Text: three}
	}
	two := string(l.peekBytes(2))
	if kind, ok := twoCharOps[two]; ok {
		l.advanceBytes(2)
		return token.Token{Kind: kind, Range: l.rangeFrom(start), Text: two}
	}
	if two == "*/" {
		l.advanceBytes(2)
		return l.errorToken(start, "unexpected block-comment close '*/' outside of a comment")
	}
	r, _, ok := l.readRune()
	if !ok {
		return token.Token{Kind: token.Eof, Range: l.rangeFrom(start)}
	}
	if kind, ok := oneCharOps[r]; ok {
		return token.Token{Kind: kind, Range: l.rangeFrom(start), Text: string(r)}
	}
	return l.errorToken(start, "unexpected character %q", r)
}

// peekBytes returns up to n raw bytes starting at the current position,
// without decoding runes (operators are all ASCII, so this is safe and
// avoids repeated UTF-8 decoding for the common punctuation path).
func (l *Lexer) peekBytes(n int) []byte {
	end := l.pos + n
	if end > len(l.data) {
		end = len(l.data)
	}
	return l.data[l.pos:end]
}

func (l *Lexer) advanceBytes(n int) {
	for i := 0; i < n; i++ {
		if l.data[l.pos] == '\n' {
			l.file.AddLine(l.pos + 1)
		}
		l.pos++
	}
}
