package lexer

import (
	"strings"

	"github.com/asthra-lang/asthrac/token"
)

// peekTripleQuoteAhead reports whether three '"' characters begin at the
// current position, without consuming anything.
func (l *Lexer) peekTripleQuoteAhead() bool {
	b := l.peekBytes(3)
	return len(b) == 3 && b[0] == '"' && b[1] == '"' && b[2] == '"'
}

// lexString scans a string literal. The opening '"' has already been
// consumed. If two more '"' immediately follow, this is actually a
// processed multi-line literal ("""..."""); otherwise it is a regular
// single-line literal.
func (l *Lexer) lexString(start int) token.Token {
	if b := l.peekBytes(2); len(b) == 2 && b[0] == '"' && b[1] == '"' {
		l.advanceBytes(2)
		return l.lexMultilineString(start, true)
	}
	return l.lexSingleLineString(start)
}

func (l *Lexer) lexSingleLineString(start int) token.Token {
	var sb strings.Builder
	for {
		r, sz := l.peekRune()
		if sz == 0 {
			return l.errorToken(start, "unterminated string literal")
		}
		if r == '\n' {
			return l.errorToken(start, "unterminated string literal (newline in single-line string)")
		}
		l.readRune()
		if r == '"' {
			return token.Token{Kind: token.StringLit, Range: l.rangeFrom(start), StringValue: sb.String(), Text: l.lexeme(start)}
		}
		if r == '\\' {
			decoded, ok := l.readEscape()
			if !ok {
				return l.errorToken(start, "invalid escape sequence in string literal")
			}
			sb.WriteString(decoded)
			continue
		}
		sb.WriteRune(r)
	}
}

// lexMultilineString scans a """...""" literal. The three opening quotes
// have already been consumed. escapes controls whether backslash escapes
// are processed (true for """, false is handled instead by
// lexRawMultilineString which never calls this with escapes=false, kept as
// a parameter for symmetry/documentation).
func (l *Lexer) lexMultilineString(start int, escapes bool) token.Token {
	var sb strings.Builder
	for {
		if l.peekTripleQuoteAhead() {
			l.advanceBytes(3)
			return token.Token{Kind: token.StringLit, Range: l.rangeFrom(start), StringValue: sb.String(), Text: l.lexeme(start)}
		}
		r, sz := l.peekRune()
		if sz == 0 {
			return l.errorToken(start, "unterminated multi-line string literal")
		}
		l.readRune()
		if escapes && r == '\\' {
			decoded, ok := l.readEscape()
			if !ok {
				return l.errorToken(start, "invalid escape sequence in string literal")
			}
			sb.WriteString(decoded)
			continue
		}
		sb.WriteRune(r)
	}
}

// lexRawMultilineString scans r"""...""". The 'r' has already been
// consumed; the three opening quotes have not.
func (l *Lexer) lexRawMultilineString(start int) token.Token {
	l.advanceBytes(3)
	rawStart := l.pos
	for {
		if l.peekTripleQuoteAhead() {
			text := l.lexeme(rawStart)
			l.advanceBytes(3)
			return token.Token{Kind: token.StringLit, Range: l.rangeFrom(start), StringValue: text, Text: l.lexeme(start)}
		}
		_, sz := l.peekRune()
		if sz == 0 {
			return l.errorToken(start, "unterminated raw multi-line string literal")
		}
		l.readRune()
	}
}

// readEscape decodes a single escape sequence; the leading backslash has
// already been consumed. Recognized: \n \t \r \\ \' \" \0 \{ \}.
func (l *Lexer) readEscape() (string, bool) {
	r, sz := l.peekRune()
	if sz == 0 {
		return "", false
	}
	l.readRune()
	switch r {
	case 'n':
		return "\n", true
	case 't':
		return "\t", true
	case 'r':
		return "\r", true
	case '\\':
		return "\\", true
	case '\'':
		return "'", true
	case '"':
		return "\"", true
	case '0':
		return "\x00", true
	case '{':
		return "{", true
	case '}':
		return "}", true
	default:
		return "", false
	}
}

// lexChar scans a character literal 'x', returning its codepoint. Called
// from nextRaw once it has consumed a single quote (single-quote char
// literals are a distinct lexical form from double-quoted strings).
func (l *Lexer) lexChar(start int) token.Token {
	r, sz := l.peekRune()
	if sz == 0 {
		return l.errorToken(start, "unterminated char literal")
	}
	var codepoint rune
	if r == '\\' {
		l.readRune()
		decoded, ok := l.readEscape()
		if !ok || len(decoded) == 0 {
			return l.errorToken(start, "invalid escape sequence in char literal")
		}
		runes := []rune(decoded)
		codepoint = runes[0]
	} else {
		l.readRune()
		codepoint = r
	}
	closing, csz := l.peekRune()
	if csz == 0 || closing != '\'' {
		return l.errorToken(start, "unterminated char literal, expected closing '\\''")
	}
	l.readRune()
	return token.Token{Kind: token.CharLit, Range: l.rangeFrom(start), IntValue: int64(codepoint), Text: l.lexeme(start)}
}
