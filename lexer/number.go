package lexer

import (
	"strconv"
	"unicode"

	"github.com/asthra-lang/asthrac/token"
)

// lexNumber scans an integer or float literal starting at the current
// position (the first digit has not yet been consumed). It handles the
// four numeric bases and decimal float/exponent forms from spec §4.C2.
func (l *Lexer) lexNumber(start int) token.Token {
	if l.consumeRune('0') {
		if r, _ := l.peekRune(); r == 'x' || r == 'X' {
			l.readRune()
			return l.lexBasedInt(start, 16, isHexDigit)
		}
		if r, _ := l.peekRune(); r == 'b' || r == 'B' {
			l.readRune()
			return l.lexBasedInt(start, 2, isBinDigit)
		}
		if r, _ := l.peekRune(); r == 'o' || r == 'O' {
			l.readRune()
			return l.lexBasedInt(start, 8, isOctDigit)
		}
	}
	return l.lexDecimal(start)
}

func (l *Lexer) consumeRune(want rune) bool {
	r, sz := l.peekRune()
	if sz != 0 && r == want {
		l.readRune()
		return true
	}
	return false
}

func isHexDigit(r rune) bool { return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') }
func isBinDigit(r rune) bool { return r == '0' || r == '1' }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }

// lexBasedInt scans the digits of a non-decimal integer literal. Per spec,
// any alphanumeric character or '.' immediately following the literal is a
// lexical error (e.g. 0xG, 0b2, 0o8, 0x.5).
func (l *Lexer) lexBasedInt(start int, base int, isDigit func(rune) bool) token.Token {
	digitsStart := l.pos
	for {
		r, sz := l.peekRune()
		if sz == 0 || !isDigit(r) {
			break
		}
		l.readRune()
	}
	if l.pos == digitsStart {
		l.consumeTrailingGarbage()
		return l.errorToken(start, "invalid %s literal: no digits after base prefix", baseName(base))
	}
	if l.consumeTrailingGarbage() {
		return l.errorToken(start, "invalid digit in %s literal %q", baseName(base), l.lexeme(start))
	}
	digits := l.lexeme(digitsStart)
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return l.errorToken(start, "integer literal %q out of range", l.lexeme(start))
	}
	return token.Token{Kind: token.Integer, Range: l.rangeFrom(start), IntValue: v, Text: l.lexeme(start)}
}

func baseName(base int) string {
	switch base {
	case 16:
		return "hexadecimal"
	case 2:
		return "binary"
	case 8:
		return "octal"
	default:
		return "decimal"
	}
}

// consumeTrailingGarbage reports (and consumes, so scanning can resume past
// it) whether an alphanumeric rune or '.' immediately follows — the "invalid
// digit for base" error condition.
func (l *Lexer) consumeTrailingGarbage() bool {
	r, sz := l.peekRune()
	if sz == 0 {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' {
		l.readRune()
		return true
	}
	return false
}

// lexDecimal scans a decimal integer or float literal: optional integer
// part, optional '.' fractional part, optional exponent.
func (l *Lexer) lexDecimal(start int) token.Token {
	for {
		r, sz := l.peekRune()
		if sz == 0 || !unicode.IsDigit(r) {
			break
		}
		l.readRune()
	}
	isFloat := false
	if r, _ := l.peekRune(); r == '.' {
		if next := l.peekRuneAt(1); unicode.IsDigit(next) {
			isFloat = true
			l.readRune() // '.'
			for {
				r2, sz2 := l.peekRune()
				if sz2 == 0 || !unicode.IsDigit(r2) {
					break
				}
				l.readRune()
			}
		}
	}
	if ok, consumedExp := l.tryExponent(); ok {
		isFloat = true
		_ = consumedExp
	}
	if l.consumeTrailingGarbage() {
		return l.errorToken(start, "invalid digit in number literal %q", l.lexeme(start))
	}
	text := l.lexeme(start)
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.errorToken(start, "invalid float literal %q", text)
		}
		return token.Token{Kind: token.Float, Range: l.rangeFrom(start), FloatValue: v, Text: text}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.errorToken(start, "integer literal %q out of range", text)
	}
	return token.Token{Kind: token.Integer, Range: l.rangeFrom(start), IntValue: v, Text: text}
}

// tryExponent consumes [eE][+-]?digits if present and well-formed, reporting
// whether it did so. If an 'e'/'E' is seen but no valid digit run follows,
// nothing is consumed (so e.g. a trailing identifier starting with 'e' is
// left alone for the caller to reject as trailing garbage, or for the '.'
// case, so the dot can be re-interpreted as standalone).
func (l *Lexer) tryExponent() (bool, bool) {
	save := l.pos
	r, sz := l.peekRune()
	if sz == 0 || (r != 'e' && r != 'E') {
		return false, false
	}
	l.readRune()
	if r2, _ := l.peekRune(); r2 == '+' || r2 == '-' {
		l.readRune()
	}
	digitsStart := l.pos
	for {
		r3, sz3 := l.peekRune()
		if sz3 == 0 || !unicode.IsDigit(r3) {
			break
		}
		l.readRune()
	}
	if l.pos == digitsStart {
		l.pos = save
		return false, false
	}
	return true, true
}

// lexDotOrNumber resolves the DOT-vs-float ambiguity described in spec
// §4.C2. `.` has already been peeked but not consumed; canEndExprBefore
// tells us whether the token immediately preceding this one could end an
// expression (identifier, ')', ']', '}', or a chained tuple-index digit
// run), in which case the DOT must be emitted standalone rather than
// folded into a float literal.
func (l *Lexer) lexDotOrNumber(start int, canEndExprBefore bool) token.Token {
	if canEndExprBefore {
		l.readRune() // consume '.'
		return token.Token{Kind: token.Dot, Range: l.rangeFrom(start), Text: "."}
	}

	l.readRune() // consume '.'
	fracStart := l.pos
	for {
		r, sz := l.peekRune()
		if sz == 0 || !unicode.IsDigit(r) {
			break
		}
		l.readRune()
	}
	if l.pos == fracStart {
		// Only an exponent body follows (".e5"); verify it is well-formed
		// before committing to a float — otherwise this was just a DOT.
		if ok, _ := l.tryExponent(); ok {
			text := l.lexeme(start)
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return l.errorToken(start, "invalid float literal %q", text)
			}
			return token.Token{Kind: token.Float, Range: l.rangeFrom(start), FloatValue: v, Text: text}
		}
		l.pos = start + 1
		return token.Token{Kind: token.Dot, Range: l.rangeFrom(start), Text: "."}
	}
	l.tryExponent()
	if l.consumeTrailingGarbage() {
		return l.errorToken(start, "invalid digit in number literal %q", l.lexeme(start))
	}
	text := l.lexeme(start)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return l.errorToken(start, "invalid float literal %q", text)
	}
	return token.Token{Kind: token.Float, Range: l.rangeFrom(start), FloatValue: v, Text: text}
}
