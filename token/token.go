package token

import "github.com/asthra-lang/asthrac/source"

// Token is the tagged union produced by the lexer. Exactly one of the
// payload fields is meaningful, selected by Kind:
//
//	Integer    -> IntValue
//	Float      -> FloatValue
//	StringLit  -> StringValue (already escape-processed, or raw verbatim
//	              for r"""...""" literals)
//	CharLit    -> IntValue holds the Unicode codepoint
//	Identifier -> Text holds the lexeme
//	Keyword*   -> Text holds the canonical spelling
//	Error      -> Text holds a human-readable message
type Token struct {
	Kind  Kind
	Range source.Range

	Text       string
	IntValue   int64
	FloatValue float64
	StringValue string
}

// Pos is a convenience accessor for the token's starting position.
func (t Token) Pos() source.Pos { return t.Range.Start }

func (t Token) String() string {
	switch t.Kind {
	case Identifier, Error:
		return t.Text
	case Integer:
		return t.Kind.String()
	default:
		return t.Kind.String()
	}
}
