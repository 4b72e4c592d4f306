// Package token defines the tagged-union token type produced by the lexer
// and consumed by the parser.
package token

import "fmt"

// Kind identifies the syntactic category of a Token.
type Kind int

const (
	Invalid Kind = iota

	// Literals
	Integer    // 123, 0x1F, 0b101, 0o17
	Float      // 1.5, .5, 1e10
	StringLit  // "...", """...""", r"""..."""
	CharLit    // 'a'
	Identifier // foo, BarBaz

	// Keywords (letters)
	KwFn
	KwLet
	KwMut
	KwConst
	KwIf
	KwElse
	KwMatch
	KwReturn
	KwStruct
	KwEnum
	KwImpl
	KwPub
	KwPriv
	KwExtern
	KwSpawn
	KwSpawnWithHandle
	KwUnsafe
	KwAwait
	KwFor
	KwIn
	KwBreak
	KwContinue
	KwSizeof
	KwPackage
	KwImport
	KwAs
	KwSelf
	KwResult
	KwOption
	KwTaskHandle

	// Type-name keywords
	KwI8
	KwI16
	KwI32
	KwI64
	KwI128
	KwU8
	KwU16
	KwU32
	KwU64
	KwU128
	KwF32
	KwF64
	KwBool
	KwChar
	KwString
	KwVoid
	KwUsize
	KwIsize
	KwNever
	KwInt
	KwFloat

	// Punctuation / operators
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Comma     // ,
	Semi      // ;
	Colon     // :
	ColonColon // ::
	Dot       // .
	DotDotDot // ...
	Arrow     // ->
	FatArrow  // =>
	Assign    // =
	Eq        // ==
	Neq       // !=
	Lt        // <
	Le        // <=
	Gt        // >
	Ge        // >=
	AndAnd    // &&
	OrOr      // ||
	Amp       // &
	Pipe      // |
	Caret     // ^
	Tilde     // ~
	Shl       // <<
	Shr       // >>
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Bang      // !
	At        // @
	Hash      // #

	Eof
	Error
)

var names = map[Kind]string{
	Invalid: "invalid", Integer: "integer", Float: "float", StringLit: "string",
	CharLit: "char", Identifier: "identifier",
	KwFn: "fn", KwLet: "let", KwMut: "mut", KwConst: "const", KwIf: "if",
	KwElse: "else", KwMatch: "match", KwReturn: "return", KwStruct: "struct",
	KwEnum: "enum", KwImpl: "impl", KwPub: "pub", KwPriv: "priv",
	KwExtern: "extern", KwSpawn: "spawn", KwSpawnWithHandle: "spawn_with_handle",
	KwUnsafe: "unsafe", KwAwait: "await", KwFor: "for", KwIn: "in",
	KwBreak: "break", KwContinue: "continue", KwSizeof: "sizeof",
	KwPackage: "package", KwImport: "import", KwAs: "as", KwSelf: "self",
	KwResult: "Result", KwOption: "Option", KwTaskHandle: "TaskHandle",
	KwI8: "i8", KwI16: "i16", KwI32: "i32", KwI64: "i64", KwI128: "i128",
	KwU8: "u8", KwU16: "u16", KwU32: "u32", KwU64: "u64", KwU128: "u128",
	KwF32: "f32", KwF64: "f64", KwBool: "bool", KwChar: "char",
	KwString: "string", KwVoid: "void", KwUsize: "usize", KwIsize: "isize",
	KwNever: "Never", KwInt: "int", KwFloat: "float",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[",
	RBracket: "]", Comma: ",", Semi: ";", Colon: ":", ColonColon: "::",
	Dot: ".", DotDotDot: "...", Arrow: "->", FatArrow: "=>", Assign: "=",
	Eq: "==", Neq: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	AndAnd: "&&", OrOr: "||", Amp: "&", Pipe: "|", Caret: "^", Tilde: "~",
	Shl: "<<", Shr: ">>", Plus: "+", Minus: "-", Star: "*", Slash: "/",
	Percent: "%", Bang: "!", At: "@", Hash: "#",
	Eof: "EOF", Error: "error",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved keyword kinds: the
// letter keywords and the type-name keywords alike (KwFn through KwFloat).
func (k Kind) IsKeyword() bool {
	return k >= KwFn && k <= KwFloat
}

// IsTypeName reports whether k names a builtin type keyword.
func (k Kind) IsTypeName() bool {
	return k >= KwI8 && k <= KwFloat
}
