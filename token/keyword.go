package token

// keywords maps every reserved spelling (both statement keywords and
// builtin type names) to its Kind. Anything not present here lexes as a
// plain Identifier.
var keywords = map[string]Kind{
	"fn": KwFn, "let": KwLet, "mut": KwMut, "const": KwConst,
	"if": KwIf, "else": KwElse, "match": KwMatch, "return": KwReturn,
	"struct": KwStruct, "enum": KwEnum, "impl": KwImpl,
	"pub": KwPub, "priv": KwPriv, "extern": KwExtern,
	"spawn": KwSpawn, "spawn_with_handle": KwSpawnWithHandle,
	"unsafe": KwUnsafe, "await": KwAwait, "for": KwFor, "in": KwIn,
	"break": KwBreak, "continue": KwContinue, "sizeof": KwSizeof,
	"package": KwPackage, "import": KwImport, "as": KwAs, "self": KwSelf,
	"Result": KwResult, "Option": KwOption, "TaskHandle": KwTaskHandle,

	"i8": KwI8, "i16": KwI16, "i32": KwI32, "i64": KwI64, "i128": KwI128,
	"u8": KwU8, "u16": KwU16, "u32": KwU32, "u64": KwU64, "u128": KwU128,
	"f32": KwF32, "f64": KwF64, "bool": KwBool, "char": KwChar,
	"string": KwString, "void": KwVoid, "usize": KwUsize, "isize": KwIsize,
	"Never": KwNever, "int": KwInt, "float": KwFloat,
}

// LookupKeyword returns the keyword Kind for a scanned identifier lexeme, or
// (Identifier, false) if it is not reserved. Callers that hit true must use
// the returned Kind, never Identifier, for the token emitted in its place —
// this is what keeps keyword-spelled identifiers from round-tripping as
// Identifier tokens (testable property 2).
func LookupKeyword(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}
