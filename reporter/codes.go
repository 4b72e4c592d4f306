// Package reporter accumulates structured diagnostics produced while
// lexing, parsing, and analyzing one compilation unit (spec §4.C8 "Error
// reporter").
package reporter

// Code is a stable, tool-facing diagnostic identifier. The numeric ranges
// are a fixed taxonomy (spec §4.C4 "Error recovery", §6 "Error codes"):
// lexical 1xxx, syntax 2xxx, semantic 3xxx, grammar 4xxx, recovery 5xxx,
// import 6xxx.
type Code int

const (
	CodeInvalidToken      Code = 1000
	CodeUnterminatedString Code = 1001
	CodeInvalidNumber     Code = 1002

	CodeUnexpectedToken Code = 2000
	CodeMissingToken    Code = 2001
	CodeInvalidExpr     Code = 2002

	CodeUndefinedSymbol Code = 3000
	CodeDuplicateSymbol Code = 3001
	CodeTypeMismatch    Code = 3002
	CodeImmutableAssign Code = 3003
	CodeArityMismatch   Code = 3004
	CodeNotCallable     Code = 3005
	CodeBreakOutsideLoop Code = 3006
	CodeUnsafeRequired  Code = 3007

	CodeNonExhaustiveMatch Code = 4002
	CodeUnreachableCode    Code = 4003
	CodeUnusedImport       Code = 4004

	CodePanicModeRecovery Code = 5000

	CodeUnresolvedImport Code = 6000
	CodeUnresolvedAlias  Code = 6001
)
