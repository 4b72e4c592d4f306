package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/lexer"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
)

func parseSource(t *testing.T, src string) (*ast.Program, *reporter.Handler) {
	t.Helper()
	file := source.NewFile(1, "test.asthra", []byte(src))
	lex := lexer.New(file)
	handler := reporter.NewHandler(0)
	p := New(lex, handler, Config{AllowIncompleteParse: true})
	prog := p.Parse()
	return prog, handler
}

// S1: a minimal function with a typed let and an explicit unit return.
func TestParseMinimalFunction(t *testing.T) {
	t.Parallel()
	prog, handler := parseSource(t, `fn main(none) -> void { let x: i32 = 0; return (); }`)
	require.False(t, handler.Failed())
	require.Equal(t, 1, prog.Decls.Len())

	fn, ok := prog.Decls.At(0).(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name)
	assert.Nil(t, fn.Params)

	body, ok := fn.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Equal(t, 2, body.Stmts.Len())

	let, ok := body.Stmts.At(0).(*ast.LetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	assert.False(t, let.Mutable)

	ret, ok := body.Stmts.At(1).(*ast.ReturnStmt)
	require.True(t, ok)
	_, isUnit := ret.Expr.(*ast.UnitLiteral)
	assert.True(t, isUnit)
}

// S2: a missing ':' after the variable name is reported, and parsing still
// recovers far enough to find the following return.
func TestParseMissingColonReportsError(t *testing.T) {
	t.Parallel()
	_, handler := parseSource(t, `fn f(none) -> i32 { let x = 1; return x; }`)
	require.True(t, handler.Failed())
	diags := handler.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, reporter.CodeMissingToken, diags[0].Code)
}

// S3: enum-variant match patterns, both qualified, against an
// Option-typed scrutinee.
func TestParseMatchEnumPatterns(t *testing.T) {
	t.Parallel()
	src := `fn foo(none) -> Option<i32>;
fn main(none) -> i32 {
	match foo() {
		Option.Some(x) => x,
		Option.None => 0,
	}
	return 0;
}`
	prog, handler := parseSource(t, src)
	require.False(t, handler.Failed())
	require.Equal(t, 2, prog.Decls.Len())

	fn := prog.Decls.At(1).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)
	match := body.Stmts.At(0).(*ast.MatchStmt)
	require.Len(t, match.Arms, 2)

	p0, ok := match.Arms[0].Pattern.(*ast.EnumPattern)
	require.True(t, ok)
	assert.Equal(t, "Option", p0.EnumName)
	assert.Equal(t, "Some", p0.Variant)
	require.NotNil(t, p0.Nested)
	_, isIdent := p0.Nested.(*ast.IdentPattern)
	assert.True(t, isIdent)

	p1, ok := match.Arms[1].Pattern.(*ast.EnumPattern)
	require.True(t, ok)
	assert.Equal(t, "None", p1.Variant)
	assert.Nil(t, p1.Nested)
}

// S4: tuple-index field access on two independent values.
func TestParseTupleIndexAccess(t *testing.T) {
	t.Parallel()
	src := `fn f(none) -> void { let a: i32 = p.0; let b: i32 = p.1; }`
	prog, handler := parseSource(t, src)
	require.False(t, handler.Failed())

	fn := prog.Decls.At(0).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)

	letA := body.Stmts.At(0).(*ast.LetStmt)
	fa, ok := letA.Init.(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "0", fa.Field)

	letB := body.Stmts.At(1).(*ast.LetStmt)
	fb := letB.Init.(*ast.FieldAccessExpr)
	assert.Equal(t, "1", fb.Field)
}

// Chained tuple-index access: the lexer folds the second dot's digits into
// the first as a single Float token (`x.0.1` tokenizes IDENT DOT
// FLOAT(0.1)), which the parser must split back into two nested field
// accesses rather than reject.
func TestParseChainedTupleIndexAccess(t *testing.T) {
	t.Parallel()
	src := `fn f(none) -> void { let a: i32 = p.0.1; }`
	prog, handler := parseSource(t, src)
	require.False(t, handler.Failed(), "%v", handler.Diagnostics())

	fn := prog.Decls.At(0).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)
	let := body.Stmts.At(0).(*ast.LetStmt)

	outer, ok := let.Init.(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "1", outer.Field)

	inner, ok := outer.Target.(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "0", inner.Field)

	_, ok = inner.Target.(*ast.IdentifierExpr)
	assert.True(t, ok)
}

// S5: the spec's own worked example, `Vec<i32> { items: [] }` — a generic
// struct literal with explicit type arguments, plus a method call,
// exercising knownTypes and the instance-method postfix call chain.
func TestParseStructLiteralAndMethodCall(t *testing.T) {
	t.Parallel()
	src := `struct Vec { items: []i32 }
impl Vec {
	fn len(self) -> u64 { return 0; }
}
fn main(none) -> u64 {
	let v: Vec = Vec<i32> { items: [] };
	let n: u64 = v.len();
	return n;
}`
	prog, handler := parseSource(t, src)
	require.False(t, handler.Failed(), "%v", handler.Diagnostics())
	require.Equal(t, 3, prog.Decls.Len())

	impl := prog.Decls.At(1).(*ast.ImplDecl)
	require.Equal(t, 1, impl.Methods.Len())
	method := impl.Methods.At(0).(*ast.MethodDecl)
	assert.True(t, method.IsInstance)

	fn := prog.Decls.At(2).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)
	letV := body.Stmts.At(0).(*ast.LetStmt)
	lit, ok := letV.Init.(*ast.StructLiteralExpr)
	require.True(t, ok)
	assert.Equal(t, "Vec", lit.TypeName)
	require.Equal(t, 1, lit.TypeArgs.Len())
	argType, ok := lit.TypeArgs.At(0).(*ast.NamedType)
	require.True(t, ok)
	assert.Equal(t, "i32", argType.Name)

	letN := body.Stmts.At(1).(*ast.LetStmt)
	call, ok := letN.Init.(*ast.CallExpr)
	require.True(t, ok)
	field, ok := call.Callee.(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "len", field.Field)
}

// Forward-referenced struct literal: knownTypes hasn't recorded Pair yet
// when its literal is parsed (the declaration comes later in the unit), so
// recognition must fall back to the empty-literal/first-field-colon
// lookahead rather than the knownTypes gate.
func TestParseForwardReferencedStructLiteral(t *testing.T) {
	t.Parallel()
	src := `fn f(none) -> void {
	let p: Pair = Pair { a: 1, b: 2 };
}
struct Pair { a: i32, b: i32 }`
	prog, handler := parseSource(t, src)
	require.False(t, handler.Failed(), "%v", handler.Diagnostics())

	fn := prog.Decls.At(0).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)
	let := body.Stmts.At(0).(*ast.LetStmt)
	lit, ok := let.Init.(*ast.StructLiteralExpr)
	require.True(t, ok)
	assert.Equal(t, "Pair", lit.TypeName)
	require.Len(t, lit.Fields, 2)
}

// S6: for-loop with a break, and the struct-literal-vs-block heuristic:
// the bare `collection { ... }` here must not be read as a struct literal
// since `collection` is never declared as a struct/enum name.
func TestParseForLoopBreak(t *testing.T) {
	t.Parallel()
	src := `fn g(none) -> i32 { for x in collection { break; } return 0; }`
	prog, handler := parseSource(t, src)
	require.False(t, handler.Failed())

	fn := prog.Decls.At(0).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)
	forStmt := body.Stmts.At(0).(*ast.ForStmt)
	assert.Equal(t, "x", forStmt.VarName)
	_, isIdent := forStmt.Iterable.(*ast.IdentifierExpr)
	assert.True(t, isIdent, "bare `collection` before the loop body must parse as the iterable identifier, not a struct literal")

	loopBody := forStmt.Body.(*ast.BlockStmt)
	require.Equal(t, 1, loopBody.Stmts.Len())
	_, isBreak := loopBody.Stmts.At(0).(*ast.BreakStmt)
	assert.True(t, isBreak)
}

// Struct-literal-vs-block disambiguation: a known struct name used as an
// if-condition must parse as the condition identifier plus a block, not a
// struct literal, while the same expression parenthesized opts back in.
func TestStructLiteralVsBlockDisambiguation(t *testing.T) {
	t.Parallel()
	src := `struct Point { x: i32 }
fn f(none) -> void {
	if Point { return (); }
}`
	prog, handler := parseSource(t, src)
	require.False(t, handler.Failed())

	fn := prog.Decls.At(1).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)
	ifStmt := body.Stmts.At(0).(*ast.IfStmt)
	_, isIdent := ifStmt.Cond.(*ast.IdentifierExpr)
	assert.True(t, isIdent, "Point before the if-body must parse as a bare condition identifier")
	then := ifStmt.Then.(*ast.BlockStmt)
	require.Equal(t, 1, then.Stmts.Len())
}

func TestStructLiteralAllowedWhenParenthesized(t *testing.T) {
	t.Parallel()
	src := `struct Point { x: i32 }
fn f(none) -> void {
	for q in (Point { x: 1 }) { break; }
}`
	prog, handler := parseSource(t, src)
	require.False(t, handler.Failed())

	fn := prog.Decls.At(1).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)
	forStmt := body.Stmts.At(0).(*ast.ForStmt)
	_, ok := forStmt.Iterable.(*ast.StructLiteralExpr)
	assert.True(t, ok)
}

// f(void) is rejected as a migration-era spelling, but parsing still
// recovers and the call itself is still built.
func TestCallWithVoidArgumentIsRejected(t *testing.T) {
	t.Parallel()
	_, handler := parseSource(t, `fn f(none) -> void { g(void); }`)
	require.True(t, handler.Failed())
	diags := handler.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, reporter.CodeInvalidExpr, diags[0].Code)
}

// Operator precedence: && binds tighter than ||, and comparisons bind
// tighter than both.
func TestParseOperatorPrecedence(t *testing.T) {
	t.Parallel()
	prog, handler := parseSource(t, `fn f(none) -> bool { return a < b || c && d == e; }`)
	require.False(t, handler.Failed())

	fn := prog.Decls.At(0).(*ast.FunctionDecl)
	body := fn.Body.(*ast.BlockStmt)
	ret := body.Stmts.At(0).(*ast.ReturnStmt)
	top, ok := ret.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpOr, top.Op)

	left, ok := top.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpLt, left.Op)

	right, ok := top.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, right.Op)
}

// Panic-mode recovery: a junk top-level token is reported, but the parser
// keeps going and still finds the following, well-formed declaration.
func TestPanicModeRecoversToNextDecl(t *testing.T) {
	t.Parallel()
	src := `@@@
fn ok(none) -> void { return (); }`
	prog, handler := parseSource(t, src)
	require.True(t, handler.Failed())
	require.Equal(t, 1, prog.Decls.Len())
	fn, ok := prog.Decls.At(0).(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "ok", fn.Name)
}
