package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asthra-lang/asthrac/lexer"
	"github.com/asthra-lang/asthrac/parser"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/types"
)

func analyzeSource(t *testing.T, src string) *reporter.Handler {
	t.Helper()
	file := source.NewFile(1, "test.asthra", []byte(src))
	lex := lexer.New(file)
	handler := reporter.NewHandler(0)
	p := parser.New(lex, handler, parser.Config{})
	prog := p.Parse()
	require.False(t, handler.Failed(), "parse errors: %v", handler.Diagnostics())

	a := NewAnalyzer(handler, types.NewStore())
	a.Analyze(prog)
	return handler
}

// S1: a minimal function analyzes cleanly.
func TestAnalyzeMinimalFunction(t *testing.T) {
	t.Parallel()
	handler := analyzeSource(t, `fn main(none) -> void { let x: i32 = 0; return (); }`)
	assert.False(t, handler.Failed(), "%v", handler.Diagnostics())
}

func TestAnalyzeUndefinedSymbol(t *testing.T) {
	t.Parallel()
	handler := analyzeSource(t, `fn main(none) -> i32 { return y; }`)
	require.True(t, handler.Failed())
	assert.Equal(t, reporter.CodeUndefinedSymbol, handler.Diagnostics()[0].Code)
}

func TestAnalyzeTypeMismatchOnLet(t *testing.T) {
	t.Parallel()
	handler := analyzeSource(t, `fn main(none) -> void { let x: i32 = true; return (); }`)
	require.True(t, handler.Failed())
	assert.Equal(t, reporter.CodeTypeMismatch, handler.Diagnostics()[0].Code)
}

func TestAnalyzeArityMismatchOnCall(t *testing.T) {
	t.Parallel()
	src := `fn add(a: i32, b: i32) -> i32 { return a; }
fn main(none) -> i32 { return add(1); }`
	handler := analyzeSource(t, src)
	require.True(t, handler.Failed())
	assert.Equal(t, reporter.CodeArityMismatch, handler.Diagnostics()[0].Code)
}

func TestAnalyzeStructLiteralMissingField(t *testing.T) {
	t.Parallel()
	src := `struct Point { x: i32, y: i32 }
fn main(none) -> void { let p: Point = Point { x: 1 }; return (); }`
	handler := analyzeSource(t, src)
	require.True(t, handler.Failed())
	assert.Equal(t, reporter.CodeArityMismatch, handler.Diagnostics()[0].Code)
}

func TestAnalyzeStructFieldAccessAndMethodCall(t *testing.T) {
	t.Parallel()
	src := `struct Point { x: i32, y: i32 }
impl Point {
	fn getX(self) -> i32 { return self.x; }
}
fn main(none) -> i32 {
	let p: Point = Point { x: 1, y: 2 };
	return p.getX();
}`
	handler := analyzeSource(t, src)
	assert.False(t, handler.Failed(), "%v", handler.Diagnostics())
}

func TestAnalyzeEnumMatchExhaustive(t *testing.T) {
	t.Parallel()
	src := `enum Shape { Circle(i32), Square(i32) }
fn area(s: Shape) -> i32 {
	match s {
		Shape.Circle(r) => r,
		Shape.Square(side) => side,
	}
	return 0;
}`
	handler := analyzeSource(t, src)
	assert.False(t, handler.Failed(), "%v", handler.Diagnostics())
}

func TestAnalyzeEnumMatchNonExhaustive(t *testing.T) {
	t.Parallel()
	src := `enum Shape { Circle(i32), Square(i32) }
fn area(s: Shape) -> i32 {
	match s {
		Shape.Circle(r) => r,
	}
	return 0;
}`
	handler := analyzeSource(t, src)
	require.False(t, handler.Failed(), "%v", handler.Diagnostics())
	var sawWarning bool
	for _, d := range handler.Diagnostics() {
		if d.Code == reporter.CodeNonExhaustiveMatch {
			sawWarning = true
		}
	}
	assert.True(t, sawWarning, "%v", handler.Diagnostics())
}

func TestAnalyzeMatchExpressionUnifiesArmTypes(t *testing.T) {
	t.Parallel()
	src := `enum Shape { Circle(i32), Square(i32) }
fn area(s: Shape) -> i32 {
	let r: i32 = match s {
		Shape.Circle(r) => r,
		Shape.Square(side) => true,
	};
	return r;
}`
	handler := analyzeSource(t, src)
	require.True(t, handler.Failed())
	assert.Equal(t, reporter.CodeTypeMismatch, handler.Diagnostics()[0].Code)
}

func TestAnalyzeBreakOutsideLoop(t *testing.T) {
	t.Parallel()
	handler := analyzeSource(t, `fn main(none) -> void { break; return (); }`)
	require.True(t, handler.Failed())
	assert.Equal(t, reporter.CodeBreakOutsideLoop, handler.Diagnostics()[0].Code)
}

func TestAnalyzeForLoopBreakAllowed(t *testing.T) {
	t.Parallel()
	src := `fn main(none) -> void {
	let xs: []i32 = [1, 2, 3];
	for x in xs {
		break;
	}
	return ();
}`
	handler := analyzeSource(t, src)
	assert.False(t, handler.Failed(), "%v", handler.Diagnostics())
}

func TestAnalyzeUnreachableCodeAfterReturn(t *testing.T) {
	t.Parallel()
	src := `fn main(none) -> i32 {
	return 1;
	return 2;
}`
	handler := analyzeSource(t, src)
	assert.False(t, handler.Failed())
	var sawWarning bool
	for _, d := range handler.Diagnostics() {
		if d.Code == reporter.CodeUnreachableCode {
			sawWarning = true
		}
	}
	assert.True(t, sawWarning, "%v", handler.Diagnostics())
}

func TestAnalyzeDerefRequiresUnsafe(t *testing.T) {
	t.Parallel()
	src := `fn main(none) -> void {
	let x: i32 = 1;
	let p: *const i32 = &x;
	let y: i32 = *p;
	return ();
}`
	handler := analyzeSource(t, src)
	require.True(t, handler.Failed())
	assert.Equal(t, reporter.CodeUnsafeRequired, handler.Diagnostics()[0].Code)
}

func TestAnalyzeDerefInsideUnsafeBlock(t *testing.T) {
	t.Parallel()
	src := `fn main(none) -> void {
	let x: i32 = 1;
	let p: *const i32 = &x;
	unsafe {
		let y: i32 = *p;
	}
	return ();
}`
	handler := analyzeSource(t, src)
	assert.False(t, handler.Failed(), "%v", handler.Diagnostics())
}

func TestAnalyzeImmutableAssignRejected(t *testing.T) {
	t.Parallel()
	src := `fn main(none) -> void {
	let x: i32 = 1;
	x = 2;
	return ();
}`
	handler := analyzeSource(t, src)
	require.True(t, handler.Failed())
	assert.Equal(t, reporter.CodeImmutableAssign, handler.Diagnostics()[0].Code)
}

func TestAnalyzeMutableAssignAllowed(t *testing.T) {
	t.Parallel()
	src := `fn main(none) -> void {
	let mut x: i32 = 1;
	x = 2;
	return ();
}`
	handler := analyzeSource(t, src)
	assert.False(t, handler.Failed(), "%v", handler.Diagnostics())
}
