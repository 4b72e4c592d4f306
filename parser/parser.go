// Package parser implements Asthra's hand-written recursive-descent
// parser: token stream in, reference-counted AST out (spec §4.C4).
package parser

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/lexer"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/token"
)

// Config mirrors the parser configuration spec §4.C4 names: whether to
// recover from a syntax error by skipping to the next statement or
// declaration boundary (AllowIncompleteParse), or by skipping only the
// offending token. In both modes parsing continues after the error; the
// parser does not stop at the first error.
type Config struct {
	AllowIncompleteParse bool
}

// Parser turns a token stream into a Program. One Parser is used for
// exactly one compilation unit and is not safe for concurrent use — the
// driver gives each file its own Parser/lexer pair (spec §5 "Scheduling
// model").
type Parser struct {
	lex     *lexer.Lexer
	handler *reporter.Handler
	cfg     Config
	buf     []token.Token

	// knownTypes tracks struct/enum names seen so far in this unit, used
	// only for the struct-literal-vs-block heuristic (spec §4.C4 "Struct
	// literal vs. block", case (a)). Forward references to a type declared
	// later in the same file fall back to heuristics (b)/(c); full name
	// resolution happens in the semantic analyzer, not here.
	knownTypes map[string]bool
	// knownEnums is the subset of knownTypes declared with `enum`, used to
	// recognize `EnumName.Variant(...)` construction syntax (spec §4.C4).
	knownEnums map[string]bool

	// allowStructLiteralHere is false while parsing the controlling
	// expression of if/if-let/for/match, so a bare `Name { ... }` there
	// parses as a block rather than a struct literal (spec §4.C4 "Struct
	// literal vs. block", case (b)); parenthesizing the literal opts back
	// in since parseParenOrTupleExpr resets it for the nested expression.
	allowStructLiteralHere bool

	panicking bool
	lastEnd   source.Pos
}

// New creates a Parser reading from lex and reporting through handler.
func New(lex *lexer.Lexer, handler *reporter.Handler, cfg Config) *Parser {
	return &Parser{
		lex: lex, handler: handler, cfg: cfg,
		knownTypes: make(map[string]bool), knownEnums: make(map[string]bool),
		allowStructLiteralHere: true,
	}
}

// Parse consumes the entire token stream and returns the program root.
// Even on error the returned node is non-nil (a partial parse), so a
// caller with AllowIncompleteParse can still run later passes over
// whatever was recovered.
func (p *Parser) Parse() *ast.Program {
	start := p.peek().Pos()

	var packageName string
	if _, ok := p.accept(token.KwPackage); ok {
		name, _ := p.expect(token.Identifier, "package name")
		packageName = name.Text
		p.expect(token.Semi, "';' after package clause")
	}

	var imports []string
	for p.check(token.KwImport) {
		p.advance()
		path, ok := p.expect(token.StringLit, "import path")
		if ok {
			imports = append(imports, path.StringValue)
		}
		p.expect(token.Semi, "';' after import")
	}

	var decls []ast.Node
	for !p.check(token.Eof) {
		d := p.parseTopLevelDecl()
		if d != nil {
			decls = append(decls, d)
		}
		if p.panicking {
			p.recoverPanicMode()
		}
	}

	end := p.peek().Pos()
	rng := rangeFromPos(start, end)
	program := ast.NewProgram(rng, packageName, imports, decls...)
	for _, d := range decls {
		d.Release() // Program retained its own copy; drop this loop's handle
	}
	return program
}
