// Package sema implements Asthra's semantic analyzer: name resolution, type
// inference, pattern validation, impl/method resolution, and control-flow
// Never-propagation over a parsed Program (spec §4.C7).
package sema

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/symbols"
	"github.com/asthra-lang/asthrac/types"
)

// Analyzer walks one compilation unit's Program root in the fixed order
// spec §4.C7 names: register types, register signatures, analyze bodies.
// One Analyzer is used for exactly one unit and is not safe for concurrent
// reentry (spec §5 "within one file analysis is single-threaded"); dbg
// enforces that in builds tagged asthrac_debug.
type Analyzer struct {
	handler *reporter.Handler
	store   *types.Store
	root    *symbols.Table

	typeIds   map[string]types.TypeId // struct/enum name -> registered TypeId
	enumNames map[string]bool

	// methodTables holds one symbol scope per struct, populated by impl
	// blocks and consulted by method-call resolution (spec §4.C7 "Impl
	// blocks").
	methodTables map[string]*symbols.Table

	// funcReturnTypes is a stack of enclosing function/method return types,
	// pushed on entry to a body and popped on exit, consulted by return
	// statement analysis.
	funcReturnTypes []types.TypeId
	// selfStack holds the struct TypeId `Self` is bound to while analyzing
	// an impl block's signatures/bodies; empty outside any impl block.
	selfStack []types.TypeId

	loopDepth int
	inUnsafe  bool

	dbg debugGuard
}

// NewAnalyzer creates an Analyzer reporting through handler and interning
// type descriptors into store.
func NewAnalyzer(handler *reporter.Handler, store *types.Store) *Analyzer {
	a := &Analyzer{
		handler:      handler,
		store:        store,
		root:         symbols.NewRoot(),
		typeIds:      make(map[string]types.TypeId),
		enumNames:    make(map[string]bool),
		methodTables: make(map[string]*symbols.Table),
	}
	registerPredeclared(a.root, store)
	return a
}

// Analyze runs the full three-pass analysis over prog, annotating its nodes
// with resolved types in place.
func (a *Analyzer) Analyze(prog *ast.Program) {
	a.dbg.enter()
	defer a.dbg.exit()

	a.registerTypes(prog)
	a.registerSignatures(prog)
	a.analyzeBodies(prog)
}

func (a *Analyzer) errorf(code reporter.Code, pos source.Pos, format string, args ...interface{}) {
	a.handler.Report(reporter.New(code, pos, format, args...))
}

func (a *Analyzer) warnf(code reporter.Code, pos source.Pos, format string, args ...interface{}) {
	a.handler.Report(reporter.NewWarning(code, pos, format, args...))
}

func toSymbolsVis(v ast.Visibility) symbols.Visibility {
	if v == ast.Public {
		return symbols.Public
	}
	return symbols.Private
}

// currentSelf returns the TypeId `Self` resolves to, or types.Nil outside
// any impl block.
func (a *Analyzer) currentSelf() types.TypeId {
	if len(a.selfStack) == 0 {
		return types.Nil
	}
	return a.selfStack[len(a.selfStack)-1]
}
