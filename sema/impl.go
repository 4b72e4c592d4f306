package sema

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/symbols"
	"github.com/asthra-lang/asthrac/types"
)

// registerImplSignatures implements spec §4.C7 "Impl blocks": verify the
// struct exists, create (or reuse) its method table, bind `Self` to the
// struct type for the duration of signature resolution, and insert one
// method symbol per method, duplicate-checked.
func (a *Analyzer) registerImplSignatures(d *ast.ImplDecl) {
	structId, ok := a.typeIds[d.StructName]
	if !ok {
		a.errorf(reporter.CodeUndefinedSymbol, d.Range().Start, "impl target %q is not a declared struct", d.StructName)
		return
	}
	table, ok := a.methodTables[d.StructName]
	if !ok {
		table = symbols.NewRoot()
		a.methodTables[d.StructName] = table
	}

	a.selfStack = append(a.selfStack, structId)
	defer a.popSelf()

	for i := 0; i < d.Methods.Len(); i++ {
		m, ok := d.Methods.At(i).(*ast.MethodDecl)
		if !ok {
			continue
		}
		a.registerMethodSignature(table, m)
	}
}

// registerMethodSignature builds m's function descriptor. The parser never
// puts `self` in m.Params (parser/decl.go's parseMethodDecl consumes it as
// a leading flag, IsInstance, rather than a parameter), so an instance
// method's implicit receiver is prepended here as the descriptor's first
// parameter type, ahead of m's explicit parameters.
func (a *Analyzer) registerMethodSignature(table *symbols.Table, m *ast.MethodDecl) {
	offset := 0
	if m.IsInstance {
		offset = 1
	}
	params := make([]types.TypeId, len(m.Params)+offset)
	if m.IsInstance {
		params[0] = a.currentSelf()
	}
	for i, p := range m.Params {
		params[i+offset] = a.resolveType(p.Type)
	}
	ret := a.resolveType(m.ReturnType)
	fn := a.store.NewFunction(params, ret, false, "", nil)

	flags := symbols.FlagInitialized
	if m.IsInstance {
		flags |= symbols.FlagIsInstanceMethod
	}
	entry := &symbols.Entry{
		Name: m.Name, Kind: symbols.KindMethod, Type: fn, Decl: m,
		Vis: toSymbolsVis(m.Vis), Flags: flags,
	}
	if !table.InsertSafe(entry) {
		a.errorf(reporter.CodeDuplicateSymbol, m.Range().Start, "duplicate method %q", m.Name)
	}
}

func (a *Analyzer) popSelf() {
	a.selfStack = a.selfStack[:len(a.selfStack)-1]
}

// analyzeImplBodies analyzes every method body declared in d, in a scope
// that has `self` bound (for instance methods) and `Self` resolving to the
// struct type.
func (a *Analyzer) analyzeImplBodies(d *ast.ImplDecl) {
	structId, ok := a.typeIds[d.StructName]
	if !ok {
		return
	}
	a.selfStack = append(a.selfStack, structId)
	defer a.popSelf()

	for i := 0; i < d.Methods.Len(); i++ {
		m, ok := d.Methods.At(i).(*ast.MethodDecl)
		if !ok || m.Body == nil {
			continue
		}
		a.analyzeFunctionLikeBody(m.Params, m.IsInstance, structId, m.ReturnType, m.Body)
	}
}

// analyzeFunctionLikeBody is shared by top-level functions and methods: open
// a parameter scope, bind `self` (for instance methods) plus every explicit
// parameter, push the return type, analyze the body block, then pop.
func (a *Analyzer) analyzeFunctionLikeBody(params []ast.Param, isInstance bool, selfType types.TypeId, returnType, body ast.Node) {
	scope := a.root.CreateChild()
	if isInstance {
		scope.InsertSafe(&symbols.Entry{Name: "self", Kind: symbols.KindVariable, Type: selfType, Flags: symbols.FlagInitialized})
	}
	for _, p := range params {
		scope.InsertSafe(&symbols.Entry{
			Name: p.Name, Kind: symbols.KindVariable, Type: a.resolveType(p.Type),
			Flags: symbols.FlagInitialized,
		})
	}

	ret := a.resolveType(returnType)
	a.funcReturnTypes = append(a.funcReturnTypes, ret)
	a.analyzeBlockIn(body, scope)
	a.funcReturnTypes = a.funcReturnTypes[:len(a.funcReturnTypes)-1]
}
