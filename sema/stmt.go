package sema

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/symbols"
	"github.com/asthra-lang/asthrac/types"
)

// analyzeBodies implements spec §4.C7 step 3: analyze every function,
// extern (no body), and impl-block method body now that every signature in
// the unit is already registered.
func (a *Analyzer) analyzeBodies(prog *ast.Program) {
	for i := 0; i < prog.Decls.Len(); i++ {
		switch d := prog.Decls.At(i).(type) {
		case *ast.FunctionDecl:
			if d.Body == nil {
				continue
			}
			a.analyzeFunctionLikeBody(d.Params, false, types.Nil, d.ReturnType, d.Body)
		case *ast.ImplDecl:
			a.analyzeImplBodies(d)
		}
	}
}

// analyzeBlockIn analyzes body (expected to be a *ast.BlockStmt) as a
// function/method body in scope, discarding the Never-propagation result:
// a function is not required to diverge even if its last statement happens
// to.
func (a *Analyzer) analyzeBlockIn(body ast.Node, scope *symbols.Table) {
	a.analyzeBlock(body, scope)
}

// analyzeBlock opens a child scope of parent, analyzes every statement in
// sequence, and reports unreachable code after the first statement that
// returns Never (spec §4.C7 "Never-propagation"). It returns whether the
// block as a whole returns Never.
func (a *Analyzer) analyzeBlock(node ast.Node, parent *symbols.Table) bool {
	block, ok := node.(*ast.BlockStmt)
	if !ok {
		return a.analyzeStmt(node, parent)
	}
	scope := parent.CreateChild()
	defer scope.Destroy()

	returnsNever := false
	for i := 0; i < block.Stmts.Len(); i++ {
		stmt := block.Stmts.At(i)
		if returnsNever {
			a.warnf(reporter.CodeUnreachableCode, stmt.Range().Start, "unreachable code")
		}
		if a.analyzeStmt(stmt, scope) {
			returnsNever = true
		}
	}
	return returnsNever
}

// analyzeBranch dispatches an if/if-let branch node, which the parser
// produces as either a *ast.BlockStmt or (for an "else if") a nested
// *ast.IfStmt/*ast.IfLetStmt. A true block gets its own child scope via
// analyzeBlock; a nested if/if-let manages its own scope already, so it is
// dispatched to analyzeStmt directly.
func (a *Analyzer) analyzeBranch(node ast.Node, parent *symbols.Table) bool {
	switch node.(type) {
	case *ast.IfStmt, *ast.IfLetStmt:
		return a.analyzeStmt(node, parent)
	default:
		return a.analyzeBlock(node, parent)
	}
}

// analyzeStmt analyzes one statement and reports whether it (unconditionally)
// diverges, i.e. returns Never (spec §4.C7 "Never-propagation").
func (a *Analyzer) analyzeStmt(node ast.Node, scope *symbols.Table) bool {
	switch n := node.(type) {
	case *ast.BlockStmt:
		return a.analyzeBlock(n, scope)

	case *ast.LetStmt:
		declared := a.resolveType(n.Type)
		if n.Init != nil {
			initType := a.analyzeExpr(n.Init, scope)
			if !a.store.AssignableTo(initType, declared) {
				a.errorf(reporter.CodeTypeMismatch, n.Init.Range().Start,
					"cannot initialize %q of type %s with %s", n.Name, a.store.TypeName(declared), a.store.TypeName(initType))
			}
		}
		flags := symbols.Flags(0)
		if n.Mutable {
			flags |= symbols.FlagMutable
		}
		if n.Init != nil {
			flags |= symbols.FlagInitialized
		}
		entry := &symbols.Entry{Name: n.Name, Kind: symbols.KindVariable, Type: declared, Decl: n, Flags: flags}
		if !scope.InsertSafe(entry) {
			a.errorf(reporter.CodeDuplicateSymbol, n.Range().Start, "duplicate symbol %q", n.Name)
		}
		return false

	case *ast.ReturnStmt:
		exprType := a.analyzeExpr(n.Expr, scope)
		if len(a.funcReturnTypes) > 0 {
			declared := a.funcReturnTypes[len(a.funcReturnTypes)-1]
			if !a.store.ReturnCompatible(exprType, declared) {
				a.errorf(reporter.CodeTypeMismatch, n.Expr.Range().Start,
					"cannot return %s, function returns %s", a.store.TypeName(exprType), a.store.TypeName(declared))
			}
		}
		return true

	case *ast.ExprStmt:
		exprType := a.analyzeExpr(n.Expr, scope)
		return a.store.IsNever(exprType)

	case *ast.IfStmt:
		condType := a.analyzeExpr(n.Cond, scope)
		if condType != types.PrimitiveID(types.Bool) {
			a.errorf(reporter.CodeTypeMismatch, n.Cond.Range().Start, "if condition must be bool")
		}
		thenNever := a.analyzeBranch(n.Then, scope)
		if n.Else == nil {
			return false
		}
		elseNever := a.analyzeBranch(n.Else, scope)
		return thenNever && elseNever

	case *ast.IfLetStmt:
		scrutType := a.analyzeExpr(n.Expr, scope)
		thenScope := scope.CreateChild()
		a.bindPattern(n.Pattern, scrutType, thenScope)
		thenNever := a.analyzeBranch(n.Then, thenScope)
		thenScope.Destroy()
		if n.Else == nil {
			return false
		}
		elseNever := a.analyzeBranch(n.Else, scope)
		return thenNever && elseNever

	case *ast.ForStmt:
		iterType := a.analyzeExpr(n.Iterable, scope)
		elemType := types.Nil
		if iterType != types.Nil {
			d := a.baseDescriptor(iterType)
			if d.Kind == types.KindSlice || d.Kind == types.KindArray {
				elemType = d.Elem
			} else {
				a.errorf(reporter.CodeTypeMismatch, n.Iterable.Range().Start,
					"for loop requires an iterable (slice or array), found %s", a.store.TypeName(iterType))
			}
		}
		bodyScope := scope.CreateChild()
		bodyScope.InsertSafe(&symbols.Entry{
			Name: n.VarName, Kind: symbols.KindVariable, Type: elemType, Flags: symbols.FlagInitialized,
		})
		a.loopDepth++
		a.analyzeBranch(n.Body, bodyScope)
		a.loopDepth--
		bodyScope.Destroy()
		return false

	case *ast.MatchStmt:
		scrutType := a.analyzeExpr(n.Scrutinee, scope)
		a.checkMatchExhaustive(scrutType, n.Arms, n.Range().Start)
		allNever := len(n.Arms) > 0
		for _, arm := range n.Arms {
			armScope := scope.CreateChild()
			a.bindPattern(arm.Pattern, scrutType, armScope)
			if !a.analyzeBranch(arm.Body, armScope) {
				allNever = false
			}
			armScope.Destroy()
		}
		return allNever

	case *ast.BreakStmt:
		if a.loopDepth == 0 {
			a.errorf(reporter.CodeBreakOutsideLoop, n.Range().Start, "break outside a loop")
		}
		return false

	case *ast.ContinueStmt:
		if a.loopDepth == 0 {
			a.errorf(reporter.CodeBreakOutsideLoop, n.Range().Start, "continue outside a loop")
		}
		return false

	case *ast.UnsafeBlockStmt:
		prev := a.inUnsafe
		a.inUnsafe = true
		never := a.analyzeBranch(n.Body, scope)
		a.inUnsafe = prev
		return never

	case *ast.SpawnStmt:
		a.analyzeExpr(n.Call, scope)
		return false

	case *ast.SpawnWithHandleStmt:
		callType := a.analyzeExpr(n.Call, scope)
		handleType := a.store.NewTaskHandle(callType)
		scope.InsertSafe(&symbols.Entry{
			Name: n.HandleName, Kind: symbols.KindVariable, Type: handleType, Flags: symbols.FlagInitialized,
		})
		return false

	case *ast.AssignStmt:
		targetType := a.analyzeExpr(n.Target, scope)
		if id, ok := n.Target.(*ast.IdentifierExpr); ok {
			if entry, found := scope.LookupSafe(id.Name); found && !entry.Flags.Has(symbols.FlagMutable) {
				a.errorf(reporter.CodeImmutableAssign, n.Range().Start, "cannot assign to immutable %q", id.Name)
			}
		}
		valType := a.analyzeExpr(n.Value, scope)
		if targetType != types.Nil && !a.store.AssignableTo(valType, targetType) {
			a.errorf(reporter.CodeTypeMismatch, n.Value.Range().Start,
				"cannot assign %s to %s", a.store.TypeName(valType), a.store.TypeName(targetType))
		}
		return false

	default:
		a.errorf(reporter.CodeInvalidExpr, node.Range().Start, "statement not valid in this context")
		return false
	}
}

// analyzeMatchArmValue analyzes a match-expression arm's body, which the
// parser allows to be either a *ast.BlockStmt (whose last statement yields
// the arm's value) or a bare expression (spec §3 "match as expression"
// shares grammar with match-as-statement).
func (a *Analyzer) analyzeMatchArmValue(node ast.Node, scope *symbols.Table) types.TypeId {
	block, ok := node.(*ast.BlockStmt)
	if !ok {
		return a.analyzeExpr(node, scope)
	}
	return a.analyzeBlockValue(block, scope)
}

// analyzeBlockValue analyzes a block used as an expression: every statement
// but the last is analyzed as a statement, and the last (if an ExprStmt) is
// its value; an empty block or one not ending in an expression is void.
func (a *Analyzer) analyzeBlockValue(block *ast.BlockStmt, parent *symbols.Table) types.TypeId {
	scope := parent.CreateChild()
	defer scope.Destroy()

	n := block.Stmts.Len()
	if n == 0 {
		return types.PrimitiveID(types.Void)
	}
	for i := 0; i < n-1; i++ {
		a.analyzeStmt(block.Stmts.At(i), scope)
	}
	last := block.Stmts.At(n - 1)
	if exprStmt, ok := last.(*ast.ExprStmt); ok {
		return a.analyzeExpr(exprStmt.Expr, scope)
	}
	a.analyzeStmt(last, scope)
	return types.PrimitiveID(types.Void)
}
