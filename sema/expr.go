package sema

import (
	"strconv"

	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/symbols"
	"github.com/asthra-lang/asthrac/types"
)

// analyzeExpr resolves the type of an expression node, recursively
// resolving its subexpressions, per spec §4.C7 "Expression typing".
func (a *Analyzer) analyzeExpr(node ast.Node, scope *symbols.Table) types.TypeId {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return types.PrimitiveID(types.I32)
	case *ast.FloatLiteral:
		return types.PrimitiveID(types.F32)
	case *ast.StringLiteral:
		return types.PrimitiveID(types.StringPrim)
	case *ast.BoolLiteral:
		return types.PrimitiveID(types.Bool)
	case *ast.CharLiteral:
		return types.PrimitiveID(types.Char)
	case *ast.UnitLiteral:
		return types.PrimitiveID(types.Void)
	case *ast.ArrayLiteralExpr:
		return a.analyzeArrayLiteral(n, scope)
	case *ast.TupleExpr:
		elems := make([]types.TypeId, n.Elements.Len())
		for i := 0; i < n.Elements.Len(); i++ {
			elems[i] = a.analyzeExpr(n.Elements.At(i), scope)
		}
		return a.store.NewTuple(elems)
	case *ast.IdentifierExpr:
		entry, ok := scope.LookupSafe(n.Name)
		if !ok {
			a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "undefined symbol %q", n.Name)
			return types.Nil
		}
		return entry.Type
	case *ast.BinaryExpr:
		return a.analyzeBinaryExpr(n, scope)
	case *ast.UnaryExpr:
		return a.analyzeUnaryExpr(n, scope)
	case *ast.FieldAccessExpr:
		return a.analyzeFieldAccess(n, scope)
	case *ast.IndexExpr:
		return a.analyzeIndexExpr(n, scope)
	case *ast.SliceExpr:
		return a.analyzeSliceExpr(n, scope)
	case *ast.CallExpr:
		return a.analyzeCallExpr(n, scope)
	case *ast.AssocCallExpr:
		return a.analyzeAssocCallExpr(n, scope)
	case *ast.EnumConstructExpr:
		return a.analyzeEnumConstructExpr(n, scope)
	case *ast.StructLiteralExpr:
		return a.analyzeStructLiteralExpr(n, scope)
	case *ast.SizeofExpr:
		a.resolveType(n.TypeExpr)
		return types.PrimitiveID(types.Usize)
	case *ast.AwaitExpr:
		return a.analyzeAwaitExpr(n, scope)
	case *ast.MatchExpr:
		return a.analyzeMatchExprNode(n, scope)
	default:
		a.errorf(reporter.CodeInvalidExpr, node.Range().Start, "expression not valid in this context")
		return types.Nil
	}
}

func (a *Analyzer) analyzeArrayLiteral(n *ast.ArrayLiteralExpr, scope *symbols.Table) types.TypeId {
	if n.Elements.Len() == 0 {
		return a.store.NewSlice(types.PrimitiveID(types.Void))
	}
	elemType := a.analyzeExpr(n.Elements.At(0), scope)
	for i := 1; i < n.Elements.Len(); i++ {
		elem := n.Elements.At(i)
		t := a.analyzeExpr(elem, scope)
		if !a.store.AssignableTo(t, elemType) {
			a.errorf(reporter.CodeTypeMismatch, elem.Range().Start,
				"array element type %s does not match %s", a.store.TypeName(t), a.store.TypeName(elemType))
		}
	}
	return a.store.NewSlice(elemType)
}

func (a *Analyzer) analyzeBinaryExpr(n *ast.BinaryExpr, scope *symbols.Table) types.TypeId {
	lt := a.analyzeExpr(n.Left, scope)
	rt := a.analyzeExpr(n.Right, scope)
	boolT := types.PrimitiveID(types.Bool)

	switch n.Op {
	case ast.OpAnd, ast.OpOr:
		if lt != boolT || rt != boolT {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "logical operator requires bool operands")
		}
		return boolT

	case ast.OpEq, ast.OpNeq:
		if !a.store.AssignableTo(lt, rt) && !a.store.AssignableTo(rt, lt) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "cannot compare %s with %s", a.store.TypeName(lt), a.store.TypeName(rt))
		}
		return boolT

	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		if lt != rt || !a.store.IsNumericType(lt) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start,
				"relational operator requires matching numeric operands, found %s and %s", a.store.TypeName(lt), a.store.TypeName(rt))
		}
		return boolT

	case ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor, ast.OpShl, ast.OpShr:
		if lt != rt || !a.store.IsIntegerType(lt) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "bitwise operator requires matching integer operands")
		}
		return lt

	default: // arithmetic: Add, Sub, Mul, Div, Mod
		if lt != rt || !a.store.IsNumericType(lt) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start,
				"arithmetic operator requires matching numeric operands, found %s and %s", a.store.TypeName(lt), a.store.TypeName(rt))
		}
		return lt
	}
}

func (a *Analyzer) analyzeUnaryExpr(n *ast.UnaryExpr, scope *symbols.Table) types.TypeId {
	t := a.analyzeExpr(n.Operand, scope)
	switch n.Op {
	case ast.OpNeg:
		if !a.store.IsNumericType(t) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "unary - requires a numeric operand")
		}
		return t
	case ast.OpNot:
		if t != types.PrimitiveID(types.Bool) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "unary ! requires a bool operand")
		}
		return t
	case ast.OpBitNot:
		if !a.store.IsIntegerType(t) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "unary ~ requires an integer operand")
		}
		return t
	case ast.OpDeref:
		d := a.baseDescriptor(t)
		if d.Kind != types.KindPointer {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "cannot dereference non-pointer type %s", a.store.TypeName(t))
			return types.Nil
		}
		if !a.inUnsafe {
			a.errorf(reporter.CodeUnsafeRequired, n.Range().Start, "pointer dereference requires an unsafe block")
		}
		return d.Elem
	case ast.OpAddrOf:
		return a.store.NewPointer(t, false)
	case ast.OpAddrOfMut:
		return a.store.NewPointer(t, true)
	}
	return types.Nil
}

func (a *Analyzer) fieldAccessType(n *ast.FieldAccessExpr, targetType types.TypeId) types.TypeId {
	if targetType == types.Nil {
		return types.Nil
	}
	d := a.baseDescriptor(targetType)
	switch d.Kind {
	case types.KindStruct:
		for _, f := range d.Fields {
			if f.Name == n.Field {
				return f.Type
			}
		}
		a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "struct %q has no field %q", d.Name, n.Field)
		return types.Nil

	case types.KindTuple:
		idx, err := strconv.Atoi(n.Field)
		if err != nil || idx < 0 || idx >= len(d.TupleElems) {
			a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "tuple has no element %q", n.Field)
			return types.Nil
		}
		return d.TupleElems[idx]

	case types.KindPointer:
		pd := a.baseDescriptor(d.Elem)
		if pd.Kind == types.KindStruct {
			for _, f := range pd.Fields {
				if f.Name == n.Field {
					return f.Type
				}
			}
		}
		a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "no field %q on %s", n.Field, a.store.TypeName(targetType))
		return types.Nil

	default:
		a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "type %s has no fields", a.store.TypeName(targetType))
		return types.Nil
	}
}

func (a *Analyzer) analyzeFieldAccess(n *ast.FieldAccessExpr, scope *symbols.Table) types.TypeId {
	targetType := a.analyzeExpr(n.Target, scope)
	return a.fieldAccessType(n, targetType)
}

func (a *Analyzer) analyzeIndexExpr(n *ast.IndexExpr, scope *symbols.Table) types.TypeId {
	targetType := a.analyzeExpr(n.Target, scope)
	idxType := a.analyzeExpr(n.Index, scope)
	if !a.store.IsIntegerType(idxType) {
		a.errorf(reporter.CodeTypeMismatch, n.Index.Range().Start, "index must be an integer, found %s", a.store.TypeName(idxType))
	}
	if targetType == types.Nil {
		return types.Nil
	}
	d := a.baseDescriptor(targetType)
	if d.Kind == types.KindSlice || d.Kind == types.KindArray {
		return d.Elem
	}
	a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "cannot index type %s", a.store.TypeName(targetType))
	return types.Nil
}

func (a *Analyzer) analyzeSliceExpr(n *ast.SliceExpr, scope *symbols.Table) types.TypeId {
	targetType := a.analyzeExpr(n.Target, scope)
	if n.Start != nil {
		a.analyzeExpr(n.Start, scope)
	}
	if n.End != nil {
		a.analyzeExpr(n.End, scope)
	}
	if targetType == types.Nil {
		return types.Nil
	}
	d := a.baseDescriptor(targetType)
	switch d.Kind {
	case types.KindArray:
		return a.store.NewSlice(d.Elem)
	case types.KindSlice:
		return targetType
	default:
		a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "cannot slice type %s", a.store.TypeName(targetType))
		return types.Nil
	}
}

// analyzeCallExpr resolves a call expression. Calls through a field access
// on a struct value are method calls when that struct has an impl block
// defining the field's name (spec §4.C7 "Impl blocks"); everything else is
// an ordinary call through a function-typed value.
func (a *Analyzer) analyzeCallExpr(n *ast.CallExpr, scope *symbols.Table) types.TypeId {
	if id, ok := n.Callee.(*ast.IdentifierExpr); ok && id.Name == "range" {
		if _, isRange := scope.LookupSafe("range"); isRange {
			return a.analyzeRangeCall(n, scope)
		}
	}

	if fa, ok := n.Callee.(*ast.FieldAccessExpr); ok {
		targetType := a.analyzeExpr(fa.Target, scope)
		if targetType != types.Nil {
			if d := a.baseDescriptor(targetType); d.Kind == types.KindStruct {
				if table, ok := a.methodTables[d.Name]; ok {
					if entry, found := table.LookupSafe(fa.Field); found {
						return a.analyzeMethodCallArgs(entry, n, scope)
					}
				}
			}
		}
		calleeType := a.fieldAccessType(fa, targetType)
		return a.analyzeCallWithCalleeType(calleeType, n, scope)
	}

	calleeType := a.analyzeExpr(n.Callee, scope)
	return a.analyzeCallWithCalleeType(calleeType, n, scope)
}

func (a *Analyzer) analyzeRangeCall(n *ast.CallExpr, scope *symbols.Table) types.TypeId {
	argTypes := make([]types.TypeId, n.Args.Len())
	for i := 0; i < n.Args.Len(); i++ {
		argTypes[i] = a.analyzeExpr(n.Args.At(i), scope)
	}
	switch len(argTypes) {
	case 1:
		if !a.store.IsIntegerType(argTypes[0]) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "range(end) requires an integer argument")
		}
	case 2:
		if !a.store.IsIntegerType(argTypes[0]) || !a.store.IsIntegerType(argTypes[1]) {
			a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "range(start, end) requires integer arguments")
		}
	default:
		a.errorf(reporter.CodeArityMismatch, n.Range().Start, "range expects 1 or 2 arguments, found %d", len(argTypes))
	}
	return rangeOneArgType(a.store)
}

func (a *Analyzer) analyzeMethodCallArgs(entry *symbols.Entry, call *ast.CallExpr, scope *symbols.Table) types.TypeId {
	fn := a.store.Lookup(entry.Type)
	argTypes := make([]types.TypeId, call.Args.Len())
	for i := 0; i < call.Args.Len(); i++ {
		argTypes[i] = a.analyzeExpr(call.Args.At(i), scope)
	}
	wantParams := fn.Params
	if entry.Flags.Has(symbols.FlagIsInstanceMethod) && len(wantParams) > 0 {
		wantParams = wantParams[1:] // self is supplied implicitly by the receiver expression
	}
	checkArgs(a, call, wantParams, argTypes)
	return fn.Return
}

func (a *Analyzer) analyzeCallWithCalleeType(calleeType types.TypeId, n *ast.CallExpr, scope *symbols.Table) types.TypeId {
	argTypes := make([]types.TypeId, n.Args.Len())
	for i := 0; i < n.Args.Len(); i++ {
		argTypes[i] = a.analyzeExpr(n.Args.At(i), scope)
	}
	if calleeType == types.Nil {
		return types.Nil
	}
	d := a.store.Lookup(calleeType)
	if d.Kind != types.KindFunction {
		a.errorf(reporter.CodeNotCallable, n.Range().Start, "%s is not callable", a.store.TypeName(calleeType))
		return types.Nil
	}
	checkArgs(a, n, d.Params, argTypes)
	return d.Return
}

// checkArgs reports arity/type mismatches between want (a function's
// parameter types) and got (the analyzed argument types at a call site).
func checkArgs(a *Analyzer, n *ast.CallExpr, want []types.TypeId, got []types.TypeId) {
	if len(want) != len(got) {
		a.errorf(reporter.CodeArityMismatch, n.Range().Start, "expected %d argument(s), found %d", len(want), len(got))
		return
	}
	for i, pt := range want {
		if !a.store.AssignableTo(got[i], pt) {
			a.errorf(reporter.CodeTypeMismatch, n.Args.At(i).Range().Start,
				"argument %d: cannot pass %s as %s", i+1, a.store.TypeName(got[i]), a.store.TypeName(pt))
		}
	}
}

func (a *Analyzer) analyzeAssocCallExpr(n *ast.AssocCallExpr, scope *symbols.Table) types.TypeId {
	table, ok := a.methodTables[n.TypeName]
	if !ok {
		a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "%q has no impl block", n.TypeName)
		for i := 0; i < n.Args.Len(); i++ {
			a.analyzeExpr(n.Args.At(i), scope)
		}
		return types.Nil
	}
	entry, found := table.LookupSafe(n.Method)
	if !found {
		a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "%s::%s is not defined", n.TypeName, n.Method)
		for i := 0; i < n.Args.Len(); i++ {
			a.analyzeExpr(n.Args.At(i), scope)
		}
		return types.Nil
	}
	if entry.Flags.Has(symbols.FlagIsInstanceMethod) {
		a.errorf(reporter.CodeNotCallable, n.Range().Start,
			"%s::%s is an instance method; call it on a value with '.'", n.TypeName, n.Method)
	}
	fn := a.store.Lookup(entry.Type)
	argTypes := make([]types.TypeId, n.Args.Len())
	for i := 0; i < n.Args.Len(); i++ {
		argTypes[i] = a.analyzeExpr(n.Args.At(i), scope)
	}
	if len(fn.Params) != len(argTypes) {
		a.errorf(reporter.CodeArityMismatch, n.Range().Start, "expected %d argument(s), found %d", len(fn.Params), len(argTypes))
	} else {
		for i, pt := range fn.Params {
			if !a.store.AssignableTo(argTypes[i], pt) {
				a.errorf(reporter.CodeTypeMismatch, n.Args.At(i).Range().Start,
					"argument %d: cannot pass %s as %s", i+1, a.store.TypeName(argTypes[i]), a.store.TypeName(pt))
			}
		}
	}
	return fn.Return
}

func (a *Analyzer) analyzeEnumConstructExpr(n *ast.EnumConstructExpr, scope *symbols.Table) types.TypeId {
	id, ok := a.typeIds[n.EnumName]
	if !ok || !a.enumNames[n.EnumName] {
		a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "undefined enum %q", n.EnumName)
		if n.Payload != nil {
			a.analyzeExpr(n.Payload, scope)
		}
		return types.Nil
	}
	d := a.store.Lookup(id)
	for i := range d.Variants {
		if d.Variants[i].Name != n.Variant {
			continue
		}
		switch {
		case n.Payload != nil && d.Variants[i].TuplePayload == types.Nil:
			a.errorf(reporter.CodeArityMismatch, n.Range().Start, "variant %q carries no payload", n.Variant)
			a.analyzeExpr(n.Payload, scope)
		case n.Payload != nil:
			payloadType := a.analyzeExpr(n.Payload, scope)
			if !a.store.AssignableTo(payloadType, d.Variants[i].TuplePayload) {
				a.errorf(reporter.CodeTypeMismatch, n.Payload.Range().Start,
					"cannot pass %s as %s for variant %q", a.store.TypeName(payloadType), a.store.TypeName(d.Variants[i].TuplePayload), n.Variant)
			}
		case d.Variants[i].TuplePayload != types.Nil:
			a.errorf(reporter.CodeArityMismatch, n.Range().Start, "variant %q requires a payload", n.Variant)
		}
		return id
	}
	a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "enum %q has no variant %q", n.EnumName, n.Variant)
	if n.Payload != nil {
		a.analyzeExpr(n.Payload, scope)
	}
	return types.Nil
}

func (a *Analyzer) analyzeStructLiteralExpr(n *ast.StructLiteralExpr, scope *symbols.Table) types.TypeId {
	base, ok := a.typeIds[n.TypeName]
	if !ok {
		a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "undefined struct %q", n.TypeName)
		for _, f := range n.Fields {
			a.analyzeExpr(f.Value, scope)
		}
		return types.Nil
	}

	result := base
	if n.TypeArgs.Len() > 0 {
		args := make([]types.TypeId, n.TypeArgs.Len())
		for i := 0; i < n.TypeArgs.Len(); i++ {
			args[i] = a.resolveType(n.TypeArgs.At(i))
		}
		result = a.store.NewGenericInstance(base, args)
	}

	d := a.store.Lookup(base)
	seen := make(map[string]bool, len(n.Fields))
	for _, f := range n.Fields {
		valType := a.analyzeExpr(f.Value, scope)
		seen[f.Name] = true
		found := false
		for _, sf := range d.Fields {
			if sf.Name == f.Name {
				found = true
				if !a.store.AssignableTo(valType, sf.Type) {
					a.errorf(reporter.CodeTypeMismatch, f.Value.Range().Start,
						"field %q: cannot assign %s to %s", f.Name, a.store.TypeName(valType), a.store.TypeName(sf.Type))
				}
				break
			}
		}
		if !found {
			a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "struct %q has no field %q", n.TypeName, f.Name)
		}
	}
	for _, sf := range d.Fields {
		if !seen[sf.Name] {
			a.errorf(reporter.CodeArityMismatch, n.Range().Start, "struct literal for %q is missing field %q", n.TypeName, sf.Name)
		}
	}
	return result
}

func (a *Analyzer) analyzeAwaitExpr(n *ast.AwaitExpr, scope *symbols.Table) types.TypeId {
	handleType := a.analyzeExpr(n.Handle, scope)
	if handleType == types.Nil {
		return types.Nil
	}
	d := a.baseDescriptor(handleType)
	if d.Kind != types.KindTaskHandle {
		a.errorf(reporter.CodeTypeMismatch, n.Range().Start, "await requires a TaskHandle, found %s", a.store.TypeName(handleType))
		return types.Nil
	}
	return d.Result
}

// analyzeMatchExprNode types a match used as an expression: every arm must
// produce a mutually compatible type, ignoring arms whose body diverges
// (spec §4.C7 "Never-propagation" composes with match typing the same way
// it does with if/else).
func (a *Analyzer) analyzeMatchExprNode(n *ast.MatchExpr, scope *symbols.Table) types.TypeId {
	scrutType := a.analyzeExpr(n.Scrutinee, scope)
	a.checkMatchExhaustive(scrutType, n.Arms, n.Range().Start)

	result := types.Nil
	for _, arm := range n.Arms {
		child := scope.CreateChild()
		a.bindPattern(arm.Pattern, scrutType, child)
		armType := a.analyzeMatchArmValue(arm.Body, child)
		child.Destroy()

		if a.store.IsNever(armType) {
			continue
		}
		if result == types.Nil {
			result = armType
		} else if !a.store.AssignableTo(armType, result) {
			a.errorf(reporter.CodeTypeMismatch, arm.Body.Range().Start,
				"match arm type %s does not match %s", a.store.TypeName(armType), a.store.TypeName(result))
		}
	}
	if result == types.Nil {
		return types.PrimitiveID(types.NeverPrim)
	}
	return result
}
