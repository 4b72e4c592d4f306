package sema

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/types"
)

// resolveType resolves an AST-level type node against the symbol table and
// interned descriptors (spec §4.C5 "Contract"). Builtin names resolve to a
// shared primitive; user type names are looked up by the registration pass
// that ran before this is ever called; composite type nodes compose over
// their resolved element types.
func (a *Analyzer) resolveType(node ast.Node) types.TypeId {
	switch n := node.(type) {
	case *ast.NamedType:
		return a.resolveNamedType(n)
	case *ast.PointerType:
		return a.store.NewPointer(a.resolveType(n.Pointee), n.Mutable)
	case *ast.SliceType:
		return a.store.NewSlice(a.resolveType(n.Elem))
	case *ast.ArrayType:
		size := a.evalConstInt(n.Size)
		return a.store.NewArray(a.resolveType(n.Elem), size)
	case *ast.TupleType:
		elems := make([]types.TypeId, n.Elements.Len())
		for i := 0; i < n.Elements.Len(); i++ {
			elems[i] = a.resolveType(n.Elements.At(i))
		}
		return a.store.NewTuple(elems)
	case *ast.OptionType:
		return a.store.NewOption(a.resolveType(n.Value))
	case *ast.ResultType:
		return a.store.NewResult(a.resolveType(n.Ok), a.resolveType(n.Err))
	case *ast.TaskHandleType:
		return a.store.NewTaskHandle(a.resolveType(n.Result))
	default:
		a.errorf(reporter.CodeUndefinedSymbol, node.Range().Start, "not a type")
		return types.Nil
	}
}

func (a *Analyzer) resolveNamedType(n *ast.NamedType) types.TypeId {
	if n.Name == "Self" {
		if self := a.currentSelf(); self != types.Nil {
			return self
		}
	}

	if prim, ok := types.PrimitiveByName(n.Name); ok {
		return types.PrimitiveID(prim)
	}

	base, ok := a.typeIds[n.Name]
	if !ok {
		a.errorf(reporter.CodeUndefinedSymbol, n.Range().Start, "undefined type %q", n.Name)
		return types.Nil
	}
	if n.TypeArgs.Len() == 0 {
		return base
	}

	args := make([]types.TypeId, n.TypeArgs.Len())
	for i := 0; i < n.TypeArgs.Len(); i++ {
		args[i] = a.resolveType(n.TypeArgs.At(i))
	}
	return a.store.NewGenericInstance(base, args)
}

// baseDescriptor looks up id's Descriptor, following through one level of
// GenericInstance to the instantiated struct/enum's own descriptor so field
// and variant lookups see the real shape rather than the Base/Args pair
// (spec §4.C5: generic instances do not get their fields/variants
// substituted here, only named by reference to the generic declaration).
func (a *Analyzer) baseDescriptor(id types.TypeId) *types.Descriptor {
	d := a.store.Lookup(id)
	if d.Kind == types.KindGenericInstance {
		return a.store.Lookup(d.Base)
	}
	return d
}

// evalConstInt evaluates an array-size const-expr. Only integer literals are
// supported; anything else is reported and treated as zero so analysis can
// continue (spec §3 "array (N a const-expr)" does not mandate a general
// constant-folding engine, only that array sizes are compile-time known).
func (a *Analyzer) evalConstInt(node ast.Node) int64 {
	if lit, ok := node.(*ast.IntLiteral); ok {
		return lit.Value
	}
	a.errorf(reporter.CodeInvalidExpr, node.Range().Start, "array size must be a constant integer expression")
	return 0
}
