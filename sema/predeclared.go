package sema

import (
	"github.com/asthra-lang/asthrac/symbols"
	"github.com/asthra-lang/asthrac/types"
)

// registerPredeclared inserts the function-like symbols spec §4.C7 names as
// always-available without any import: log, panic, and the two range
// overloads. All are marked FlagPredeclared so later passes can recognize
// them without a name comparison.
func registerPredeclared(root *symbols.Table, store *types.Store) {
	str := types.PrimitiveID(types.StringPrim)
	voidT := types.PrimitiveID(types.Void)
	neverT := types.PrimitiveID(types.NeverPrim)
	i32 := types.PrimitiveID(types.I32)
	sliceI32 := store.NewSlice(i32)

	insert := func(name string, fn types.TypeId) {
		root.InsertSafe(&symbols.Entry{
			Name: name, Kind: symbols.KindFunction, Type: fn,
			Vis: symbols.Public, Flags: symbols.FlagPredeclared | symbols.FlagInitialized,
		})
	}

	insert("log", store.NewFunction([]types.TypeId{str}, voidT, false, "", nil))
	insert("panic", store.NewFunction([]types.TypeId{str}, neverT, false, "", nil))

	// range has two arities; only the two-arg overload can be registered
	// under one symbol name in a flat scope, so the one-arg form is
	// resolved specially by call-site argument count in expr.go's call
	// handling rather than as a second symbol table entry.
	insert("range", store.NewFunction([]types.TypeId{i32, i32}, sliceI32, false, "", nil))
}

// rangeOneArgType returns the slice-of-i32 result type for the single-
// argument `range(end)` overload, used by expr.go when a call to `range`
// supplies exactly one argument (spec §4.C7 "Predeclared identifiers").
func rangeOneArgType(store *types.Store) types.TypeId {
	return store.NewSlice(types.PrimitiveID(types.I32))
}
