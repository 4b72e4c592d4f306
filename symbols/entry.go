package symbols

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/types"
)

// Kind classifies what a symbol names (spec §3 "Symbol entry").
type Kind int

const (
	_ Kind = iota
	KindVariable
	KindFunction
	KindMethod
	KindField
	KindType
	KindEnumVariant
	KindModuleAlias
)

// Visibility is a symbol's declared accessibility.
type Visibility int

const (
	Private Visibility = iota
	Public
)

// Flags records the small boolean properties a symbol entry carries.
type Flags uint8

const (
	FlagMutable Flags = 1 << iota
	FlagInitialized
	FlagPredeclared
	FlagIsInstanceMethod
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Entry binds a name to a type plus the declaration-site metadata the
// analyzer needs to re-check later uses (spec §3 "Symbol entry").
type Entry struct {
	Name    string
	Kind    Kind
	Type    types.TypeId
	Decl    ast.Node
	Vis     Visibility
	Flags   Flags

	// IsGeneric and TypeParamCount describe a generic function/struct/enum
	// declaration before it has been instantiated; GenericDecl points back
	// at the declaration node used to instantiate fresh TypeIds per call
	// site.
	IsGeneric      bool
	TypeParamCount int
	GenericDecl    ast.Node
}
