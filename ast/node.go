// Package ast defines Asthra's reference-counted abstract syntax tree: a
// closed tagged union of expression, statement, pattern, type, and
// declaration node variants produced by the parser and annotated in place
// by the semantic analyzer.
package ast

import (
	"sync/atomic"

	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/types"
)

// Kind tags every concrete node variant, so callers can switch on Node.Kind()
// without a type assertion when only the tag (not the payload) matters.
type Kind int

const (
	_ Kind = iota

	// Expressions
	KindIntLiteral
	KindFloatLiteral
	KindStringLiteral
	KindBoolLiteral
	KindCharLiteral
	KindUnitLiteral
	KindTupleExpr
	KindIdentifierExpr
	KindBinaryExpr
	KindUnaryExpr
	KindFieldAccessExpr
	KindIndexExpr
	KindSliceExpr
	KindCallExpr
	KindAssocCallExpr
	KindEnumConstructExpr
	KindStructLiteralExpr
	KindSizeofExpr
	KindAwaitExpr
	KindMatchExpr
	KindArrayLiteralExpr

	// Statements
	KindBlockStmt
	KindLetStmt
	KindReturnStmt
	KindExprStmt
	KindIfStmt
	KindIfLetStmt
	KindForStmt
	KindMatchStmt
	KindSpawnStmt
	KindSpawnWithHandleStmt
	KindUnsafeBlockStmt
	KindBreakStmt
	KindContinueStmt
	KindAssignStmt

	// Patterns
	KindIdentPattern
	KindWildcardPattern
	KindTuplePattern
	KindEnumPattern
	KindStructPattern
	KindLiteralPattern

	// AST-level types
	KindNamedType
	KindPointerType
	KindSliceType
	KindArrayType
	KindTupleType
	KindOptionType
	KindResultType
	KindTaskHandleType

	// Declarations
	KindFunctionDecl
	KindMethodDecl
	KindStructDecl
	KindEnumDecl
	KindImplDecl
	KindExternDecl
	KindProgram
)

// Node is the interface implemented by every AST variant. All nodes carry a
// source range, an atomic reference count, an optional resolved type
// (filled in by the semantic analyzer), and a small flag set.
type Node interface {
	Kind() Kind
	Range() source.Range

	// Retain bumps the reference count (relaxed memory order — callers
	// only need the count itself to be consistent, not a happens-before
	// edge on the data it protects).
	Retain() Node
	// Release decrements the reference count (acquire-release). At zero
	// it recursively releases owned children exactly once, then the node
	// becomes unusable.
	Release()
	refCount() int32

	// ResolvedType is set by the semantic analyzer; nil before analysis.
	ResolvedType() types.TypeId
	SetResolvedType(types.TypeId)

	Flags() Flags
	SetFlags(Flags)

	// Children returns this node's direct child nodes in source order, for
	// the visitor in visitor.go. Leaf nodes return nil.
	Children() []Node

	// releaseChildren is called exactly once, when the ref count reaches
	// zero, to release owned children. Implemented per-variant.
	releaseChildren()
}

// Flags records boolean node properties set during parsing or analysis.
type Flags uint32

const (
	FlagIsConstantExpr Flags = 1 << iota
	FlagIsMutable
	FlagReturnsNever
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }
func (f Flags) With(bit Flags) Flags { return f | bit }

// base is embedded by every concrete node type. It is not itself a Node.
type base struct {
	kind  Kind
	rng   source.Range
	rc    atomic.Int32
	typ   types.TypeId
	flags Flags
}

func newBase(kind Kind, rng source.Range) base {
	b := base{kind: kind, rng: rng}
	b.rc.Store(1) // constructors return an already-retained handle
	return b
}

func (b *base) Kind() Kind                    { return b.kind }
func (b *base) Range() source.Range           { return b.rng }
func (b *base) refCount() int32               { return b.rc.Load() }
func (b *base) ResolvedType() types.TypeId     { return b.typ }
func (b *base) SetResolvedType(t types.TypeId) { b.typ = t }
func (b *base) Flags() Flags                   { return b.flags }
func (b *base) SetFlags(f Flags)               { b.flags = f }

func (b *base) retain() {
	b.rc.Add(1)
}

// release decrements the count and reports whether it reached zero (the
// caller, which knows the concrete type, is responsible for calling
// releaseChildren exactly once when this returns true).
func (b *base) release() bool {
	return b.rc.Add(-1) == 0
}

// retainNode and releaseNode are the generic entry points used by container
// fields (owned children, owned lists) so that per-variant Retain/Release
// methods can stay one-liners.
func retainNode(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Retain()
}

func releaseNode(n Node) {
	if n == nil {
		return
	}
	n.Release()
}
