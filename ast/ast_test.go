package ast

import (
	"testing"

	"github.com/asthra-lang/asthrac/source"
)

func dummyRange() source.Range {
	p := source.Pos{File: 0, Line: 1, Column: 1, Offset: 0}
	return source.Range{Start: p, End: p}
}

func TestNewNodeStartsAtRefCountOne(t *testing.T) {
	n := NewIntLiteral(dummyRange(), 42)
	if n.refCount() != 1 {
		t.Fatalf("refCount() = %d, want 1", n.refCount())
	}
}

func TestRetainReleaseBalances(t *testing.T) {
	n := NewIntLiteral(dummyRange(), 1)
	n.Retain()
	if n.refCount() != 2 {
		t.Fatalf("after Retain, refCount() = %d, want 2", n.refCount())
	}
	n.Release()
	if n.refCount() != 1 {
		t.Fatalf("after one Release, refCount() = %d, want 1", n.refCount())
	}
}

func TestCompositeNodeRetainsChildren(t *testing.T) {
	left := NewIntLiteral(dummyRange(), 1)
	right := NewIntLiteral(dummyRange(), 2)

	bin := NewBinaryExpr(dummyRange(), OpAdd, left, right)
	// NewBinaryExpr retains left/right, so each should now be at 2: the
	// constructor call's own handle plus the new parent's handle.
	if left.refCount() != 2 || right.refCount() != 2 {
		t.Fatalf("constructing BinaryExpr should retain both operands: left=%d right=%d", left.refCount(), right.refCount())
	}

	bin.Release() // releases our handle AND (since rc hits 0) releases children
	if left.refCount() != 1 || right.refCount() != 1 {
		t.Fatalf("releasing the parent to zero should release children once: left=%d right=%d", left.refCount(), right.refCount())
	}

	// Drop our own remaining handles.
	left.Release()
	right.Release()
	if left.refCount() != 0 || right.refCount() != 0 {
		t.Fatal("final release should bring ref count to zero")
	}
}

func TestBlockStmtChildrenInSourceOrder(t *testing.T) {
	a := NewExprStmt(dummyRange(), NewIntLiteral(dummyRange(), 1))
	b := NewExprStmt(dummyRange(), NewIntLiteral(dummyRange(), 2))
	block := NewBlockStmt(dummyRange(), a, b)

	children := block.Children()
	if len(children) != 2 || children[0] != Node(a) || children[1] != Node(b) {
		t.Fatal("BlockStmt.Children() must preserve source order")
	}
}

func TestVisitPreOrderVisitsParentBeforeChildren(t *testing.T) {
	leaf := NewIntLiteral(dummyRange(), 7)
	unary := NewUnaryExpr(dummyRange(), OpNeg, leaf)

	var order []Kind
	PreOrder(unary, func(n Node) { order = append(order, n.Kind()) })

	if len(order) != 2 || order[0] != KindUnaryExpr || order[1] != KindIntLiteral {
		t.Fatalf("unexpected pre-order sequence: %v", order)
	}
}

func TestCloneDeepProducesIndependentTree(t *testing.T) {
	leaf := NewIntLiteral(dummyRange(), 5)
	original := NewUnaryExpr(dummyRange(), OpNeg, leaf)
	original.SetFlags(FlagIsConstantExpr)

	clone := CloneDeep(original).(*UnaryExpr)

	if clone == original {
		t.Fatal("CloneDeep must return a distinct node, not the same pointer")
	}
	if clone.Operand == original.Operand {
		t.Fatal("CloneDeep must deep-clone children, not alias them")
	}
	if clone.Operand.(*IntLiteral).Value != 5 {
		t.Fatal("cloned subtree must preserve literal values")
	}
	if !clone.Flags().Has(FlagIsConstantExpr) {
		t.Fatal("CloneDeep must preserve analyzer-set flags")
	}
	if clone.refCount() != 1 {
		t.Fatalf("a freshly cloned node should start at refCount 1, got %d", clone.refCount())
	}
}

func TestSliceExprOptionalChildrenOmittedWhenNil(t *testing.T) {
	target := NewIdentifierExpr(dummyRange(), "xs")
	s := NewSliceExpr(dummyRange(), target, nil, nil)
	if len(s.Children()) != 1 {
		t.Fatalf("SliceExpr with no start/end should report exactly 1 child, got %d", len(s.Children()))
	}
}
