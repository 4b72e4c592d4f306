package symbols

import (
	"testing"

	"github.com/asthra-lang/asthrac/types"
)

func TestInsertSafeRejectsDuplicateInSameScope(t *testing.T) {
	root := NewRoot()
	e := &Entry{Name: "x", Kind: KindVariable, Type: types.PrimitiveID(types.I32)}
	if !root.InsertSafe(e) {
		t.Fatal("first insert of x must succeed")
	}
	if root.InsertSafe(&Entry{Name: "x", Kind: KindVariable}) {
		t.Fatal("second insert of x in the same scope must fail")
	}
}

func TestShadowingAcrossScopes(t *testing.T) {
	root := NewRoot()
	root.InsertSafe(&Entry{Name: "x", Type: types.PrimitiveID(types.I32)})

	child := root.CreateChild()
	if !child.InsertSafe(&Entry{Name: "x", Type: types.PrimitiveID(types.StringPrim)}) {
		t.Fatal("a child scope must be allowed to shadow a parent binding")
	}

	e, ok := child.LookupSafe("x")
	if !ok || e.Type != types.PrimitiveID(types.StringPrim) {
		t.Fatal("lookup from the child scope must see the shadowing binding")
	}
}

func TestLookupSafeWalksToRoot(t *testing.T) {
	root := NewRoot()
	root.InsertSafe(&Entry{Name: "outer", Type: types.PrimitiveID(types.Bool)})
	child := root.CreateChild()

	e, ok := child.LookupSafe("outer")
	if !ok || e.Name != "outer" {
		t.Fatal("lookup_safe must walk up to an enclosing scope for an unshadowed name")
	}

	if _, ok := child.LookupLocal("outer"); ok {
		t.Fatal("lookup_local must not see bindings from an enclosing scope")
	}
}

func TestDestroyReleasesOnlyThisScope(t *testing.T) {
	root := NewRoot()
	root.InsertSafe(&Entry{Name: "outer", Type: types.PrimitiveID(types.Bool)})
	child := root.CreateChild()
	child.InsertSafe(&Entry{Name: "inner", Type: types.PrimitiveID(types.Bool)})

	child.Destroy()

	if _, ok := child.LookupLocal("inner"); ok {
		t.Fatal("Destroy must release entries in the destroyed scope")
	}
	if _, ok := root.LookupLocal("outer"); !ok {
		t.Fatal("Destroy must not touch the parent scope's entries")
	}
}

func TestModuleAliasRegistryRoundTrip(t *testing.T) {
	ResetModuleAliasesForTest()
	RegisterModuleAlias("fmt2", "std::fmt")
	path, ok := ResolveModuleAlias("fmt2")
	if !ok || path != "std::fmt" {
		t.Fatalf("ResolveModuleAlias = %q, %v; want \"std::fmt\", true", path, ok)
	}
	if _, ok := ResolveModuleAlias("never-registered"); ok {
		t.Fatal("resolving an unregistered alias must report false")
	}
}
