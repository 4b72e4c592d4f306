package types

import "testing"

func TestPrimitiveIDStable(t *testing.T) {
	if PrimitiveID(I32) != PrimitiveID(I32) {
		t.Fatal("PrimitiveID(I32) not stable across calls")
	}
	if PrimitiveID(I32) == PrimitiveID(I64) {
		t.Fatal("distinct primitives must not share a TypeId")
	}
}

func TestPrimitiveByNameAliases(t *testing.T) {
	cases := []struct {
		name string
		want Primitive
	}{
		{"int", I32},
		{"float", F32},
		{"usize", Usize},
		{"isize", Isize},
	}
	for _, c := range cases {
		got, ok := PrimitiveByName(c.name)
		if !ok || got != c.want {
			t.Errorf("PrimitiveByName(%q) = %v, %v; want %v, true", c.name, got, ok, c.want)
		}
	}
	// usize/isize must NOT collapse onto u64/i64 (resolved Open Question).
	if u, _ := PrimitiveByName("usize"); u == U64 {
		t.Error("usize must be distinct from u64")
	}
	if i, _ := PrimitiveByName("isize"); i == I64 {
		t.Error("isize must be distinct from i64")
	}
}

func TestStoreInternsStructuralComposites(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveID(I32)

	a := s.NewSlice(i32)
	b := s.NewSlice(i32)
	if a != b {
		t.Error("two []i32 slice descriptors should be interned to the same TypeId")
	}

	p1 := s.NewPointer(i32, true)
	p2 := s.NewPointer(i32, true)
	p3 := s.NewPointer(i32, false)
	if p1 != p2 {
		t.Error("two *mut i32 pointer descriptors should be interned")
	}
	if p1 == p3 {
		t.Error("*mut i32 and *const i32 must be distinct types")
	}
}

func TestStoreStructsAreNominal(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveID(I32)
	fields := []FieldInfo{{Name: "x", Type: i32}}
	a := s.NewStruct("Point", 0, fields)
	b := s.NewStruct("Point", 0, fields)
	if a == b {
		t.Error("two separately-declared structs with identical shape must remain distinct types")
	}
}

func TestAssignableToIdentity(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveID(I32)
	if !s.AssignableTo(i32, i32) {
		t.Error("a type must be assignable to itself")
	}
}

func TestAssignableToNoNumericWidening(t *testing.T) {
	s := NewStore()
	if s.AssignableTo(PrimitiveID(I32), PrimitiveID(I64)) {
		t.Error("i32 must not be automatically assignable to i64")
	}
	if s.AssignableTo(PrimitiveID(F32), PrimitiveID(F64)) {
		t.Error("f32 must not be automatically assignable to f64")
	}
}

func TestAssignableToNeverIsUniversal(t *testing.T) {
	s := NewStore()
	never := PrimitiveID(NeverPrim)
	targets := []TypeId{
		PrimitiveID(I32),
		PrimitiveID(StringPrim),
		s.NewSlice(PrimitiveID(Bool)),
		s.NewStruct("Foo", 0, nil),
	}
	for _, target := range targets {
		if !s.AssignableTo(never, target) {
			t.Errorf("Never must be assignable to every type, failed for %s", s.TypeName(target))
		}
	}
}

func TestAssignableToComposites(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveID(I32)
	i64 := PrimitiveID(I64)

	sliceI32a := s.NewSlice(i32)
	sliceI32b := s.NewSlice(i32)
	sliceI64 := s.NewSlice(i64)

	if !s.AssignableTo(sliceI32a, sliceI32b) {
		t.Error("[]i32 should be assignable to []i32")
	}
	if s.AssignableTo(sliceI32a, sliceI64) {
		t.Error("[]i32 must not be assignable to []i64 (no element widening)")
	}

	okA := s.NewResult(i32, PrimitiveID(StringPrim))
	okB := s.NewResult(i32, PrimitiveID(StringPrim))
	if !s.AssignableTo(okA, okB) {
		t.Error("structurally identical Result<i32, string> instances should be assignment-compatible")
	}
}

func TestTypeNamePrettyPrints(t *testing.T) {
	s := NewStore()
	i32 := PrimitiveID(I32)
	sl := s.NewSlice(i32)
	if got, want := s.TypeName(sl), "[]i32"; got != want {
		t.Errorf("TypeName(slice) = %q, want %q", got, want)
	}
	opt := s.NewOption(i32)
	if got, want := s.TypeName(opt), "Option<i32>"; got != want {
		t.Errorf("TypeName(option) = %q, want %q", got, want)
	}
	res := s.NewResult(i32, PrimitiveID(StringPrim))
	if got, want := s.TypeName(res), "Result<i32, string>"; got != want {
		t.Errorf("TypeName(result) = %q, want %q", got, want)
	}
}

func TestArenaGrowsAcrossManyAllocations(t *testing.T) {
	s := NewStore()
	var ids []TypeId
	for i := 0; i < 200; i++ {
		ids = append(ids, s.NewStruct("T", 0, nil))
	}
	for i, id := range ids {
		if s.Lookup(id).Name != "T" {
			t.Fatalf("entry %d corrupted after arena growth", i)
		}
	}
}
