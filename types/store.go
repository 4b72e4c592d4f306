package types

import "strconv"

// Store owns every non-primitive Descriptor created while analyzing one
// compilation unit. It is released wholesale when the unit closes (spec §3
// "Lifecycles" — type descriptors are cached in the symbol table, shared
// across all uses, released on compilation-unit teardown); a Store's
// backing Arena makes that teardown a single garbage-collectable value
// rather than a graph walk.
type Store struct {
	arena Arena[Descriptor]
	// cache deduplicates structurally identical composite descriptors
	// (slices/arrays/pointers/options/results/tuples/generic instances) so
	// repeated uses of e.g. "[]i32" share one TypeId within a unit.
	cache map[string]TypeId
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{cache: make(map[string]TypeId)}
}

func (s *Store) intern(key string, build func() Descriptor) TypeId {
	if id, ok := s.cache[key]; ok {
		return id
	}
	idx := s.arena.New(build())
	id := TypeId(idx)
	s.cache[key] = id
	return id
}

func (s *Store) NewSlice(elem TypeId) TypeId {
	key := "[]" + s.key(elem)
	return s.intern(key, func() Descriptor {
		return Descriptor{Kind: KindSlice, Elem: elem, Size: 16, Align: 8, Flags: FlagOwned}
	})
}

func (s *Store) NewArray(elem TypeId, length int64) TypeId {
	key := "[" + strconv.FormatInt(length, 10) + "]" + s.key(elem)
	return s.intern(key, func() Descriptor {
		elemSize := s.Lookup(elem).Size
		return Descriptor{
			Kind: KindArray, Elem: elem, ArrayLen: length,
			Size: elemSize * uint32(length), Align: s.Lookup(elem).Align,
		}
	})
}

func (s *Store) NewPointer(pointee TypeId, mutable bool) TypeId {
	key := "*"
	if mutable {
		key += "mut"
	} else {
		key += "const"
	}
	key += s.key(pointee)
	return s.intern(key, func() Descriptor {
		return Descriptor{Kind: KindPointer, Elem: pointee, PointerMutable: mutable, Size: 8, Align: 8}
	})
}

func (s *Store) NewOption(value TypeId) TypeId {
	key := "Option<" + s.key(value) + ">"
	return s.intern(key, func() Descriptor {
		return Descriptor{Kind: KindOption, Elem: value, Size: s.Lookup(value).Size + 1, Align: max32(s.Lookup(value).Align, 1)}
	})
}

func (s *Store) NewResult(ok, errT TypeId) TypeId {
	key := "Result<" + s.key(ok) + "," + s.key(errT) + ">"
	return s.intern(key, func() Descriptor {
		okSize, errSize := s.Lookup(ok).Size, s.Lookup(errT).Size
		sz := okSize
		if errSize > sz {
			sz = errSize
		}
		return Descriptor{Kind: KindResult, OkType: ok, ErrType: errT, Size: sz + 1, Align: 8}
	})
}

func (s *Store) NewTuple(elems []TypeId) TypeId {
	key := "("
	for i, e := range elems {
		if i > 0 {
			key += ","
		}
		key += s.key(e)
	}
	key += ")"
	return s.intern(key, func() Descriptor {
		offsets := make([]uint32, len(elems))
		var off uint32
		var align uint32 = 1
		for i, e := range elems {
			d := s.Lookup(e)
			if d.Align > align {
				align = d.Align
			}
			offsets[i] = off
			off += d.Size
		}
		return Descriptor{Kind: KindTuple, TupleElems: append([]TypeId(nil), elems...), TupleOffsets: offsets, Size: off, Align: align}
	})
}

func (s *Store) NewFunction(params []TypeId, ret TypeId, isExtern bool, externName string, ffi []Ownership) TypeId {
	idx := s.arena.New(Descriptor{
		Kind: KindFunction, Params: append([]TypeId(nil), params...), Return: ret,
		IsExtern: isExtern, ExternName: externName, FFIAnnotations: ffi, Size: 8, Align: 8,
	})
	return TypeId(idx)
}

func (s *Store) NewTaskHandle(result TypeId) TypeId {
	key := "TaskHandle<" + s.key(result) + ">"
	return s.intern(key, func() Descriptor {
		return Descriptor{Kind: KindTaskHandle, Result: result, Size: 8, Align: 8}
	})
}

// NewStruct and NewEnum are not deduplicated by structural key — two
// separately-declared structs with identical field lists are still
// distinct types (nominal typing), unlike the structural composite kinds
// above.
func (s *Store) NewStruct(name string, typeParamCount int, fields []FieldInfo) TypeId {
	var off, align uint32 = 0, 1
	laidOut := make([]FieldInfo, len(fields))
	for i, f := range fields {
		d := s.Lookup(f.Type)
		if d.Align > align {
			align = d.Align
		}
		laidOut[i] = FieldInfo{Name: f.Name, Type: f.Type, Offset: off}
		off += d.Size
	}
	idx := s.arena.New(Descriptor{
		Kind: KindStruct, Name: name, TypeParamCount: typeParamCount,
		Fields: laidOut, Size: off, Align: align,
	})
	return TypeId(idx)
}

func (s *Store) NewEnum(name string, typeParamCount int, variants []VariantInfo) TypeId {
	idx := s.arena.New(Descriptor{
		Kind: KindEnum, Name: name, TypeParamCount: typeParamCount, Variants: variants,
		Size: 8, Align: 8,
	})
	return TypeId(idx)
}

// NewGenericInstance creates (or reuses) a GenericInstance descriptor for
// `base<args...>`. Structural equality of generic instances compares base
// + args pairwise (spec §4.C5), which the cache key below implements
// directly.
func (s *Store) NewGenericInstance(base TypeId, args []TypeId) TypeId {
	key := "inst:" + s.key(base) + "<"
	for i, a := range args {
		if i > 0 {
			key += ","
		}
		key += s.key(a)
	}
	key += ">"
	return s.intern(key, func() Descriptor {
		return Descriptor{
			Kind: KindGenericInstance, Base: base, Args: append([]TypeId(nil), args...),
			Size: s.Lookup(base).Size, Align: s.Lookup(base).Align,
		}
	})
}

// key returns a stable string identity for a TypeId suitable for cache
// keys: primitives by name, named types by name, composites recursively.
func (s *Store) key(id TypeId) string {
	if id.isPrimitive() {
		return "prim:" + s.Lookup(id).Prim.String()
	}
	d := s.Lookup(id)
	switch d.Kind {
	case KindStruct, KindEnum:
		return d.Name + "#" + strconv.Itoa(int(id))
	default:
		return "id:" + strconv.Itoa(int(id))
	}
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// TypeName renders a human-readable name for a TypeId, used in diagnostics.
func (s *Store) TypeName(id TypeId) string {
	if id == Nil {
		return "<unresolved>"
	}
	d := s.Lookup(id)
	switch d.Kind {
	case KindPrimitive:
		return d.Prim.String()
	case KindStruct, KindEnum:
		return d.Name
	case KindSlice:
		return "[]" + s.TypeName(d.Elem)
	case KindArray:
		return "[" + strconv.FormatInt(d.ArrayLen, 10) + "]" + s.TypeName(d.Elem)
	case KindPointer:
		if d.PointerMutable {
			return "*mut " + s.TypeName(d.Elem)
		}
		return "*const " + s.TypeName(d.Elem)
	case KindOption:
		return "Option<" + s.TypeName(d.Elem) + ">"
	case KindResult:
		return "Result<" + s.TypeName(d.OkType) + ", " + s.TypeName(d.ErrType) + ">"
	case KindTuple:
		out := "("
		for i, e := range d.TupleElems {
			if i > 0 {
				out += ", "
			}
			out += s.TypeName(e)
		}
		return out + ")"
	case KindFunction:
		out := "fn("
		for i, p := range d.Params {
			if i > 0 {
				out += ", "
			}
			out += s.TypeName(p)
		}
		return out + ") -> " + s.TypeName(d.Return)
	case KindTaskHandle:
		return "TaskHandle<" + s.TypeName(d.Result) + ">"
	case KindGenericInstance:
		out := s.TypeName(d.Base) + "<"
		for i, a := range d.Args {
			if i > 0 {
				out += ", "
			}
			out += s.TypeName(a)
		}
		return out + ">"
	default:
		return "?"
	}
}
