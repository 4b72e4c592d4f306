package types

import "sync"

// primitiveTable holds the process-wide interned primitive descriptors.
// Two structurally identical non-generic primitive descriptors share a
// single instance (spec §3 invariant; testable property 5): every call to
// PrimitiveID(p) for the same p returns the same TypeId, by construction,
// since the table is populated once at package init and never mutated
// afterwards. Guarded the way the teacher's internal/intern.Table and
// grailbio-gql/symbol singleton table guard their read-mostly state: an
// RWMutex with every write confined to init.
var primitiveTable struct {
	mu   sync.RWMutex
	descs [numPrimitives]Descriptor
}

func init() {
	for p := Primitive(0); p < numPrimitives; p++ {
		primitiveTable.descs[p] = Descriptor{
			Kind: KindPrimitive,
			Prim: p,
			Size: primitiveSize(p),
			Align: primitiveAlign(p),
		}
	}
}

func primitiveSize(p Primitive) uint32 {
	switch p {
	case Bool, I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32, Char:
		return 4
	case I64, U64, F64, Usize, Isize:
		return 8
	case I128, U128:
		return 16
	case Void, NeverPrim:
		return 0
	case StringPrim:
		return 16 // {pointer, length}
	default:
		return 0
	}
}

func primitiveAlign(p Primitive) uint32 {
	a := primitiveSize(p)
	if a == 0 {
		return 1
	}
	if a > 8 {
		return 8
	}
	return a
}

// PrimitiveID returns the pinned, never-free TypeId for a primitive kind.
// Builtin primitive descriptors have their reference count pinned at a
// sentinel "never-free" value per spec §3; since primitives live in a
// package-level array rather than being individually ref-counted nodes,
// "pinned" here simply means this function never allocates — it always
// resolves to the same fixed index.
func PrimitiveID(p Primitive) TypeId {
	return primitiveID(int(p))
}

// Lookup resolves a TypeId to its Descriptor, given the Store that owns any
// non-primitive entries it might reference.
func (s *Store) Lookup(id TypeId) *Descriptor {
	if id.isPrimitive() {
		primitiveTable.mu.RLock()
		defer primitiveTable.mu.RUnlock()
		return &primitiveTable.descs[id.primitiveIndex()]
	}
	return s.arena.At(uint32(id))
}

// aliasTable maps alternate spellings to their canonical primitive, per
// spec §4.C5: int<->i32 and float<->f32 are true aliases; usize/isize are
// distinct primitives, not aliases of u64/i64 (spec §9 open question,
// resolved in favor of "distinct").
var aliasTable = map[string]Primitive{
	"int":   I32,
	"float": F32,
}

// PrimitiveByName resolves a builtin type-keyword spelling to its Primitive,
// applying the int/float aliases. The second return is false for anything
// that is not a builtin primitive name.
func PrimitiveByName(name string) (Primitive, bool) {
	if alias, ok := aliasTable[name]; ok {
		return alias, true
	}
	switch name {
	case "bool":
		return Bool, true
	case "i8":
		return I8, true
	case "i16":
		return I16, true
	case "i32":
		return I32, true
	case "i64":
		return I64, true
	case "i128":
		return I128, true
	case "u8":
		return U8, true
	case "u16":
		return U16, true
	case "u32":
		return U32, true
	case "u64":
		return U64, true
	case "u128":
		return U128, true
	case "f32":
		return F32, true
	case "f64":
		return F64, true
	case "char":
		return Char, true
	case "string":
		return StringPrim, true
	case "void":
		return Void, true
	case "Never":
		return NeverPrim, true
	case "usize":
		return Usize, true
	case "isize":
		return Isize, true
	default:
		return 0, false
	}
}
