// Package types defines Asthra's canonical, interned type descriptors (spec
// §3 "Type descriptor", §4.C5) and the compatibility rules used for
// assignment/return checking.
package types

import "fmt"

// TypeId is a compact reference to a Descriptor. The high bit discriminates
// between the small set of process-wide interned primitives (see
// primitives.go) and descriptors allocated into a particular compilation
// unit's Store — the same high-bit-discriminator trick the teacher's
// internal/intern.ID uses to distinguish inline-encoded strings from table
// indices, repurposed here to keep primitive lookups branch-free and
// allocation-free.
type TypeId uint32

const primitiveBit TypeId = 1 << 31

// Nil is never a valid descriptor reference; the zero value of TypeId.
const Nil TypeId = 0

func primitiveID(index int) TypeId { return primitiveBit | TypeId(index+1) }

func (id TypeId) isPrimitive() bool  { return id&primitiveBit != 0 }
func (id TypeId) primitiveIndex() int { return int(id&^primitiveBit) - 1 }

// DescKind tags the variant of a Descriptor.
type DescKind int

const (
	_ DescKind = iota
	KindPrimitive
	KindStruct
	KindEnum
	KindSlice
	KindArray
	KindPointer
	KindOption
	KindResult
	KindTuple
	KindFunction
	KindTaskHandle
	KindGenericInstance
)

// Primitive enumerates the built-in scalar kinds (spec §3).
type Primitive int

const (
	Bool Primitive = iota
	I8
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	F32
	F64
	Char
	StringPrim
	Void
	NeverPrim
	Usize
	Isize
	numPrimitives
)

func (p Primitive) String() string {
	switch p {
	case Bool:
		return "bool"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Char:
		return "char"
	case StringPrim:
		return "string"
	case Void:
		return "void"
	case NeverPrim:
		return "Never"
	case Usize:
		return "usize"
	case Isize:
		return "isize"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

func (p Primitive) isInteger() bool {
	switch p {
	case I8, I16, I32, I64, I128, U8, U16, U32, U64, U128, Usize, Isize:
		return true
	}
	return false
}

func (p Primitive) isFloat() bool { return p == F32 || p == F64 }

// Ownership mirrors the FFI annotations spec §1/§9 says the core must
// *record* but never enforce: #[transfer_full], #[transfer_none],
// #[borrowed].
type Ownership int

const (
	TransferFull Ownership = iota
	TransferNone
	Borrowed
)

// DescFlags records the small per-descriptor boolean properties spec §3
// names: mutable, owned, borrowed, constant, ffi-compatible.
type DescFlags uint16

const (
	FlagMutable DescFlags = 1 << iota
	FlagOwned
	FlagBorrowed
	FlagConstant
	FlagFFICompatible
)

// FieldInfo is one struct field or tuple element's name/type/offset.
type FieldInfo struct {
	Name   string
	Type   TypeId
	Offset uint32
}

// VariantInfo describes one enum variant: a plain tag, a tuple-payload
// variant `V(T)`, or a struct-payload variant `V{ ... }`.
type VariantInfo struct {
	Name         string
	TuplePayload TypeId // Nil if this variant has no tuple payload
	StructFields []FieldInfo
	Tag          int
}

// Descriptor is the canonical, arena-allocated representation of an Asthra
// type. Exactly the fields relevant to Kind are populated; see spec §3 for
// the full per-variant field list this mirrors.
type Descriptor struct {
	Kind  DescKind
	Size  uint32
	Align uint32
	Flags DescFlags

	// KindPrimitive
	Prim Primitive

	// KindStruct / KindEnum: shared name + generic arity.
	Name          string
	TypeParamCount int

	// KindStruct
	Fields []FieldInfo

	// KindEnum
	Variants []VariantInfo

	// KindSlice / KindArray / KindPointer / KindOption
	Elem TypeId
	// KindArray
	ArrayLen int64
	// KindPointer
	PointerMutable bool

	// KindResult
	OkType  TypeId
	ErrType TypeId

	// KindTuple
	TupleElems   []TypeId
	TupleOffsets []uint32

	// KindFunction
	Params         []TypeId
	Return         TypeId
	IsExtern       bool
	ExternName     string
	FFIAnnotations []Ownership

	// KindTaskHandle
	Result TypeId

	// KindGenericInstance
	Base TypeId
	Args []TypeId
}

func (d *Descriptor) String() string {
	switch d.Kind {
	case KindPrimitive:
		return d.Prim.String()
	case KindStruct, KindEnum:
		return d.Name
	default:
		return fmt.Sprintf("Descriptor(%v)", d.Kind)
	}
}
