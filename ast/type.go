package ast

import "github.com/asthra-lang/asthrac/source"

// NamedType is a base/struct-ref/enum-ref type name, optionally
// parameterized: `Name[<TypeArgs>]`.
type NamedType struct {
	base
	Name     string
	TypeArgs NodeList[Node]
}

func NewNamedType(rng source.Range, name string, typeArgs ...Node) *NamedType {
	return &NamedType{base: newBase(KindNamedType, rng), Name: name, TypeArgs: NewNodeList(typeArgs...)}
}

func (n *NamedType) Retain() Node     { n.retain(); return n }
func (n *NamedType) Release()         { if n.release() { n.releaseChildren() } }
func (n *NamedType) Children() []Node { return n.TypeArgs.AsNodes() }
func (n *NamedType) releaseChildren() { n.TypeArgs.Release() }

// PointerType is `*mut T` or `*const T`.
type PointerType struct {
	base
	Mutable bool
	Pointee Node
}

func NewPointerType(rng source.Range, mutable bool, pointee Node) *PointerType {
	return &PointerType{base: newBase(KindPointerType, rng), Mutable: mutable, Pointee: retainNode(pointee)}
}

func (n *PointerType) Retain() Node     { n.retain(); return n }
func (n *PointerType) Release()         { if n.release() { n.releaseChildren() } }
func (n *PointerType) Children() []Node { return []Node{n.Pointee} }
func (n *PointerType) releaseChildren() { releaseNode(n.Pointee) }

type SliceType struct {
	base
	Elem Node
}

func NewSliceType(rng source.Range, elem Node) *SliceType {
	return &SliceType{base: newBase(KindSliceType, rng), Elem: retainNode(elem)}
}

func (n *SliceType) Retain() Node     { n.retain(); return n }
func (n *SliceType) Release()         { if n.release() { n.releaseChildren() } }
func (n *SliceType) Children() []Node { return []Node{n.Elem} }
func (n *SliceType) releaseChildren() { releaseNode(n.Elem) }

// ArrayType is `[N]T`, where N is a const-expr node evaluated by the
// analyzer.
type ArrayType struct {
	base
	Elem Node
	Size Node
}

func NewArrayType(rng source.Range, elem, size Node) *ArrayType {
	return &ArrayType{base: newBase(KindArrayType, rng), Elem: retainNode(elem), Size: retainNode(size)}
}

func (n *ArrayType) Retain() Node     { n.retain(); return n }
func (n *ArrayType) Release()         { if n.release() { n.releaseChildren() } }
func (n *ArrayType) Children() []Node { return []Node{n.Elem, n.Size} }
func (n *ArrayType) releaseChildren() { releaseNode(n.Elem); releaseNode(n.Size) }

type TupleType struct {
	base
	Elements NodeList[Node]
}

func NewTupleType(rng source.Range, elements ...Node) *TupleType {
	return &TupleType{base: newBase(KindTupleType, rng), Elements: NewNodeList(elements...)}
}

func (n *TupleType) Retain() Node     { n.retain(); return n }
func (n *TupleType) Release()         { if n.release() { n.releaseChildren() } }
func (n *TupleType) Children() []Node { return n.Elements.AsNodes() }
func (n *TupleType) releaseChildren() { n.Elements.Release() }

type OptionType struct {
	base
	Value Node
}

func NewOptionType(rng source.Range, value Node) *OptionType {
	return &OptionType{base: newBase(KindOptionType, rng), Value: retainNode(value)}
}

func (n *OptionType) Retain() Node     { n.retain(); return n }
func (n *OptionType) Release()         { if n.release() { n.releaseChildren() } }
func (n *OptionType) Children() []Node { return []Node{n.Value} }
func (n *OptionType) releaseChildren() { releaseNode(n.Value) }

type ResultType struct {
	base
	Ok, Err Node
}

func NewResultType(rng source.Range, ok, err Node) *ResultType {
	return &ResultType{base: newBase(KindResultType, rng), Ok: retainNode(ok), Err: retainNode(err)}
}

func (n *ResultType) Retain() Node     { n.retain(); return n }
func (n *ResultType) Release()         { if n.release() { n.releaseChildren() } }
func (n *ResultType) Children() []Node { return []Node{n.Ok, n.Err} }
func (n *ResultType) releaseChildren() { releaseNode(n.Ok); releaseNode(n.Err) }

type TaskHandleType struct {
	base
	Result Node
}

func NewTaskHandleType(rng source.Range, result Node) *TaskHandleType {
	return &TaskHandleType{base: newBase(KindTaskHandleType, rng), Result: retainNode(result)}
}

func (n *TaskHandleType) Retain() Node     { n.retain(); return n }
func (n *TaskHandleType) Release()         { if n.release() { n.releaseChildren() } }
func (n *TaskHandleType) Children() []Node { return []Node{n.Result} }
func (n *TaskHandleType) releaseChildren() { releaseNode(n.Result) }
