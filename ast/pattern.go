package ast

import "github.com/asthra-lang/asthrac/source"

type IdentPattern struct {
	base
	Name string
}

func NewIdentPattern(rng source.Range, name string) *IdentPattern {
	return &IdentPattern{base: newBase(KindIdentPattern, rng), Name: name}
}

func (n *IdentPattern) Retain() Node     { n.retain(); return n }
func (n *IdentPattern) Release()         { if n.release() { n.releaseChildren() } }
func (n *IdentPattern) Children() []Node { return nil }
func (n *IdentPattern) releaseChildren() {}

type WildcardPattern struct{ base }

func NewWildcardPattern(rng source.Range) *WildcardPattern {
	return &WildcardPattern{base: newBase(KindWildcardPattern, rng)}
}

func (n *WildcardPattern) Retain() Node     { n.retain(); return n }
func (n *WildcardPattern) Release()         { if n.release() { n.releaseChildren() } }
func (n *WildcardPattern) Children() []Node { return nil }
func (n *WildcardPattern) releaseChildren() {}

type TuplePattern struct {
	base
	Elements NodeList[Node]
}

func NewTuplePattern(rng source.Range, elements ...Node) *TuplePattern {
	return &TuplePattern{base: newBase(KindTuplePattern, rng), Elements: NewNodeList(elements...)}
}

func (n *TuplePattern) Retain() Node     { n.retain(); return n }
func (n *TuplePattern) Release()         { if n.release() { n.releaseChildren() } }
func (n *TuplePattern) Children() []Node { return n.Elements.AsNodes() }
func (n *TuplePattern) releaseChildren() { n.Elements.Release() }

// EnumPattern is `[EnumName.]Variant[(nested)]`. EnumName is "" when the
// enum is inferred from the scrutinee's type (e.g. bare `Some(x)` against
// an Option-typed scrutinee).
type EnumPattern struct {
	base
	EnumName string
	Variant  string
	Nested   Node // nilable
}

func NewEnumPattern(rng source.Range, enumName, variant string, nested Node) *EnumPattern {
	return &EnumPattern{
		base: newBase(KindEnumPattern, rng), EnumName: enumName, Variant: variant,
		Nested: retainNode(nested),
	}
}

func (n *EnumPattern) Retain() Node { n.retain(); return n }
func (n *EnumPattern) Release()     { if n.release() { n.releaseChildren() } }
func (n *EnumPattern) Children() []Node {
	if n.Nested == nil {
		return nil
	}
	return []Node{n.Nested}
}
func (n *EnumPattern) releaseChildren() { releaseNode(n.Nested) }

// FieldPattern is one `name: sub-pattern` in a struct pattern.
type FieldPattern struct {
	Name    string
	Pattern Node
}

// StructPattern is `Name[<TypeArgs>] { field: pattern, ..., [..] }`.
type StructPattern struct {
	base
	TypeName  string
	TypeArgs  NodeList[Node]
	Fields    []FieldPattern
	HasRest   bool // true if a trailing `..` is present
}

func NewStructPattern(rng source.Range, typeName string, typeArgs []Node, fields []FieldPattern, hasRest bool) *StructPattern {
	n := &StructPattern{
		base: newBase(KindStructPattern, rng), TypeName: typeName,
		TypeArgs: NewNodeList(typeArgs...), HasRest: hasRest,
	}
	n.Fields = make([]FieldPattern, len(fields))
	for i, f := range fields {
		n.Fields[i] = FieldPattern{Name: f.Name, Pattern: retainNode(f.Pattern)}
	}
	return n
}

func (n *StructPattern) Retain() Node { n.retain(); return n }
func (n *StructPattern) Release()     { if n.release() { n.releaseChildren() } }
func (n *StructPattern) Children() []Node {
	children := n.TypeArgs.AsNodes()
	for _, f := range n.Fields {
		children = append(children, f.Pattern)
	}
	return children
}
func (n *StructPattern) releaseChildren() {
	n.TypeArgs.Release()
	for _, f := range n.Fields {
		releaseNode(f.Pattern)
	}
}

// LiteralPattern matches a literal expression (int/float/string/bool).
type LiteralPattern struct {
	base
	Literal Node
}

func NewLiteralPattern(rng source.Range, literal Node) *LiteralPattern {
	return &LiteralPattern{base: newBase(KindLiteralPattern, rng), Literal: retainNode(literal)}
}

func (n *LiteralPattern) Retain() Node     { n.retain(); return n }
func (n *LiteralPattern) Release()         { if n.release() { n.releaseChildren() } }
func (n *LiteralPattern) Children() []Node { return []Node{n.Literal} }
func (n *LiteralPattern) releaseChildren() { releaseNode(n.Literal) }
