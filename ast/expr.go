package ast

import "github.com/asthra-lang/asthrac/source"

// BinaryOp enumerates binary operators (spec §3 "binary/unary op (with
// operator enum)").
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
)

// UnaryOp enumerates unary operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
	OpBitNot
	OpDeref
	OpAddrOf
	OpAddrOfMut
)

// --- literals ---

type IntLiteral struct {
	base
	Value int64
}

func NewIntLiteral(rng source.Range, value int64) *IntLiteral {
	return &IntLiteral{base: newBase(KindIntLiteral, rng), Value: value}
}

func (n *IntLiteral) Retain() Node            { n.retain(); return n }
func (n *IntLiteral) Release()                { if n.release() { n.releaseChildren() } }
func (n *IntLiteral) Children() []Node        { return nil }
func (n *IntLiteral) releaseChildren()        {}

type FloatLiteral struct {
	base
	Value float64
}

func NewFloatLiteral(rng source.Range, value float64) *FloatLiteral {
	return &FloatLiteral{base: newBase(KindFloatLiteral, rng), Value: value}
}

func (n *FloatLiteral) Retain() Node     { n.retain(); return n }
func (n *FloatLiteral) Release()         { if n.release() { n.releaseChildren() } }
func (n *FloatLiteral) Children() []Node { return nil }
func (n *FloatLiteral) releaseChildren() {}

type StringLiteral struct {
	base
	Value string
}

func NewStringLiteral(rng source.Range, value string) *StringLiteral {
	return &StringLiteral{base: newBase(KindStringLiteral, rng), Value: value}
}

func (n *StringLiteral) Retain() Node     { n.retain(); return n }
func (n *StringLiteral) Release()         { if n.release() { n.releaseChildren() } }
func (n *StringLiteral) Children() []Node { return nil }
func (n *StringLiteral) releaseChildren() {}

type BoolLiteral struct {
	base
	Value bool
}

func NewBoolLiteral(rng source.Range, value bool) *BoolLiteral {
	return &BoolLiteral{base: newBase(KindBoolLiteral, rng), Value: value}
}

func (n *BoolLiteral) Retain() Node     { n.retain(); return n }
func (n *BoolLiteral) Release()         { if n.release() { n.releaseChildren() } }
func (n *BoolLiteral) Children() []Node { return nil }
func (n *BoolLiteral) releaseChildren() {}

type CharLiteral struct {
	base
	Value rune
}

func NewCharLiteral(rng source.Range, value rune) *CharLiteral {
	return &CharLiteral{base: newBase(KindCharLiteral, rng), Value: value}
}

func (n *CharLiteral) Retain() Node     { n.retain(); return n }
func (n *CharLiteral) Release()         { if n.release() { n.releaseChildren() } }
func (n *CharLiteral) Children() []Node { return nil }
func (n *CharLiteral) releaseChildren() {}

// ArrayLiteralExpr is `[elem, elem, ...]` or the empty `[]`, a slice/array
// value built in place (spec §4.C4 example `Vec { items: [] }`).
type ArrayLiteralExpr struct {
	base
	Elements NodeList[Node]
}

func NewArrayLiteralExpr(rng source.Range, elements ...Node) *ArrayLiteralExpr {
	return &ArrayLiteralExpr{base: newBase(KindArrayLiteralExpr, rng), Elements: NewNodeList(elements...)}
}

func (n *ArrayLiteralExpr) Retain() Node     { n.retain(); return n }
func (n *ArrayLiteralExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *ArrayLiteralExpr) Children() []Node { return n.Elements.AsNodes() }
func (n *ArrayLiteralExpr) releaseChildren() { n.Elements.Release() }

type UnitLiteral struct{ base }

func NewUnitLiteral(rng source.Range) *UnitLiteral {
	return &UnitLiteral{base: newBase(KindUnitLiteral, rng)}
}

func (n *UnitLiteral) Retain() Node     { n.retain(); return n }
func (n *UnitLiteral) Release()         { if n.release() { n.releaseChildren() } }
func (n *UnitLiteral) Children() []Node { return nil }
func (n *UnitLiteral) releaseChildren() {}

// --- composite expressions ---

type TupleExpr struct {
	base
	Elements NodeList[Node]
}

func NewTupleExpr(rng source.Range, elements ...Node) *TupleExpr {
	return &TupleExpr{base: newBase(KindTupleExpr, rng), Elements: NewNodeList(elements...)}
}

func (n *TupleExpr) Retain() Node     { n.retain(); return n }
func (n *TupleExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *TupleExpr) Children() []Node { return n.Elements.AsNodes() }
func (n *TupleExpr) releaseChildren() { n.Elements.Release() }

type IdentifierExpr struct {
	base
	Name string
}

func NewIdentifierExpr(rng source.Range, name string) *IdentifierExpr {
	return &IdentifierExpr{base: newBase(KindIdentifierExpr, rng), Name: name}
}

func (n *IdentifierExpr) Retain() Node     { n.retain(); return n }
func (n *IdentifierExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *IdentifierExpr) Children() []Node { return nil }
func (n *IdentifierExpr) releaseChildren() {}

type BinaryExpr struct {
	base
	Op          BinaryOp
	Left, Right Node
}

func NewBinaryExpr(rng source.Range, op BinaryOp, left, right Node) *BinaryExpr {
	return &BinaryExpr{base: newBase(KindBinaryExpr, rng), Op: op, Left: retainNode(left), Right: retainNode(right)}
}

func (n *BinaryExpr) Retain() Node     { n.retain(); return n }
func (n *BinaryExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *BinaryExpr) Children() []Node { return []Node{n.Left, n.Right} }
func (n *BinaryExpr) releaseChildren() { releaseNode(n.Left); releaseNode(n.Right) }

type UnaryExpr struct {
	base
	Op      UnaryOp
	Operand Node
}

func NewUnaryExpr(rng source.Range, op UnaryOp, operand Node) *UnaryExpr {
	return &UnaryExpr{base: newBase(KindUnaryExpr, rng), Op: op, Operand: retainNode(operand)}
}

func (n *UnaryExpr) Retain() Node     { n.retain(); return n }
func (n *UnaryExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *UnaryExpr) Children() []Node { return []Node{n.Operand} }
func (n *UnaryExpr) releaseChildren() { releaseNode(n.Operand) }

type FieldAccessExpr struct {
	base
	Target Node
	Field  string
}

func NewFieldAccessExpr(rng source.Range, target Node, field string) *FieldAccessExpr {
	return &FieldAccessExpr{base: newBase(KindFieldAccessExpr, rng), Target: retainNode(target), Field: field}
}

func (n *FieldAccessExpr) Retain() Node     { n.retain(); return n }
func (n *FieldAccessExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *FieldAccessExpr) Children() []Node { return []Node{n.Target} }
func (n *FieldAccessExpr) releaseChildren() { releaseNode(n.Target) }

type IndexExpr struct {
	base
	Target, Index Node
}

func NewIndexExpr(rng source.Range, target, index Node) *IndexExpr {
	return &IndexExpr{base: newBase(KindIndexExpr, rng), Target: retainNode(target), Index: retainNode(index)}
}

func (n *IndexExpr) Retain() Node     { n.retain(); return n }
func (n *IndexExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *IndexExpr) Children() []Node { return []Node{n.Target, n.Index} }
func (n *IndexExpr) releaseChildren() { releaseNode(n.Target); releaseNode(n.Index) }

// SliceExpr is `target[start?:end?]`; Start and End are nil when omitted.
type SliceExpr struct {
	base
	Target    Node
	Start, End Node
}

func NewSliceExpr(rng source.Range, target, start, end Node) *SliceExpr {
	return &SliceExpr{
		base: newBase(KindSliceExpr, rng), Target: retainNode(target),
		Start: retainNode(start), End: retainNode(end),
	}
}

func (n *SliceExpr) Retain() Node { n.retain(); return n }
func (n *SliceExpr) Release()     { if n.release() { n.releaseChildren() } }
func (n *SliceExpr) Children() []Node {
	children := []Node{n.Target}
	if n.Start != nil {
		children = append(children, n.Start)
	}
	if n.End != nil {
		children = append(children, n.End)
	}
	return children
}
func (n *SliceExpr) releaseChildren() {
	releaseNode(n.Target)
	releaseNode(n.Start)
	releaseNode(n.End)
}

type CallExpr struct {
	base
	Callee Node
	Args   NodeList[Node]
}

func NewCallExpr(rng source.Range, callee Node, args ...Node) *CallExpr {
	return &CallExpr{base: newBase(KindCallExpr, rng), Callee: retainNode(callee), Args: NewNodeList(args...)}
}

func (n *CallExpr) Retain() Node { n.retain(); return n }
func (n *CallExpr) Release()     { if n.release() { n.releaseChildren() } }
func (n *CallExpr) Children() []Node {
	return append([]Node{n.Callee}, n.Args.AsNodes()...)
}
func (n *CallExpr) releaseChildren() { releaseNode(n.Callee); n.Args.Release() }

// AssocCallExpr is `TypeName::Method(args...)`.
type AssocCallExpr struct {
	base
	TypeName string
	Method   string
	Args     NodeList[Node]
}

func NewAssocCallExpr(rng source.Range, typeName, method string, args ...Node) *AssocCallExpr {
	return &AssocCallExpr{
		base: newBase(KindAssocCallExpr, rng), TypeName: typeName, Method: method,
		Args: NewNodeList(args...),
	}
}

func (n *AssocCallExpr) Retain() Node            { n.retain(); return n }
func (n *AssocCallExpr) Release()                { if n.release() { n.releaseChildren() } }
func (n *AssocCallExpr) Children() []Node        { return n.Args.AsNodes() }
func (n *AssocCallExpr) releaseChildren()        { n.Args.Release() }

// EnumConstructExpr is `EnumName.Variant(payload?)` or a shorthand
// `.Variant(payload?)` when EnumName is resolved from context.
type EnumConstructExpr struct {
	base
	EnumName string
	Variant  string
	Payload  Node // nil if the variant carries no tuple payload
}

func NewEnumConstructExpr(rng source.Range, enumName, variant string, payload Node) *EnumConstructExpr {
	return &EnumConstructExpr{
		base: newBase(KindEnumConstructExpr, rng), EnumName: enumName, Variant: variant,
		Payload: retainNode(payload),
	}
}

func (n *EnumConstructExpr) Retain() Node { n.retain(); return n }
func (n *EnumConstructExpr) Release()     { if n.release() { n.releaseChildren() } }
func (n *EnumConstructExpr) Children() []Node {
	if n.Payload == nil {
		return nil
	}
	return []Node{n.Payload}
}
func (n *EnumConstructExpr) releaseChildren() { releaseNode(n.Payload) }

// FieldInit is one `name: value` initializer in a struct literal.
type FieldInit struct {
	Name  string
	Value Node
}

type StructLiteralExpr struct {
	base
	TypeName string
	TypeArgs NodeList[Node] // AST-level type nodes, may be empty
	Fields   []FieldInit
}

func NewStructLiteralExpr(rng source.Range, typeName string, typeArgs []Node, fields []FieldInit) *StructLiteralExpr {
	n := &StructLiteralExpr{
		base: newBase(KindStructLiteralExpr, rng), TypeName: typeName,
		TypeArgs: NewNodeList(typeArgs...),
	}
	n.Fields = make([]FieldInit, len(fields))
	for i, f := range fields {
		n.Fields[i] = FieldInit{Name: f.Name, Value: retainNode(f.Value)}
	}
	return n
}

func (n *StructLiteralExpr) Retain() Node { n.retain(); return n }
func (n *StructLiteralExpr) Release()     { if n.release() { n.releaseChildren() } }
func (n *StructLiteralExpr) Children() []Node {
	children := n.TypeArgs.AsNodes()
	for _, f := range n.Fields {
		children = append(children, f.Value)
	}
	return children
}
func (n *StructLiteralExpr) releaseChildren() {
	n.TypeArgs.Release()
	for _, f := range n.Fields {
		releaseNode(f.Value)
	}
}

type SizeofExpr struct {
	base
	TypeExpr Node // an AST-level type node
}

func NewSizeofExpr(rng source.Range, typeExpr Node) *SizeofExpr {
	return &SizeofExpr{base: newBase(KindSizeofExpr, rng), TypeExpr: retainNode(typeExpr)}
}

func (n *SizeofExpr) Retain() Node     { n.retain(); return n }
func (n *SizeofExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *SizeofExpr) Children() []Node { return []Node{n.TypeExpr} }
func (n *SizeofExpr) releaseChildren() { releaseNode(n.TypeExpr) }

type AwaitExpr struct {
	base
	Handle Node
}

func NewAwaitExpr(rng source.Range, handle Node) *AwaitExpr {
	return &AwaitExpr{base: newBase(KindAwaitExpr, rng), Handle: retainNode(handle)}
}

func (n *AwaitExpr) Retain() Node     { n.retain(); return n }
func (n *AwaitExpr) Release()         { if n.release() { n.releaseChildren() } }
func (n *AwaitExpr) Children() []Node { return []Node{n.Handle} }
func (n *AwaitExpr) releaseChildren() { releaseNode(n.Handle) }

// MatchArm pairs a pattern with the expression/block it guards.
type MatchArm struct {
	Pattern Node
	Body    Node
}

type MatchExpr struct {
	base
	Scrutinee Node
	Arms      []MatchArm
}

func NewMatchExpr(rng source.Range, scrutinee Node, arms []MatchArm) *MatchExpr {
	n := &MatchExpr{base: newBase(KindMatchExpr, rng), Scrutinee: retainNode(scrutinee)}
	n.Arms = make([]MatchArm, len(arms))
	for i, a := range arms {
		n.Arms[i] = MatchArm{Pattern: retainNode(a.Pattern), Body: retainNode(a.Body)}
	}
	return n
}

func (n *MatchExpr) Retain() Node { n.retain(); return n }
func (n *MatchExpr) Release()     { if n.release() { n.releaseChildren() } }
func (n *MatchExpr) Children() []Node {
	children := []Node{n.Scrutinee}
	for _, a := range n.Arms {
		children = append(children, a.Pattern, a.Body)
	}
	return children
}
func (n *MatchExpr) releaseChildren() {
	releaseNode(n.Scrutinee)
	for _, a := range n.Arms {
		releaseNode(a.Pattern)
		releaseNode(a.Body)
	}
}
