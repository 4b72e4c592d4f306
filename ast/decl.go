package ast

import (
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/types"
)

// Visibility mirrors symbols.Visibility at the AST level (spec §3
// "Declarations"), kept separate to avoid ast importing symbols.
type Visibility int

const (
	Private Visibility = iota
	Public
)

// Param is one `name: Type` in a parameter list, struct field list, or
// enum struct-payload variant.
type Param struct {
	Name string
	Type Node
}

func retainParams(params []Param) []Param {
	out := make([]Param, len(params))
	for i, p := range params {
		out[i] = Param{Name: p.Name, Type: retainNode(p.Type)}
	}
	return out
}

func releaseParams(params []Param) {
	for _, p := range params {
		releaseNode(p.Type)
	}
}

func paramsAsNodes(params []Param) []Node {
	out := make([]Node, 0, len(params))
	for _, p := range params {
		out = append(out, p.Type)
	}
	return out
}

// FunctionDecl is a top-level `fn name[<TypeParams>](params) -> Ret { body }`
// or an `extern fn` prototype (Body is nil, IsExtern is true).
type FunctionDecl struct {
	base
	Name           string
	TypeParams     []string
	Params         []Param
	ReturnType     Node
	Body           Node // nil for extern prototypes
	Vis            Visibility
	IsExtern       bool
	ExternName     string
	FFIAnnotations []types.Ownership
}

func NewFunctionDecl(rng source.Range, name string, typeParams []string, params []Param, returnType, body Node, vis Visibility) *FunctionDecl {
	return &FunctionDecl{
		base: newBase(KindFunctionDecl, rng), Name: name, TypeParams: typeParams,
		Params: retainParams(params), ReturnType: retainNode(returnType), Body: retainNode(body), Vis: vis,
	}
}

func (n *FunctionDecl) Retain() Node { n.retain(); return n }
func (n *FunctionDecl) Release()     { if n.release() { n.releaseChildren() } }
func (n *FunctionDecl) Children() []Node {
	children := paramsAsNodes(n.Params)
	children = append(children, n.ReturnType)
	if n.Body != nil {
		children = append(children, n.Body)
	}
	return children
}
func (n *FunctionDecl) releaseChildren() {
	releaseParams(n.Params)
	releaseNode(n.ReturnType)
	releaseNode(n.Body)
}

// MethodDecl is a function declared inside an `impl` block. IsInstance is
// true when its first parameter is literally named `self` (spec §4.C7
// "Impl blocks").
type MethodDecl struct {
	base
	Name       string
	TypeParams []string
	IsInstance bool
	Params     []Param
	ReturnType Node
	Body       Node
	Vis        Visibility
}

func NewMethodDecl(rng source.Range, name string, typeParams []string, isInstance bool, params []Param, returnType, body Node, vis Visibility) *MethodDecl {
	return &MethodDecl{
		base: newBase(KindMethodDecl, rng), Name: name, TypeParams: typeParams, IsInstance: isInstance,
		Params: retainParams(params), ReturnType: retainNode(returnType), Body: retainNode(body), Vis: vis,
	}
}

func (n *MethodDecl) Retain() Node { n.retain(); return n }
func (n *MethodDecl) Release()     { if n.release() { n.releaseChildren() } }
func (n *MethodDecl) Children() []Node {
	children := paramsAsNodes(n.Params)
	children = append(children, n.ReturnType, n.Body)
	return children
}
func (n *MethodDecl) releaseChildren() {
	releaseParams(n.Params)
	releaseNode(n.ReturnType)
	releaseNode(n.Body)
}

type StructDecl struct {
	base
	Name       string
	TypeParams []string
	Fields     []Param
	Vis        Visibility
}

func NewStructDecl(rng source.Range, name string, typeParams []string, fields []Param, vis Visibility) *StructDecl {
	return &StructDecl{
		base: newBase(KindStructDecl, rng), Name: name, TypeParams: typeParams,
		Fields: retainParams(fields), Vis: vis,
	}
}

func (n *StructDecl) Retain() Node     { n.retain(); return n }
func (n *StructDecl) Release()         { if n.release() { n.releaseChildren() } }
func (n *StructDecl) Children() []Node { return paramsAsNodes(n.Fields) }
func (n *StructDecl) releaseChildren() { releaseParams(n.Fields) }

// EnumVariantDecl is one variant in an enum declaration: a plain tag
// (TuplePayload and StructFields both nil/empty), a tuple-payload variant
// `V(T)`, or a struct-payload variant `V { field: Type, ... }`.
type EnumVariantDecl struct {
	Name         string
	TuplePayload Node // nilable
	StructFields []Param
}

type EnumDecl struct {
	base
	Name       string
	TypeParams []string
	Variants   []EnumVariantDecl
	Vis        Visibility
}

func NewEnumDecl(rng source.Range, name string, typeParams []string, variants []EnumVariantDecl, vis Visibility) *EnumDecl {
	n := &EnumDecl{base: newBase(KindEnumDecl, rng), Name: name, TypeParams: typeParams, Vis: vis}
	n.Variants = make([]EnumVariantDecl, len(variants))
	for i, v := range variants {
		n.Variants[i] = EnumVariantDecl{
			Name: v.Name, TuplePayload: retainNode(v.TuplePayload), StructFields: retainParams(v.StructFields),
		}
	}
	return n
}

func (n *EnumDecl) Retain() Node { n.retain(); return n }
func (n *EnumDecl) Release()     { if n.release() { n.releaseChildren() } }
func (n *EnumDecl) Children() []Node {
	var children []Node
	for _, v := range n.Variants {
		if v.TuplePayload != nil {
			children = append(children, v.TuplePayload)
		}
		children = append(children, paramsAsNodes(v.StructFields)...)
	}
	return children
}
func (n *EnumDecl) releaseChildren() {
	for _, v := range n.Variants {
		releaseNode(v.TuplePayload)
		releaseParams(v.StructFields)
	}
}

// ImplDecl is `impl StructName { methods... }`.
type ImplDecl struct {
	base
	StructName string
	Methods    NodeList[Node]
}

func NewImplDecl(rng source.Range, structName string, methods ...Node) *ImplDecl {
	return &ImplDecl{base: newBase(KindImplDecl, rng), StructName: structName, Methods: NewNodeList(methods...)}
}

func (n *ImplDecl) Retain() Node     { n.retain(); return n }
func (n *ImplDecl) Release()         { if n.release() { n.releaseChildren() } }
func (n *ImplDecl) Children() []Node { return n.Methods.AsNodes() }
func (n *ImplDecl) releaseChildren() { n.Methods.Release() }

// ExternDecl is a standalone `extern fn name(params) -> Ret = "c_name";`
// prototype declared outside any block (spec §3 "extern").
type ExternDecl struct {
	base
	Name           string
	Params         []Param
	ReturnType     Node
	ExternName     string
	FFIAnnotations []types.Ownership
}

func NewExternDecl(rng source.Range, name string, params []Param, returnType Node, externName string, ffi []types.Ownership) *ExternDecl {
	return &ExternDecl{
		base: newBase(KindExternDecl, rng), Name: name, Params: retainParams(params),
		ReturnType: retainNode(returnType), ExternName: externName, FFIAnnotations: ffi,
	}
}

func (n *ExternDecl) Retain() Node { n.retain(); return n }
func (n *ExternDecl) Release()     { if n.release() { n.releaseChildren() } }
func (n *ExternDecl) Children() []Node {
	return append(paramsAsNodes(n.Params), n.ReturnType)
}
func (n *ExternDecl) releaseChildren() {
	releaseParams(n.Params)
	releaseNode(n.ReturnType)
}

// Program is the root node of one compilation unit: a package clause plus
// its top-level declarations.
type Program struct {
	base
	PackageName string
	Imports     []string
	Decls       NodeList[Node]
}

func NewProgram(rng source.Range, packageName string, imports []string, decls ...Node) *Program {
	return &Program{
		base: newBase(KindProgram, rng), PackageName: packageName, Imports: imports,
		Decls: NewNodeList(decls...),
	}
}

func (n *Program) Retain() Node     { n.retain(); return n }
func (n *Program) Release()         { if n.release() { n.releaseChildren() } }
func (n *Program) Children() []Node { return n.Decls.AsNodes() }
func (n *Program) releaseChildren() { n.Decls.Release() }
