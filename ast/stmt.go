package ast

import "github.com/asthra-lang/asthrac/source"

type BlockStmt struct {
	base
	Stmts NodeList[Node]
}

func NewBlockStmt(rng source.Range, stmts ...Node) *BlockStmt {
	return &BlockStmt{base: newBase(KindBlockStmt, rng), Stmts: NewNodeList(stmts...)}
}

func (n *BlockStmt) Retain() Node     { n.retain(); return n }
func (n *BlockStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *BlockStmt) Children() []Node { return n.Stmts.AsNodes() }
func (n *BlockStmt) releaseChildren() { n.Stmts.Release() }

// LetStmt is `let [mut] name: Type [= init] [#[ownership_tag]];`. Type is
// mandatory per spec §3; Init is nil for an uninitialized declaration.
type LetStmt struct {
	base
	Mutable   bool
	Name      string
	Type      Node // AST-level type node
	Init      Node // nilable
	Ownership string // optional ownership tag spelling, "" if absent
}

func NewLetStmt(rng source.Range, mutable bool, name string, typ, init Node, ownership string) *LetStmt {
	return &LetStmt{
		base: newBase(KindLetStmt, rng), Mutable: mutable, Name: name,
		Type: retainNode(typ), Init: retainNode(init), Ownership: ownership,
	}
}

func (n *LetStmt) Retain() Node { n.retain(); return n }
func (n *LetStmt) Release()     { if n.release() { n.releaseChildren() } }
func (n *LetStmt) Children() []Node {
	children := []Node{n.Type}
	if n.Init != nil {
		children = append(children, n.Init)
	}
	return children
}
func (n *LetStmt) releaseChildren() { releaseNode(n.Type); releaseNode(n.Init) }

// ReturnStmt's Expr is never nil: `return ();` is represented with an
// explicit UnitLiteral expression per spec §3.
type ReturnStmt struct {
	base
	Expr Node
}

func NewReturnStmt(rng source.Range, expr Node) *ReturnStmt {
	return &ReturnStmt{base: newBase(KindReturnStmt, rng), Expr: retainNode(expr)}
}

func (n *ReturnStmt) Retain() Node     { n.retain(); return n }
func (n *ReturnStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *ReturnStmt) Children() []Node { return []Node{n.Expr} }
func (n *ReturnStmt) releaseChildren() { releaseNode(n.Expr) }

type ExprStmt struct {
	base
	Expr Node
}

func NewExprStmt(rng source.Range, expr Node) *ExprStmt {
	return &ExprStmt{base: newBase(KindExprStmt, rng), Expr: retainNode(expr)}
}

func (n *ExprStmt) Retain() Node     { n.retain(); return n }
func (n *ExprStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *ExprStmt) Children() []Node { return []Node{n.Expr} }
func (n *ExprStmt) releaseChildren() { releaseNode(n.Expr) }

type IfStmt struct {
	base
	Cond       Node
	Then, Else Node // Else is nilable
}

func NewIfStmt(rng source.Range, cond, then, els Node) *IfStmt {
	return &IfStmt{
		base: newBase(KindIfStmt, rng), Cond: retainNode(cond),
		Then: retainNode(then), Else: retainNode(els),
	}
}

func (n *IfStmt) Retain() Node { n.retain(); return n }
func (n *IfStmt) Release()     { if n.release() { n.releaseChildren() } }
func (n *IfStmt) Children() []Node {
	children := []Node{n.Cond, n.Then}
	if n.Else != nil {
		children = append(children, n.Else)
	}
	return children
}
func (n *IfStmt) releaseChildren() { releaseNode(n.Cond); releaseNode(n.Then); releaseNode(n.Else) }

// IfLetStmt is `if let pattern = expr { then } else { els }`.
type IfLetStmt struct {
	base
	Pattern    Node
	Expr       Node
	Then, Else Node // Else is nilable
}

func NewIfLetStmt(rng source.Range, pattern, expr, then, els Node) *IfLetStmt {
	return &IfLetStmt{
		base: newBase(KindIfLetStmt, rng), Pattern: retainNode(pattern), Expr: retainNode(expr),
		Then: retainNode(then), Else: retainNode(els),
	}
}

func (n *IfLetStmt) Retain() Node { n.retain(); return n }
func (n *IfLetStmt) Release()     { if n.release() { n.releaseChildren() } }
func (n *IfLetStmt) Children() []Node {
	children := []Node{n.Pattern, n.Expr, n.Then}
	if n.Else != nil {
		children = append(children, n.Else)
	}
	return children
}
func (n *IfLetStmt) releaseChildren() {
	releaseNode(n.Pattern)
	releaseNode(n.Expr)
	releaseNode(n.Then)
	releaseNode(n.Else)
}

// ForStmt is `for name in iterable { body }`; iterable must be a slice
// (checked by the analyzer, not the parser).
type ForStmt struct {
	base
	VarName  string
	Iterable Node
	Body     Node
}

func NewForStmt(rng source.Range, varName string, iterable, body Node) *ForStmt {
	return &ForStmt{
		base: newBase(KindForStmt, rng), VarName: varName,
		Iterable: retainNode(iterable), Body: retainNode(body),
	}
}

func (n *ForStmt) Retain() Node     { n.retain(); return n }
func (n *ForStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *ForStmt) Children() []Node { return []Node{n.Iterable, n.Body} }
func (n *ForStmt) releaseChildren() { releaseNode(n.Iterable); releaseNode(n.Body) }

type MatchStmt struct {
	base
	Scrutinee Node
	Arms      []MatchArm
}

func NewMatchStmt(rng source.Range, scrutinee Node, arms []MatchArm) *MatchStmt {
	n := &MatchStmt{base: newBase(KindMatchStmt, rng), Scrutinee: retainNode(scrutinee)}
	n.Arms = make([]MatchArm, len(arms))
	for i, a := range arms {
		n.Arms[i] = MatchArm{Pattern: retainNode(a.Pattern), Body: retainNode(a.Body)}
	}
	return n
}

func (n *MatchStmt) Retain() Node { n.retain(); return n }
func (n *MatchStmt) Release()     { if n.release() { n.releaseChildren() } }
func (n *MatchStmt) Children() []Node {
	children := []Node{n.Scrutinee}
	for _, a := range n.Arms {
		children = append(children, a.Pattern, a.Body)
	}
	return children
}
func (n *MatchStmt) releaseChildren() {
	releaseNode(n.Scrutinee)
	for _, a := range n.Arms {
		releaseNode(a.Pattern)
		releaseNode(a.Body)
	}
}

// SpawnStmt is `spawn call_expr;`, fire-and-forget.
type SpawnStmt struct {
	base
	Call Node
}

func NewSpawnStmt(rng source.Range, call Node) *SpawnStmt {
	return &SpawnStmt{base: newBase(KindSpawnStmt, rng), Call: retainNode(call)}
}

func (n *SpawnStmt) Retain() Node     { n.retain(); return n }
func (n *SpawnStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *SpawnStmt) Children() []Node { return []Node{n.Call} }
func (n *SpawnStmt) releaseChildren() { releaseNode(n.Call) }

// SpawnWithHandleStmt is `spawn_with_handle handle_name = call_expr;`; the
// handle variable receives a TaskHandle<ReturnType> binding (spec §4.C7).
type SpawnWithHandleStmt struct {
	base
	HandleName string
	Call       Node
}

func NewSpawnWithHandleStmt(rng source.Range, handleName string, call Node) *SpawnWithHandleStmt {
	return &SpawnWithHandleStmt{
		base: newBase(KindSpawnWithHandleStmt, rng), HandleName: handleName, Call: retainNode(call),
	}
}

func (n *SpawnWithHandleStmt) Retain() Node     { n.retain(); return n }
func (n *SpawnWithHandleStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *SpawnWithHandleStmt) Children() []Node { return []Node{n.Call} }
func (n *SpawnWithHandleStmt) releaseChildren() { releaseNode(n.Call) }

type UnsafeBlockStmt struct {
	base
	Body Node
}

func NewUnsafeBlockStmt(rng source.Range, body Node) *UnsafeBlockStmt {
	return &UnsafeBlockStmt{base: newBase(KindUnsafeBlockStmt, rng), Body: retainNode(body)}
}

func (n *UnsafeBlockStmt) Retain() Node     { n.retain(); return n }
func (n *UnsafeBlockStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *UnsafeBlockStmt) Children() []Node { return []Node{n.Body} }
func (n *UnsafeBlockStmt) releaseChildren() { releaseNode(n.Body) }

type BreakStmt struct{ base }

func NewBreakStmt(rng source.Range) *BreakStmt {
	return &BreakStmt{base: newBase(KindBreakStmt, rng)}
}

func (n *BreakStmt) Retain() Node     { n.retain(); return n }
func (n *BreakStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *BreakStmt) Children() []Node { return nil }
func (n *BreakStmt) releaseChildren() {}

type ContinueStmt struct{ base }

func NewContinueStmt(rng source.Range) *ContinueStmt {
	return &ContinueStmt{base: newBase(KindContinueStmt, rng)}
}

func (n *ContinueStmt) Retain() Node     { n.retain(); return n }
func (n *ContinueStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *ContinueStmt) Children() []Node { return nil }
func (n *ContinueStmt) releaseChildren() {}

type AssignStmt struct {
	base
	Target, Value Node
}

func NewAssignStmt(rng source.Range, target, value Node) *AssignStmt {
	return &AssignStmt{base: newBase(KindAssignStmt, rng), Target: retainNode(target), Value: retainNode(value)}
}

func (n *AssignStmt) Retain() Node     { n.retain(); return n }
func (n *AssignStmt) Release()         { if n.release() { n.releaseChildren() } }
func (n *AssignStmt) Children() []Node { return []Node{n.Target, n.Value} }
func (n *AssignStmt) releaseChildren() { releaseNode(n.Target); releaseNode(n.Value) }
