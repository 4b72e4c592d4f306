package ast

// CloneDeep produces an independent copy of n and its entire subtree, with
// fresh ref-counts (each new node starts at 1, as if freshly constructed).
// Resolved-type and flag annotations set by the semantic analyzer are
// preserved, since a clone is typically taken to let one pass mutate a
// tree another pass still holds (spec §4.C3 "Deep clone").
func CloneDeep(n Node) Node {
	if n == nil {
		return nil
	}
	clone := cloneShallow(n)
	// Each child was cloned at ref-count 1 and then retained by its new
	// parent's constructor; drop the cloning handle so the parent is its
	// only holder.
	for _, c := range clone.Children() {
		releaseNode(c)
	}
	clone.SetResolvedType(n.ResolvedType())
	clone.SetFlags(n.Flags())
	return clone
}

func cloneNodes(ns []Node) []Node {
	if len(ns) == 0 {
		return nil
	}
	out := make([]Node, len(ns))
	for i, c := range ns {
		out[i] = CloneDeep(c)
	}
	return out
}

func cloneParams(params []Param) []Param {
	out := make([]Param, len(params))
	for i, p := range params {
		out[i] = Param{Name: p.Name, Type: CloneDeep(p.Type)}
	}
	return out
}

func cloneArms(arms []MatchArm) []MatchArm {
	out := make([]MatchArm, len(arms))
	for i, a := range arms {
		out[i] = MatchArm{Pattern: CloneDeep(a.Pattern), Body: CloneDeep(a.Body)}
	}
	return out
}

func cloneShallow(n Node) Node { //nolint:gocyclo // one arm per closed Kind variant, spec §3.
	switch v := n.(type) {
	case *IntLiteral:
		return NewIntLiteral(v.Range(), v.Value)
	case *FloatLiteral:
		return NewFloatLiteral(v.Range(), v.Value)
	case *StringLiteral:
		return NewStringLiteral(v.Range(), v.Value)
	case *BoolLiteral:
		return NewBoolLiteral(v.Range(), v.Value)
	case *CharLiteral:
		return NewCharLiteral(v.Range(), v.Value)
	case *UnitLiteral:
		return NewUnitLiteral(v.Range())
	case *TupleExpr:
		return NewTupleExpr(v.Range(), cloneNodes(v.Elements.Items())...)
	case *IdentifierExpr:
		return NewIdentifierExpr(v.Range(), v.Name)
	case *BinaryExpr:
		return NewBinaryExpr(v.Range(), v.Op, CloneDeep(v.Left), CloneDeep(v.Right))
	case *UnaryExpr:
		return NewUnaryExpr(v.Range(), v.Op, CloneDeep(v.Operand))
	case *FieldAccessExpr:
		return NewFieldAccessExpr(v.Range(), CloneDeep(v.Target), v.Field)
	case *IndexExpr:
		return NewIndexExpr(v.Range(), CloneDeep(v.Target), CloneDeep(v.Index))
	case *SliceExpr:
		return NewSliceExpr(v.Range(), CloneDeep(v.Target), CloneDeep(v.Start), CloneDeep(v.End))
	case *CallExpr:
		return NewCallExpr(v.Range(), CloneDeep(v.Callee), cloneNodes(v.Args.Items())...)
	case *AssocCallExpr:
		return NewAssocCallExpr(v.Range(), v.TypeName, v.Method, cloneNodes(v.Args.Items())...)
	case *EnumConstructExpr:
		return NewEnumConstructExpr(v.Range(), v.EnumName, v.Variant, CloneDeep(v.Payload))
	case *StructLiteralExpr:
		fields := make([]FieldInit, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = FieldInit{Name: f.Name, Value: CloneDeep(f.Value)}
		}
		return NewStructLiteralExpr(v.Range(), v.TypeName, cloneNodes(v.TypeArgs.Items()), fields)
	case *SizeofExpr:
		return NewSizeofExpr(v.Range(), CloneDeep(v.TypeExpr))
	case *AwaitExpr:
		return NewAwaitExpr(v.Range(), CloneDeep(v.Handle))
	case *MatchExpr:
		return NewMatchExpr(v.Range(), CloneDeep(v.Scrutinee), cloneArms(v.Arms))

	case *BlockStmt:
		return NewBlockStmt(v.Range(), cloneNodes(v.Stmts.Items())...)
	case *LetStmt:
		return NewLetStmt(v.Range(), v.Mutable, v.Name, CloneDeep(v.Type), CloneDeep(v.Init), v.Ownership)
	case *ReturnStmt:
		return NewReturnStmt(v.Range(), CloneDeep(v.Expr))
	case *ExprStmt:
		return NewExprStmt(v.Range(), CloneDeep(v.Expr))
	case *IfStmt:
		return NewIfStmt(v.Range(), CloneDeep(v.Cond), CloneDeep(v.Then), CloneDeep(v.Else))
	case *IfLetStmt:
		return NewIfLetStmt(v.Range(), CloneDeep(v.Pattern), CloneDeep(v.Expr), CloneDeep(v.Then), CloneDeep(v.Else))
	case *ForStmt:
		return NewForStmt(v.Range(), v.VarName, CloneDeep(v.Iterable), CloneDeep(v.Body))
	case *MatchStmt:
		return NewMatchStmt(v.Range(), CloneDeep(v.Scrutinee), cloneArms(v.Arms))
	case *SpawnStmt:
		return NewSpawnStmt(v.Range(), CloneDeep(v.Call))
	case *SpawnWithHandleStmt:
		return NewSpawnWithHandleStmt(v.Range(), v.HandleName, CloneDeep(v.Call))
	case *UnsafeBlockStmt:
		return NewUnsafeBlockStmt(v.Range(), CloneDeep(v.Body))
	case *BreakStmt:
		return NewBreakStmt(v.Range())
	case *ContinueStmt:
		return NewContinueStmt(v.Range())
	case *AssignStmt:
		return NewAssignStmt(v.Range(), CloneDeep(v.Target), CloneDeep(v.Value))

	case *IdentPattern:
		return NewIdentPattern(v.Range(), v.Name)
	case *WildcardPattern:
		return NewWildcardPattern(v.Range())
	case *TuplePattern:
		return NewTuplePattern(v.Range(), cloneNodes(v.Elements.Items())...)
	case *EnumPattern:
		return NewEnumPattern(v.Range(), v.EnumName, v.Variant, CloneDeep(v.Nested))
	case *StructPattern:
		fields := make([]FieldPattern, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = FieldPattern{Name: f.Name, Pattern: CloneDeep(f.Pattern)}
		}
		return NewStructPattern(v.Range(), v.TypeName, cloneNodes(v.TypeArgs.Items()), fields, v.HasRest)
	case *LiteralPattern:
		return NewLiteralPattern(v.Range(), CloneDeep(v.Literal))

	case *NamedType:
		return NewNamedType(v.Range(), v.Name, cloneNodes(v.TypeArgs.Items())...)
	case *PointerType:
		return NewPointerType(v.Range(), v.Mutable, CloneDeep(v.Pointee))
	case *SliceType:
		return NewSliceType(v.Range(), CloneDeep(v.Elem))
	case *ArrayType:
		return NewArrayType(v.Range(), CloneDeep(v.Elem), CloneDeep(v.Size))
	case *TupleType:
		return NewTupleType(v.Range(), cloneNodes(v.Elements.Items())...)
	case *OptionType:
		return NewOptionType(v.Range(), CloneDeep(v.Value))
	case *ResultType:
		return NewResultType(v.Range(), CloneDeep(v.Ok), CloneDeep(v.Err))
	case *TaskHandleType:
		return NewTaskHandleType(v.Range(), CloneDeep(v.Result))

	case *FunctionDecl:
		c := NewFunctionDecl(v.Range(), v.Name, v.TypeParams, cloneParams(v.Params), CloneDeep(v.ReturnType), CloneDeep(v.Body), v.Vis)
		c.IsExtern, c.ExternName, c.FFIAnnotations = v.IsExtern, v.ExternName, v.FFIAnnotations
		return c
	case *MethodDecl:
		return NewMethodDecl(v.Range(), v.Name, v.TypeParams, v.IsInstance, cloneParams(v.Params), CloneDeep(v.ReturnType), CloneDeep(v.Body), v.Vis)
	case *StructDecl:
		return NewStructDecl(v.Range(), v.Name, v.TypeParams, cloneParams(v.Fields), v.Vis)
	case *EnumDecl:
		variants := make([]EnumVariantDecl, len(v.Variants))
		for i, ev := range v.Variants {
			variants[i] = EnumVariantDecl{Name: ev.Name, TuplePayload: CloneDeep(ev.TuplePayload), StructFields: cloneParams(ev.StructFields)}
		}
		return NewEnumDecl(v.Range(), v.Name, v.TypeParams, variants, v.Vis)
	case *ImplDecl:
		return NewImplDecl(v.Range(), v.StructName, cloneNodes(v.Methods.Items())...)
	case *ExternDecl:
		return NewExternDecl(v.Range(), v.Name, cloneParams(v.Params), CloneDeep(v.ReturnType), v.ExternName, v.FFIAnnotations)
	case *Program:
		return NewProgram(v.Range(), v.PackageName, v.Imports, cloneNodes(v.Decls.Items())...)

	default:
		panic("ast: CloneDeep: unhandled node kind")
	}
}
