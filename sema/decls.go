package sema

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/symbols"
	"github.com/asthra-lang/asthrac/types"
)

// registerTypes implements spec §4.C7 step 1: every top-level struct/enum
// name is registered (with an empty placeholder descriptor) before any
// field or variant type is resolved, so struct/enum declarations may
// reference each other regardless of source order — including a struct
// referencing itself through a pointer field.
func (a *Analyzer) registerTypes(prog *ast.Program) {
	for i := 0; i < prog.Decls.Len(); i++ {
		switch d := prog.Decls.At(i).(type) {
		case *ast.StructDecl:
			id := a.store.NewStruct(d.Name, len(d.TypeParams), nil)
			a.declareType(d.Name, d.Vis, id, d)
		case *ast.EnumDecl:
			id := a.store.NewEnum(d.Name, len(d.TypeParams), nil)
			a.declareType(d.Name, d.Vis, id, d)
			a.enumNames[d.Name] = true
		}
	}

	for i := 0; i < prog.Decls.Len(); i++ {
		switch d := prog.Decls.At(i).(type) {
		case *ast.StructDecl:
			a.resolveStructFields(d)
		case *ast.EnumDecl:
			a.resolveEnumVariants(d)
		}
	}
}

func (a *Analyzer) declareType(name string, vis ast.Visibility, id types.TypeId, decl ast.Node) {
	entry := &symbols.Entry{
		Name: name, Kind: symbols.KindType, Type: id, Decl: decl,
		Vis: toSymbolsVis(vis), Flags: symbols.FlagInitialized,
	}
	if !a.root.InsertSafe(entry) {
		a.errorf(reporter.CodeDuplicateSymbol, decl.Range().Start, "duplicate type %q", name)
		return
	}
	a.typeIds[name] = id
}

// resolveStructFields patches d's reserved descriptor in place once every
// top-level type name is known, computing field layout (spec §4.C5
// "Size/alignment").
func (a *Analyzer) resolveStructFields(d *ast.StructDecl) {
	id, ok := a.typeIds[d.Name]
	if !ok {
		return
	}
	fields := make([]types.FieldInfo, len(d.Fields))
	var off, align uint32 = 0, 1
	for i, f := range d.Fields {
		ft := a.resolveType(f.Type)
		fs := a.store.Lookup(ft)
		if fs.Align > align {
			align = fs.Align
		}
		fields[i] = types.FieldInfo{Name: f.Name, Type: ft, Offset: off}
		off += fs.Size
	}
	desc := a.store.Lookup(id)
	desc.Fields = fields
	desc.Size = off
	desc.Align = align
}

func (a *Analyzer) resolveEnumVariants(d *ast.EnumDecl) {
	id, ok := a.typeIds[d.Name]
	if !ok {
		return
	}
	variants := make([]types.VariantInfo, len(d.Variants))
	for i, v := range d.Variants {
		info := types.VariantInfo{Name: v.Name, Tag: i}
		if v.TuplePayload != nil {
			info.TuplePayload = a.resolveType(v.TuplePayload)
		}
		if len(v.StructFields) > 0 {
			info.StructFields = make([]types.FieldInfo, len(v.StructFields))
			var off uint32
			for j, f := range v.StructFields {
				ft := a.resolveType(f.Type)
				info.StructFields[j] = types.FieldInfo{Name: f.Name, Type: ft, Offset: off}
				off += a.store.Lookup(ft).Size
			}
		}
		variants[i] = info
	}
	a.store.Lookup(id).Variants = variants
}

// registerSignatures implements spec §4.C7 step 2: function, extern, and
// impl-block method signatures are registered (argument/return types
// resolved, symbols inserted) before any body is analyzed, so mutually
// recursive calls resolve regardless of declaration order.
func (a *Analyzer) registerSignatures(prog *ast.Program) {
	for i := 0; i < prog.Decls.Len(); i++ {
		switch d := prog.Decls.At(i).(type) {
		case *ast.FunctionDecl:
			a.registerFunctionSignature(d)
		case *ast.ExternDecl:
			a.registerExternSignature(d)
		case *ast.ImplDecl:
			a.registerImplSignatures(d)
		}
	}
}

func (a *Analyzer) registerFunctionSignature(d *ast.FunctionDecl) {
	params := make([]types.TypeId, len(d.Params))
	for i, p := range d.Params {
		params[i] = a.resolveType(p.Type)
	}
	ret := a.resolveType(d.ReturnType)
	fn := a.store.NewFunction(params, ret, d.IsExtern, d.ExternName, d.FFIAnnotations)
	entry := &symbols.Entry{
		Name: d.Name, Kind: symbols.KindFunction, Type: fn, Decl: d,
		Vis: toSymbolsVis(d.Vis), Flags: symbols.FlagInitialized,
	}
	if !a.root.InsertSafe(entry) {
		a.errorf(reporter.CodeDuplicateSymbol, d.Range().Start, "duplicate function %q", d.Name)
	}
}

func (a *Analyzer) registerExternSignature(d *ast.ExternDecl) {
	params := make([]types.TypeId, len(d.Params))
	for i, p := range d.Params {
		params[i] = a.resolveType(p.Type)
	}
	ret := a.resolveType(d.ReturnType)
	fn := a.store.NewFunction(params, ret, true, d.ExternName, d.FFIAnnotations)
	entry := &symbols.Entry{
		Name: d.Name, Kind: symbols.KindFunction, Type: fn, Decl: d,
		Vis: symbols.Public, Flags: symbols.FlagInitialized,
	}
	if !a.root.InsertSafe(entry) {
		a.errorf(reporter.CodeDuplicateSymbol, d.Range().Start, "duplicate function %q", d.Name)
	}
}
