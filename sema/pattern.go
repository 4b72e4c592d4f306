package sema

import (
	"github.com/asthra-lang/asthrac/ast"
	"github.com/asthra-lang/asthrac/reporter"
	"github.com/asthra-lang/asthrac/source"
	"github.com/asthra-lang/asthrac/symbols"
	"github.com/asthra-lang/asthrac/types"
)

// bindPattern validates pat against scrutType and binds any identifiers it
// introduces into scope (spec §4.C7 "Pattern validation"). scrutType may be
// types.Nil when an earlier error already made the scrutinee's type
// unknown; sub-patterns are still walked (with Nil propagated down) so a
// single bad scrutinee doesn't also report every binding inside it as
// undefined.
func (a *Analyzer) bindPattern(pat ast.Node, scrutType types.TypeId, scope *symbols.Table) {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		// matches anything, binds nothing

	case *ast.IdentPattern:
		scope.InsertSafe(&symbols.Entry{
			Name: p.Name, Kind: symbols.KindVariable, Type: scrutType, Flags: symbols.FlagInitialized,
		})

	case *ast.LiteralPattern:
		litType := a.analyzeExpr(p.Literal, scope)
		if scrutType != types.Nil && !a.store.AssignableTo(litType, scrutType) && !a.store.AssignableTo(scrutType, litType) {
			a.errorf(reporter.CodeTypeMismatch, p.Range().Start,
				"pattern type %s does not match scrutinee type %s", a.store.TypeName(litType), a.store.TypeName(scrutType))
		}

	case *ast.TuplePattern:
		if scrutType == types.Nil {
			for i := 0; i < p.Elements.Len(); i++ {
				a.bindPattern(p.Elements.At(i), types.Nil, scope)
			}
			return
		}
		d := a.baseDescriptor(scrutType)
		if d.Kind != types.KindTuple || len(d.TupleElems) != p.Elements.Len() {
			a.errorf(reporter.CodeTypeMismatch, p.Range().Start, "tuple pattern does not match %s", a.store.TypeName(scrutType))
			for i := 0; i < p.Elements.Len(); i++ {
				a.bindPattern(p.Elements.At(i), types.Nil, scope)
			}
			return
		}
		for i := 0; i < p.Elements.Len(); i++ {
			a.bindPattern(p.Elements.At(i), d.TupleElems[i], scope)
		}

	case *ast.EnumPattern:
		a.bindEnumPattern(p, scrutType, scope)

	case *ast.StructPattern:
		a.bindStructPattern(p, scope)

	default:
		a.errorf(reporter.CodeInvalidExpr, pat.Range().Start, "not a valid pattern")
	}
}

// bindEnumPattern handles Option's Some/None, Result's Ok/Err, and a
// user-declared enum's variants uniformly, since all three are
// represented as an EnumPattern by the parser (spec §4.C7).
func (a *Analyzer) bindEnumPattern(p *ast.EnumPattern, scrutType types.TypeId, scope *symbols.Table) {
	if scrutType == types.Nil {
		if p.Nested != nil {
			a.bindPattern(p.Nested, types.Nil, scope)
		}
		return
	}

	d := a.baseDescriptor(scrutType)
	switch d.Kind {
	case types.KindOption:
		switch p.Variant {
		case "Some":
			if p.Nested != nil {
				a.bindPattern(p.Nested, d.Elem, scope)
			}
		case "None":
		default:
			a.errorf(reporter.CodeUndefinedSymbol, p.Range().Start, "Option has no variant %q", p.Variant)
		}

	case types.KindResult:
		switch p.Variant {
		case "Ok":
			if p.Nested != nil {
				a.bindPattern(p.Nested, d.OkType, scope)
			}
		case "Err":
			if p.Nested != nil {
				a.bindPattern(p.Nested, d.ErrType, scope)
			}
		default:
			a.errorf(reporter.CodeUndefinedSymbol, p.Range().Start, "Result has no variant %q", p.Variant)
		}

	case types.KindEnum:
		if p.EnumName != "" && p.EnumName != d.Name {
			a.errorf(reporter.CodeTypeMismatch, p.Range().Start,
				"pattern enum %q does not match scrutinee enum %q", p.EnumName, d.Name)
		}
		for i := range d.Variants {
			if d.Variants[i].Name != p.Variant {
				continue
			}
			if p.Nested != nil {
				a.bindPattern(p.Nested, d.Variants[i].TuplePayload, scope)
			}
			return
		}
		a.errorf(reporter.CodeUndefinedSymbol, p.Range().Start, "enum %q has no variant %q", d.Name, p.Variant)
		if p.Nested != nil {
			a.bindPattern(p.Nested, types.Nil, scope)
		}

	default:
		a.errorf(reporter.CodeTypeMismatch, p.Range().Start, "pattern does not match type %s", a.store.TypeName(scrutType))
	}
}

// bindStructPattern resolves its own type by name, rather than from
// scrutType, since StructPattern carries an explicit TypeName (spec §3
// "pattern").
func (a *Analyzer) bindStructPattern(p *ast.StructPattern, scope *symbols.Table) {
	id, ok := a.typeIds[p.TypeName]
	if !ok {
		a.errorf(reporter.CodeUndefinedSymbol, p.Range().Start, "undefined struct %q", p.TypeName)
		for _, f := range p.Fields {
			a.bindPattern(f.Pattern, types.Nil, scope)
		}
		return
	}
	d := a.baseDescriptor(id)
	for _, f := range p.Fields {
		fieldType := types.Nil
		found := false
		for _, sf := range d.Fields {
			if sf.Name == f.Name {
				fieldType = sf.Type
				found = true
				break
			}
		}
		if !found {
			a.errorf(reporter.CodeUndefinedSymbol, p.Range().Start, "struct %q has no field %q", p.TypeName, f.Name)
		}
		a.bindPattern(f.Pattern, fieldType, scope)
	}
}

// checkMatchExhaustive implements spec §4.C7's exhaustiveness rule: a
// match is exhaustive when some arm is a catch-all (wildcard or plain
// identifier binding) or, for a closed scrutinee type (enum, Option,
// Result, bool), every case is covered by name. Open scrutinee types
// (integers, strings, structs, tuples) have no finite case set, so a
// single non-catch-all arm is accepted without further checking. The parser
// also accepts a match with no arms at all, so arms may be empty here.
func (a *Analyzer) checkMatchExhaustive(scrutType types.TypeId, arms []ast.MatchArm, pos source.Pos) {
	if scrutType == types.Nil {
		return
	}
	for _, arm := range arms {
		switch arm.Pattern.(type) {
		case *ast.WildcardPattern, *ast.IdentPattern:
			return
		}
	}

	d := a.baseDescriptor(scrutType)
	switch d.Kind {
	case types.KindEnum:
		covered := make(map[string]bool, len(arms))
		for _, arm := range arms {
			if ep, ok := arm.Pattern.(*ast.EnumPattern); ok {
				covered[ep.Variant] = true
			}
		}
		var missing []string
		for _, v := range d.Variants {
			if !covered[v.Name] {
				missing = append(missing, v.Name)
			}
		}
		if len(missing) > 0 {
			a.warnf(reporter.CodeNonExhaustiveMatch, pos, "match over %q is not exhaustive: missing variant(s) %v", d.Name, missing)
		}

	case types.KindOption:
		some, none := coveredEnumVariants(arms, "Some", "None")
		if !some || !none {
			a.warnf(reporter.CodeNonExhaustiveMatch, pos, "match over Option is not exhaustive: missing Some/None arm")
		}

	case types.KindResult:
		ok, err := coveredEnumVariants(arms, "Ok", "Err")
		if !ok || !err {
			a.warnf(reporter.CodeNonExhaustiveMatch, pos, "match over Result is not exhaustive: missing Ok/Err arm")
		}

	case types.KindPrimitive:
		if d.Prim != types.Bool {
			return
		}
		var coveredTrue, coveredFalse bool
		for _, arm := range arms {
			lp, ok := arm.Pattern.(*ast.LiteralPattern)
			if !ok {
				continue
			}
			if bl, ok := lp.Literal.(*ast.BoolLiteral); ok {
				if bl.Value {
					coveredTrue = true
				} else {
					coveredFalse = true
				}
			}
		}
		if !coveredTrue || !coveredFalse {
			a.warnf(reporter.CodeNonExhaustiveMatch, pos, "match over bool is not exhaustive: missing true/false arm")
		}
	}
}

func coveredEnumVariants(arms []ast.MatchArm, a, b string) (bool, bool) {
	var gotA, gotB bool
	for _, arm := range arms {
		ep, ok := arm.Pattern.(*ast.EnumPattern)
		if !ok {
			continue
		}
		if ep.Variant == a {
			gotA = true
		}
		if ep.Variant == b {
			gotB = true
		}
	}
	return gotA, gotB
}
