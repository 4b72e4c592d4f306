package types

// AssignableTo reports whether a value of type src may be assigned to (or
// passed/returned as) a location of type dst, per spec §4.C5:
//
//   - identical descriptors are always compatible;
//   - there is no automatic numeric widening — i32 is not assignable to
//     i64, nor f32 to f64, even though the conversion is lossless;
//   - a Never-typed value (the type of a diverging expression: a bare
//     `return`, `panic(...)`, or a match with no reachable arm) is
//     assignment-compatible with every type, since control never actually
//     reaches the assignment;
//   - composite types are compatible only when their shapes and element
//     types are themselves compatible, recursively.
func (s *Store) AssignableTo(src, dst TypeId) bool {
	if src == dst {
		return true
	}
	if src == Nil || dst == Nil {
		return false
	}
	if s.isNever(src) {
		return true
	}

	sd, dd := s.Lookup(src), s.Lookup(dst)
	if sd.Kind != dd.Kind {
		return false
	}

	switch sd.Kind {
	case KindPrimitive:
		return sd.Prim == dd.Prim

	case KindStruct, KindEnum:
		// Nominal: distinct declarations are distinct types even with
		// identical shape, so only the src==dst identity check above
		// can succeed for these kinds.
		return false

	case KindSlice:
		return s.AssignableTo(sd.Elem, dd.Elem)

	case KindArray:
		return sd.ArrayLen == dd.ArrayLen && s.AssignableTo(sd.Elem, dd.Elem)

	case KindPointer:
		if sd.PointerMutable != dd.PointerMutable {
			return false
		}
		return s.AssignableTo(sd.Elem, dd.Elem)

	case KindOption:
		return s.AssignableTo(sd.Elem, dd.Elem)

	case KindResult:
		return s.AssignableTo(sd.OkType, dd.OkType) && s.AssignableTo(sd.ErrType, dd.ErrType)

	case KindTuple:
		if len(sd.TupleElems) != len(dd.TupleElems) {
			return false
		}
		for i := range sd.TupleElems {
			if !s.AssignableTo(sd.TupleElems[i], dd.TupleElems[i]) {
				return false
			}
		}
		return true

	case KindTaskHandle:
		return s.AssignableTo(sd.Result, dd.Result)

	case KindFunction:
		if len(sd.Params) != len(dd.Params) {
			return false
		}
		for i := range sd.Params {
			if !s.AssignableTo(sd.Params[i], dd.Params[i]) {
				return false
			}
		}
		return s.AssignableTo(sd.Return, dd.Return)

	case KindGenericInstance:
		if sd.Base != dd.Base || len(sd.Args) != len(dd.Args) {
			return false
		}
		for i := range sd.Args {
			if !s.AssignableTo(sd.Args[i], dd.Args[i]) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// isNever reports whether id names the Never primitive, the type of
// diverging expressions (spec §4.C7, "Never-propagation").
func (s *Store) isNever(id TypeId) bool {
	d := s.Lookup(id)
	return d.Kind == KindPrimitive && d.Prim == NeverPrim
}

// IsNever is the exported form of isNever, used by sema's block/statement
// Never-propagation (spec §4.C7, testable property 6).
func (s *Store) IsNever(id TypeId) bool {
	return id != Nil && s.isNever(id)
}

// IsIntegerType reports whether id names one of the integer primitives,
// used by sema to validate operands of bitwise and arithmetic operators.
func (s *Store) IsIntegerType(id TypeId) bool {
	if id == Nil {
		return false
	}
	d := s.Lookup(id)
	return d.Kind == KindPrimitive && d.Prim.isInteger()
}

// IsFloatType reports whether id names one of the floating-point
// primitives.
func (s *Store) IsFloatType(id TypeId) bool {
	if id == Nil {
		return false
	}
	d := s.Lookup(id)
	return d.Kind == KindPrimitive && d.Prim.isFloat()
}

// IsNumericType reports whether id is an integer or floating-point
// primitive, used by sema's arithmetic/relational operator checks.
func (s *Store) IsNumericType(id TypeId) bool {
	return s.IsIntegerType(id) || s.IsFloatType(id)
}

// ReturnCompatible reports whether a `return <expr>;` of type exprType is
// valid in a function whose declared return type is declared. A bare
// `return;` (unit-valued) is accepted whenever declared is void OR Never
// (spec §4.C7: a function that only ever diverges may still use a bare
// return along dead code paths reachable only by the parser, not the
// analyzer's reachability pass).
func (s *Store) ReturnCompatible(exprType, declared TypeId) bool {
	if exprType == PrimitiveID(Void) && s.IsNever(declared) {
		return true
	}
	return s.AssignableTo(exprType, declared)
}
