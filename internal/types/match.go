package types

// matchTypes is the entry point of the unifier. It simplifies both sides
// through the binding store, then dispatches on the var/fixed cross
// product: var-var, var-fixed, or structural matching of two fixed types.
// The returned FailureKind is meaningful only when the SolveResult is
// Failure; callers that only care about Solved/Failure/Ambiguous may
// discard it.
func matchTypes(s *store, left, right Type, kind ConstraintKind, opts MatchOptions) (SolveResult, FailureKind) {
	left = s.simplify(left)
	right = s.simplify(right)

	lv, lIsVar := left.(TypeVariable)
	rv, rIsVar := right.(TypeVariable)

	switch {
	case lIsVar && rIsVar:
		return matchTypeVariables(s, lv, rv, kind)
	case lIsVar:
		return matchTypeVariableAndFixed(s, lv, right, kind)
	case rIsVar:
		return matchTypeVariableAndFixed(s, rv, left, kind)
	default:
		return matchFixedTypes(s, left, right, kind, opts)
	}
}

// matchTypeVariables handles the case where simplify has reduced both
// sides to representatives (simplify never returns a non-representative
// variable). Equal representatives are trivially Solved; otherwise a Bind
// merges their classes. ApplicableFunction has no meaning between two bare
// variables and is a programmer error. Two distinct variables can never
// fail to unify, so the FailureKind return is always the zero value here.
func matchTypeVariables(s *store, a, b TypeVariable, kind ConstraintKind) (SolveResult, FailureKind) {
	if a == b {
		return Solved, ""
	}
	if kind != Bind {
		panicProgrammerError("matchTypeVariables: unsupported constraint kind %s", kind)
	}
	s.merge(a, b)
	return Solved, ""
}

// matchTypeVariableAndFixed binds representative v to concrete type t,
// after checking that v does not occur within t.
func matchTypeVariableAndFixed(s *store, v TypeVariable, t Type, kind ConstraintKind) (SolveResult, FailureKind) {
	if kind != Bind {
		panicProgrammerError("matchTypeVariableAndFixed: unsupported constraint kind %s", kind)
	}
	if s.occurs(v, t) {
		return Failure, OccursCheckFailure
	}
	s.assign(v, t)
	return Solved, ""
}

// matchFixedTypes compares two types, neither of which is a variable.
func matchFixedTypes(s *store, t1, t2 Type, kind ConstraintKind, opts MatchOptions) (SolveResult, FailureKind) {
	switch a := t1.(type) {
	case PrimitiveType:
		b, ok := t2.(PrimitiveType)
		if !ok {
			return Failure, StructuralMismatch
		}
		if a.Name == b.Name {
			return Solved, ""
		}
		return Failure, PrimitiveMismatch

	case FunctionType:
		b, ok := t2.(FunctionType)
		if !ok {
			return Failure, StructuralMismatch
		}
		return matchFunctionTypes(s, a, b, kind, opts)

	default:
		// t1 is a constructor this package doesn't implement structural
		// matching for. A mismatched head constructor is still a definite
		// Failure regardless of which side it's on -- checked here before
		// falling through to Unimplemented -- so Bind(A, B) and Bind(B, A)
		// agree. Only two operands sharing an unhandled constructor (or
		// some other pairing this package genuinely can't judge) reach the
		// panic.
		switch t2.(type) {
		case PrimitiveType, FunctionType:
			return Failure, StructuralMismatch
		default:
			panicProgrammerError("matchFixedTypes: unimplemented for %T / %T", t1, t2)
		}
	}
	panic("unreachable")
}

// matchFunctionTypes matches parameter and result pairwise. A definite
// Failure on either side short-circuits, carrying forward whichever
// FailureKind that side reported; ambiguity on one side doesn't prevent
// the other from being checked, but a later Failure still overrides any
// ambiguity accumulated so far.
func matchFunctionTypes(s *store, f1, f2 FunctionType, kind ConstraintKind, opts MatchOptions) (SolveResult, FailureKind) {
	paramResult, paramKind := matchTypes(s, f1.Parameter, f2.Parameter, kind, opts)
	if paramResult == Failure {
		return Failure, paramKind
	}
	resultResult, resultKind := matchTypes(s, f1.Result, f2.Result, kind, opts)
	if resultResult == Failure {
		return Failure, resultKind
	}
	if paramResult == Ambiguous || resultResult == Ambiguous {
		return Ambiguous, ""
	}
	return Solved, ""
}
