package types

import "fmt"

// SolveResult is the outcome of matching two types.
type SolveResult int

const (
	// Solved means the constraint was fully discharged, possibly by
	// mutating the binding store (a merge or an assignment).
	Solved SolveResult = iota
	// Failure means the two types can never be made equal: a structural
	// mismatch, a primitive-name disagreement, or an occurs-check
	// violation.
	Failure
	// Ambiguous means a sub-problem could not yet be resolved but is not
	// known to fail either. Only matchFunctionTypes can report it, by
	// accumulating it from a child match; it must never reach the
	// top level of AddConstraint.
	Ambiguous
)

func (r SolveResult) String() string {
	switch r {
	case Solved:
		return "Solved"
	case Failure:
		return "Failure"
	case Ambiguous:
		return "Ambiguous"
	default:
		return "?"
	}
}

// FailureKind classifies why a match reported Failure, for callers that
// want to render a type error rather than just knowing solving failed.
type FailureKind string

const (
	PrimitiveMismatch  FailureKind = "primitive_mismatch"
	StructuralMismatch FailureKind = "structural_mismatch"
	OccursCheckFailure FailureKind = "occurs_check"
)

// UnificationFailure describes a Failure-producing match in enough detail
// to report a type error. The matcher itself never builds one -- it reports
// only a SolveResult and a FailureKind -- but a caller (internal/infer) can
// construct one from a failed constraint's Left/Right and return it as an
// ordinary Go error.
type UnificationFailure struct {
	Kind  FailureKind
	Left  Type
	Right Type
}

func (f *UnificationFailure) Error() string {
	switch f.Kind {
	case OccursCheckFailure:
		return fmt.Sprintf("occurs check failed: %s occurs in %s", f.Left, f.Right)
	case PrimitiveMismatch:
		return fmt.Sprintf("type mismatch: %s is not %s", f.Left, f.Right)
	default:
		return fmt.Sprintf("cannot unify %s with %s", f.Left, f.Right)
	}
}

// ProgrammerError is panicked for the handful of conditions this package's
// contract calls abort-worthy rather than recoverable: a kind the matcher
// wasn't built to accept at a given call site, an unimplemented composite
// type pairing, or top-level ambiguity reaching AddConstraint. None of
// these can occur from submitting well-formed Bind constraints over the
// types this package knows about; they indicate the caller (or a future
// extension of the type model) broke an invariant this package assumes.
type ProgrammerError struct {
	Msg string
}

func (e *ProgrammerError) Error() string { return e.Msg }

func panicProgrammerError(format string, args ...interface{}) {
	panic(&ProgrammerError{Msg: fmt.Sprintf(format, args...)})
}
