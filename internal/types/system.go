package types

// ApplicableFunctionSimplifier is the extension point for ApplicableFunction
// constraints: this core recognises the constraint shape but does not
// itself know how to simplify it (see the Non-goals in SPEC_FULL.md).
// A caller that needs applicable-function solving can register one; absent
// a registration, submitting such a constraint is an unimplemented-contract
// violation, matching how an unhandled composite type pairing is handled.
type ApplicableFunctionSimplifier func(cs *ConstraintSystem, left, right Type, opts MatchOptions) SolveResult

// ConstraintSystem is the façade external code drives: it owns the binding
// store, the AST-type map, and the list of live constraints, and exposes
// the operations described in the package's design (variable allocation,
// constraint submission, normalization, and solution snapshots).
//
// A ConstraintSystem is not safe for concurrent use. All of its operations
// are synchronous and run to completion; there is no cancellation and no
// background work.
type ConstraintSystem struct {
	store    *store
	astTypes map[NodeID]Type
	live     []ConstraintEntry

	failed       *ConstraintEntry
	applicableFn ApplicableFunctionSimplifier
}

// NewConstraintSystem returns an empty constraint system.
func NewConstraintSystem() *ConstraintSystem {
	return &ConstraintSystem{
		store:    newStore(),
		astTypes: make(map[NodeID]Type),
	}
}

// SetApplicableFunctionSimplifier registers the extension point described
// on ApplicableFunctionSimplifier. Passing nil restores the default
// (unimplemented) behaviour.
func (cs *ConstraintSystem) SetApplicableFunctionSimplifier(fn ApplicableFunctionSimplifier) {
	cs.applicableFn = fn
}

// CreateTypeVariable allocates a fresh, Free type variable. Variable ids
// are assigned in allocation order starting at 1 and are never reused.
func (cs *ConstraintSystem) CreateTypeVariable() TypeVariable {
	return cs.store.allocate()
}

// CreateTypeVariableFor allocates a fresh type variable and records it as
// node's current AST type, as if by SetASTType.
func (cs *ConstraintSystem) CreateTypeVariableFor(node NodeID) TypeVariable {
	v := cs.store.allocate()
	cs.astTypes[node] = v
	return v
}

// AstType looks up node's current type. If node has no entry in the
// AST-type map yet, it falls back to the node's own intrinsic type
// accessor: DeclaredType for an expression node, InterfaceType for a
// context node. It reports false if neither source has an answer.
func (cs *ConstraintSystem) AstType(node NodeID) (Type, bool) {
	if t, ok := cs.astTypes[node]; ok {
		return t, true
	}
	if e, ok := node.(ExprNode); ok {
		if t, ok := e.DeclaredType(); ok {
			return t, true
		}
	}
	if c, ok := node.(ContextNode); ok {
		if t, ok := c.InterfaceType(); ok {
			return t, true
		}
	}
	return nil, false
}

// SetASTType inserts or overwrites node's entry in the AST-type map.
func (cs *ConstraintSystem) SetASTType(node NodeID, t Type) {
	cs.astTypes[node] = t
}

// AddConstraint submits c for immediate solving with
// options.GenerateConstraintsWhenAmbiguous set to true (see MatchOptions).
// On Failure it records c as the failedConstraint, but only if none has
// been recorded yet; the caller still receives every Failure, not just the
// first. Ambiguous at this level, or an unregistered ApplicableFunction
// constraint, aborts -- both are programmer errors under this core's
// contract, not solver outcomes.
func (cs *ConstraintSystem) AddConstraint(c Constraint) SolveResult {
	opts := MatchOptions{GenerateConstraintsWhenAmbiguous: true}

	var result SolveResult
	var failKind FailureKind
	switch c.Kind {
	case Bind:
		result, failKind = matchTypes(cs.store, c.Left, c.Right, Bind, opts)
	case ApplicableFunction:
		if cs.applicableFn == nil {
			panicProgrammerError("AddConstraint: ApplicableFunction is unimplemented (no simplifier registered)")
		}
		result = cs.applicableFn(cs, c.Left, c.Right, opts)
	default:
		panicProgrammerError("AddConstraint: unknown constraint kind %v", c.Kind)
	}

	entry := ConstraintEntry{Index: len(cs.live), Constraint: c, FailureKind: failKind}
	cs.live = append(cs.live, entry)

	switch result {
	case Failure:
		if cs.failed == nil {
			recorded := entry
			cs.failed = &recorded
		}
	case Ambiguous:
		panicProgrammerError("AddConstraint: top-level ambiguity for %s", c)
	}

	return result
}

// addAmbiguousConstraint appends c to the live constraint list without
// attempting to solve it. It is the low-level deferral hook matchers may
// use (via an ApplicableFunctionSimplifier) to park a sub-obligation
// rather than fail or block on it; this core's own matchers never call it.
func (cs *ConstraintSystem) addAmbiguousConstraint(c Constraint) {
	cs.live = append(cs.live, ConstraintEntry{Index: len(cs.live), Constraint: c})
}

// FailedConstraint returns the first constraint whose submission yielded
// Failure, if any.
func (cs *ConstraintSystem) FailedConstraint() (ConstraintEntry, bool) {
	if cs.failed == nil {
		return ConstraintEntry{}, false
	}
	return *cs.failed, true
}

// Normalize rewrites every AST-type entry to its simplified form. Callers
// typically do this once after submitting all constraints, just before
// reading a Solution.
func (cs *ConstraintSystem) Normalize() {
	for node, t := range cs.astTypes {
		cs.astTypes[node] = cs.store.simplify(t)
	}
}

// DoAllTypeVariablesHaveFixedType reports whether every variable this
// system has ever allocated resolves, through its transfer chain, to a
// Fixed binding.
func (cs *ConstraintSystem) DoAllTypeVariablesHaveFixedType() bool {
	for i := range cs.store.bindings {
		v := TypeVariable{Id: i + 1}
		if _, ok := cs.store.fixedType(v); !ok {
			return false
		}
	}
	return true
}

// CurrentSolution snapshots the system's bindings and AST-type map by
// value: later mutation of cs does not affect the returned Solution.
func (cs *ConstraintSystem) CurrentSolution() *Solution {
	astTypes := make(map[NodeID]Type, len(cs.astTypes))
	for k, v := range cs.astTypes {
		astTypes[k] = v
	}
	return &Solution{
		store:    cs.store.clone(),
		astTypes: astTypes,
	}
}
