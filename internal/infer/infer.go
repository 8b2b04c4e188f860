// Package infer walks the expression AST and drives a constraint system: it
// allocates a type variable for every node that needs one, submits Bind
// constraints wherever the language's static semantics demand two types
// agree, and returns the (not yet normalized) type of the expression as a
// whole.
//
// Name resolution is the caller's problem, solved by threading a
// scope.Scope through the walk: by the time Infer reaches an Identifier, the
// scope must already hold a binding for it, or inference fails with the
// scope's own "undefined variable" error.
package infer

import (
	"fmt"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/ast"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/scope"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

// Generator holds the constraint system a walk accumulates obligations
// into. A Generator is not safe for concurrent use, matching the
// ConstraintSystem it wraps.
type Generator struct {
	CS *types.ConstraintSystem
}

// NewGenerator returns a Generator over a fresh constraint system.
func NewGenerator() *Generator {
	return &Generator{CS: types.NewConstraintSystem()}
}

// bindConstraintFailed turns a Failure result from AddConstraint into a Go
// error describing the two sides that didn't unify, classified by whatever
// FailureKind the matcher determined for the constraint it just recorded.
func bindConstraintFailed(left, right types.Type, kind types.FailureKind) error {
	return &types.UnificationFailure{
		Kind:  kind,
		Left:  left,
		Right: right,
	}
}

// bind submits an equality constraint and turns Failure into an error; a
// Solved result is silently ignored; Ambiguous can't reach here because
// AddConstraint panics on top-level ambiguity before returning it. Since a
// Generator stops walking as soon as any bind fails, the constraint system's
// recorded failedConstraint is always the one this call just submitted, so
// its FailureKind is read back from there rather than guessed.
func (g *Generator) bind(left, right types.Type) error {
	if g.CS.AddConstraint(types.NewBind(left, right)) == types.Failure {
		kind := types.StructuralMismatch
		if entry, ok := g.CS.FailedConstraint(); ok {
			kind = entry.FailureKind
		}
		return bindConstraintFailed(left, right, kind)
	}
	return nil
}

// Infer walks expr under env, allocating a type variable for every
// subexpression that needs one and submitting the constraints the
// expression's shape requires. It returns expr's type -- a variable if
// nothing pinned it down yet, a concrete type otherwise -- or the first
// error encountered.
func (g *Generator) Infer(env *scope.Scope, expr ast.Expr) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		t, _ := e.DeclaredType() // Literal always answers true.
		g.CS.SetASTType(e, t)
		return t, nil

	case *ast.Identifier:
		t, err := env.Lookup(e.Name)
		if err != nil {
			return nil, err
		}
		g.CS.SetASTType(e, t)
		return t, nil

	case *ast.Lambda:
		return g.inferLambda(env, e)

	case *ast.FuncCall:
		return g.inferFuncCall(env, e)

	case *ast.Let:
		return g.inferLet(env, e)

	case *ast.If:
		return g.inferIf(env, e)

	case *ast.Tuple:
		return g.inferTuple(env, e)

	default:
		return nil, fmt.Errorf("infer: unsupported expression %T", expr)
	}
}

// inferLambda gives every parameter its declared type if annotated, or a
// fresh type variable otherwise, infers the body under the extended scope,
// and builds the curried FunctionType right to left.
func (g *Generator) inferLambda(env *scope.Scope, l *ast.Lambda) (types.Type, error) {
	if len(l.Params) == 0 {
		return nil, fmt.Errorf("infer: lambda at %s has no parameters", l.Pos)
	}

	paramTypes := make([]types.Type, len(l.Params))
	inner := env
	for i, p := range l.Params {
		pt, ok := p.InterfaceType()
		if !ok {
			pt = g.CS.CreateTypeVariableFor(p)
		} else {
			g.CS.SetASTType(p, pt)
		}
		paramTypes[i] = pt
		inner = inner.Extend(p.Name, pt)
	}

	bodyType, err := g.Infer(inner, l.Body)
	if err != nil {
		return nil, err
	}

	result := bodyType
	for i := len(paramTypes) - 1; i >= 0; i-- {
		result = types.NewFunctionType(paramTypes[i], result)
	}
	g.CS.SetASTType(l, result)
	return result, nil
}

// inferFuncCall infers the function and every argument, then binds the
// function's type to the curried FunctionType shape the call site implies,
// with a fresh result variable standing in for the call's own type.
func (g *Generator) inferFuncCall(env *scope.Scope, f *ast.FuncCall) (types.Type, error) {
	funcType, err := g.Infer(env, f.Func)
	if err != nil {
		return nil, err
	}

	argTypes := make([]types.Type, len(f.Args))
	for i, a := range f.Args {
		at, err := g.Infer(env, a)
		if err != nil {
			return nil, err
		}
		argTypes[i] = at
	}

	result := g.CS.CreateTypeVariableFor(f)
	expected := types.Type(result)
	for i := len(argTypes) - 1; i >= 0; i-- {
		expected = types.NewFunctionType(argTypes[i], expected)
	}

	if err := g.bind(funcType, expected); err != nil {
		return nil, err
	}
	g.CS.SetASTType(f, result)
	return result, nil
}

// inferLet infers the bound value, optionally binds it to a declared
// annotation, and extends the scope monomorphically for the body -- this
// language has no let-generalization, so Name is used at exactly the type
// Value turned out to have (or was annotated with), never instantiated
// afresh at each use.
func (g *Generator) inferLet(env *scope.Scope, l *ast.Let) (types.Type, error) {
	valueType, err := g.Infer(env, l.Value)
	if err != nil {
		return nil, err
	}

	bound := valueType
	if ann, ok := l.InterfaceType(); ok {
		if err := g.bind(valueType, ann); err != nil {
			return nil, err
		}
		bound = ann
	}

	bodyType, err := g.Infer(env.Extend(l.Name, bound), l.Body)
	if err != nil {
		return nil, err
	}
	g.CS.SetASTType(l, bodyType)
	return bodyType, nil
}

// inferIf binds the condition to Bool and the two branches to each other,
// so the If's own type is whichever branch type resolves first.
func (g *Generator) inferIf(env *scope.Scope, i *ast.If) (types.Type, error) {
	condType, err := g.Infer(env, i.Cond)
	if err != nil {
		return nil, err
	}
	if err := g.bind(condType, types.NewPrimitiveType("Bool")); err != nil {
		return nil, err
	}

	thenType, err := g.Infer(env, i.Then)
	if err != nil {
		return nil, err
	}
	elseType, err := g.Infer(env, i.Else)
	if err != nil {
		return nil, err
	}
	if err := g.bind(thenType, elseType); err != nil {
		return nil, err
	}

	g.CS.SetASTType(i, thenType)
	return thenType, nil
}

// inferTuple infers every element and groups the results structurally; no
// constraint is submitted between elements themselves, only within each
// element's own subtree.
func (g *Generator) inferTuple(env *scope.Scope, tup *ast.Tuple) (types.Type, error) {
	elems := make([]types.Type, len(tup.Elements))
	for i, el := range tup.Elements {
		t, err := g.Infer(env, el)
		if err != nil {
			return nil, err
		}
		elems[i] = t
	}
	t := types.NewTupleType(elems...)
	g.CS.SetASTType(tup, t)
	return t, nil
}

// InferDecl infers a top-level function declaration's body against its own
// declared signature (if fully annotated) and returns the signature. An
// unannotated declaration is inferred structurally instead, the same way a
// Lambda would be.
func (g *Generator) InferDecl(env *scope.Scope, decl *ast.FuncDecl) (types.Type, error) {
	inner := env
	paramTypes := make([]types.Type, len(decl.Params))
	for i, p := range decl.Params {
		pt, ok := p.InterfaceType()
		if !ok {
			pt = g.CS.CreateTypeVariableFor(p)
		} else {
			g.CS.SetASTType(p, pt)
		}
		paramTypes[i] = pt
		inner = inner.Extend(p.Name, pt)
	}

	bodyType, err := g.Infer(inner, decl.Body)
	if err != nil {
		return nil, err
	}

	if sig, ok := decl.InterfaceType(); ok {
		built := bodyType
		for i := len(paramTypes) - 1; i >= 0; i-- {
			built = types.NewFunctionType(paramTypes[i], built)
		}
		if err := g.bind(built, sig); err != nil {
			return nil, err
		}
		g.CS.SetASTType(decl, sig)
		return sig, nil
	}

	built := bodyType
	for i := len(paramTypes) - 1; i >= 0; i-- {
		built = types.NewFunctionType(paramTypes[i], built)
	}
	g.CS.SetASTType(decl, built)
	return built, nil
}
