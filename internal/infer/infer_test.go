package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/ast"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/scope"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

func intLit(v int) *ast.Literal {
	return &ast.Literal{Kind: ast.IntLiteral, Value: v}
}

func boolLit(v bool) *ast.Literal {
	return &ast.Literal{Kind: ast.BoolLiteral, Value: v}
}

func TestInferLiteralIsItsDeclaredType(t *testing.T) {
	g := NewGenerator()
	typ, err := g.Infer(scope.NewScope(), intLit(42))
	require.NoError(t, err)
	assert.True(t, typ.Equals(types.NewPrimitiveType("Int")))
}

func TestInferIdentifierResolvesFromScope(t *testing.T) {
	g := NewGenerator()
	env := scope.NewScope().Extend("x", types.NewPrimitiveType("Int"))
	typ, err := g.Infer(env, &ast.Identifier{Name: "x"})
	require.NoError(t, err)
	assert.True(t, typ.Equals(types.NewPrimitiveType("Int")))
}

func TestInferIdentifierUnboundErrors(t *testing.T) {
	g := NewGenerator()
	_, err := g.Infer(scope.NewScope(), &ast.Identifier{Name: "nope"})
	assert.Error(t, err)
}

func TestInferIdentityLambdaIsPolymorphicShape(t *testing.T) {
	g := NewGenerator()
	lambda := &ast.Lambda{
		Params: []*ast.Param{{Name: "x"}},
		Body:   &ast.Identifier{Name: "x"},
	}

	typ, err := g.Infer(scope.NewScope(), lambda)
	require.NoError(t, err)

	fn, ok := typ.(types.FunctionType)
	require.True(t, ok)
	assert.True(t, fn.Parameter.Equals(fn.Result), "identity's parameter and result must be the same type variable")
}

func TestInferFuncCallBindsArgumentToParameter(t *testing.T) {
	g := NewGenerator()
	lambda := &ast.Lambda{
		Params: []*ast.Param{{Name: "x"}},
		Body:   &ast.Identifier{Name: "x"},
	}
	call := &ast.FuncCall{
		Func: lambda,
		Args: []ast.Expr{intLit(42)},
	}

	_, err := g.Infer(scope.NewScope(), call)
	require.NoError(t, err)

	g.CS.Normalize()
	sol := g.CS.CurrentSolution()
	resolved, ok := sol.FixedType(call)
	require.True(t, ok)
	assert.True(t, resolved.Equals(types.NewPrimitiveType("Int")))
}

func TestInferFuncCallArgumentTypeMismatchFails(t *testing.T) {
	g := NewGenerator()
	annotated := &ast.Lambda{
		Params: []*ast.Param{{Name: "x", Annotation: types.NewPrimitiveType("Int")}},
		Body:   intLit(0),
	}
	call := &ast.FuncCall{
		Func: annotated,
		Args: []ast.Expr{boolLit(true)},
	}

	_, err := g.Infer(scope.NewScope(), call)
	require.Error(t, err)
}

func TestInferLetBindsAnnotationAndExtendsScope(t *testing.T) {
	g := NewGenerator()
	let := &ast.Let{
		Name:       "x",
		Annotation: types.NewPrimitiveType("Int"),
		Value:      intLit(5),
		Body:       &ast.Identifier{Name: "x"},
	}

	typ, err := g.Infer(scope.NewScope(), let)
	require.NoError(t, err)
	assert.True(t, typ.Equals(types.NewPrimitiveType("Int")))
}

func TestInferLetAnnotationMismatchFails(t *testing.T) {
	g := NewGenerator()
	let := &ast.Let{
		Name:       "x",
		Annotation: types.NewPrimitiveType("Bool"),
		Value:      intLit(5),
		Body:       &ast.Identifier{Name: "x"},
	}

	_, err := g.Infer(scope.NewScope(), let)
	require.Error(t, err)
	uf, ok := err.(*types.UnificationFailure)
	require.True(t, ok)
	assert.Equal(t, types.PrimitiveMismatch, uf.Kind)
}

// TestInferLetTupleAnnotationMismatchReportsFailureNotPanic binds a tuple
// value against a primitive annotation (let x: Int = (1, 2)) -- a
// mismatched head constructor the matcher must report as an ordinary
// Failure rather than crash into the Unimplemented contract-violation
// panic reserved for two operands sharing an unhandled constructor.
func TestInferLetTupleAnnotationMismatchReportsFailureNotPanic(t *testing.T) {
	g := NewGenerator()
	let := &ast.Let{
		Name:       "x",
		Annotation: types.NewPrimitiveType("Int"),
		Value:      &ast.Tuple{Elements: []ast.Expr{intLit(1), intLit(2)}},
		Body:       &ast.Identifier{Name: "x"},
	}

	assert.NotPanics(t, func() {
		_, err := g.Infer(scope.NewScope(), let)
		require.Error(t, err)
		uf, ok := err.(*types.UnificationFailure)
		require.True(t, ok)
		assert.Equal(t, types.StructuralMismatch, uf.Kind)
	})
}

// TestInferIfTupleConditionReportsFailureNotPanic exercises the same
// mismatched-head-constructor path through inferIf's condition bind
// (g.bind(condType, Bool)), with the tuple again on the left-hand side as in
// the let case above.
func TestInferIfTupleConditionReportsFailureNotPanic(t *testing.T) {
	g := NewGenerator()
	ifExpr := &ast.If{
		Cond: &ast.Tuple{Elements: []ast.Expr{intLit(1), intLit(2)}},
		Then: intLit(1),
		Else: intLit(2),
	}

	assert.NotPanics(t, func() {
		_, err := g.Infer(scope.NewScope(), ifExpr)
		require.Error(t, err)
		uf, ok := err.(*types.UnificationFailure)
		require.True(t, ok)
		assert.Equal(t, types.StructuralMismatch, uf.Kind)
	})
}

// TestInferSelfApplicationLambdaFailsOccursCheck exercises \x. x(x): binding
// x's own type variable to a function type that has x as its parameter.
func TestInferSelfApplicationLambdaFailsOccursCheck(t *testing.T) {
	g := NewGenerator()
	lambda := &ast.Lambda{
		Params: []*ast.Param{{Name: "x"}},
		Body: &ast.FuncCall{
			Func: &ast.Identifier{Name: "x"},
			Args: []ast.Expr{&ast.Identifier{Name: "x"}},
		},
	}

	_, err := g.Infer(scope.NewScope(), lambda)
	require.Error(t, err)
	uf, ok := err.(*types.UnificationFailure)
	require.True(t, ok)
	assert.Equal(t, types.OccursCheckFailure, uf.Kind)
}

func TestInferIfBindsConditionAndBranches(t *testing.T) {
	g := NewGenerator()
	ifExpr := &ast.If{
		Cond: boolLit(true),
		Then: intLit(1),
		Else: intLit(2),
	}

	typ, err := g.Infer(scope.NewScope(), ifExpr)
	require.NoError(t, err)
	assert.True(t, typ.Equals(types.NewPrimitiveType("Int")))
}

func TestInferIfBranchMismatchFails(t *testing.T) {
	g := NewGenerator()
	ifExpr := &ast.If{
		Cond: boolLit(true),
		Then: intLit(1),
		Else: boolLit(false),
	}

	_, err := g.Infer(scope.NewScope(), ifExpr)
	assert.Error(t, err)
}

func TestInferIfNonBoolConditionFails(t *testing.T) {
	g := NewGenerator()
	ifExpr := &ast.If{
		Cond: intLit(1),
		Then: intLit(1),
		Else: intLit(2),
	}

	_, err := g.Infer(scope.NewScope(), ifExpr)
	assert.Error(t, err)
}

func TestInferTupleGroupsElementTypes(t *testing.T) {
	g := NewGenerator()
	tup := &ast.Tuple{Elements: []ast.Expr{intLit(1), boolLit(true)}}

	typ, err := g.Infer(scope.NewScope(), tup)
	require.NoError(t, err)

	tt, ok := typ.(types.TupleType)
	require.True(t, ok)
	require.Len(t, tt.Elements, 2)
	assert.True(t, tt.Elements[0].Equals(types.NewPrimitiveType("Int")))
	assert.True(t, tt.Elements[1].Equals(types.NewPrimitiveType("Bool")))
}

func TestInferDeclWithFullAnnotationChecksBody(t *testing.T) {
	g := NewGenerator()
	decl := &ast.FuncDecl{
		Name:       "identity",
		Params:     []*ast.Param{{Name: "x", Annotation: types.NewPrimitiveType("Int")}},
		ReturnType: types.NewPrimitiveType("Int"),
		Body:       &ast.Identifier{Name: "x"},
	}

	typ, err := g.InferDecl(scope.NewScope(), decl)
	require.NoError(t, err)
	assert.True(t, typ.Equals(types.NewFunctionType(
		types.NewPrimitiveType("Int"), types.NewPrimitiveType("Int"),
	)))
}

func TestInferDeclSignatureMismatchFails(t *testing.T) {
	g := NewGenerator()
	decl := &ast.FuncDecl{
		Name:       "bad",
		Params:     []*ast.Param{{Name: "x", Annotation: types.NewPrimitiveType("Int")}},
		ReturnType: types.NewPrimitiveType("Bool"),
		Body:       &ast.Identifier{Name: "x"},
	}

	_, err := g.InferDecl(scope.NewScope(), decl)
	assert.Error(t, err)
}

func TestInferLambdaWithoutParamsErrors(t *testing.T) {
	g := NewGenerator()
	_, err := g.Infer(scope.NewScope(), &ast.Lambda{Body: intLit(0)})
	assert.Error(t, err)
}
