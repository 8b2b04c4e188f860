package repl

import (
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/ast"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

// StandardExamples returns the console's built-in catalog: a handful of
// hand-built ASTs chosen to exercise the scenarios the solver's own tests
// cover, so running them interactively shows the same behavior the test
// suite asserts on.
func StandardExamples() []Example {
	return []Example{
		{
			Name: "identity",
			Doc:  `\x. x applied to 42`,
			Expr: &ast.FuncCall{
				Func: &ast.Lambda{
					Params: []*ast.Param{{Name: "x"}},
					Body:   &ast.Identifier{Name: "x"},
				},
				Args: []ast.Expr{&ast.Literal{Kind: ast.IntLiteral, Value: 42}},
			},
		},
		{
			Name: "let-annotated",
			Doc:  "let x: Int = 5 in x",
			Expr: &ast.Let{
				Name:       "x",
				Annotation: types.NewPrimitiveType("Int"),
				Value:      &ast.Literal{Kind: ast.IntLiteral, Value: 5},
				Body:       &ast.Identifier{Name: "x"},
			},
		},
		{
			Name: "if-branches",
			Doc:  "if true then 1 else 2",
			Expr: &ast.If{
				Cond: &ast.Literal{Kind: ast.BoolLiteral, Value: true},
				Then: &ast.Literal{Kind: ast.IntLiteral, Value: 1},
				Else: &ast.Literal{Kind: ast.IntLiteral, Value: 2},
			},
		},
		{
			Name: "if-branch-mismatch",
			Doc:  "if true then 1 else false -- fails to unify Int with Bool",
			Expr: &ast.If{
				Cond: &ast.Literal{Kind: ast.BoolLiteral, Value: true},
				Then: &ast.Literal{Kind: ast.IntLiteral, Value: 1},
				Else: &ast.Literal{Kind: ast.BoolLiteral, Value: false},
			},
		},
		{
			Name: "tuple",
			Doc:  "(1, true)",
			Expr: &ast.Tuple{Elements: []ast.Expr{
				&ast.Literal{Kind: ast.IntLiteral, Value: 1},
				&ast.Literal{Kind: ast.BoolLiteral, Value: true},
			}},
		},
		{
			Name: "occurs-check",
			Doc:  `let x = \y. y in x(x) -- x is monomorphic, so applying it to itself fails the occurs-check`,
			Expr: &ast.Let{
				Name:  "x",
				Value: &ast.Lambda{Params: []*ast.Param{{Name: "y"}}, Body: &ast.Identifier{Name: "y"}},
				Body: &ast.FuncCall{
					Func: &ast.Identifier{Name: "x"},
					Args: []ast.Expr{&ast.Identifier{Name: "x"}},
				},
			},
		},
	}
}
