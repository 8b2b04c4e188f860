// Package typedast re-projects an expression tree against a solved
// types.Solution: every node gets the concrete type the solver settled on,
// so the result can be printed as a fully annotated program instead of the
// bare syntax tree.
package typedast

import (
	"fmt"
	"strings"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/ast"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/sid"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

// TypedExpr is the embedded base every typed node carries: its source span,
// a stable cross-reference id derived from the span's file and start
// offset, the node's preorder position in the projected tree, and its
// syntactic kind (stable across re-runs even though the node's Go pointer
// isn't; see Project), and the type the solution assigned it (nil if the
// solution left it unresolved).
type TypedExpr struct {
	Span     ast.Pos
	StableID sid.SID
	Type     types.Type
}

// TypedNode is the interface every re-projected node satisfies.
type TypedNode interface {
	GetSpan() ast.Pos
	GetType() types.Type
	String() string
}

func (t TypedExpr) GetSpan() ast.Pos    { return t.Span }
func (t TypedExpr) GetType() types.Type { return t.Type }

// TypedIdentifier is a re-projected ast.Identifier.
type TypedIdentifier struct {
	TypedExpr
	Name string
}

func (t TypedIdentifier) String() string { return fmt.Sprintf("%s : %s", t.Name, typeStr(t.Type)) }

// TypedLiteral is a re-projected ast.Literal.
type TypedLiteral struct {
	TypedExpr
	Value interface{}
}

func (t TypedLiteral) String() string { return fmt.Sprintf("%v : %s", t.Value, typeStr(t.Type)) }

// TypedLambda is a re-projected ast.Lambda.
type TypedLambda struct {
	TypedExpr
	Params []string
	Body   TypedNode
}

func (t TypedLambda) String() string {
	return fmt.Sprintf("\\%s. %s : %s", strings.Join(t.Params, ", "), t.Body, typeStr(t.Type))
}

// TypedFuncCall is a re-projected ast.FuncCall.
type TypedFuncCall struct {
	TypedExpr
	Func TypedNode
	Args []TypedNode
}

func (t TypedFuncCall) String() string {
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s) : %s", t.Func, strings.Join(args, ", "), typeStr(t.Type))
}

// TypedLet is a re-projected ast.Let.
type TypedLet struct {
	TypedExpr
	Name  string
	Value TypedNode
	Body  TypedNode
}

func (t TypedLet) String() string {
	return fmt.Sprintf("let %s = %s in %s : %s", t.Name, t.Value, t.Body, typeStr(t.Type))
}

// TypedIf is a re-projected ast.If.
type TypedIf struct {
	TypedExpr
	Cond TypedNode
	Then TypedNode
	Else TypedNode
}

func (t TypedIf) String() string {
	return fmt.Sprintf("if %s then %s else %s : %s", t.Cond, t.Then, t.Else, typeStr(t.Type))
}

// TypedTuple is a re-projected ast.Tuple.
type TypedTuple struct {
	TypedExpr
	Elements []TypedNode
}

func (t TypedTuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s) : %s", strings.Join(parts, ", "), typeStr(t.Type))
}

// nodeKind names expr's syntactic constructor, used as part of its stable
// id so that two different node kinds occupying the same span (which can't
// happen for real source positions, but can for hand-built fixtures that
// don't set one) still hash differently.
func nodeKind(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.Identifier:
		return "Identifier"
	case *ast.Literal:
		return "Literal"
	case *ast.Lambda:
		return "Lambda"
	case *ast.FuncCall:
		return "FuncCall"
	case *ast.Let:
		return "Let"
	case *ast.If:
		return "If"
	case *ast.Tuple:
		return "Tuple"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func typeStr(t types.Type) string {
	if t == nil {
		return "<unresolved>"
	}
	return t.String()
}

// Project walks expr, looking up each node's resolved type in sol, and
// returns the corresponding typed tree. A node the solution never pinned
// down keeps a nil Type rather than failing the whole projection.
//
// This module has no parser (see internal/ast's package doc), so hand-built
// fixtures routinely leave every node's Pos at its zero value -- without
// something to break the tie, sibling nodes of the same kind (two Int
// literals in a Tuple, say) would all hash to the same StableID. Project
// threads a preorder sequence number into the hash instead of the node's
// (possibly absent) end offset, which disambiguates them while staying
// stable across re-runs of the same tree.
func Project(sol *types.Solution, expr ast.Expr) TypedNode {
	seq := 0
	return project(sol, expr, &seq)
}

func project(sol *types.Solution, expr ast.Expr, seq *int) TypedNode {
	span := expr.Position()
	typ, _ := sol.FixedType(expr)
	id := sid.New(span.File, span.Offset, *seq, nodeKind(expr))
	*seq++
	base := TypedExpr{Span: span, StableID: id, Type: typ}

	switch e := expr.(type) {
	case *ast.Identifier:
		return TypedIdentifier{TypedExpr: base, Name: e.Name}

	case *ast.Literal:
		return TypedLiteral{TypedExpr: base, Value: e.Value}

	case *ast.Lambda:
		names := make([]string, len(e.Params))
		for i, p := range e.Params {
			names[i] = p.Name
		}
		return TypedLambda{TypedExpr: base, Params: names, Body: project(sol, e.Body, seq)}

	case *ast.FuncCall:
		args := make([]TypedNode, len(e.Args))
		for i, a := range e.Args {
			args[i] = project(sol, a, seq)
		}
		return TypedFuncCall{TypedExpr: base, Func: project(sol, e.Func, seq), Args: args}

	case *ast.Let:
		return TypedLet{
			TypedExpr: base,
			Name:      e.Name,
			Value:     project(sol, e.Value, seq),
			Body:      project(sol, e.Body, seq),
		}

	case *ast.If:
		return TypedIf{
			TypedExpr: base,
			Cond:      project(sol, e.Cond, seq),
			Then:      project(sol, e.Then, seq),
			Else:      project(sol, e.Else, seq),
		}

	case *ast.Tuple:
		elems := make([]TypedNode, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = project(sol, el, seq)
		}
		return TypedTuple{TypedExpr: base, Elements: elems}

	default:
		return TypedIdentifier{TypedExpr: base, Name: fmt.Sprintf("<unsupported %T>", expr)}
	}
}
