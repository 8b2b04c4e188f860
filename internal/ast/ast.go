// Package ast defines the node types for the small Swift-like expression
// language that the type inference core operates over.
//
// The constraint solver in internal/types never constructs or mutates these
// nodes; it only reads node identity and the two accessors described below.
// Node identity is the Go pointer itself -- every concrete node type here is
// used exclusively through a pointer receiver, so two nodes are "the same
// node" iff the pointers are equal, never by comparing field values.
//
// This module has no parser: nodes are constructed directly in Go by
// callers and test fixtures.
package ast

import (
	"fmt"
	"strings"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

// Pos is a source location, kept around for diagnostics and for deriving a
// stable hash identity (see internal/sid) independent of the node pointer.
type Pos struct {
	Line   int
	Column int
	File   string
	Offset int
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a source range, used by internal/sid when hashing a node.
type Span struct {
	Start Pos
	End   Pos
}

// Node is the base interface every AST node satisfies. A Node's identity for
// the purposes of the constraint solver's AST-type map is the Node value
// itself (a pointer under the hood), never anything derived from its fields.
type Node interface {
	String() string
	Position() Pos
}

// Expr is a node that produces a value and therefore participates in type
// inference. DeclaredType reports the type the syntax already pins down for
// this node, if any -- literals always know their type, most other nodes
// don't until the solver assigns one.
type Expr interface {
	Node
	exprNode()
	DeclaredType() (types.Type, bool)
}

// Context is a node that does not itself produce a value but carries a
// declared signature other nodes are checked against, such as a function
// declaration's parameter/return annotations.
type Context interface {
	Node
	contextNode()
	InterfaceType() (types.Type, bool)
}

// Identifier is a reference to a bound name. Name resolution (associating
// the identifier with the node that bound it) is a collaborator's job, not
// the solver's; internal/infer records an Identifier's type via
// ConstraintSystem.SetASTType, using the type its scope binding holds.
type Identifier struct {
	Name string
	Pos  Pos
}

func (i *Identifier) String() string { return i.Name }
func (i *Identifier) Position() Pos  { return i.Pos }
func (i *Identifier) exprNode()      {}
func (i *Identifier) DeclaredType() (types.Type, bool) { return nil, false }

// LiteralKind distinguishes the handful of literal forms the language has.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	StringLiteral
	BoolLiteral
	UnitLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case IntLiteral:
		return "Int"
	case FloatLiteral:
		return "Float"
	case StringLiteral:
		return "String"
	case BoolLiteral:
		return "Bool"
	case UnitLiteral:
		return "Unit"
	default:
		return "?"
	}
}

// Literal is a self-typed constant. Its declared type is intrinsic to the
// syntax -- "42" is always an Int -- so DeclaredType never needs the solver.
type Literal struct {
	Kind  LiteralKind
	Value interface{}
	Pos   Pos
}

func (l *Literal) String() string { return fmt.Sprintf("%v", l.Value) }
func (l *Literal) Position() Pos  { return l.Pos }
func (l *Literal) exprNode()      {}
func (l *Literal) DeclaredType() (types.Type, bool) {
	return types.NewPrimitiveType(l.Kind.String()), true
}

// Param is a lambda parameter. It is a Context node: it may carry a type
// annotation written by the programmer, which is its interface type.
type Param struct {
	Name       string
	Annotation types.Type // nil if the parameter is unannotated
	Pos        Pos
}

func (p *Param) String() string {
	if p.Annotation != nil {
		return fmt.Sprintf("%s: %s", p.Name, p.Annotation)
	}
	return p.Name
}
func (p *Param) Position() Pos { return p.Pos }
func (p *Param) contextNode()  {}
func (p *Param) InterfaceType() (types.Type, bool) {
	if p.Annotation == nil {
		return nil, false
	}
	return p.Annotation, true
}

// Lambda is a single-parameter-list function literal: \x, y. body.
type Lambda struct {
	Params []*Param
	Body   Expr
	Pos    Pos
}

func (l *Lambda) String() string {
	names := make([]string, len(l.Params))
	for i, p := range l.Params {
		names[i] = p.String()
	}
	return fmt.Sprintf("\\%s. %s", strings.Join(names, ", "), l.Body)
}
func (l *Lambda) Position() Pos                    { return l.Pos }
func (l *Lambda) exprNode()                        {}
func (l *Lambda) DeclaredType() (types.Type, bool) { return nil, false }

// FuncCall is function application: Func(Args...).
type FuncCall struct {
	Func Expr
	Args []Expr
	Pos  Pos
}

func (f *FuncCall) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Func, strings.Join(args, ", "))
}
func (f *FuncCall) Position() Pos                    { return f.Pos }
func (f *FuncCall) exprNode()                        {}
func (f *FuncCall) DeclaredType() (types.Type, bool) { return nil, false }

// Let is a (non-recursive) let binding: let Name = Value in Body.
type Let struct {
	Name       string
	Annotation types.Type // optional declared type for Name
	Value      Expr
	Body       Expr
	Pos        Pos
}

func (l *Let) String() string {
	return fmt.Sprintf("let %s = %s in %s", l.Name, l.Value, l.Body)
}
func (l *Let) Position() Pos                    { return l.Pos }
func (l *Let) exprNode()                        {}
func (l *Let) DeclaredType() (types.Type, bool) { return nil, false }
func (l *Let) contextNode()                     {}
func (l *Let) InterfaceType() (types.Type, bool) {
	if l.Annotation == nil {
		return nil, false
	}
	return l.Annotation, true
}

// If is a conditional expression.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
	Pos  Pos
}

func (i *If) String() string {
	return fmt.Sprintf("if %s then %s else %s", i.Cond, i.Then, i.Else)
}
func (i *If) Position() Pos                    { return i.Pos }
func (i *If) exprNode()                        {}
func (i *If) DeclaredType() (types.Type, bool) { return nil, false }

// Tuple is a fixed-arity grouping of expressions.
type Tuple struct {
	Elements []Expr
	Pos      Pos
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}
func (t *Tuple) Position() Pos                    { return t.Pos }
func (t *Tuple) exprNode()                        {}
func (t *Tuple) DeclaredType() (types.Type, bool) { return nil, false }

// FuncDecl is a top-level named function declaration. It is a Context node:
// when it has at least one parameter and every parameter and the return
// type are annotated, its interface type is the corresponding FunctionType
// (curried, right to left).
type FuncDecl struct {
	Name       string
	Params     []*Param
	ReturnType types.Type // nil if unannotated
	Body       Expr
	Pos        Pos
}

func (f *FuncDecl) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.String()
	}
	return fmt.Sprintf("func %s(%s) = %s", f.Name, strings.Join(names, ", "), f.Body)
}
func (f *FuncDecl) Position() Pos { return f.Pos }
func (f *FuncDecl) contextNode()  {}

// InterfaceType builds the declared FunctionType for this declaration, or
// reports false if the declaration has no parameters or any parameter or
// the return type is unannotated.
func (f *FuncDecl) InterfaceType() (types.Type, bool) {
	if f.ReturnType == nil || len(f.Params) == 0 {
		return nil, false
	}
	result := f.ReturnType
	for i := len(f.Params) - 1; i >= 0; i-- {
		ann, ok := f.Params[i].InterfaceType()
		if !ok {
			return nil, false
		}
		result = types.NewFunctionType(ann, result)
	}
	return result, true
}
