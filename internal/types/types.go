// Package types is the type-inference constraint solver: a small,
// union-find-backed unification engine for a Swift-like expression
// language. It owns the type model, the binding store, the constraint
// representation, the matcher/unifier, and the constraint-system façade
// that external code drives.
//
// Everything that produces or resolves AST node identities -- the parser,
// name resolution, diagnostic rendering -- lives outside this package. The
// solver only ever sees node identity as an opaque comparable handle (see
// NodeID) and two small structural interfaces (ExprNode, ContextNode) that
// any collaborator's node type can satisfy without importing this package.
package types

import "fmt"

// Type is the closed sum of type shapes the solver understands. Adding a
// new composite constructor means teaching matchFixedTypes about it --
// until then the matcher reports it Unimplemented rather than silently
// accepting it.
type Type interface {
	fmt.Stringer
	Equals(Type) bool
	isType()
}

// TypeVariable is a placeholder type with identity. Two variables are equal
// iff their Id fields are equal; TypeVariable is a value type on purpose so
// that it can be used directly as a map key and compared with ==.
type TypeVariable struct {
	Id int
}

func (v TypeVariable) String() string { return fmt.Sprintf("$T%d", v.Id) }
func (v TypeVariable) isType()        {}
func (v TypeVariable) Equals(o Type) bool {
	ov, ok := o.(TypeVariable)
	return ok && ov.Id == v.Id
}

// PrimitiveType is a named, nullary concrete type such as Int or Bool.
type PrimitiveType struct {
	Name string
}

// NewPrimitiveType constructs a PrimitiveType. It exists alongside the bare
// struct literal so collaborators (like ast.Literal) don't need to know the
// struct's field layout.
func NewPrimitiveType(name string) Type { return PrimitiveType{Name: name} }

func (p PrimitiveType) String() string { return p.Name }
func (p PrimitiveType) isType()        {}
func (p PrimitiveType) Equals(o Type) bool {
	op, ok := o.(PrimitiveType)
	return ok && op.Name == p.Name
}

// FunctionType is a single-argument function type; curried functions are
// represented as nested FunctionTypes, parameter first.
type FunctionType struct {
	Parameter Type
	Result    Type
}

// NewFunctionType constructs a FunctionType.
func NewFunctionType(parameter, result Type) Type {
	return FunctionType{Parameter: parameter, Result: result}
}

func (f FunctionType) String() string { return fmt.Sprintf("(%s) -> %s", f.Parameter, f.Result) }
func (f FunctionType) isType()        {}
func (f FunctionType) Equals(o Type) bool {
	of, ok := o.(FunctionType)
	return ok && of.Parameter.Equals(f.Parameter) && of.Result.Equals(f.Result)
}

// TupleType is a fixed-arity grouping of types. It exists to demonstrate
// the matcher's declared contract for composites it doesn't know how to
// unify: matchFixedTypes has no case for TupleType, so binding two
// TupleTypes together is an Unimplemented contract violation rather than a
// silent success or a Failure (see Open Question (c) in DESIGN.md for why
// this arm is left that way).
type TupleType struct {
	Elements []Type
}

// NewTupleType constructs a TupleType.
func NewTupleType(elements ...Type) Type {
	return TupleType{Elements: elements}
}

func (t TupleType) String() string {
	s := "("
	for i, e := range t.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}
func (t TupleType) isType() {}
func (t TupleType) Equals(o Type) bool {
	ot, ok := o.(TupleType)
	if !ok || len(ot.Elements) != len(t.Elements) {
		return false
	}
	for i, e := range t.Elements {
		if !e.Equals(ot.Elements[i]) {
			return false
		}
	}
	return true
}

// ExprNode is the structural contract an AST expression node must satisfy
// to participate in AstType's fallback lookup. Any type with this method
// set satisfies it -- internal/ast.Expr does, without internal/ast ever
// importing this package's concrete node type.
type ExprNode interface {
	DeclaredType() (Type, bool)
}

// ContextNode is the structural contract for declaration-like nodes that
// carry a declared signature rather than a value type.
type ContextNode interface {
	InterfaceType() (Type, bool)
}

// NodeID is an opaque, comparable handle identifying an AST node. The
// solver never interprets it beyond using it as a map key; callers
// typically pass the node pointer itself, so identity is the node's
// address, never anything derived from its field values.
type NodeID = interface{}

// transformVars returns a copy of t with every TypeVariable replaced by
// fn(v). It is the uniform structural substitution walk the type model
// promises: composites recurse into their children, everything else is
// returned unchanged (an unrecognized composite has nothing to substitute
// into from this package's point of view).
func transformVars(t Type, fn func(TypeVariable) Type) Type {
	switch v := t.(type) {
	case TypeVariable:
		return fn(v)
	case PrimitiveType:
		return v
	case FunctionType:
		return FunctionType{
			Parameter: transformVars(v.Parameter, fn),
			Result:    transformVars(v.Result, fn),
		}
	case TupleType:
		elems := make([]Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = transformVars(e, fn)
		}
		return TupleType{Elements: elems}
	default:
		return t
	}
}
