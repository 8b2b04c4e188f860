// Package scope provides lexical scope plumbing for the expression
// language: a chain of name-to-type-variable bindings a caller builds
// while walking the AST, so that an Identifier can be resolved to the type
// variable its binder allocated before a Bind constraint is submitted for
// it.
//
// Name resolution itself -- deciding which binder an identifier refers to
// -- is an external collaborator's job. This package only holds the result
// of that decision once it's been made; it is infrastructure the solver
// uses but, per the constraint system's own design, does not own.
package scope

import (
	"fmt"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/normalize"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

// Scope is an immutable-once-extended environment: Extend returns a new
// child scope rather than mutating the receiver, so a caller can hold onto
// an outer scope while exploring multiple branches (e.g. both arms of an
// If) without them interfering with each other.
type Scope struct {
	name   string
	typ    types.Type
	parent *Scope
}

// NewScope returns an empty top-level scope.
func NewScope() *Scope {
	return nil
}

// Extend returns a new scope that binds name to typ, with s as its parent.
// name is canonicalized first (BOM/NFC normalization) so that two
// spellings of "the same" identifier -- say, one with a combining accent
// and one precomposed -- resolve to the same binding regardless of which
// form the binder or a later reference happened to use.
func (s *Scope) Extend(name string, typ types.Type) *Scope {
	return &Scope{name: normalize.Name(name), typ: typ, parent: s}
}

// Lookup searches s and its ancestors for name, innermost binding first.
func (s *Scope) Lookup(name string) (types.Type, error) {
	name = normalize.Name(name)
	for cur := s; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.typ, nil
		}
	}
	return nil, fmt.Errorf("undefined variable: %s", name)
}

// Depth reports how many bindings are in scope, including ancestors --
// useful for diagnostics.
func (s *Scope) Depth() int {
	n := 0
	for cur := s; cur != nil; cur = cur.parent {
		n++
	}
	return n
}
