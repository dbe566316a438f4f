// File: scope/scope.go

// Package scope implements the lexically-scoped name-to-value
// environment chain: a values map plus a Parent pointer, one frame per
// block or call. Lox has a single `var` declaration form with no const
// or type-locked variant, so there is nothing here beyond that one
// chained map. A closure keeps a plain *Scope pointer into the live
// chain rather than a copy, so a function returned from an outer
// function retains access to the outer function's locals by reference.
package scope

import (
	"github.com/akashmaji946/loxlet/object"
)

// Scope is one frame of the environment chain: a set of name→value
// bindings plus an optional link to the enclosing frame. The global
// scope is the one Scope in a chain with a nil Parent.
type Scope struct {
	values map[string]object.Value
	Parent *Scope
}

// New creates a scope nested inside parent. Pass nil to create the
// global scope.
func New(parent *Scope) *Scope {
	return &Scope{values: make(map[string]object.Value), Parent: parent}
}

// Define binds name to value in this scope unconditionally, shadowing
// any binding of the same name in an enclosing scope and silently
// overwriting a prior binding of the same name in this scope (spec
// # 4.3: "Redefinition at the same frame overwrites silently").
func (s *Scope) Define(name string, value object.Value) {
	s.values[name] = value
}

// Get resolves name by searching this scope and then each enclosing
// scope in turn. It returns an error describing the undefined
// variable if the chain is exhausted without a match.
func (s *Scope) Get(name string) (object.Value, error) {
	if v, ok := s.values[name]; ok {
		return v, nil
	}
	if s.Parent != nil {
		return s.Parent.Get(name)
	}
	return nil, &UndefinedError{Name: name}
}

// Assign mutates the existing binding for name, searching outward
// through enclosing scopes the same way Get does. Unlike Define, it
// never creates a new binding: assigning to a name absent from the
// whole chain is an error.
func (s *Scope) Assign(name string, value object.Value) error {
	if _, ok := s.values[name]; ok {
		s.values[name] = value
		return nil
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, value)
	}
	return &UndefinedError{Name: name}
}

// Names returns every name bound in this scope, unordered. Used by the
// REPL's `/scope` introspection command and by the evaluator's
// "did you mean" suggestion for undefined-variable errors.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	return names
}

// AllNames returns every name bound anywhere in the chain from this
// scope outward to the global scope, used to build "did you mean"
// suggestions across the whole visible environment rather than just
// the innermost frame.
func (s *Scope) AllNames() []string {
	var names []string
	for cur := s; cur != nil; cur = cur.Parent {
		names = append(names, cur.Names()...)
	}
	return names
}

// UndefinedError reports that Name has no binding anywhere in the
// scope chain that was searched.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return "Undefined variable '" + e.Name + "'."
}
