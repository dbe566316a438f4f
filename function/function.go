// File: function/function.go

// Package function defines the callable runtime object Lox function
// declarations evaluate to. It lives in its own package so that object
// and scope stay free of a dependency on each other's consumer:
// object.Value is defined without knowing about scopes, scope.Scope is
// defined without knowing about callables, and Function is the one
// type that needs both.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/loxlet/ast"
	"github.com/akashmaji946/loxlet/scope"
)

// Function is a user-defined function value: its declaration (name,
// parameter list, body) plus the scope that was active when the
// `fun` statement was executed. Capturing that scope by reference,
// rather than copying it, is what gives closures shared access to
// their defining function's locals.
type Function struct {
	Declaration *ast.FunctionStmt
	Closure     *scope.Scope
}

// New builds a Function value from its declaration and the scope it
// closes over.
func New(decl *ast.FunctionStmt, closure *scope.Scope) *Function {
	return &Function{Declaration: decl, Closure: closure}
}

// Kind implements object.Value.
func (*Function) Kind() string { return "function" }

// Arity is the number of parameters the declaration names.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Name is the function's declared name, used by Display and Signature.
func (f *Function) Name() string {
	return f.Declaration.Name.Lexeme
}

// Display implements object.Displayer so Stringify can render a
// function as `"<fn <name>>"`.
func (f *Function) Display() string {
	return fmt.Sprintf("<fn %s>", f.Name())
}

// Signature renders the parameter list for debugging, e.g. "add(a, b)".
func (f *Function) Signature() string {
	names := make([]string, len(f.Declaration.Params))
	for i, p := range f.Declaration.Params {
		names[i] = p.Lexeme
	}
	return fmt.Sprintf("%s(%s)", f.Name(), strings.Join(names, ", "))
}
