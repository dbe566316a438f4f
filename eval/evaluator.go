// File: eval/evaluator.go

// Package eval is the tree-walking evaluator: it executes the ast.Stmt
// list the parser produces directly against a scope.Scope chain, with
// no intermediate bytecode or resolver pass. Expressions and
// statements are dispatched with direct type switches rather than a
// Visitor, and non-local control flow (`return`) is an explicit
// error-valued result rather than a panic.
package eval

import (
	"io"

	"github.com/akashmaji946/loxlet/ast"
	"github.com/akashmaji946/loxlet/diag"
	"github.com/akashmaji946/loxlet/function"
	"github.com/akashmaji946/loxlet/object"
	"github.com/akashmaji946/loxlet/scope"
)

// Evaluator holds the state one program run shares: the global scope
// every top-level declaration lands in, the diagnostics sink runtime
// failures are reported to, and the writer `print` statements write
// to. Output goes through an explicit io.Writer rather than
// os.Stdout so tests can capture it directly.
type Evaluator struct {
	Globals *scope.Scope
	sink    *diag.Sink
	out     io.Writer
}

// New builds an Evaluator with a fresh global scope.
func New(sink *diag.Sink, out io.Writer) *Evaluator {
	return &Evaluator{Globals: scope.New(nil), sink: sink, out: out}
}

// Run executes stmts in the evaluator's global scope in order. A
// runtime error aborts the remaining statements and is reported to the
// sink. A stray `return` outside any function is not treated as a
// static error — there is no resolver pass to catch it ahead of time —
// it simply ends the run early.
func (e *Evaluator) Run(stmts []ast.Stmt) {
	for _, s := range stmts {
		if err := e.execStmt(s, e.Globals); err != nil {
			if _, ok := err.(*returnSignal); ok {
				return
			}
			if re, ok := err.(*RuntimeError); ok {
				e.sink.RuntimeError(re.Tok.Line, re.Msg)
			}
			return
		}
	}
}

func (e *Evaluator) isCallable(v object.Value) (*function.Function, bool) {
	fn, ok := v.(*function.Function)
	return fn, ok
}
