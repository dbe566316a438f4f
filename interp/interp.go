// File: interp/interp.go

// Package interp wires the lexer, parser and evaluator together behind
// a single host-facing entry point: run source text, print diagnostics
// to a writer, return a process exit code. It is a standalone package
// so both the REPL and the CLI's file-execution path share one
// implementation instead of duplicating it per caller.
package interp

import (
	"io"

	"github.com/akashmaji946/loxlet/diag"
	"github.com/akashmaji946/loxlet/eval"
	"github.com/akashmaji946/loxlet/lexer"
	"github.com/akashmaji946/loxlet/parser"
)

// Exit codes for the host CLI, per the external-interface contract:
// 0 on success, 64 for a compile-time (lexical or syntax) failure, 70
// for a runtime failure.
const (
	ExitOK           = 0
	ExitCompileError = 64
	ExitRuntimeError = 70
)

// Interpreter runs Lox source against a persistent global scope and
// diagnostics sink, so a REPL session can share both across lines: a
// runtime error on one line never erases the bindings a prior line
// made.
type Interpreter struct {
	sink *diag.Sink
	eval *eval.Evaluator
}

// New builds an Interpreter that writes `print` output to stdout and
// reports diagnostics through its own sink.
func New(stdout io.Writer) *Interpreter {
	sink := diag.New()
	return &Interpreter{sink: sink, eval: eval.New(sink, stdout)}
}

// Sink exposes the interpreter's diagnostics sink, for a caller that
// wants to inspect or render diagnostics itself.
func (in *Interpreter) Sink() *diag.Sink { return in.sink }

// Globals returns the names bound in the persistent global scope,
// unordered, used by the REPL's `/scope` introspection command.
func (in *Interpreter) Globals() []string { return in.eval.Globals.Names() }

// Run lexes, parses and evaluates source, writing any diagnostics to
// stderr and returning the resulting exit code. It does not reset the
// sink between calls — ResetLine does that — so repeated calls on the
// same Interpreter behave like successive REPL lines sharing state.
func (in *Interpreter) Run(source string, stderr io.Writer) int {
	toks := lexer.New(source, in.sink).ScanTokens()
	stmts := parser.New(toks, in.sink).Parse()

	if in.sink.HadError() {
		in.sink.WriteAll(stderr)
		return ExitCompileError
	}

	in.eval.Run(stmts)

	if in.sink.HadRuntimeError() {
		in.sink.WriteAll(stderr)
		return ExitRuntimeError
	}
	return ExitOK
}

// ResetLine clears all diagnostic state between REPL iterations. The
// global scope lives on the Evaluator, not the sink, so it is
// unaffected: a runtime error on one line never erases variables a
// prior line defined.
func (in *Interpreter) ResetLine() {
	in.sink.Reset()
}
