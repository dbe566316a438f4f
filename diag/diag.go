// File: diag/diag.go

// Package diag implements the diagnostics sink shared by the lexer,
// parser and evaluator: one typed sink with a small Kind taxonomy,
// carried explicitly on an interpreter context rather than stashed in
// module-level globals.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Kind classifies a Diagnostic for reporting and exit-code purposes.
type Kind int

const (
	// Lexical marks a scanning failure (unterminated string, stray character).
	Lexical Kind = iota
	// Syntax marks a parser failure (missing token, bad assignment target).
	Syntax
	// Runtime marks a failure raised while walking the AST.
	Runtime
)

// Diagnostic is one reported error site.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string // "", " at end", or " at '<lexeme>'"; empty for Runtime
	Message string
}

// Sink collects diagnostics produced during one run of the interpreter
// as fields on a value the caller owns, rather than package-level
// globals, so a long-running REPL can reset its diagnostic state
// between lines while the evaluator's global scope lives on elsewhere.
type Sink struct {
	diagnostics []Diagnostic
	hadError    bool
	hadRuntime  bool
}

// New returns an empty Sink.
func New() *Sink {
	return &Sink{}
}

// Report records a compile-time (lexical or syntax) diagnostic.
func (s *Sink) Report(kind Kind, line int, where, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Kind: kind, Line: line, Where: where, Message: message})
	s.hadError = true
}

// RuntimeError records the single runtime diagnostic for this run: a
// runtime error aborts the current top-level statement sequence, so at
// most one is ever recorded per Run.
func (s *Sink) RuntimeError(line int, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Kind: Runtime, Line: line, Message: message})
	s.hadRuntime = true
}

// HadError reports whether any lexical or syntax diagnostic was recorded.
func (s *Sink) HadError() bool { return s.hadError }

// HadRuntimeError reports whether a runtime diagnostic was recorded.
func (s *Sink) HadRuntimeError() bool { return s.hadRuntime }

// Diagnostics returns every diagnostic recorded so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic { return s.diagnostics }

// ResetCompileError clears the compile-error flag and discards compile
// diagnostics while preserving any runtime diagnostic already recorded.
func (s *Sink) ResetCompileError() {
	s.hadError = false
	kept := s.diagnostics[:0]
	for _, d := range s.diagnostics {
		if d.Kind == Runtime {
			kept = append(kept, d)
		}
	}
	s.diagnostics = kept
}

// Reset clears every flag and every recorded diagnostic. The REPL
// calls this between lines: each line gets its own diagnostic state,
// while the interpreter's global scope (held separately, by the
// evaluator) lives on across calls.
func (s *Sink) Reset() {
	s.hadError = false
	s.hadRuntime = false
	s.diagnostics = nil
}

// Format renders one Diagnostic as line-oriented text:
// "[line N] Error<where>: <msg>" for compile diagnostics, "<msg>\n[line N]"
// for runtime diagnostics.
func Format(d Diagnostic) string {
	if d.Kind == Runtime {
		return fmt.Sprintf("%s\n[line %d]", d.Message, d.Line)
	}
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Colors shared by every diagnostic consumer so output looks the same
// whether it came from the REPL or a script run.
var (
	ErrorColor = color.New(color.FgRed)
	InfoColor  = color.New(color.FgCyan)
)

// WriteAll renders every recorded diagnostic to w in report order, in
// red.
func (s *Sink) WriteAll(w io.Writer) {
	for _, d := range s.diagnostics {
		ErrorColor.Fprintln(w, Format(d))
	}
}
