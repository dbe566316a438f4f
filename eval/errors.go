// File: eval/errors.go

package eval

import (
	"fmt"

	"github.com/akashmaji946/loxlet/object"
	"github.com/akashmaji946/loxlet/token"
)

// RuntimeError covers operator type mismatches, undefined variables,
// non-callable invocations, and arity mismatches. It carries the token
// nearest the failure so the sink can report the offending line; it is
// an ordinary typed error value rather than a panic, so it rides the
// same return-value plumbing every other failure in this package does.
type RuntimeError struct {
	Tok token.Token
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func runtimeErrorf(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Tok: tok, Msg: fmt.Sprintf(format, args...)}
}

// returnSignal is the non-local control transfer a `return` statement
// triggers. It is not a failure — it satisfies the error interface
// purely so it can ride the same execStmt/evalExpr error-return
// plumbing as a genuine RuntimeError. callFunction catches it at the
// call boundary and Evaluator.Run swallows a stray top-level one, so it
// never reaches interp.Run.
type returnSignal struct {
	Value object.Value
}

func (r *returnSignal) Error() string { return "return" }
