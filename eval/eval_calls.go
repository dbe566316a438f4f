// File: eval/eval_calls.go

package eval

import (
	"github.com/akashmaji946/loxlet/ast"
	"github.com/akashmaji946/loxlet/function"
	"github.com/akashmaji946/loxlet/object"
	"github.com/akashmaji946/loxlet/scope"
)

func (e *Evaluator) evalCall(n *ast.Call, sc *scope.Scope) (object.Value, error) {
	callee, err := e.evalExpr(n.Callee, sc)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := e.isCallable(callee)
	if !ok {
		return nil, runtimeErrorf(n.ClosingParen, "Can only call functions.")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(n.ClosingParen, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return e.callFunction(fn, args)
}

// callFunction runs fn's body in a fresh scope parented on its
// closure — never on the caller's scope, which is what makes a Lox
// closure see the names visible at its own definition site rather
// than at each call site. A *returnSignal caught here ends the
// function with its carried value; any other error propagates to the
// caller unchanged, unwinding the call the same way a runtime error
// unwinds a block.
func (e *Evaluator) callFunction(fn *function.Function, args []object.Value) (object.Value, error) {
	callScope := scope.New(fn.Closure)
	for i, p := range fn.Declaration.Params {
		callScope.Define(p.Lexeme, args[i])
	}
	if err := e.execBlock(fn.Declaration.Body, callScope); err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}
	return object.Nil{}, nil
}
