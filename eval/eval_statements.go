// File: eval/eval_statements.go

package eval

import (
	"fmt"

	"github.com/akashmaji946/loxlet/ast"
	"github.com/akashmaji946/loxlet/function"
	"github.com/akashmaji946/loxlet/object"
	"github.com/akashmaji946/loxlet/scope"
	"github.com/akashmaji946/loxlet/token"
)

// execStmt executes one statement in sc. A non-nil error is either a
// *RuntimeError (a genuine failure, to be reported and to abort the
// enclosing statement sequence) or a *returnSignal (a `return` in
// flight, to be caught by callFunction and otherwise propagated
// upward exactly like a RuntimeError would be).
func (e *Evaluator) execStmt(s ast.Stmt, sc *scope.Scope) error {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		_, err := e.evalExpr(n.Expr, sc)
		return err

	case *ast.PrintStmt:
		v, err := e.evalExpr(n.Expr, sc)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, object.Stringify(v))
		return nil

	case *ast.VarStmt:
		var v object.Value = object.Nil{}
		if n.Initializer != nil {
			var err error
			v, err = e.evalExpr(n.Initializer, sc)
			if err != nil {
				return err
			}
		}
		sc.Define(n.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return e.execBlock(n.Statements, scope.New(sc))

	case *ast.IfStmt:
		cond, err := e.evalExpr(n.Cond, sc)
		if err != nil {
			return err
		}
		if object.Truthy(cond) {
			return e.execStmt(n.Then, sc)
		}
		if n.Else != nil {
			return e.execStmt(n.Else, sc)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := e.evalExpr(n.Cond, sc)
			if err != nil {
				return err
			}
			if !object.Truthy(cond) {
				return nil
			}
			if err := e.execStmt(n.Body, sc); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := function.New(n, sc)
		sc.Define(n.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var v object.Value = object.Nil{}
		if n.Value != nil {
			var err error
			v, err = e.evalExpr(n.Value, sc)
			if err != nil {
				return err
			}
		}
		return &returnSignal{Value: v}

	default:
		return runtimeErrorf(token.Token{}, "unhandled statement %T", s)
	}
}

// execBlock runs stmts in child, stopping at the first error (a real
// failure or a return in flight) and propagating it. child simply
// falls out of scope on return, which is all "restoring the enclosing
// scope" takes in a tree-walker built on pointer-chained frames rather
// than a mutable stack.
func (e *Evaluator) execBlock(stmts []ast.Stmt, child *scope.Scope) error {
	for _, s := range stmts {
		if err := e.execStmt(s, child); err != nil {
			return err
		}
	}
	return nil
}
