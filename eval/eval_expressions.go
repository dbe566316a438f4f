// File: eval/eval_expressions.go

package eval

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/akashmaji946/loxlet/ast"
	"github.com/akashmaji946/loxlet/object"
	"github.com/akashmaji946/loxlet/scope"
	"github.com/akashmaji946/loxlet/token"
)

// evalExpr evaluates e in sc, returning its Lox value or the first
// error encountered. Sub-expressions are always evaluated left to
// right, which is what gives Lox's arithmetic and call-argument
// evaluation order its determinism.
func (e *Evaluator) evalExpr(expr ast.Expr, sc *scope.Scope) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil

	case *ast.Grouping:
		return e.evalExpr(n.Inner, sc)

	case *ast.Variable:
		v, err := sc.Get(n.Name.Lexeme)
		if err != nil {
			return nil, e.undefinedNameError(n.Name, sc)
		}
		return v, nil

	case *ast.Assign:
		v, err := e.evalExpr(n.Value, sc)
		if err != nil {
			return nil, err
		}
		if err := sc.Assign(n.Name.Lexeme, v); err != nil {
			return nil, e.undefinedNameError(n.Name, sc)
		}
		return v, nil

	case *ast.Unary:
		right, err := e.evalExpr(n.Right, sc)
		if err != nil {
			return nil, err
		}
		switch n.Op.Kind {
		case token.MINUS:
			num, ok := right.(object.Number)
			if !ok {
				return nil, runtimeErrorf(n.Op, "Operand must be a number.")
			}
			return -num, nil
		case token.BANG:
			return object.Bool(!object.Truthy(right)), nil
		}
		return nil, runtimeErrorf(n.Op, "Unknown unary operator %q.", n.Op.Lexeme)

	case *ast.Logical:
		left, err := e.evalExpr(n.Left, sc)
		if err != nil {
			return nil, err
		}
		if n.Op.Kind == token.OR {
			if object.Truthy(left) {
				return left, nil
			}
		} else {
			if !object.Truthy(left) {
				return left, nil
			}
		}
		return e.evalExpr(n.Right, sc)

	case *ast.Binary:
		return e.evalBinary(n, sc)

	case *ast.Call:
		return e.evalCall(n, sc)

	default:
		return nil, runtimeErrorf(token.Token{}, "unhandled expression %T", expr)
	}
}

func literalValue(v interface{}) object.Value {
	switch t := v.(type) {
	case nil:
		return object.Nil{}
	case bool:
		return object.Bool(t)
	case float64:
		return object.Number(t)
	case string:
		return object.String(t)
	default:
		return object.Nil{}
	}
}

func (e *Evaluator) evalBinary(n *ast.Binary, sc *scope.Scope) (object.Value, error) {
	left, err := e.evalExpr(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right, sc)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.PLUS:
		if l, ok := left.(object.Number); ok {
			if r, ok := right.(object.Number); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(object.String); ok {
			if r, ok := right.(object.String); ok {
				return l + r, nil
			}
		}
		return nil, runtimeErrorf(n.Op, "Operands must be two numbers or two strings.")

	case token.MINUS:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil

	case token.STAR:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil

	case token.SLASH:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil

	case token.GREATER:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Bool(l > r), nil

	case token.GREATER_EQUAL:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Bool(l >= r), nil

	case token.LESS:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Bool(l < r), nil

	case token.LESS_EQUAL:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Bool(l <= r), nil

	case token.EQUAL_EQUAL:
		return object.Bool(object.Equal(left, right)), nil

	case token.BANG_EQUAL:
		return object.Bool(!object.Equal(left, right)), nil
	}

	return nil, runtimeErrorf(n.Op, "Unknown operator %q.", n.Op.Lexeme)
}

func bothNumbers(op token.Token, left, right object.Value) (object.Number, object.Number, error) {
	l, lok := left.(object.Number)
	r, rok := right.(object.Number)
	if !lok || !rok {
		return 0, 0, runtimeErrorf(op, "Operands must be numbers.")
	}
	return l, r, nil
}

// undefinedNameError builds the runtime error for an unresolved
// Variable or Assign target, appending a "Did you mean" suggestion
// when a close match exists anywhere in the visible scope chain. The
// required "Undefined variable '<name>'." text is always the prefix —
// the suggestion only ever appends to it.
func (e *Evaluator) undefinedNameError(name token.Token, sc *scope.Scope) *RuntimeError {
	msg := "Undefined variable '" + name.Lexeme + "'."
	if best := closestName(name.Lexeme, sc.AllNames()); best != "" {
		msg += " Did you mean '" + best + "'?"
	}
	return runtimeErrorf(name, "%s", msg)
}

// closestName returns the candidate with the smallest case-insensitive
// edit distance to target, if that distance is at most 2 (ties go to
// the alphabetically first name), or "" when no candidate is that close.
func closestName(target string, candidates []string) string {
	best, bestDist := "", 3
	for _, c := range candidates {
		if c == target {
			continue
		}
		d := fuzzy.LevenshteinDistance(strings.ToLower(target), strings.ToLower(c))
		if d < bestDist || (d == bestDist && c < best) {
			best, bestDist = c, d
		}
	}
	return best
}
