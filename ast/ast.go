// File: ast/ast.go

// Package ast defines the tagged-variant expression and statement
// nodes produced by the parser and walked by the evaluator. There is
// no Visitor interface: eval and ast.Print both type-switch directly
// over the concrete node types, the idiomatic shape for a Go
// tree-walker with a closed, rarely-changing node set.
package ast

import "github.com/akashmaji946/loxlet/token"

// Expr is implemented by every expression node. The method is
// unexported so only this package can mint new expression types,
// letting eval's type switches be exhaustive by construction.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node, mirroring Expr.
type Stmt interface {
	stmtNode()
}

// Binary is `left op right` for the arithmetic/comparison/equality
// operators; unlike Logical it always evaluates both operands.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Unary is `op right` for `!` and unary `-`.
type Unary struct {
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized expression, kept as its own node (rather
// than collapsed away) so Print can reproduce the parentheses.
type Grouping struct {
	Inner Expr
}

// Literal wraps a constant value produced directly by the parser from
// a NUMBER, STRING, "true", "false" or "nil" token.
type Literal struct {
	Value interface{} // float64, string, bool, or nil
}

// Variable is a bare identifier used as an expression, resolved against
// the environment chain at evaluation time.
type Variable struct {
	Name token.Token
}

// Assign is `name = value`; it evaluates to the assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Logical is `left and right` / `left or right`. Kept distinct from
// Binary because it short-circuits: the right operand is not evaluated
// when the left operand already determines the result.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Call is `callee(args...)`. ClosingParen is retained for line-accurate
// arity-mismatch diagnostics.
type Call struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

func (*Binary) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Call) exprNode()     {}

// ExpressionStmt evaluates an expression and discards its value.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and writes its stringified value
// followed by a newline to the evaluator's output sink.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a name in the current scope, optionally initialized.
// Initializer is nil when the declaration has no `= expression` part,
// in which case the variable is bound to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

// BlockStmt executes its statements in a fresh child scope.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes Then when Cond is truthy, otherwise Else if present.
// Else is nil when there is no `else` clause.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt repeats Body for as long as Cond evaluates truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FunctionStmt declares a named function: the parameter list and body
// are captured as-is and paired with the defining scope at evaluation
// time to form a closure.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt unwinds to the nearest enclosing function call, carrying
// Value's result (or nil if Value is nil, meaning a bare `return;`).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
