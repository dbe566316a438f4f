// File: ast/printer.go

package ast

import (
	"bytes"
	"fmt"
	"strings"
)

// Print renders an expression back into Lox surface syntax, e.g.
// `(1 + 2) * 3`. Crucially it reproduces parentheses only where the
// original AST holds an explicit Grouping node — Binary/Logical/Call
// never add parentheses of their own — so that re-parsing the output
// reproduces the same precedence structure rather than accumulating
// an extra layer of grouping on every round trip: parsing a printed
// expression and printing the result again must reproduce exactly the
// same string.
func Print(e Expr) string {
	var buf bytes.Buffer
	writeExpr(&buf, e)
	return buf.String()
}

func writeExpr(buf *bytes.Buffer, e Expr) {
	switch n := e.(type) {
	case *Literal:
		writeLiteral(buf, n.Value)
	case *Grouping:
		buf.WriteByte('(')
		writeExpr(buf, n.Inner)
		buf.WriteByte(')')
	case *Unary:
		buf.WriteString(n.Op.Lexeme)
		writeExpr(buf, n.Right)
	case *Binary:
		writeExpr(buf, n.Left)
		buf.WriteByte(' ')
		buf.WriteString(n.Op.Lexeme)
		buf.WriteByte(' ')
		writeExpr(buf, n.Right)
	case *Logical:
		writeExpr(buf, n.Left)
		buf.WriteByte(' ')
		buf.WriteString(n.Op.Lexeme)
		buf.WriteByte(' ')
		writeExpr(buf, n.Right)
	case *Variable:
		buf.WriteString(n.Name.Lexeme)
	case *Assign:
		buf.WriteString(n.Name.Lexeme)
		buf.WriteString(" = ")
		writeExpr(buf, n.Value)
	case *Call:
		writeExpr(buf, n.Callee)
		buf.WriteByte('(')
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			var inner bytes.Buffer
			writeExpr(&inner, a)
			args[i] = inner.String()
		}
		buf.WriteString(strings.Join(args, ", "))
		buf.WriteByte(')')
	default:
		fmt.Fprintf(buf, "<unknown-expr %T>", e)
	}
}

func writeLiteral(buf *bytes.Buffer, value interface{}) {
	switch v := value.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		fmt.Fprintf(buf, "%t", v)
	case string:
		buf.WriteByte('"')
		buf.WriteString(v)
		buf.WriteByte('"')
	default:
		fmt.Fprintf(buf, "%v", v)
	}
}
