// File: ast/printer_test.go

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxlet/token"
)

func TestPrint_LiteralVariants(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{1.0, "1"},
		{1.5, "1.5"},
		{"hello", `"hello"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Print(&Literal{Value: tt.value}))
	}
}

func TestPrint_BinaryHasNoImplicitParens(t *testing.T) {
	expr := &Binary{
		Left:  &Literal{Value: 1.0},
		Op:    token.New(token.PLUS, "+", 1),
		Right: &Literal{Value: 2.0},
	}
	assert.Equal(t, "1 + 2", Print(expr))
}

func TestPrint_GroupingAddsParens(t *testing.T) {
	inner := &Binary{
		Left:  &Literal{Value: 1.0},
		Op:    token.New(token.PLUS, "+", 1),
		Right: &Literal{Value: 2.0},
	}
	assert.Equal(t, "(1 + 2)", Print(&Grouping{Inner: inner}))
}

func TestPrint_Call(t *testing.T) {
	expr := &Call{
		Callee: &Variable{Name: token.New(token.IDENTIFIER, "add", 1)},
		Args:   []Expr{&Literal{Value: 1.0}, &Literal{Value: 2.0}},
	}
	assert.Equal(t, "add(1, 2)", Print(expr))
}
