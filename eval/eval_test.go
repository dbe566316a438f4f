// File: eval/eval_test.go

package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxlet/diag"
	"github.com/akashmaji946/loxlet/lexer"
	"github.com/akashmaji946/loxlet/parser"
)

// run lexes, parses and evaluates source, returning stdout and the sink.
func run(t *testing.T, source string) (string, *diag.Sink) {
	t.Helper()
	sink := diag.New()
	toks := lexer.New(source, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	var out bytes.Buffer
	if !sink.HadError() {
		New(sink, &out).Run(stmts)
	}
	return out.String(), sink
}

func TestRun_Arithmetic(t *testing.T) {
	out, sink := run(t, "print 1 + 2;")
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "3\n", out)
}

func TestRun_StringConcat(t *testing.T) {
	out, sink := run(t, `print "a" + "b";`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "ab\n", out)
}

func TestRun_BlockScoping(t *testing.T) {
	out, sink := run(t, "var a = 1; { var a = 2; print a; } print a;")
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "2\n1\n", out)
}

func TestRun_ClosureRetainsMutableAccess(t *testing.T) {
	src := "fun c() { var i = 0; fun inc() { i = i + 1; return i; } return inc; } var f = c(); print f(); print f();"
	out, sink := run(t, src)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "1\n2\n", out)
}

func TestRun_ForLoop(t *testing.T) {
	out, sink := run(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestRun_TypeMismatchIsRuntimeError(t *testing.T) {
	out, sink := run(t, `print 1 + "a";`)
	assert.Equal(t, "", out)
	require.True(t, sink.HadRuntimeError())
	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Operands must be two numbers or two strings")
	assert.Equal(t, 1, diags[0].Line)
}

func TestRun_UndefinedVariable(t *testing.T) {
	out, sink := run(t, "print x;")
	assert.Equal(t, "", out)
	require.True(t, sink.HadRuntimeError())
	assert.Contains(t, sink.Diagnostics()[0].Message, "Undefined variable 'x'.")
}

func TestRun_UndefinedVariableSuggestsCloseName(t *testing.T) {
	out, sink := run(t, "var count = 1; print coutn;")
	assert.Equal(t, "", out)
	require.True(t, sink.HadRuntimeError())
	assert.Contains(t, sink.Diagnostics()[0].Message, "Did you mean 'count'?")
}

func TestRun_Determinism(t *testing.T) {
	src := "var a = 1; var b = 2; print a + b;"
	out1, sink1 := run(t, src)
	out2, sink2 := run(t, src)
	assert.Equal(t, out1, out2)
	assert.Equal(t, sink1.HadRuntimeError(), sink2.HadRuntimeError())
}

func TestRun_ShortCircuitOr_DoesNotEvaluateRight(t *testing.T) {
	src := "fun boom() { return 1 + nil; } print true or boom();"
	out, sink := run(t, src)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "true\n", out)
}

func TestRun_ShortCircuitAnd_DoesNotEvaluateRight(t *testing.T) {
	src := "fun boom() { print x; return true; } print false and boom();"
	out, sink := run(t, src)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "false\n", out)
}

func TestRun_ArityMismatch(t *testing.T) {
	_, sink := run(t, "fun add(a, b) { return a + b; } print add(1);")
	require.True(t, sink.HadRuntimeError())
	assert.Contains(t, sink.Diagnostics()[0].Message, "Expected 2 arguments but got 1.")
}

func TestRun_CallingNonFunctionIsRuntimeError(t *testing.T) {
	_, sink := run(t, "var a = 1; print a();")
	require.True(t, sink.HadRuntimeError())
	assert.Contains(t, sink.Diagnostics()[0].Message, "Can only call functions.")
}

func TestRun_WhileLoop(t *testing.T) {
	out, sink := run(t, "var i = 0; while (i < 3) { print i; i = i + 1; }")
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestRun_FunctionFallsOffEndReturnsNil(t *testing.T) {
	out, sink := run(t, "fun f() { var a = 1; } print f();")
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "nil\n", out)
}

func TestRun_FunctionStringifiesWithName(t *testing.T) {
	out, sink := run(t, "fun add(a, b) { return a + b; } print add;")
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "<fn add>\n", out)
}

func TestRun_IntegralNumberOmitsTrailingZero(t *testing.T) {
	out, sink := run(t, "print 6 / 2;")
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "3\n", out)
}

func TestRun_IfElse(t *testing.T) {
	out, sink := run(t, `if (1 < 2) print "yes"; else print "no";`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "yes\n", out)
}

func TestRun_DivisionByZeroFollowsIEEE754(t *testing.T) {
	out, sink := run(t, "print 1 / 0;")
	assert.False(t, sink.HadRuntimeError())
	assert.True(t, strings.Contains(out, "Inf") || strings.Contains(out, "inf"))
}

func TestRun_ArithmeticRoundTrip(t *testing.T) {
	out, sink := run(t, "var a = 7; var b = 3; print (a + b) - b;")
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}
