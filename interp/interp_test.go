// File: interp/interp_test.go

package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ExitOKOnSuccess(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := New(&out)
	code := in.Run("print 1 + 2;", &errBuf)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "3\n", out.String())
	assert.Empty(t, errBuf.String())
}

func TestRun_ExitCompileErrorOnUnterminatedString(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := New(&out)
	code := in.Run(`print "hi;`, &errBuf)
	assert.Equal(t, ExitCompileError, code)
	assert.Contains(t, errBuf.String(), "Unterminated string")
}

func TestRun_ExitRuntimeErrorOnTypeMismatch(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := New(&out)
	code := in.Run(`print 1 + "a";`, &errBuf)
	assert.Equal(t, ExitRuntimeError, code)
	assert.Contains(t, errBuf.String(), "Operands must be two numbers or two strings")
	assert.Contains(t, errBuf.String(), "[line 1]")
}

func TestRun_GlobalScopePersistsAcrossCalls(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := New(&out)
	require := assert.New(t)

	code := in.Run("var a = 1;", &errBuf)
	require.Equal(ExitOK, code)
	in.ResetLine()

	out.Reset()
	code = in.Run("print a;", &errBuf)
	require.Equal(ExitOK, code)
	require.Equal("1\n", out.String())
}

func TestRun_RuntimeErrorOnOneLineDoesNotWipeGlobals(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := New(&out)

	code := in.Run("var a = 1; print b;", &errBuf)
	assert.Equal(t, ExitRuntimeError, code)
	in.ResetLine()

	out.Reset()
	errBuf.Reset()
	code = in.Run("print a;", &errBuf)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "1\n", out.String())
}
