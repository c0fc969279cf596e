package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neilm5/pyrite/lexer"
	"github.com/neilm5/pyrite/object"
	"github.com/neilm5/pyrite/parser"
)

func evalSrc(t *testing.T, ev *Evaluator, src string) object.Object {
	t.Helper()
	toks, lexErr := lexer.New(src).Tokenize()
	require.Nil(t, lexErr)
	nodes, err := parser.Parse(toks)
	require.Nil(t, err)
	return ev.EvalProgram(nodes)
}

func TestFlatPrecedenceExample(t *testing.T) {
	ev := New()
	result := evalSrc(t, ev, "var x = 2 + 3 * 4")
	require.False(t, object.IsError(result))
	assert.Equal(t, int64(20), result.(*object.Integer).Value)
}

func TestRecursiveFactorial(t *testing.T) {
	ev := New()
	evalSrc(t, ev, `
func fact(n) {
	if n <= 1 { return(1) }
	return(n * fact(n - 1))
}`)
	result := evalSrc(t, ev, "fact(5)")
	require.False(t, object.IsError(result))
	assert.Equal(t, int64(120), result.(*object.Integer).Value)
}

func TestForLoopPrintsAndLeavesFinalValue(t *testing.T) {
	var buf bytes.Buffer
	ev := New()
	ev.SetWriter(&buf)

	evalSrc(t, ev, `for var i = 0 as i < 3 do i++ { exec(i) }`)
	assert.Equal(t, "0\n1\n2\n", buf.String())

	result := evalSrc(t, ev, "i")
	require.False(t, object.IsError(result))
	assert.Equal(t, int64(3), result.(*object.Integer).Value)
}

func TestListIndexOutOfRangeIsRuntimeError(t *testing.T) {
	ev := New()
	evalSrc(t, ev, "var a = [1, 2, 3]")
	result := evalSrc(t, ev, "a[5]")
	require.True(t, object.IsError(result))
	assert.Equal(t, "Runtime Error", result.(*object.Error).Kind)
}

func TestApproxOperator(t *testing.T) {
	ev := New()
	r1 := evalSrc(t, ev, "1.005 ~= 1.0")
	assert.Equal(t, object.TRUE, r1)

	r2 := evalSrc(t, ev, "1.02 ~= 1.0")
	assert.Equal(t, object.FALSE, r2)
}

func TestAverageOperator(t *testing.T) {
	ev := New()
	result := evalSrc(t, ev, "4 ~ 6")
	require.False(t, object.IsError(result))
	assert.Equal(t, 5.0, result.(*object.Float).Value)
}

func TestFunctionCallSnapshotRestoresOuterBindings(t *testing.T) {
	ev := New()
	evalSrc(t, ev, "var x = 1")
	evalSrc(t, ev, `func mutate() { over x = 99 }`)
	evalSrc(t, ev, "mutate()")

	result := evalSrc(t, ev, "x")
	require.False(t, object.IsError(result))
	assert.Equal(t, int64(1), result.(*object.Integer).Value)
}

func TestConstantReassignmentIsRuntimeError(t *testing.T) {
	ev := New()
	evalSrc(t, ev, "con pi = 3")
	result := evalSrc(t, ev, "var pi = 4")
	require.True(t, object.IsError(result))
	assert.Equal(t, "Runtime Error", result.(*object.Error).Kind)
}

func TestEagerBooleanOperatorsReturnRawOperand(t *testing.T) {
	ev := New()
	result := evalSrc(t, ev, `0 | "fallback"`)
	require.False(t, object.IsError(result))
	assert.Equal(t, "fallback", result.(*object.String).Value)
}

func TestIncrementPrefixVsPostfix(t *testing.T) {
	ev := New()
	evalSrc(t, ev, "var n = 5")
	postfix := evalSrc(t, ev, "n++")
	assert.Equal(t, int64(5), postfix.(*object.Integer).Value)
	prefix := evalSrc(t, ev, "++n")
	assert.Equal(t, int64(7), prefix.(*object.Integer).Value)
}

func TestZeroDivisionError(t *testing.T) {
	ev := New()
	result := evalSrc(t, ev, "1 / 0")
	require.True(t, object.IsError(result))
	assert.Equal(t, "Zero Division Error", result.(*object.Error).Kind)
}

func TestUndefinedVariableError(t *testing.T) {
	ev := New()
	result := evalSrc(t, ev, "y")
	require.True(t, object.IsError(result))
	assert.Contains(t, result.(*object.Error).Detail, "not defined")
}

func TestNegativeListIndexWrapsFromEnd(t *testing.T) {
	ev := New()
	evalSrc(t, ev, "var a = [1, 2, 3]")
	result := evalSrc(t, ev, "a[-1]")
	require.False(t, object.IsError(result))
	assert.Equal(t, int64(3), result.(*object.Integer).Value)
}

func TestSurplusFunctionArgsAreIgnored(t *testing.T) {
	ev := New()
	evalSrc(t, ev, "func add(a, b) { return(a + b) }")
	result := evalSrc(t, ev, "add(1, 2, 3)")
	require.False(t, object.IsError(result))
	assert.Equal(t, int64(3), result.(*object.Integer).Value)
}

func TestTypeBuiltinUsesHostStyleNames(t *testing.T) {
	ev := New()
	assert.Equal(t, "str", evalSrc(t, ev, `type("x")`).(*object.String).Value)
	assert.Equal(t, "NoneType", evalSrc(t, ev, `type(null)`).(*object.String).Value)
	assert.Equal(t, "int", evalSrc(t, ev, `type(1)`).(*object.String).Value)
}
