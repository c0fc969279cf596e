package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/lexer"
	"github.com/neilm5/pyrite/token"
)

func parseSrc(t *testing.T, src string) []ast.Node {
	t.Helper()
	toks, lexErr := lexer.New(src).Tokenize()
	require.Nil(t, lexErr)
	nodes, err := Parse(toks)
	require.Nil(t, err)
	return nodes
}

func TestFlatPrecedenceLeftAssociative(t *testing.T) {
	// 2 + 3 * 4 must parse as ((2 + 3) * 4): + and * share a single flat,
	// left-associative tier, so * never binds tighter than +.
	nodes := parseSrc(t, "2 + 3 * 4")
	require.Len(t, nodes, 1)
	top, ok := nodes[0].(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, token.MUL, top.Op)

	left, ok := top.Left.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, left.Op)
}

func TestFlatTierIsLeftAssociativeAcrossOperators(t *testing.T) {
	// 10 - 2 + 1 must associate left: ((10 - 2) + 1), since +/- share one
	// flat tier rather than their own precedence levels.
	nodes := parseSrc(t, "10 - 2 + 1")
	require.Len(t, nodes, 1)
	top, ok := nodes[0].(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, top.Op)

	left, ok := top.Left.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, token.MINUS, left.Op)
}

func TestIfElifElse(t *testing.T) {
	nodes := parseSrc(t, `if true { var x = 1 } elif false { var x = 2 } else { var x = 3 }`)
	require.Len(t, nodes, 1)
	ifNode, ok := nodes[0].(*ast.If)
	require.True(t, ok)
	assert.Len(t, ifNode.Body, 1)
	assert.Len(t, ifNode.ElifClause, 1)
	assert.Len(t, ifNode.ElseBody, 1)
}

func TestForLoopGrammar(t *testing.T) {
	nodes := parseSrc(t, `for var i = 0 as i < 3 do i++ { exec(i) }`)
	require.Len(t, nodes, 1)
	forNode, ok := nodes[0].(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.VarName)
}

func TestFunctionDefAndCall(t *testing.T) {
	nodes := parseSrc(t, `func add(a, b) { return(a + b) } add(1, 2)`)
	require.Len(t, nodes, 2)

	def, ok := nodes[0].(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "add", def.Name)
	assert.Equal(t, []string{"a", "b"}, def.Params)

	call, ok := nodes[1].(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestPrefixIncrConsumesIdentifier(t *testing.T) {
	// A prefix ++/-- must consume its identifier token as part of the
	// Incr/Decr node, not leave it dangling for the next statement.
	nodes := parseSrc(t, "++x 1")
	require.Len(t, nodes, 2)
	incr, ok := nodes[0].(*ast.Incr)
	require.True(t, ok)
	assert.Equal(t, "x", incr.VarName)
	assert.True(t, incr.IsPrefix)

	lit, ok := nodes[1].(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, token.INT, lit.Token.Type)
}

func TestListLiteralAndAccess(t *testing.T) {
	nodes := parseSrc(t, `var xs = [1, 2, 3] xs[1]`)
	require.Len(t, nodes, 2)
	access, ok := nodes[1].(*ast.ListAccess)
	require.True(t, ok)
	_, ok = access.Name.(*ast.VarAccess)
	assert.True(t, ok)
}

func TestUnexpectedTrailingTokenIsSyntaxError(t *testing.T) {
	toks, lexErr := lexer.New("1 )").Tokenize()
	require.Nil(t, lexErr)
	_, err := Parse(toks)
	require.NotNil(t, err)
	assert.Equal(t, "Syntax Error", err.Kind)
}
