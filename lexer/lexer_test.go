package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neilm5/pyrite/token"
)

func tokenTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	toks, err := New(src).Tokenize()
	require.Nil(t, err)
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestArithmeticOperators(t *testing.T) {
	types := tokenTypes(t, "2 + 3 * 4")
	assert.Equal(t, []token.Type{token.INT, token.PLUS, token.INT, token.MUL, token.INT, token.EOF}, types)
}

func TestMultiCharOperators(t *testing.T) {
	assert.Equal(t, []token.Type{token.INT, token.LTE, token.INT, token.EOF}, tokenTypes(t, "1 <= 2"))
	assert.Equal(t, []token.Type{token.INT, token.LT, token.INT, token.EOF}, tokenTypes(t, "1 < 2"))
	assert.Equal(t, []token.Type{token.INT, token.NEQ, token.INT, token.EOF}, tokenTypes(t, "1 != 2"))
	assert.Equal(t, []token.Type{token.INT, token.EQ, token.INT, token.EOF}, tokenTypes(t, "1 == 2"))
	assert.Equal(t, []token.Type{token.INT, token.APPROX, token.INT, token.EOF}, tokenTypes(t, "1 ~= 2"))
	assert.Equal(t, []token.Type{token.INT, token.AVERAGE, token.INT, token.EOF}, tokenTypes(t, "1 ~ 2"))
	assert.Equal(t, []token.Type{token.ID, token.INCR, token.EOF}, tokenTypes(t, "x++"))
	assert.Equal(t, []token.Type{token.ID, token.DECR, token.EOF}, tokenTypes(t, "x--"))
}

func TestBareBangIsSilentlySkipped(t *testing.T) {
	// A stray '!' not followed by '=' produces no token at all, and NOT
	// is never emitted by the lexer.
	assert.Equal(t, []token.Type{token.INT, token.EOF}, tokenTypes(t, "!5"))
}

func TestUnterminatedBlockCommentConsumesToEOF(t *testing.T) {
	toks, err := New("var x = 1 /# dangling").Tokenize()
	require.Nil(t, err)
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	assert.Equal(t, []token.Type{token.VAR, token.ID, token.ASSIGN, token.INT, token.EOF}, types)
}

func TestMixedQuoteStringCloses(t *testing.T) {
	toks, err := New(`'foo"`).Tokenize()
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "foo", toks[0].Literal)
}

func TestUnterminatedStringIsSyntaxError(t *testing.T) {
	_, err := New(`"unterminated`).Tokenize()
	require.NotNil(t, err)
	assert.Equal(t, "Syntax Error", err.Kind)
}

func TestNumberLexing(t *testing.T) {
	toks, err := New("42 3.14").Tokenize()
	require.Nil(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.INT, toks[0].Type)
	assert.EqualValues(t, 42, toks[0].Int)
	assert.Equal(t, token.FLOAT, toks[1].Type)
	assert.InDelta(t, 3.14, toks[1].Float, 1e-9)
}

func TestKeywordsAndBuiltinsLex(t *testing.T) {
	types := tokenTypes(t, "var con over true false null if elif else while for as do func import from")
	want := []token.Type{
		token.VAR, token.CONST, token.OVER, token.BOOL, token.BOOL, token.NULL,
		token.IF, token.ELIF, token.ELSE, token.WHILE, token.FOR, token.AS, token.DO,
		token.FUNC, token.IMPORT, token.FROM, token.EOF,
	}
	assert.Equal(t, want, types)

	types = tokenTypes(t, "exec return input len type str int flt bool abs pow")
	want = []token.Type{
		token.EXEC, token.RETURN, token.INPUT, token.LEN, token.TYPE, token.STRCON,
		token.INTCON, token.FLOATCON, token.BOOLCON, token.ABS, token.POW, token.EOF,
	}
	assert.Equal(t, want, types)
}

func TestIllegalCharacterIsSyntaxError(t *testing.T) {
	_, err := New("@").Tokenize()
	require.NotNil(t, err)
	assert.Equal(t, "Syntax Error", err.Kind)
}

func TestLineCommentSkipsToNewline(t *testing.T) {
	types := tokenTypes(t, "1 # trailing comment\n+ 2")
	assert.Equal(t, []token.Type{token.INT, token.PLUS, token.INT, token.EOF}, types)
}
