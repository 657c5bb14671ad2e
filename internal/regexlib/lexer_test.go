package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks, err := tokenize("a*(bε)|c^ ")
	require.NoError(t, err)

	want := []token{
		{kind: tOperand, sym: 'a', pos: 0},
		{kind: tOperator, sym: '*', pos: 1},
		{kind: tLParen, sym: '(', pos: 2},
		{kind: tOperand, sym: 'b', pos: 3},
		{kind: tEpsilon, sym: Epsilon, pos: 4},
		{kind: tRParen, sym: ')', pos: 6},
		{kind: tOperator, sym: '|', pos: 7},
		{kind: tOperand, sym: 'c', pos: 8},
		{kind: tOperator, sym: '^', pos: 9},
		{kind: tOperand, sym: ' ', pos: 10},
	}
	assert.Equal(t, want, toks)
	assert.Equal(t, "a*(bε)|c^ ", render(toks))
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := tokenize("")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{"\xff", 0},
		{"ab\xfe", 2},
		{"ε\xc3", 2},
	}
	for _, tt := range tests {
		_, err := tokenize(tt.input)
		require.Error(t, err, "tokenize %q", tt.input)
		assert.ErrorIs(t, err, ErrMalformedPattern)

		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, StageTokenize, e.Stage)
		assert.Equal(t, tt.pos, e.Pos, "tokenize %q", tt.input)
	}

	toks, err := tokenize("�")
	require.NoError(t, err)
	assert.Equal(t, []token{{kind: tOperand, sym: '�', pos: 0}}, toks)
}

func TestInvalidUTF8NeverMatches(t *testing.T) {
	_, err := Compile("\xff")
	assert.ErrorIs(t, err, ErrMalformedPattern)

	re := newRE(t, "�")
	acc(t, re, "�", true)
	acc(t, re, "\xfe", false)
	assert.Equal(t, []Span{{Start: 4, End: 7}}, re.FindAll("\xfe\xff\xfe\xc3�"))
}
