package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nfaOf(t *testing.T, postfix string) *NFA {
	t.Helper()
	ast, err := ParsePostfix(postfix)
	require.NoError(t, err)
	n, err := Thompson(ast)
	require.NoError(t, err)
	return n
}

func TestThompsonLiteral(t *testing.T) {
	n := nfaOf(t, "a")
	assert.Equal(t, StateID(0), n.Start)
	assert.Equal(t, []StateID{1}, n.Accepting.IDs())
	assert.Equal(t, map[StateID][]Edge{0: {{Sym: 'a', To: 1}}}, n.Trans)
	assert.Equal(t, []rune{'a'}, n.Alphabet())
}

func TestThompsonEmpty(t *testing.T) {
	n := nfaOf(t, "ε")
	assert.Equal(t, map[StateID][]Edge{0: {{Sym: Epsilon, To: 1}}}, n.Trans)
	assert.Empty(t, n.Alphabet())
}

func TestThompsonUnion(t *testing.T) {
	n := nfaOf(t, "ab|")
	assert.Equal(t, StateID(4), n.Start)
	assert.Equal(t, []StateID{5}, n.Accepting.IDs())
	assert.ElementsMatch(t, []Edge{{Epsilon, 0}, {Epsilon, 2}}, n.Trans[4])
	assert.Equal(t, []Edge{{Epsilon, 5}}, n.Trans[1])
	assert.Equal(t, []Edge{{Epsilon, 5}}, n.Trans[3])
}

func TestThompsonStarConcat(t *testing.T) {
	n := nfaOf(t, "a*b.")
	assert.Equal(t, StateID(2), n.Start)
	assert.Equal(t, []StateID{5}, n.Accepting.IDs())
	assert.Equal(t, []StateID{0, 1, 2, 3, 4, 5}, n.States())

	assert.Equal(t, []Edge{{'a', 1}}, n.Trans[0])
	assert.ElementsMatch(t, []Edge{{Epsilon, 0}, {Epsilon, 3}}, n.Trans[1])
	assert.ElementsMatch(t, []Edge{{Epsilon, 0}, {Epsilon, 3}}, n.Trans[2])
	assert.Equal(t, []Edge{{Epsilon, 4}}, n.Trans[3])
	assert.Equal(t, []Edge{{'b', 5}}, n.Trans[4])
	assert.Empty(t, n.Trans[5])
}

// every state lies on a path from the start to the accepting state.
func TestThompsonStatesUseful(t *testing.T) {
	for _, pat := range samplePatterns {
		n := newRE(t, pat).NFA()

		reach := map[StateID]bool{n.Start: true}
		queue := []StateID{n.Start}
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]
			for _, e := range n.Trans[s] {
				if !reach[e.To] {
					reach[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
		for _, s := range n.States() {
			assert.True(t, reach[s], "pattern %q state %d unreachable", pat, s)
		}
		assert.Equal(t, 1, n.Accepting.Len(), "pattern %q", pat)
	}
}

func TestThompsonFreshCounter(t *testing.T) {
	a := nfaOf(t, "ab.")
	b := nfaOf(t, "ab.")
	assert.Equal(t, a.States(), b.States())
	assert.Equal(t, a.Start, b.Start)
}

func TestThompsonUnsupported(t *testing.T) {
	for _, pfx := range []string{"ab^", "a+", "a?", "ab^c."} {
		ast, err := ParsePostfix(pfx)
		require.NoError(t, err)
		_, err = Thompson(ast)
		assert.ErrorIs(t, err, ErrUnsupportedOperator, "postfix %q", pfx)
	}
}

func TestThompsonNil(t *testing.T) {
	_, err := Thompson(nil)
	assert.ErrorIs(t, err, ErrMalformedPostfix)

	_, err = Thompson(&Node{Kind: Concat, Left: &Node{Kind: Literal, Sym: 'a'}})
	assert.ErrorIs(t, err, ErrMalformedPostfix)
}
