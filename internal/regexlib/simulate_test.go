package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilonClosure(t *testing.T) {
	n := nfaOf(t, "a*b.")

	in := NewStateSet(2)
	closure := EpsilonClosure(n, in)
	assert.Equal(t, []StateID{0, 2, 3, 4}, closure.IDs())
	assert.Equal(t, []StateID{2}, in.IDs(), "input set modified")

	assert.Equal(t, []StateID{0, 1, 3, 4}, EpsilonClosure(n, NewStateSet(1)).IDs())
	assert.Equal(t, []StateID{5}, EpsilonClosure(n, NewStateSet(5)).IDs())
	assert.True(t, EpsilonClosure(n, StateSet{}).Empty())
}

func TestMove(t *testing.T) {
	n := nfaOf(t, "a*b.")
	start := EpsilonClosure(n, NewStateSet(n.Start))

	assert.Equal(t, []StateID{1}, Move(n, start, 'a').IDs())
	assert.Equal(t, []StateID{5}, Move(n, start, 'b').IDs())
	assert.True(t, Move(n, start, 'c').Empty())
	assert.True(t, Move(n, start, Epsilon).Empty())
}

func TestAcceptsInterface(t *testing.T) {
	re := newRE(t, "ab*")
	for _, a := range []Acceptor{re.NFA(), re.RawDFA(), re.DFA()} {
		assert.True(t, Accepts(a, "abbb"))
		assert.False(t, Accepts(a, "ba"))
	}
}
