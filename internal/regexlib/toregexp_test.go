package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexpRoundTrip(t *testing.T) {
	for _, pat := range samplePatterns {
		m := newRE(t, pat).DFA()
		expr, ok := m.Regexp()
		require.True(t, ok, "pattern %q", pat)

		back, err := Compile(expr)
		require.NoError(t, err, "pattern %q gave %q", pat, expr)
		assert.True(t, Equivalent(m, back.DFA()), "pattern %q gave %q", pat, expr)
	}
}

func TestRegexpSimple(t *testing.T) {
	expr, ok := newRE(t, "ab").DFA().Regexp()
	require.True(t, ok)
	assert.Equal(t, "ab", expr)

	expr, ok = newRE(t, "").DFA().Regexp()
	require.True(t, ok)
	assert.Equal(t, "ε", expr)
}

func TestRegexpEmptyLanguage(t *testing.T) {
	d := IntersectDFA(newRE(t, "a").DFA(), newRE(t, "b").DFA())
	_, ok := d.Regexp()
	assert.False(t, ok)

	_, ok = (&DFA{Trans: map[StateID]map[rune]StateID{}}).Regexp()
	assert.False(t, ok)
}
