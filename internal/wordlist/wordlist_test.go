package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{`b ab "" ba`, []string{"b", "ab", "", "ba"}},
		{"a,b,,c", []string{"a", "b", "c"}},
		{"  a\tb\n", []string{"a", "b"}},
		{`"a b" "c,d"`, []string{"a b", "c,d"}},
		{"ε aε", []string{"ε", "aε"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		got, err := Split(tt.input)
		require.NoError(t, err, "split %q", tt.input)
		assert.Equal(t, tt.expected, got, "split %q", tt.input)
	}
}

func TestSplitUnterminatedQuote(t *testing.T) {
	_, err := Split(`a "open`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word list")
}
