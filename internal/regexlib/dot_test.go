package regexlib

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDOTDFA(t *testing.T) {
	var b strings.Builder
	require.NoError(t, ExportDOT(&b, newRE(t, "a").DFA()))

	want := `digraph G {
    rankdir=LR;
    q0 [shape=circle];
    q0 -> q1 [label="a"];
    q1 [shape=doublecircle];
    _start [shape=point]; _start -> q0;
}
`
	assert.Equal(t, want, b.String())
}

func TestExportDOTNFA(t *testing.T) {
	var b strings.Builder
	require.NoError(t, ExportDOT(&b, nfaOf(t, "a*b.")))
	out := b.String()

	assert.Contains(t, out, `n0 -> n1 [label="a"];`)
	assert.Contains(t, out, `n3 -> n4 [label="ε"];`)
	assert.Contains(t, out, "n5 [shape=doublecircle];")
	assert.Contains(t, out, "_start -> n2;")
}

func TestExportDOTAST(t *testing.T) {
	ast, err := ParsePostfix("ab|*")
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, ExportDOT(&b, ast))
	out := b.String()
	for _, line := range []string{
		`t0 [label="*"];`,
		`t1 [label="|"];`,
		`t2 [label="a"];`,
		"t1 -> t2;",
		`t3 [label="b"];`,
		"t1 -> t3;",
		"t0 -> t1;",
	} {
		assert.Contains(t, out, line)
	}
}

func TestExportDOTUnknown(t *testing.T) {
	var b strings.Builder
	require.NoError(t, ExportDOT(&b, 42))
	assert.Contains(t, b.String(), "unknown graph type")
}

type failWriter struct{ n int }

var errDisk = errors.New("disk full")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errDisk
	}
	w.n--
	return len(p), nil
}

func TestExportDOTWriteError(t *testing.T) {
	w := &failWriter{n: 2}
	err := ExportDOT(w, newRE(t, "ab").DFA())
	assert.ErrorIs(t, err, errDisk)
}
