package regexlib

import (
	"sort"
	"strings"
)

// Regexp turns d back into a pattern of this package by state elimination
// over a generalized automaton with a fresh entry and exit state. The
// second result is false when d accepts nothing.
func (d *DFA) Regexp() (string, bool) {
	states := d.States()
	n := len(states)
	if n == 0 {
		return "", false
	}
	index := make(map[StateID]int, n)
	for i, s := range states {
		index[s] = i
	}
	entry, exit := n, n+1

	// R[i][j] is the label of the edge i→j; absent keys mean no edge.
	R := make([]map[int]string, n+2)
	for i := range R {
		R[i] = map[int]string{}
	}
	edge := func(i, j int, expr string) {
		if old, ok := R[i][j]; ok && old != expr {
			R[i][j] = old + "|" + expr
			return
		}
		R[i][j] = expr
	}

	// 1. direct edges
	for _, s := range states {
		for _, c := range d.symbols() {
			if to, ok := d.Trans[s][c]; ok {
				edge(index[s], index[to], string(c))
			}
		}
	}
	edge(entry, index[d.Start], string(Epsilon))
	for _, s := range d.Accepting.IDs() {
		if i, ok := index[s]; ok {
			edge(i, exit, string(Epsilon))
		}
	}

	// 2. eliminate the DFA states one by one
	for k := 0; k < n; k++ {
		loop := ""
		if rkk, ok := R[k][k]; ok {
			loop = starred(rkk)
		}
		for i := range R {
			rik, ok := R[i][k]
			if !ok || i == k {
				continue
			}
			for _, j := range sortedKeys(R[k]) {
				if j == k {
					continue
				}
				edge(i, j, concat(rik, loop, R[k][j]))
			}
		}
		for i := range R {
			delete(R[i], k)
		}
		R[k] = map[int]string{}
	}

	expr, ok := R[entry][exit]
	return expr, ok
}

// --- helpers ----------------------------------------------------------------

func concat(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" || p == string(Epsilon) {
			continue
		}
		b.WriteString(regexAlt(p))
	}
	if b.Len() == 0 {
		return string(Epsilon)
	}
	return b.String()
}

func starred(s string) string {
	switch {
	case s == string(Epsilon):
		return ""
	case len([]rune(s)) == 1:
		return s + "*"
	}
	return "(" + s + ")*"
}

// regexAlt parenthesizes s when it has a top-level alternation.
func regexAlt(s string) string {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				return "(" + s + ")"
			}
		}
	}
	return s
}

func sortedKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
