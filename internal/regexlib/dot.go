package regexlib

import (
	"fmt"
	"io"
	"strconv"
)

// ExportDOT writes a Graphviz description of an *NFA, *DFA or *Node to w.
func ExportDOT(w io.Writer, g any) error {
	bw := &errWriter{w: w}
	bw.println("digraph G {")

	switch t := g.(type) {

	//------------------------------------------------------------------ DFA
	case *DFA:
		bw.println("    rankdir=LR;")
		for _, s := range t.States() {
			bw.printf("    q%d [shape=%s];\n", s, shape(t.Accepting.Has(s)))
			for _, c := range t.symbols() {
				if to, ok := t.Trans[s][c]; ok {
					bw.printf("    q%d -> q%d [label=%s];\n", s, to, strconv.Quote(string(c)))
				}
			}
		}
		bw.printf("    _start [shape=point]; _start -> q%d;\n", t.Start)

	//------------------------------------------------------------------ NFA
	case *NFA:
		bw.println("    rankdir=LR;")
		for _, s := range t.States() {
			bw.printf("    n%d [shape=%s];\n", s, shape(t.Accepting.Has(s)))
			for _, e := range t.Trans[s] {
				bw.printf("    n%d -> n%d [label=%s];\n", s, e.To, strconv.Quote(string(e.Sym)))
			}
		}
		bw.printf("    _start [shape=point]; _start -> n%d;\n", t.Start)

	//------------------------------------------------------------------ AST
	case *Node:
		id := 0
		var walk func(*Node) int
		walk = func(n *Node) int {
			me := id
			id++
			bw.printf("    t%d [label=%s];\n", me, strconv.Quote(n.label()))
			for _, c := range []*Node{n.Left, n.Right} {
				if c != nil {
					bw.printf("    t%d -> t%d;\n", me, walk(c))
				}
			}
			return me
		}
		if t != nil {
			walk(t)
		}

	default:
		bw.println("    /* unknown graph type */")
	}

	bw.println("}")
	return bw.err
}

func shape(accept bool) string {
	if accept {
		return "doublecircle"
	}
	return "circle"
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

func (e *errWriter) println(s string) {
	if e.err == nil {
		_, e.err = fmt.Fprintln(e.w, s)
	}
}
