package regexlib

import (
	"container/list"
	"unicode/utf8"
)

// Acceptor decides membership of a string.
type Acceptor interface {
	Accepts(w string) bool
}

// Accepts runs w through a (an *NFA or a *DFA).
func Accepts(a Acceptor, w string) bool { return a.Accepts(w) }

// EpsilonClosure returns states together with every state reachable from
// them through ε-edges alone. The input set is left untouched.
func EpsilonClosure(n *NFA, states StateSet) StateSet {
	closure := states.Clone()
	stack := list.New()
	for _, s := range states.IDs() {
		stack.PushBack(s)
	}
	for stack.Len() > 0 {
		s := stack.Remove(stack.Back()).(StateID)
		for _, e := range n.Trans[s] {
			if e.Sym == Epsilon && !closure.Has(e.To) {
				closure.Add(e.To)
				stack.PushBack(e.To)
			}
		}
	}
	return closure
}

// Move returns the targets of the non-ε edges labelled sym leaving states.
func Move(n *NFA, states StateSet, sym rune) StateSet {
	var res StateSet
	if sym == Epsilon {
		return res
	}
	for _, s := range states.IDs() {
		for _, e := range n.Trans[s] {
			if e.Sym == sym {
				res.Add(e.To)
			}
		}
	}
	return res
}

// Accepts simulates the NFA on w. Invalid UTF-8 is rejected.
func (n *NFA) Accepts(w string) bool {
	if !utf8.ValidString(w) {
		return false
	}
	cur := EpsilonClosure(n, NewStateSet(n.Start))
	for _, r := range w {
		cur = EpsilonClosure(n, Move(n, cur, r))
		if cur.Empty() {
			return false
		}
	}
	return cur.Intersects(n.Accepting)
}

// Accepts walks the DFA on w. A missing transition rejects, as does
// invalid UTF-8.
func (d *DFA) Accepts(w string) bool {
	if !utf8.ValidString(w) {
		return false
	}
	cur := d.Start
	for _, r := range w {
		next, ok := d.Next(cur, r)
		if !ok {
			return false
		}
		cur = next
	}
	return d.Accepting.Has(cur)
}
