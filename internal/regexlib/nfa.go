package regexlib

import (
	"sort"
)

// Edge is an NFA transition; Sym == Epsilon marks an ε-edge.
type Edge struct {
	Sym rune
	To  StateID
}

// NFA is a Thompson automaton. It is never modified after construction.
type NFA struct {
	Start     StateID
	Accepting StateSet
	Trans     map[StateID][]Edge
}

// States lists every state of the automaton in ascending order.
func (n *NFA) States() []StateID {
	all := n.Accepting.Clone()
	all.Add(n.Start)
	for from, edges := range n.Trans {
		all.Add(from)
		for _, e := range edges {
			all.Add(e.To)
		}
	}
	return all.IDs()
}

// Alphabet lists the symbols used on non-ε edges in ascending order.
func (n *NFA) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, edges := range n.Trans {
		for _, e := range edges {
			if e.Sym != Epsilon {
				seen[e.Sym] = struct{}{}
			}
		}
	}
	alpha := make([]rune, 0, len(seen))
	for r := range seen {
		alpha = append(alpha, r)
	}
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })
	return alpha
}

type nfaFrag struct {
	start   StateID
	accepts []StateID
}

// thompson owns the state counter and transition table of one construction.
type thompson struct {
	next  StateID
	trans map[StateID][]Edge
}

func (b *thompson) newState() StateID {
	b.next++
	return b.next - 1
}

func (b *thompson) addEdge(from StateID, sym rune, to StateID) {
	b.trans[from] = append(b.trans[from], Edge{Sym: sym, To: to})
}

// Thompson compiles an AST into an NFA. State ids start at 0 on every call.
func Thompson(root *Node) (*NFA, error) {
	b := &thompson{trans: map[StateID][]Edge{}}
	frag, err := b.build(root)
	if err != nil {
		return nil, err
	}
	return &NFA{Start: frag.start, Accepting: NewStateSet(frag.accepts...), Trans: b.trans}, nil
}

func (b *thompson) build(node *Node) (nfaFrag, error) {
	if node == nil {
		return nfaFrag{}, &Error{Kind: MalformedPostfix, Stage: StageThompson, Pos: -1, Msg: "nil node"}
	}
	switch node.Kind {
	case Empty, Literal:
		sym := node.Sym
		if node.Kind == Empty {
			sym = Epsilon
		}
		s := b.newState()
		f := b.newState()
		b.addEdge(s, sym, f)
		return nfaFrag{start: s, accepts: []StateID{f}}, nil
	case Concat:
		l, err := b.build(node.Left)
		if err != nil {
			return nfaFrag{}, err
		}
		r, err := b.build(node.Right)
		if err != nil {
			return nfaFrag{}, err
		}
		for _, a := range l.accepts {
			b.addEdge(a, Epsilon, r.start)
		}
		return nfaFrag{start: l.start, accepts: r.accepts}, nil
	case Union:
		l, err := b.build(node.Left)
		if err != nil {
			return nfaFrag{}, err
		}
		r, err := b.build(node.Right)
		if err != nil {
			return nfaFrag{}, err
		}
		s := b.newState()
		f := b.newState()
		b.addEdge(s, Epsilon, l.start)
		b.addEdge(s, Epsilon, r.start)
		for _, a := range l.accepts {
			b.addEdge(a, Epsilon, f)
		}
		for _, a := range r.accepts {
			b.addEdge(a, Epsilon, f)
		}
		return nfaFrag{start: s, accepts: []StateID{f}}, nil
	case Star:
		c, err := b.build(node.Left)
		if err != nil {
			return nfaFrag{}, err
		}
		s := b.newState()
		f := b.newState()
		b.addEdge(s, Epsilon, c.start)
		b.addEdge(s, Epsilon, f)
		for _, a := range c.accepts {
			b.addEdge(a, Epsilon, c.start)
			b.addEdge(a, Epsilon, f)
		}
		return nfaFrag{start: s, accepts: []StateID{f}}, nil
	}
	return nfaFrag{}, &Error{
		Kind:     UnsupportedOperator,
		Stage:    StageThompson,
		Pos:      -1,
		Fragment: node.String(),
		Msg:      "no construction for " + node.Kind.String() + " " + node.label(),
	}
}
