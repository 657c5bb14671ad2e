package regexlib

import "sort"

// DFA is a deterministic automaton with a partial transition function: a
// missing symbol leads to an implicit, non-accepting sink. Every state has
// an entry in Trans.
type DFA struct {
	Start     StateID
	Accepting StateSet
	Trans     map[StateID]map[rune]StateID
	Alphabet  []rune

	// Subsets maps each state of a subset-constructed DFA to the NFA states
	// it stands for. Nil for other DFAs.
	Subsets map[StateID]StateSet
}

// States lists the states in ascending order.
func (d *DFA) States() []StateID {
	ids := make([]StateID, 0, len(d.Trans))
	for s := range d.Trans {
		ids = append(ids, s)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (d *DFA) NumStates() int { return len(d.Trans) }

// Next returns the target of s on sym.
func (d *DFA) Next(s StateID, sym rune) (StateID, bool) {
	t, ok := d.Trans[s][sym]
	return t, ok
}

// SubsetConstruction determinizes n. States are numbered in the order they
// are discovered by a breadth-first exploration, the start state being 0.
func SubsetConstruction(n *NFA) *DFA {
	alpha := n.Alphabet()
	initSet := EpsilonClosure(n, NewStateSet(n.Start))

	d := &DFA{
		Start:    0,
		Trans:    map[StateID]map[rune]StateID{},
		Alphabet: alpha,
		Subsets:  map[StateID]StateSet{},
	}
	ids := map[string]StateID{}
	add := func(set StateSet) StateID {
		id := StateID(len(ids))
		ids[set.Key()] = id
		d.Trans[id] = map[rune]StateID{}
		d.Subsets[id] = set
		if set.Intersects(n.Accepting) {
			d.Accepting.Add(id)
		}
		return id
	}
	add(initSet)

	queue := []StateSet{initSet}
	for len(queue) > 0 {
		curSet := queue[0]
		queue = queue[1:]
		cur := ids[curSet.Key()]
		for _, sym := range alpha {
			moveSet := Move(n, curSet, sym)
			if moveSet.Empty() {
				continue
			}
			clo := EpsilonClosure(n, moveSet)
			target, seen := ids[clo.Key()]
			if !seen {
				target = add(clo)
				queue = append(queue, clo)
			}
			d.Trans[cur][sym] = target
		}
	}
	return d
}

// symbols is the alphabet plus any symbol used by a transition, sorted.
func (d *DFA) symbols() []rune {
	return unionRunes(d.Alphabet, d.usedRunes())
}

func (d *DFA) usedRunes() []rune {
	var used []rune
	for _, trans := range d.Trans {
		for sym := range trans {
			used = append(used, sym)
		}
	}
	return used
}
