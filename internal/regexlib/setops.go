package regexlib

import "sort"

// sink stands for the implicit dead state of a partial DFA in a product.
const sink StateID = -1

func (d *DFA) step(s StateID, sym rune) StateID {
	if s == sink {
		return sink
	}
	if to, ok := d.Trans[s][sym]; ok {
		return to
	}
	return sink
}

// Product runs a and b in lockstep over the union of their alphabets; a
// product state accepts when op holds for the acceptance of its components.
// States are numbered in discovery order.
func Product(a, b *DFA, op func(bool, bool) bool) *DFA {
	type pair struct{ i, j StateID }
	alpha := unionRunes(a.symbols(), b.symbols())
	dead := op(false, false)

	res := &DFA{Trans: map[StateID]map[rune]StateID{}, Alphabet: alpha}
	ids := map[pair]StateID{}
	add := func(p pair) StateID {
		id := StateID(len(ids))
		ids[p] = id
		res.Trans[id] = map[rune]StateID{}
		if op(a.Accepting.Has(p.i), b.Accepting.Has(p.j)) {
			res.Accepting.Add(id)
		}
		return id
	}

	start := pair{a.Start, b.Start}
	res.Start = add(start)
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := ids[p]
		for _, c := range alpha {
			np := pair{a.step(p.i, c), b.step(p.j, c)}
			if np.i == sink && np.j == sink && !dead {
				continue
			}
			id, exists := ids[np]
			if !exists {
				id = add(np)
				queue = append(queue, np)
			}
			res.Trans[cur][c] = id
		}
	}
	return res
}

func unionRunes(a, b []rune) []rune {
	m := map[rune]struct{}{}
	for _, r := range a {
		m[r] = struct{}{}
	}
	for _, r := range b {
		m[r] = struct{}{}
	}
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func IntersectDFA(a, b *DFA) *DFA { return Product(a, b, func(x, y bool) bool { return x && y }) }

func UnionDFA(a, b *DFA) *DFA { return Product(a, b, func(x, y bool) bool { return x || y }) }

func DifferenceDFA(a, b *DFA) *DFA { return Product(a, b, func(x, y bool) bool { return x && !y }) }

// Equivalent reports whether a and b accept the same language.
func Equivalent(a, b *DFA) bool {
	return Product(a, b, func(x, y bool) bool { return x != y }).Accepting.Empty()
}

// Complement accepts every string over the alphabet of d extended with
// alphabet that d rejects. Strings using other symbols are still rejected.
func Complement(d *DFA, alphabet ...rune) *DFA {
	alpha := unionRunes(d.symbols(), alphabet)
	states := d.States()
	dead := StateID(0)
	if len(states) > 0 {
		dead = states[len(states)-1] + 1
	}

	res := &DFA{Start: d.Start, Trans: map[StateID]map[rune]StateID{}, Alphabet: alpha}
	needDead := false
	for _, s := range states {
		trans := make(map[rune]StateID, len(alpha))
		for _, c := range alpha {
			if to, ok := d.Trans[s][c]; ok {
				trans[c] = to
			} else {
				trans[c] = dead
				needDead = true
			}
		}
		res.Trans[s] = trans
		if !d.Accepting.Has(s) {
			res.Accepting.Add(s)
		}
	}
	if needDead || len(states) == 0 {
		trans := make(map[rune]StateID, len(alpha))
		for _, c := range alpha {
			trans[c] = dead
		}
		res.Trans[dead] = trans
		res.Accepting.Add(dead)
	}
	return res
}
