package regexlib

import (
	"strconv"
	"strings"
)

// Minimize returns the minimal DFA equivalent to d using Moore's partition
// refinement. Missing transitions lead to an implicit sink that takes part
// in the refinement; states equivalent to it are dropped together with the
// transitions into them, so explicit dead states (as left by Product or
// Complement) vanish as well. Each state of the result is the smallest id of
// its class in d. d is not modified.
func Minimize(d *DFA) *DFA {
	if d == nil || len(d.Trans) == 0 {
		return d
	}
	alpha := d.symbols()

	// --- initial partition: accepting / non-accepting + sink ---------------
	var acc, non []StateID
	for _, s := range d.States() {
		if d.Accepting.Has(s) {
			acc = append(acc, s)
		} else {
			non = append(non, s)
		}
	}
	non = append(non, sink)
	partition := make([][]StateID, 0, 2)
	if len(acc) != 0 {
		partition = append(partition, acc)
	}
	partition = append(partition, non)

	// --- refine until no group splits ---------------------------------------
	var groupOf map[StateID]int
	for {
		groupOf = groupIndex(partition)
		next := make([][]StateID, 0, len(partition))
		changed := false
		for _, group := range partition {
			var order []string
			sub := map[string][]StateID{}
			for _, s := range group {
				k := signature(d, s, alpha, groupOf)
				if _, ok := sub[k]; !ok {
					order = append(order, k)
				}
				sub[k] = append(sub[k], s)
			}
			if len(order) > 1 {
				changed = true
			}
			for _, k := range order {
				next = append(next, sub[k])
			}
		}
		partition = next
		if !changed {
			break
		}
	}
	dead := groupOf[sink]

	// --- collapse each group into its smallest state ------------------------
	// sink is appended last, so group[0] is a real state unless the group
	// holds only the sink.
	rep := map[StateID]StateID{}
	for _, group := range partition {
		for _, s := range group {
			rep[s] = group[0]
		}
	}
	res := &DFA{
		Start:    rep[d.Start],
		Trans:    make(map[StateID]map[rune]StateID, len(partition)),
		Alphabet: append([]rune(nil), d.Alphabet...),
	}
	if groupOf[d.Start] == dead {
		// empty language
		res.Trans[res.Start] = map[rune]StateID{}
		return res
	}
	for i, group := range partition {
		if i == dead {
			continue
		}
		r := group[0]
		trans := make(map[rune]StateID, len(d.Trans[r]))
		for sym, to := range d.Trans[r] {
			if groupOf[to] != dead {
				trans[sym] = rep[to]
			}
		}
		res.Trans[r] = trans
		for _, s := range group {
			if d.Accepting.Has(s) {
				res.Accepting.Add(r)
				break
			}
		}
	}
	return res
}

func groupIndex(partition [][]StateID) map[StateID]int {
	idx := map[StateID]int{}
	for i, group := range partition {
		for _, s := range group {
			idx[s] = i
		}
	}
	return idx
}

// signature lists, per symbol, the group holding the target of s. A
// missing transition targets the sink.
func signature(d *DFA, s StateID, alpha []rune, groupOf map[StateID]int) string {
	var b strings.Builder
	for _, sym := range alpha {
		b.WriteString(strconv.Itoa(groupOf[d.step(s, sym)]))
		b.WriteByte(',')
	}
	return b.String()
}
