package regexlib

import (
	"encoding/json"
	"strconv"
)

type jsonEdge struct {
	Symbol string  `json:"symbol"`
	To     StateID `json:"to"`
}

type jsonNFA struct {
	Start       StateID               `json:"start"`
	Accepts     StateSet              `json:"accepts"`
	States      []StateID             `json:"states"`
	Transitions map[string][]jsonEdge `json:"transitions"`
}

func (n *NFA) MarshalJSON() ([]byte, error) {
	out := jsonNFA{
		Start:       n.Start,
		Accepts:     n.Accepting,
		States:      n.States(),
		Transitions: make(map[string][]jsonEdge, len(n.Trans)),
	}
	for from, edges := range n.Trans {
		list := make([]jsonEdge, 0, len(edges))
		for _, e := range edges {
			list = append(list, jsonEdge{Symbol: string(e.Sym), To: e.To})
		}
		out.Transitions[strconv.Itoa(int(from))] = list
	}
	return json.Marshal(out)
}

type jsonDFA struct {
	Start       StateID                       `json:"start"`
	Accepts     StateSet                      `json:"accepts"`
	Alphabet    []string                      `json:"alphabet"`
	Transitions map[string]map[string]StateID `json:"transitions"`
	Subsets     map[string]StateSet           `json:"subsets,omitempty"`
}

func (d *DFA) MarshalJSON() ([]byte, error) {
	out := jsonDFA{
		Start:       d.Start,
		Accepts:     d.Accepting,
		Alphabet:    make([]string, 0, len(d.Alphabet)),
		Transitions: make(map[string]map[string]StateID, len(d.Trans)),
	}
	for _, r := range d.Alphabet {
		out.Alphabet = append(out.Alphabet, string(r))
	}
	for from, trans := range d.Trans {
		m := make(map[string]StateID, len(trans))
		for sym, to := range trans {
			m[string(sym)] = to
		}
		out.Transitions[strconv.Itoa(int(from))] = m
	}
	if d.Subsets != nil {
		out.Subsets = make(map[string]StateSet, len(d.Subsets))
		for id, set := range d.Subsets {
			out.Subsets[strconv.Itoa(int(id))] = set
		}
	}
	return json.Marshal(out)
}

type jsonNode struct {
	Kind   string `json:"kind"`
	Symbol string `json:"symbol,omitempty"`
	Left   *Node  `json:"left,omitempty"`
	Right  *Node  `json:"right,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonNode{Kind: n.Kind.String(), Left: n.Left, Right: n.Right}
	if n.Kind == Literal || n.Kind == Reserved {
		out.Symbol = string(n.Sym)
	}
	return json.Marshal(out)
}
