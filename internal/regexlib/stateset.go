package regexlib

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

type StateID int

// StateSet is an unordered set of automaton states. The zero value is an
// empty set ready to use.
type StateSet struct {
	bits *bitset.BitSet
}

func NewStateSet(ids ...StateID) StateSet {
	var s StateSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *StateSet) Add(id StateID) {
	if s.bits == nil {
		s.bits = bitset.New(uint(id) + 1)
	}
	s.bits.Set(uint(id))
}

func (s StateSet) Has(id StateID) bool {
	return s.bits != nil && id >= 0 && s.bits.Test(uint(id))
}

func (s StateSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

func (s StateSet) Empty() bool { return s.Len() == 0 }

// IDs returns the members in ascending order.
func (s StateSet) IDs() []StateID {
	if s.bits == nil {
		return nil
	}
	ids := make([]StateID, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		ids = append(ids, StateID(i))
	}
	return ids
}

// Intersects reports whether s and o share a state.
func (s StateSet) Intersects(o StateSet) bool {
	if s.bits == nil || o.bits == nil {
		return false
	}
	return s.bits.IntersectionCardinality(o.bits) > 0
}

func (s StateSet) Clone() StateSet {
	if s.bits == nil {
		return StateSet{}
	}
	return StateSet{bits: s.bits.Clone()}
}

// Key identifies the set independently of insertion order and of the
// capacity of the underlying bitset.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, id := range s.IDs() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

func (s StateSet) String() string { return "{" + s.Key() + "}" }

func (s StateSet) MarshalJSON() ([]byte, error) {
	ids := s.IDs()
	if ids == nil {
		ids = []StateID{}
	}
	return json.Marshal(ids)
}

func (s *StateSet) UnmarshalJSON(data []byte) error {
	var ids []StateID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewStateSet(ids...)
	return nil
}
