package regexlib

import "unicode/utf8"

// Span is the byte range [Start, End) of a match inside a text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FindAll returns the leftmost-longest non-overlapping matches of r in text.
// Empty matches are skipped.
func (r *Regex) FindAll(text string) []Span {
	var out []Span
	for i := 0; i < len(text); {
		l := r.longestAt(text, i)
		if l <= 0 {
			_, sz := utf8.DecodeRuneInString(text[i:])
			i += sz
			continue
		}
		out = append(out, Span{Start: i, End: i + l})
		i += l
	}
	return out
}

// longestAt walks the minimal DFA from text[i:] and returns the length of the
// longest accepted prefix, or -1 when none is accepted. Invalid UTF-8 ends
// the walk.
func (r *Regex) longestAt(text string, i int) int {
	d := r.dfa
	cur := d.Start
	best := -1
	if d.Accepting.Has(cur) {
		best = 0
	}
	for j, c := range text[i:] {
		if c == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i+j:]); size == 1 {
				break
			}
		}
		next, ok := d.Next(cur, c)
		if !ok {
			break
		}
		cur = next
		if d.Accepting.Has(cur) {
			best = j + utf8.RuneLen(c)
		}
	}
	return best
}
