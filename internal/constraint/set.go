package constraint

import "sort"

// Set is an unordered collection of candidate ids.
type Set map[Candidate]struct{}

// NewSet builds a set from the given candidates.
func NewSet(cs ...Candidate) Set {
	s := make(Set, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

func (s Set) Add(c Candidate)      { s[c] = struct{}{} }
func (s Set) Remove(c Candidate)   { delete(s, c) }
func (s Set) Has(c Candidate) bool { _, ok := s[c]; return ok }
func (s Set) Len() int             { return len(s) }

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same candidates.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the candidates in ascending id order.
func (s Set) Sorted() []Candidate {
	out := make([]Candidate, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
