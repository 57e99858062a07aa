package pcset

import "github.com/denismitr/pcset/set"

func (s *Set) IsSubset(other *Set) bool {
	return set.IsSubset[PitchClass](s.pcs, other.pcs)
}

func (s *Set) IsSuperset(other *Set) bool {
	return set.IsSubset[PitchClass](other.pcs, s.pcs)
}

// Union returns a new set; neither operand is modified.
func (s *Set) Union(other *Set) *Set {
	return &Set{pcs: s.pcs.Union(other.pcs)}
}

// Intersection returns a new set; neither operand is modified.
func (s *Set) Intersection(other *Set) *Set {
	return &Set{pcs: s.pcs.Intersection(other.pcs)}
}

// Difference returns the members of s missing from other as a new set.
func (s *Set) Difference(other *Set) *Set {
	return &Set{pcs: s.pcs.Difference(other.pcs)}
}

// Complement returns the pitch classes not in s.
func (s *Set) Complement() *Set {
	return aggregate().Difference(s)
}

func aggregate() *Set {
	s := empty()
	for pc := PitchClass(0); pc < Classes; pc++ {
		s.pcs.Insert(pc)
	}
	return s
}
