// Package pcset models pitch-class sets: duplicate-free collections of the
// integers 0-11 with the canonical descriptors of atonal set theory (normal
// order, prime form, interval-class vector), set algebra and the T_n and I_n
// operators.
//
// A Set is not safe for concurrent use; callers serialize access.
package pcset

import (
	"sort"

	"github.com/denismitr/pcset/set"
	"github.com/denismitr/pcset/utils"
	"go.uber.org/multierr"
)

type Set struct {
	pcs *set.HashSet[PitchClass]
}

// New builds a set from the given integers. Any value outside 0-11 fails the
// whole construction; the error lists every offending value.
func New(pcs ...int) (*Set, error) {
	s := empty()

	var err error
	for _, n := range pcs {
		pc, checkErr := Check(n)
		if checkErr != nil {
			err = multierr.Append(err, checkErr)
			continue
		}
		s.pcs.Insert(pc)
	}

	if err != nil {
		return nil, err
	}

	return s, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(pcs ...int) *Set {
	s, err := New(pcs...)
	if err != nil {
		panic(err)
	}
	return s
}

func empty() *Set {
	return &Set{pcs: set.NewHashSet[PitchClass]()}
}

// Add is a no-op when pc is already present.
func (s *Set) Add(pc int) error {
	checked, err := Check(pc)
	if err != nil {
		return err
	}

	s.pcs.Insert(checked)
	return nil
}

// Remove never fails, absent values are ignored.
func (s *Set) Remove(pc int) {
	if pc < 0 || pc >= Classes {
		return
	}

	s.pcs.Remove(PitchClass(pc))
}

// Transpose applies T_n in place: every pc becomes (pc + n) mod 12.
func (s *Set) Transpose(n int) error {
	interval, err := Check(n)
	if err != nil {
		return err
	}

	s.apply(func(pc PitchClass) PitchClass {
		return (pc + interval) % Classes
	})
	return nil
}

// Invert applies I_n in place: every pc becomes (n - pc) mod 12.
func (s *Set) Invert(n int) error {
	index, err := Check(n)
	if err != nil {
		return err
	}

	s.apply(func(pc PitchClass) PitchClass {
		return PitchClass(utils.Mod(int(index)-int(pc), Classes))
	})
	return nil
}

func (s *Set) apply(f func(PitchClass) PitchClass) {
	result := set.NewHashSet[PitchClass]()
	for _, pc := range s.pcs.Items() {
		result.Insert(f(pc))
	}
	s.pcs = result
}

// Len is the cardinality of the set.
func (s *Set) Len() int {
	return s.pcs.Len()
}

func (s *Set) Has(pc int) bool {
	if pc < 0 || pc >= Classes {
		return false
	}
	return s.pcs.Has(PitchClass(pc))
}

// Items returns every member once, in no particular order. Use NormalOrder
// or Sorted when order matters.
func (s *Set) Items() []int {
	items := make([]int, 0, s.pcs.Len())
	for _, pc := range s.pcs.Items() {
		items = append(items, pc.Int())
	}
	return items
}

// Sorted returns the members in ascending order.
func (s *Set) Sorted() []int {
	items := s.Items()
	sort.Ints(items)
	return items
}

func (s *Set) Clone() *Set {
	return &Set{pcs: s.pcs.Clone()}
}

func (s *Set) Equal(other *Set) bool {
	return set.Equal[PitchClass](s.pcs, other.pcs)
}
