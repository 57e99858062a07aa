package pcset_test

import (
	"testing"

	"github.com/denismitr/pcset"
	"github.com/stretchr/testify/assert"
)

func TestSet_Algebra(t *testing.T) {
	a := pcset.MustNew(10, 4, 9, 6)
	b := pcset.MustNew(4, 1, 8, 2)

	t.Run("union", func(t *testing.T) {
		assert.Equal(t, "PCSet: {1, 2, 4, 6, 8, 9, 10}", a.Union(b).String())
	})

	t.Run("difference", func(t *testing.T) {
		assert.Equal(t, "PCSet: {6, 9, 10}", a.Difference(b).String())
		assert.Equal(t, "PCSet: {8, 1, 2}", b.Difference(a).String())
	})

	t.Run("intersection", func(t *testing.T) {
		assert.Equal(t, "PCSet: {4}", a.Intersection(b).String())
	})

	t.Run("operands are never mutated", func(t *testing.T) {
		assert.Equal(t, []int{4, 6, 9, 10}, a.Sorted())
		assert.Equal(t, []int{1, 2, 4, 8}, b.Sorted())
	})

	t.Run("results are independent of the operands", func(t *testing.T) {
		u := a.Union(b)
		u.Remove(4)
		assert.True(t, a.Has(4))
		assert.True(t, b.Has(4))
	})
}

func TestSet_SubsetSuperset(t *testing.T) {
	triad := pcset.MustNew(0, 4, 7)
	seventh := pcset.MustNew(0, 4, 7, 10)
	empty := pcset.MustNew()

	assert.True(t, triad.IsSubset(seventh))
	assert.False(t, seventh.IsSubset(triad))
	assert.True(t, seventh.IsSuperset(triad))
	assert.False(t, triad.IsSuperset(seventh))

	assert.True(t, triad.IsSubset(triad))
	assert.True(t, triad.IsSuperset(triad))
	assert.True(t, empty.IsSubset(triad))
	assert.True(t, triad.IsSuperset(empty))
}

func TestSet_AlgebraProperties(t *testing.T) {
	everySet(t, func(t *testing.T, pcs []int) {
		a := pcset.MustNew(pcs...)
		b := pcset.MustNew(pcs...)
		if err := b.Transpose(len(pcs) % pcset.Classes); err != nil {
			t.Fatal(err)
		}
		b.Remove(0)

		u := a.Union(b)
		if !u.IsSuperset(a) || !u.IsSuperset(b) {
			t.Fatalf("union of %v and %v is not a superset of both", a, b)
		}

		if a.Difference(b).Intersection(b).Len() != 0 {
			t.Fatalf("difference of %v and %v intersects %v", a, b, b)
		}

		if !a.Intersection(b).IsSubset(a) || !a.Intersection(b).IsSubset(b) {
			t.Fatalf("intersection of %v and %v is not a subset of both", a, b)
		}
	})
}

func TestSet_Complement(t *testing.T) {
	t.Run("complement of the diatonic collection is the pentatonic", func(t *testing.T) {
		s := pcset.MustNew(0, 2, 4, 5, 7, 9, 11)
		assert.Equal(t, []int{1, 3, 6, 8, 10}, s.Complement().Sorted())
	})

	t.Run("complement of the empty set is the aggregate", func(t *testing.T) {
		assert.Equal(t, pcset.Classes, pcset.MustNew().Complement().Len())
	})

	t.Run("complement twice restores the set", func(t *testing.T) {
		everySet(t, func(t *testing.T, pcs []int) {
			s := pcset.MustNew(pcs...)
			c := s.Complement()
			if !c.Complement().Equal(s) {
				t.Fatalf("complement of complement of %v", s)
			}
			if s.Union(c).Len() != pcset.Classes || s.Intersection(c).Len() != 0 {
				t.Fatalf("%v and %v do not partition the aggregate", s, c)
			}
		})
	})
}
