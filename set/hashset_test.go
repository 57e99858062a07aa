package set_test

import (
	"github.com/denismitr/pcset/set"
	"github.com/stretchr/testify/assert"
	"sort"
	"testing"
)

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		assert.True(t, s.Remove("bar"))

		items := s.Items()
		sort.Strings(items)

		assert.Equal(t, []string{"123", "baz", "foo"}, items)
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		s.Remove("foo")

		items := s.Items()
		sort.Strings(items)
		assert.Equal(t, []string{"123", "bar", "baz"}, items)

		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
		assert.True(t, s.Has("bar"))
		assert.True(t, s.Has("baz"))
	})

	t.Run("remove missing item is a no-op", func(t *testing.T) {
		s := set.HashSetOf(1, 2, 3)

		assert.False(t, s.Remove(7))
		assert.Equal(t, 3, s.Len())
	})
}

func TestHashSet_Insert(t *testing.T) {
	t.Run("duplicates collapse", func(t *testing.T) {
		s := set.NewHashSet[int]()
		assert.True(t, s.Insert(3))
		assert.False(t, s.Insert(3))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("insert slice reports modification", func(t *testing.T) {
		s := set.HashSetOf(3)

		assert.True(t, s.InsertSlice([]int{3, 9}))
		assert.False(t, s.InsertSlice([]int{9}))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("clear empties the set", func(t *testing.T) {
		s := set.HashSetOf(1, 2, 3)
		s.Clear()
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Items())
	})
}

func TestHashSet_Algebra(t *testing.T) {
	a := set.HashSetOf(1, 2, 3, 4)
	b := set.HashSetOf(3, 4, 5)

	sorted := func(s *set.HashSet[int]) []int {
		items := s.Items()
		sort.Ints(items)
		return items
	}

	t.Run("union", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted(a.Union(b)))
	})

	t.Run("intersection", func(t *testing.T) {
		assert.Equal(t, []int{3, 4}, sorted(a.Intersection(b)))
	})

	t.Run("difference", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, sorted(a.Difference(b)))
		assert.Equal(t, []int{5}, sorted(b.Difference(a)))
	})

	t.Run("operands are untouched", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4}, sorted(a))
		assert.Equal(t, []int{3, 4, 5}, sorted(b))
	})

	t.Run("clone is independent", func(t *testing.T) {
		c := a.Clone()
		c.Insert(11)
		assert.False(t, a.Has(11))
		assert.True(t, c.Has(11))
	})
}
