package hashset

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// mod4 deliberately provokes hash collisions: every int maps to one of four
// hash codes.
func mod4() Hasher[int] {
	return Comparable(func(x int) uint64 {
		return uint64(((x % 4) + 4) % 4)
	})
}

func sortedSlice(s Set[int]) []int {
	xs := s.Slice()
	sort.Ints(xs)
	return xs
}

func TestHashSetBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hashset")
	defer teardown()
	//
	s := From(Ints(), 1, 2, 3, 2)
	require.Equal(t, 3, s.Len(), "duplicate 2 must be ignored")
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(9))
	s = s.WithDeleted(2)
	require.False(t, s.Contains(2))
	require.Equal(t, 2, s.Len())
}

func TestHashSetTolerantNoops(t *testing.T) {
	s := From(Ints(), 1, 2)
	require.Equal(t, 2, s.With(1).Len(), "duplicate add is a no-op")
	require.Equal(t, 2, s.WithDeleted(9).Len(), "absent remove is a no-op")
}

func TestHashSetCollisionBucket(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hashset")
	defer teardown()
	//
	s := From(mod4(), 1, 5, 9) // all three share hash code 1
	require.Equal(t, 3, s.Len())
	require.Equal(t, 1, s.tree.Len(), "expected one collision bucket node for hash 1")
	for _, x := range []int{1, 5, 9} {
		require.True(t, s.Contains(x))
	}
	require.False(t, s.Contains(13), "13 shares the hash but is not a member")
	// other hash groups stay undisturbed by bucket-internal edits
	s = s.With(2).With(7)
	require.Equal(t, 3, s.tree.Len())
	cow := s.WithDeleted(5)
	require.Equal(t, []int{1, 2, 7, 9}, sortedSlice(cow))
	require.Equal(t, 3, cow.tree.Len(), "removing a bucket entry must not move other hash groups")
	require.True(t, s.Contains(5), "older incarnation keeps its element")
}

func TestHashSetLastBucketEntryRemovesNode(t *testing.T) {
	s := From(mod4(), 1, 2)
	s = s.WithDeleted(1)
	require.Equal(t, 1, s.tree.Len(), "emptied bucket must take its node along")
	require.Equal(t, []int{2}, s.Slice())
}

func TestHashSetSnapshotIsolation(t *testing.T) {
	a := From(Strings(), "x", "y")
	b := a.With("z")
	require.Equal(t, 2, a.Len())
	require.Equal(t, 3, b.Len())
	require.False(t, a.Contains("z"))
}

func TestHashSetAlgebra(t *testing.T) {
	a := From(mod4(), 1, 2, 3, 4)
	b := From(mod4(), 3, 4, 5, 6)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, sortedSlice(a.Union(b)))
	require.Equal(t, []int{3, 4}, sortedSlice(a.Intersect(b)))
	require.Equal(t, []int{1, 2}, sortedSlice(a.Except(b)))
	require.Equal(t, []int{1, 2, 5, 6}, sortedSlice(a.SymmetricExcept(b)))
	require.Equal(t, []int{1, 2, 3, 4}, sortedSlice(a), "operands must stay unchanged")
}

func TestHashSetAlgebraCrossBucket(t *testing.T) {
	// 1 and 5 collide under mod4; only one of them is shared
	a := From(mod4(), 1, 5)
	b := From(mod4(), 5, 9)
	require.Equal(t, []int{1, 5, 9}, sortedSlice(a.Union(b)))
	require.Equal(t, []int{5}, sortedSlice(a.Intersect(b)))
	require.Equal(t, []int{1}, sortedSlice(a.Except(b)))
	require.Equal(t, []int{1, 9}, sortedSlice(a.SymmetricExcept(b)))
}

func TestHashSetPredicates(t *testing.T) {
	a := From(mod4(), 1, 5)
	b := From(mod4(), 1, 5, 9, 2)
	require.True(t, a.IsSubsetOf(b))
	require.True(t, b.IsSupersetOf(a))
	require.False(t, b.IsSubsetOf(a))
	require.True(t, a.Overlaps(b))
	require.False(t, a.Overlaps(From(mod4(), 2, 3)))
	require.True(t, a.SetEquals(From(mod4(), 5, 1)))
	require.False(t, a.SetEquals(b))
}

func TestHashSetWithHasher(t *testing.T) {
	s := From(mod4(), 1, 5, 9)
	cow := s.WithHasher(Ints())
	require.Equal(t, 3, cow.Len())
	require.Equal(t, 3, cow.tree.Len(), "xxHash should spread the former collisions")
	for _, x := range []int{1, 5, 9} {
		require.True(t, cow.Contains(x))
	}
}

func TestHashSetIterator(t *testing.T) {
	s := From(mod4(), 1, 5, 2)
	seen := map[int]bool{}
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		seen[x] = true
	}
	require.Equal(t, map[int]bool{1: true, 5: true, 2: true}, seen)
}

func TestHashSetBytesHasher(t *testing.T) {
	s := From(Bytes(), []byte("a"), []byte("b"))
	require.True(t, s.Contains([]byte("a")))
	require.False(t, s.Contains([]byte("c")))
	require.Equal(t, 2, s.With([]byte("b")).Len())
}

// --- Builder ---------------------------------------------------------------

func TestHashSetBuilderRoundtrip(t *testing.T) {
	b := NewBuilder(mod4())
	require.True(t, b.Add(1))
	require.True(t, b.Add(5))
	require.False(t, b.Add(1), "duplicate add reports false")
	require.True(t, b.Remove(5))
	require.False(t, b.Remove(9), "absent remove reports false")
	s := b.ToImmutable()
	require.Equal(t, []int{1}, s.Slice())
	b.Add(2)
	require.Equal(t, []int{1}, s.Slice(), "frozen snapshot must not see later edits")
	require.Equal(t, 2, b.ToImmutable().Len())
}

func TestHashSetBuilderSetOps(t *testing.T) {
	b := From(mod4(), 1, 2, 3).Builder()
	b.ExceptWith(From(mod4(), 2))
	b.UnionWith(From(mod4(), 9))
	require.Equal(t, []int{1, 3, 9}, sortedSlice(b.ToImmutable()))
	b.IntersectWith(From(mod4(), 1, 9))
	require.Equal(t, []int{1, 9}, sortedSlice(b.ToImmutable()))
}

func TestHashSetBuilderIteratorInvalidation(t *testing.T) {
	b := From(mod4(), 1, 5, 9).Builder()
	it := b.Iterator()
	_, ok := it.Next()
	require.True(t, ok)
	b.Add(2)
	require.Panics(t, func() { it.Next() })
}
