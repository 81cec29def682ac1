package list

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestListEmpty(t *testing.T) {
	l := Immutable[string]()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Error("expected fresh list to be empty, isn't")
	}
}

func TestListInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	l := Immutable[string]()
	l = l.Insert(0, "a")
	l = l.Insert(1, "b")
	l = l.Insert(0, "z")
	require.Equal(t, []string{"z", "a", "b"}, l.Slice())
	l = l.RemoveAt(1)
	require.Equal(t, []string{"z", "b"}, l.Slice())
}

func TestListGetSet(t *testing.T) {
	l := From(1, 2, 3, 4)
	cow := l.Set(2, 99)
	require.Equal(t, 3, l.Get(2), "expected old incarnation to be unchanged")
	require.Equal(t, 99, cow.Get(2))
	require.Equal(t, l.Len(), cow.Len())
}

func TestListAppendPrepend(t *testing.T) {
	l := Immutable[int]().Append(2).Append(3).Prepend(1)
	require.Equal(t, []int{1, 2, 3}, l.Slice())
}

func TestListRangeOps(t *testing.T) {
	l := From(0, 1, 2, 3, 4, 5)
	require.Equal(t, []int{2, 3, 4}, l.SubList(2, 3).Slice())
	require.Equal(t, []int{0, 1, 5}, l.RemoveRange(2, 3).Slice())
	require.Equal(t, []int{0, 9, 8, 1, 2, 3, 4, 5}, l.InsertAll(1, 9, 8).Slice())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 9, 8}, l.AppendAll(9, 8).Slice())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, l.Slice(), "receiver must stay unchanged")
}

func TestListIndexOf(t *testing.T) {
	eq := func(a, b string) bool { return a == b }
	l := From("a", "b", "c", "b")
	require.Equal(t, 1, l.IndexOf("b", eq))
	require.Equal(t, -1, l.IndexOf("x", eq))
}

func TestListRangePanics(t *testing.T) {
	l := From(1, 2, 3)
	require.Panics(t, func() { l.Get(3) })
	require.Panics(t, func() { l.Get(-1) })
	require.Panics(t, func() { l.Insert(4, 9) })
	require.Panics(t, func() { l.RemoveAt(3) })
	require.Panics(t, func() { l.SubList(1, 3) })
	require.NotPanics(t, func() { l.Insert(3, 9) }, "insert at Len() appends")
}

func TestListIterator(t *testing.T) {
	it := From("x", "y").Iterator()
	x, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "x", x)
	y, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "y", y)
	_, ok = it.Next()
	require.False(t, ok)
}

// --- Builder ---------------------------------------------------------------

func TestListBuilderRoundtrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	b := NewBuilder[int]()
	b.AppendAll(1, 2, 3)
	b.Insert(0, 0)
	b.Set(3, 9)
	b.RemoveAt(2)
	l := b.ToImmutable()
	require.Equal(t, []int{0, 1, 9}, l.Slice())
	// freezing is idempotent and does not stop the builder
	b.Append(5)
	require.Equal(t, []int{0, 1, 9}, l.Slice(), "frozen snapshot must not see later edits")
	require.Equal(t, []int{0, 1, 9, 5}, b.ToImmutable().Slice())
}

func TestListBuilderSeededSharing(t *testing.T) {
	l := From(1, 2, 3)
	b := l.Builder() // O(1), shares the root
	b.Append(4)
	require.Equal(t, []int{1, 2, 3}, l.Slice(), "snapshot must be isolated from builder edits")
	require.Equal(t, []int{1, 2, 3, 4}, b.ToImmutable().Slice())
}

func TestListBuilderRangeMutators(t *testing.T) {
	b := NewBuilder[int]()
	b.AppendAll(2, 3, 4, 5)
	b.Prepend(1)
	b.InsertAll(2, 8, 9)
	require.Equal(t, []int{1, 2, 8, 9, 3, 4, 5}, b.ToImmutable().Slice())
	b.RemoveRange(2, 2)
	require.Equal(t, []int{1, 2, 3, 4, 5}, b.ToImmutable().Slice())
	require.Panics(t, func() { b.InsertAll(9, 1) })
	require.Panics(t, func() { b.RemoveRange(4, 2) })
	it := b.Iterator()
	b.Prepend(0) // the range mutators invalidate iterators like any other edit
	require.Panics(t, func() { it.Next() })
}

func TestListBuilderIteratorInvalidation(t *testing.T) {
	b := NewBuilder[int]()
	b.AppendAll(1, 2, 3)
	it := b.Iterator()
	_, ok := it.Next()
	require.True(t, ok)
	b.Append(4) // structural mutation mid-enumeration
	require.Panics(t, func() { it.Next() })
}

func TestListBuilderSetInvalidatesIterators(t *testing.T) {
	// Set changes no shape, but the documented contract bumps the version on
	// every mutating call uniformly.
	b := NewBuilder[int]()
	b.AppendAll(1, 2, 3)
	it := b.Iterator()
	b.Set(0, 7)
	require.Panics(t, func() { it.Next() })
}

// --- Properties ------------------------------------------------------------

func TestListBuilderEquivalence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("builder path and immutable path agree", prop.ForAll(
		func(xs []int) bool {
			l := Immutable[int]()
			b := NewBuilder[int]()
			for _, x := range xs {
				i := abs(x) % (l.Len() + 1)
				l = l.Insert(i, x)
				b.Insert(i, x)
			}
			got, want := b.ToImmutable().Slice(), l.Slice()
			if len(got) != len(want) {
				return false
			}
			for i := range want {
				if got[i] != want[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
