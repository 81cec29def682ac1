package sortedset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/persistent/avl"
)

// ErrNotFound is returned by operations which require the presence of an
// element, like Replace. Tolerant operations (With of a duplicate, WithDeleted
// of an absent element) never produce it; they are defined as no-ops.
var ErrNotFound = errors.New("sortedset: element not found")

// Set is a persistent set of elements, ordered by a 3-way comparator. Set
// values are immutable: modifying operations return a new incarnation,
// leaving the receiver untouched, and incarnations share structure. Any
// number of goroutines may read the same Set — or overlapping incarnations —
// concurrently without coordination.
//
// Create sets through Immutable or From; the zero value carries no comparator
// and is unusable.
type Set[T any] struct {
	tree avl.Tree[T]
	cmp  func(a, b T) int
}

// Immutable creates an empty set ordered by cmp.
//
//	s := sortedset.Immutable[int](func(a, b int) int { return a - b })
//	s = s.With(42)
func Immutable[T any](cmp func(a, b T) int) Set[T] {
	assertThat(cmp != nil, "set requires a comparator")
	return Set[T]{cmp: cmp}
}

// From creates a set ordered by cmp, holding xs. Duplicates under cmp are
// dropped, first write wins.
func From[T any](cmp func(a, b T) int, xs ...T) Set[T] {
	s := Immutable(cmp)
	for _, x := range xs {
		s = s.With(x)
	}
	return s
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements, in O(1).
func (s Set[T]) Len() int {
	return s.tree.Len()
}

// IsEmpty is true for sets without elements.
func (s Set[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Contains reports whether an element equal to x is present.
func (s Set[T]) Contains(x T) bool {
	_, found := s.tree.Find(x, s.cmp)
	return found
}

// Find returns the resident element equal to x under the comparator. This
// matters when elements carry payload beyond their ordering identity.
func (s Set[T]) Find(x T) (T, bool) {
	return s.tree.Find(x, s.cmp)
}

// With returns a set incarnation with x added. Adding an element equal to a
// resident one is a no-op: the receiver is returned unchanged and the
// resident element stays (first write wins).
func (s Set[T]) With(x T) Set[T] {
	cow, _ := s.tree.With(x, s.cmp, false)
	if cow == s.tree {
		return s
	}
	return Set[T]{tree: cow, cmp: s.cmp}
}

// WithDeleted returns a set incarnation with the element equal to x removed.
// Removing an absent element is a no-op returning the receiver unchanged.
func (s Set[T]) WithDeleted(x T) Set[T] {
	cow, found := s.tree.WithDeleted(x, s.cmp)
	if !found {
		return s
	}
	return Set[T]{tree: cow, cmp: s.cmp}
}

// Replace substitutes repl for old, equivalent to a remove-then-insert pair.
// Unlike With/WithDeleted it is not tolerant: if no element equal to old is
// present, ErrNotFound is returned together with the receiver.
func (s Set[T]) Replace(old, repl T) (Set[T], error) {
	cow, found := s.tree.WithDeleted(old, s.cmp)
	if !found {
		return s, ErrNotFound
	}
	cow, _ = cow.With(repl, s.cmp, true)
	return Set[T]{tree: cow, cmp: s.cmp}, nil
}

// At returns the element of in-order rank i. At panics unless 0 ≤ i < Len().
func (s Set[T]) At(i int) T {
	assertThat(i >= 0 && i < s.tree.Len(), "set index out of bounds: %d with length %d", i, s.tree.Len())
	return s.tree.At(i)
}

// IndexOf returns the in-order rank of the element equal to x; found=false
// reports an absent element, distinguishing it from rank 0.
func (s Set[T]) IndexOf(x T) (int, bool) {
	return s.tree.Rank(x, s.cmp)
}

// Min returns the least element, or found=false for an empty set.
func (s Set[T]) Min() (T, bool) {
	if s.tree.IsEmpty() {
		var none T
		return none, false
	}
	return s.tree.At(0), true
}

// Max returns the greatest element, or found=false for an empty set.
func (s Set[T]) Max() (T, bool) {
	if s.tree.IsEmpty() {
		var none T
		return none, false
	}
	return s.tree.At(s.tree.Len() - 1), true
}

// WithComparator rebuilds the set under a different total order, in O(n).
// Elements which the new comparator considers equal collapse, first (in old
// order) write wins.
func (s Set[T]) WithComparator(cmp func(a, b T) int) Set[T] {
	assertThat(cmp != nil, "set requires a comparator")
	xs := s.tree.Slice()
	sort.SliceStable(xs, func(i, j int) bool { return cmp(xs[i], xs[j]) < 0 })
	uniq := xs[:0]
	for i, x := range xs {
		if i == 0 || cmp(x, uniq[len(uniq)-1]) != 0 {
			uniq = append(uniq, x)
		}
	}
	tracer().Debugf("set.WithComparator: re-keyed %d elements into %d", len(xs), len(uniq))
	return Set[T]{tree: avl.FromOrdered(uniq), cmp: cmp}
}

// Each walks the set in comparator order, calling f for every element until
// f returns false.
func (s Set[T]) Each(f func(T) bool) {
	s.tree.Each(f)
}

// Iterator returns an iterator over the set in comparator order. The iterator
// stays valid forever, no matter what happens to derived incarnations.
func (s Set[T]) Iterator() *avl.Iterator[T] {
	return s.tree.Iterator()
}

// Slice returns the elements in comparator order as a freshly allocated slice.
func (s Set[T]) Slice() []T {
	return s.tree.Slice()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("sortedset: "+msg, msgargs...)
		panic(msg)
	}
}
