package list

import (
	"fmt"

	"github.com/npillmayer/persistent/avl"
)

// List is a persistent list of elements addressed by rank. The zero value is
// an empty list, ready to use. List values are immutable: modifying operations
// return a new incarnation, leaving the receiver untouched, and incarnations
// share structure. Any number of goroutines may read the same List — or
// overlapping incarnations — concurrently without coordination.
type List[T any] struct {
	tree avl.Tree[T]
}

// Immutable creates an empty list.
func Immutable[T any]() List[T] {
	return List[T]{}
}

// From builds a list containing xs, in the given order, in O(n).
func From[T any](xs ...T) List[T] {
	// positions are the identity, so any slice is "ordered" for the bulk build
	return List[T]{tree: avl.FromOrdered(xs)}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements, in O(1).
func (l List[T]) Len() int {
	return l.tree.Len()
}

// IsEmpty is true for lists without elements.
func (l List[T]) IsEmpty() bool {
	return l.tree.IsEmpty()
}

// Get returns the element at position i. Get panics unless 0 ≤ i < Len().
func (l List[T]) Get(i int) T {
	assertThat(i >= 0 && i < l.tree.Len(), "list index out of bounds: %d with length %d", i, l.tree.Len())
	return l.tree.At(i)
}

// Set returns a list incarnation with the element at position i replaced by x.
// Size and tree shape are unchanged; only the path down to position i is
// copied. Set panics unless 0 ≤ i < Len().
func (l List[T]) Set(i int, x T) List[T] {
	assertThat(i >= 0 && i < l.tree.Len(), "list index out of bounds: %d with length %d", i, l.tree.Len())
	return List[T]{tree: l.tree.WithReplacedAt(i, x)}
}

// Insert returns a list incarnation with x inserted in front of position i;
// i == Len() appends. Insert panics unless 0 ≤ i ≤ Len().
func (l List[T]) Insert(i int, x T) List[T] {
	assertThat(i >= 0 && i <= l.tree.Len(), "list index out of bounds: %d with length %d", i, l.tree.Len())
	return List[T]{tree: l.tree.WithInsertedAt(i, x)}
}

// Append returns a list incarnation with x appended.
func (l List[T]) Append(x T) List[T] {
	return List[T]{tree: l.tree.WithInsertedAt(l.tree.Len(), x)}
}

// Prepend returns a list incarnation with x in front.
func (l List[T]) Prepend(x T) List[T] {
	return List[T]{tree: l.tree.WithInsertedAt(0, x)}
}

// RemoveAt returns a list incarnation without the element at position i.
// RemoveAt panics unless 0 ≤ i < Len().
func (l List[T]) RemoveAt(i int) List[T] {
	assertThat(i >= 0 && i < l.tree.Len(), "list index out of bounds: %d with length %d", i, l.tree.Len())
	cow, _ := l.tree.WithDeletedAt(i)
	return List[T]{tree: cow}
}

// AppendAll returns a list incarnation with all xs appended, in order.
func (l List[T]) AppendAll(xs ...T) List[T] {
	cow := l.tree
	for _, x := range xs {
		cow = cow.WithInsertedAt(cow.Len(), x)
	}
	return List[T]{tree: cow}
}

// InsertAll returns a list incarnation with all xs inserted in front of
// position i, keeping their order. InsertAll panics unless 0 ≤ i ≤ Len().
func (l List[T]) InsertAll(i int, xs ...T) List[T] {
	assertThat(i >= 0 && i <= l.tree.Len(), "list index out of bounds: %d with length %d", i, l.tree.Len())
	cow := l.tree
	for k, x := range xs {
		cow = cow.WithInsertedAt(i+k, x)
	}
	return List[T]{tree: cow}
}

// RemoveRange returns a list incarnation without the n elements starting at
// position i. RemoveRange panics unless the whole range lies within the list.
func (l List[T]) RemoveRange(i, n int) List[T] {
	assertThat(n >= 0, "negative range length: %d", n)
	assertThat(i >= 0 && i+n <= l.tree.Len(), "list range out of bounds: [%d,%d) with length %d", i, i+n, l.tree.Len())
	cow := l.tree
	for k := 0; k < n; k++ {
		cow, _ = cow.WithDeletedAt(i)
	}
	return List[T]{tree: cow}
}

// SubList returns a new list holding the n elements starting at position i.
// The result shares no structure with the receiver (it is bulk-built in O(n)).
// SubList panics unless the whole range lies within the list.
func (l List[T]) SubList(i, n int) List[T] {
	assertThat(n >= 0, "negative range length: %d", n)
	assertThat(i >= 0 && i+n <= l.tree.Len(), "list range out of bounds: [%d,%d) with length %d", i, i+n, l.tree.Len())
	xs := make([]T, 0, n)
	for k := 0; k < n; k++ {
		xs = append(xs, l.tree.At(i+k))
	}
	return From(xs...)
}

// IndexOf returns the position of the first element equal to x under eq, or
// -1 if there is none.
func (l List[T]) IndexOf(x T, eq func(a, b T) bool) int {
	index, at := -1, 0
	l.tree.Each(func(y T) bool {
		if eq(x, y) {
			index = at
			return false
		}
		at++
		return true
	})
	return index
}

// Each walks the list front to back, calling f for every element until f
// returns false.
func (l List[T]) Each(f func(T) bool) {
	l.tree.Each(f)
}

// Iterator returns an iterator over the list, front to back. The iterator
// stays valid forever, no matter what happens to derived incarnations.
func (l List[T]) Iterator() *avl.Iterator[T] {
	return l.tree.Iterator()
}

// Slice returns the elements as a freshly allocated slice.
func (l List[T]) Slice() []T {
	return l.tree.Slice()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
