package avl

// Cmp is a 3-way comparator over T: negative for a<b, zero for equal elements,
// positive for a>b. A comparator has to define a total order and must stay
// stable for the lifetime of every tree built under it; the tree does not
// (cannot) detect contract violations, they yield undefined ordering.
type Cmp[T any] func(a, b T) int

// Tree is a persistent AVL tree with size-annotated nodes. An empty instance
// is usable as an empty tree, i.e. this is legal:
//
//	tree, _ := avl.Tree[int]{}.With(42, cmp, false)
//
// returning a tree containing the single element 42.
//
// Tree values are immutable: every With… operation returns a new incarnation,
// leaving the receiver untouched. Incarnations share all unedited subtrees,
// which makes them cheap and safe to read from concurrent goroutines.
type Tree[T any] struct {
	root *node[T]
}

// FromOrdered builds a balanced tree over an already-ordered slice in O(n).
// Ordering (with respect to whatever comparator the caller will use later on)
// is not verified. The slice is not retained.
func FromOrdered[T any](xs []T) Tree[T] {
	return Tree[T]{root: build(xs)}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements, in O(1) from the root's cached size.
func (t Tree[T]) Len() int {
	return int(t.root.len())
}

// IsEmpty is true for trees without elements.
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the tree (0 for an empty tree). It is bounded
// by 1.44·log2(n+2) and mainly of diagnostic interest.
func (t Tree[T]) Height() int {
	return int(t.root.ht())
}

// Find locates an element equal to x under cmp, if present.
// If no such element exists, the zero value for T is returned, together with
// found=false.
func (t Tree[T]) Find(x T, cmp Cmp[T]) (T, bool) {
	return search(t.root, x, cmp)
}

// Rank returns the number of elements ordered before x, i.e. x's 0-based
// in-order position. found=false reports an absent element, distinguishing it
// from rank 0.
func (t Tree[T]) Rank(x T, cmp Cmp[T]) (int, bool) {
	r, found := rankOf(t.root, x, cmp)
	return int(r), found
}

// At returns the element of in-order rank i. At panics unless 0 ≤ i < Len().
func (t Tree[T]) At(i int) T {
	assertThat(i >= 0 && i < t.Len(), "tree index out of bounds: %d with length %d", i, t.Len())
	return at(t.root, uint32(i))
}

// With returns a tree incarnation with x inserted at its comparator-defined
// position. If an equal element is already present, the outcome depends on
// overwrite: true replaces the resident element's payload (in a new
// incarnation, nevertheless), false keeps the tree as it is — in that case
// the receiver itself is returned, so callers may detect the no-op cheaply.
// grown reports whether the element count went up by one.
func (t Tree[T]) With(x T, cmp Cmp[T], overwrite bool) (_ Tree[T], grown bool) {
	cow, grown := insert(t.root, x, cmp, overwrite)
	if cow == t.root {
		return t, false
	}
	tracer().Debugf("tree.With: new root = %s", cow)
	return Tree[T]{root: cow}, grown
}

// WithDeleted returns a tree incarnation with the element equal to x removed.
// Removing an absent element is a no-op returning the receiver unchanged and
// found=false.
func (t Tree[T]) WithDeleted(x T, cmp Cmp[T]) (_ Tree[T], found bool) {
	cow, ok := remove(t.root, x, cmp)
	if !ok {
		return t, false
	}
	tracer().Debugf("tree.WithDeleted: new root = %s", cow)
	return Tree[T]{root: cow}, true
}

// WithInsertedAt returns a tree incarnation with x inserted in front of the
// element of rank i; i == Len() appends. Positions, not keys, are the identity
// for this operation, therefore no duplicate policy applies. WithInsertedAt
// panics unless 0 ≤ i ≤ Len().
func (t Tree[T]) WithInsertedAt(i int, x T) Tree[T] {
	assertThat(i >= 0 && i <= t.Len(), "tree index out of bounds: %d with length %d", i, t.Len())
	return Tree[T]{root: insertAt(t.root, uint32(i), x)}
}

// WithDeletedAt returns a tree incarnation with the element of rank i removed,
// together with that element. WithDeletedAt panics unless 0 ≤ i < Len().
func (t Tree[T]) WithDeletedAt(i int) (Tree[T], T) {
	assertThat(i >= 0 && i < t.Len(), "tree index out of bounds: %d with length %d", i, t.Len())
	cow, old := removeAt(t.root, uint32(i))
	return Tree[T]{root: cow}, old
}

// WithReplacedAt returns a tree incarnation with the payload of rank i swapped
// for x. Only the path down to rank i is copied; shape and size are unchanged.
// WithReplacedAt panics unless 0 ≤ i < Len().
func (t Tree[T]) WithReplacedAt(i int, x T) Tree[T] {
	assertThat(i >= 0 && i < t.Len(), "tree index out of bounds: %d with length %d", i, t.Len())
	return Tree[T]{root: replaceAt(t.root, uint32(i), x)}
}

// Each walks the tree in-order, calling f for every element until f returns
// false.
func (t Tree[T]) Each(f func(T) bool) {
	each(t.root, f)
}

// Slice returns the elements in-order as a freshly allocated slice.
func (t Tree[T]) Slice() []T {
	xs := make([]T, 0, t.Len())
	each(t.root, func(x T) bool {
		xs = append(xs, x)
		return true
	})
	return xs
}
