package list

import "github.com/npillmayer/persistent/avl"

// Builder is a mutable front-end for building list incarnations with many
// edits while only paying for one effective diff against the snapshot it was
// created from. A builder owns a private working tree: every mutating call
// runs the same pure tree operations as the immutable path, but stores the
// resulting root back into the builder instead of wrapping it into a new
// List value.
//
// A Builder is not safe for concurrent use; all calls to one builder must be
// externally serialized. Every mutating call — including Set, which changes
// no shape — bumps the builder's version and thereby invalidates all
// iterators created earlier (their next Next() call panics).
type Builder[T any] struct {
	tree    avl.Tree[T]
	version uint32
}

// NewBuilder creates an empty list builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Builder creates a builder seeded with the receiver's elements. This is O(1):
// the builder starts out sharing the receiver's tree.
func (l List[T]) Builder() *Builder[T] {
	return &Builder[T]{tree: l.tree}
}

// ToImmutable freezes the builder's current state into a List. It may be
// called repeatedly; returned lists share structure with each other and with
// the builder's ongoing work.
func (b *Builder[T]) ToImmutable() List[T] {
	tracer().Debugf("list builder: freezing %d elements at version %d", b.tree.Len(), b.version)
	return List[T]{tree: b.tree}
}

// Len returns the current number of elements.
func (b *Builder[T]) Len() int {
	return b.tree.Len()
}

// Get returns the element at position i. Get panics unless 0 ≤ i < Len().
func (b *Builder[T]) Get(i int) T {
	assertThat(i >= 0 && i < b.tree.Len(), "list index out of bounds: %d with length %d", i, b.tree.Len())
	return b.tree.At(i)
}

// Set replaces the element at position i. Set panics unless 0 ≤ i < Len().
func (b *Builder[T]) Set(i int, x T) {
	assertThat(i >= 0 && i < b.tree.Len(), "list index out of bounds: %d with length %d", i, b.tree.Len())
	b.tree = b.tree.WithReplacedAt(i, x)
	b.version++
}

// Insert inserts x in front of position i; i == Len() appends. Insert panics
// unless 0 ≤ i ≤ Len().
func (b *Builder[T]) Insert(i int, x T) {
	assertThat(i >= 0 && i <= b.tree.Len(), "list index out of bounds: %d with length %d", i, b.tree.Len())
	b.tree = b.tree.WithInsertedAt(i, x)
	b.version++
}

// Append appends x.
func (b *Builder[T]) Append(x T) {
	b.tree = b.tree.WithInsertedAt(b.tree.Len(), x)
	b.version++
}

// Prepend inserts x in front.
func (b *Builder[T]) Prepend(x T) {
	b.tree = b.tree.WithInsertedAt(0, x)
	b.version++
}

// AppendAll appends all xs, in order.
func (b *Builder[T]) AppendAll(xs ...T) {
	for _, x := range xs {
		b.tree = b.tree.WithInsertedAt(b.tree.Len(), x)
	}
	b.version++
}

// InsertAll inserts all xs in front of position i, keeping their order.
// InsertAll panics unless 0 ≤ i ≤ Len().
func (b *Builder[T]) InsertAll(i int, xs ...T) {
	assertThat(i >= 0 && i <= b.tree.Len(), "list index out of bounds: %d with length %d", i, b.tree.Len())
	for k, x := range xs {
		b.tree = b.tree.WithInsertedAt(i+k, x)
	}
	b.version++
}

// RemoveAt removes the element at position i. RemoveAt panics unless
// 0 ≤ i < Len().
func (b *Builder[T]) RemoveAt(i int) {
	assertThat(i >= 0 && i < b.tree.Len(), "list index out of bounds: %d with length %d", i, b.tree.Len())
	b.tree, _ = b.tree.WithDeletedAt(i)
	b.version++
}

// RemoveRange removes the n elements starting at position i. RemoveRange
// panics unless the whole range lies within the list.
func (b *Builder[T]) RemoveRange(i, n int) {
	assertThat(n >= 0, "negative range length: %d", n)
	assertThat(i >= 0 && i+n <= b.tree.Len(), "list range out of bounds: [%d,%d) with length %d", i, i+n, b.tree.Len())
	for k := 0; k < n; k++ {
		b.tree, _ = b.tree.WithDeletedAt(i)
	}
	b.version++
}

// Each walks the current elements front to back until f returns false.
func (b *Builder[T]) Each(f func(T) bool) {
	b.tree.Each(f)
}

// --- Iteration over builders -----------------------------------------------

// BuilderIterator iterates over a builder's working tree, front to back. It
// captures the builder's version at creation time; if the builder mutates
// before iteration completes, the next call to Next panics.
type BuilderIterator[T any] struct {
	it      *avl.Iterator[T]
	owner   *Builder[T]
	version uint32
}

// Iterator returns an iterator over the builder's current elements.
func (b *Builder[T]) Iterator() *BuilderIterator[T] {
	return &BuilderIterator[T]{it: b.tree.Iterator(), owner: b, version: b.version}
}

// Next returns the next element, or done=false after the last one. Next
// panics if the owning builder has mutated since the iterator was created.
func (it *BuilderIterator[T]) Next() (T, bool) {
	assertThat(it.version == it.owner.version,
		"iterator invalidated by builder mutation (version %d, builder now at %d)", it.version, it.owner.version)
	return it.it.Next()
}
