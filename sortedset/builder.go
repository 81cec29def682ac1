package sortedset

import "github.com/npillmayer/persistent/avl"

// Builder is a mutable front-end for building set incarnations with many
// edits while only paying for one effective diff against the snapshot it was
// created from. A builder owns a private working tree: every mutating call
// runs the same pure tree operations as the immutable path, but stores the
// resulting root back into the builder instead of wrapping it into a new Set
// value.
//
// A Builder is not safe for concurrent use; all calls to one builder must be
// externally serialized. Every mutating call bumps the builder's version and
// thereby invalidates all iterators created earlier (their next Next() call
// panics).
type Builder[T any] struct {
	tree    avl.Tree[T]
	cmp     func(a, b T) int
	version uint32
}

// NewBuilder creates an empty set builder ordered by cmp.
func NewBuilder[T any](cmp func(a, b T) int) *Builder[T] {
	assertThat(cmp != nil, "set requires a comparator")
	return &Builder[T]{cmp: cmp}
}

// Builder creates a builder seeded with the receiver's elements. This is
// O(1): the builder starts out sharing the receiver's tree.
func (s Set[T]) Builder() *Builder[T] {
	return &Builder[T]{tree: s.tree, cmp: s.cmp}
}

// ToImmutable freezes the builder's current state into a Set. It may be
// called repeatedly; returned sets share structure with each other and with
// the builder's ongoing work.
func (b *Builder[T]) ToImmutable() Set[T] {
	tracer().Debugf("set builder: freezing %d elements at version %d", b.tree.Len(), b.version)
	return Set[T]{tree: b.tree, cmp: b.cmp}
}

// Len returns the current number of elements.
func (b *Builder[T]) Len() int {
	return b.tree.Len()
}

// Contains reports whether an element equal to x is present.
func (b *Builder[T]) Contains(x T) bool {
	_, found := b.tree.Find(x, b.cmp)
	return found
}

// Add inserts x and reports whether the set grew (false for duplicates, which
// are tolerated no-ops leaving the resident element in place).
func (b *Builder[T]) Add(x T) bool {
	cow, grown := b.tree.With(x, b.cmp, false)
	b.tree = cow
	b.version++
	return grown
}

// Remove deletes the element equal to x and reports whether it was present.
func (b *Builder[T]) Remove(x T) bool {
	cow, found := b.tree.WithDeleted(x, b.cmp)
	b.tree = cow
	b.version++
	return found
}

// AddAll inserts all xs, skipping duplicates.
func (b *Builder[T]) AddAll(xs ...T) {
	for _, x := range xs {
		b.tree, _ = b.tree.With(x, b.cmp, false)
	}
	b.version++
}

// UnionWith folds every element of other into the builder.
func (b *Builder[T]) UnionWith(other Set[T]) {
	b.tree = b.ToImmutable().Union(other).tree
	b.version++
}

// IntersectWith drops every element not present in other.
func (b *Builder[T]) IntersectWith(other Set[T]) {
	b.tree = b.ToImmutable().Intersect(other).tree
	b.version++
}

// ExceptWith drops every element present in other.
func (b *Builder[T]) ExceptWith(other Set[T]) {
	b.tree = b.ToImmutable().Except(other).tree
	b.version++
}

// SymmetricExceptWith keeps the elements present in exactly one of the
// builder and other.
func (b *Builder[T]) SymmetricExceptWith(other Set[T]) {
	b.tree = b.ToImmutable().SymmetricExcept(other).tree
	b.version++
}

// Each walks the current elements in comparator order until f returns false.
func (b *Builder[T]) Each(f func(T) bool) {
	b.tree.Each(f)
}

// --- Iteration over builders -----------------------------------------------

// BuilderIterator iterates over a builder's working tree in comparator order.
// It captures the builder's version at creation time; if the builder mutates
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
