package hashset

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
	set     Set[T]
	version uint32
}

// NewBuilder creates an empty set builder hashing with h.
func NewBuilder[T any](h Hasher[T]) *Builder[T] {
	assertThat(h != nil, "set requires a hasher")
	return &Builder[T]{set: Immutable(h)}
}

// Builder creates a builder seeded with the receiver's elements. This is
// O(1): the builder starts out sharing the receiver's tree.
func (s Set[T]) Builder() *Builder[T] {
	return &Builder[T]{set: s}
}

// ToImmutable freezes the builder's current state into a Set. It may be
// called repeatedly; returned sets share structure with each other and with
// the builder's ongoing work.
func (b *Builder[T]) ToImmutable() Set[T] {
	tracer().Debugf("set builder: freezing %d elements at version %d", b.set.size, b.version)
	return b.set
}

// Len returns the current number of elements.
func (b *Builder[T]) Len() int {
	return b.set.size
}

// Contains reports whether an element Equal to x is present.
func (b *Builder[T]) Contains(x T) bool {
	return b.set.Contains(x)
}

// Add inserts x and reports whether the set grew (false for duplicates, which
// are tolerated no-ops leaving the resident element in place).
func (b *Builder[T]) Add(x T) bool {
	before := b.set.size
	b.set = b.set.With(x)
	b.version++
	return b.set.size > before
}

// Remove deletes the element Equal to x and reports whether it was present.
func (b *Builder[T]) Remove(x T) bool {
	before := b.set.size
	b.set = b.set.WithDeleted(x)
	b.version++
	return b.set.size < before
}

// AddAll inserts all xs, skipping duplicates.
func (b *Builder[T]) AddAll(xs ...T) {
	for _, x := range xs {
		b.set = b.set.With(x)
	}
	b.version++
}

// UnionWith folds every element of other into the builder.
func (b *Builder[T]) UnionWith(other Set[T]) {
	b.set = b.set.Union(other)
	b.version++
}

// IntersectWith drops every element not present in other.
func (b *Builder[T]) IntersectWith(other Set[T]) {
	b.set = b.set.Intersect(other)
	b.version++
}

// ExceptWith drops every element present in other.
func (b *Builder[T]) ExceptWith(other Set[T]) {
	b.set = b.set.Except(other)
	b.version++
}

// SymmetricExceptWith keeps the elements present in exactly one of the
// builder and other.
func (b *Builder[T]) SymmetricExceptWith(other Set[T]) {
	b.set = b.set.SymmetricExcept(other)
	b.version++
}

// Each walks the current elements in iteration order until f returns false.
func (b *Builder[T]) Each(f func(T) bool) {
	b.set.Each(f)
}

// --- Iteration over builders -----------------------------------------------

// BuilderIterator iterates over a builder's working tree in hash order. It
// captures the builder's version at creation time; if the builder mutates
// before iteration completes, the next call to Next panics.
type BuilderIterator[T any] struct {
	buckets *avl.Iterator[bucket[T]]
	current []T
	at      int
	owner   *Builder[T]
	version uint32
}

// Iterator returns an iterator over the builder's current elements.
func (b *Builder[T]) Iterator() *BuilderIterator[T] {
	return &BuilderIterator[T]{buckets: b.set.tree.Iterator(), owner: b, version: b.version}
}

// Next returns the next element, or done=false after the last one. Next
// panics if the owning builder has mutated since the iterator was created.
func (it *BuilderIterator[T]) Next() (T, bool) {
	assertThat(it.version == it.owner.version,
		"iterator invalidated by builder mutation (version %d, builder now at %d)", it.version, it.owner.version)
	for it.at >= len(it.current) {
		b, ok := it.buckets.Next()
		if !ok {
			var none T
			return none, false
		}
		it.current, it.at = b.elems, 0
	}
	x := it.current[it.at]
	it.at++
	return x, true
}
