package hashset

import (
	"fmt"

	"github.com/npillmayer/persistent/avl"
)

// Set is a persistent set of elements organized by hash code. Set values are
// immutable: modifying operations return a new incarnation, leaving the
// receiver untouched, and incarnations share structure. Any number of
// goroutines may read the same Set — or overlapping incarnations —
// concurrently without coordination.
//
// Create sets through Immutable or From; the zero value carries no Hasher
// and is unusable.
type Set[T any] struct {
	tree   avl.Tree[bucket[T]]
	hasher Hasher[T]
	size   int // element count; the tree's size counts distinct hashes
}

// Immutable creates an empty set hashing with h.
//
//	s := hashset.Immutable[string](hashset.Strings())
//	s = s.With("Galaxy")
func Immutable[T any](h Hasher[T]) Set[T] {
	assertThat(h != nil, "set requires a hasher")
	return Set[T]{hasher: h}
}

// From creates a set hashing with h, holding xs. Duplicates under h.Equal are
// dropped, first write wins.
func From[T any](h Hasher[T], xs ...T) Set[T] {
	s := Immutable(h)
	for _, x := range xs {
		s = s.With(x)
	}
	return s
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements, in O(1).
func (s Set[T]) Len() int {
	return s.size
}

// IsEmpty is true for sets without elements.
func (s Set[T]) IsEmpty() bool {
	return s.size == 0
}

// Contains reports whether an element Equal to x is present.
func (s Set[T]) Contains(x T) bool {
	probe := bucket[T]{hash: s.hasher.Hash(x)}
	resident, found := s.tree.Find(probe, byHash[T])
	return found && resident.indexOf(x, s.hasher) >= 0
}

// With returns a set incarnation with x added. The node for x's hash code is
// located in O(log n); x is appended to its bucket only if no Equal element
// is already there — otherwise the receiver is returned unchanged (first
// write wins). An absent hash code gets a fresh node with a singleton bucket.
func (s Set[T]) With(x T) Set[T] {
	probe := bucket[T]{hash: s.hasher.Hash(x)}
	resident, found := s.tree.Find(probe, byHash[T])
	if !found {
		cow, _ := s.tree.With(bucket[T]{hash: probe.hash, elems: []T{x}}, byHash[T], false)
		return Set[T]{tree: cow, hasher: s.hasher, size: s.size + 1}
	}
	if resident.indexOf(x, s.hasher) >= 0 {
		return s
	}
	tracer().Debugf("set.With: hash collision, bucket %x grows to %d entries", probe.hash, len(resident.elems)+1)
	cow, _ := s.tree.With(resident.withAppended(x), byHash[T], true)
	return Set[T]{tree: cow, hasher: s.hasher, size: s.size + 1}
}

// WithDeleted returns a set incarnation with the element Equal to x removed.
// When the bucket holding x empties, its node leaves the tree. Removing an
// absent element is a no-op returning the receiver unchanged.
func (s Set[T]) WithDeleted(x T) Set[T] {
	probe := bucket[T]{hash: s.hasher.Hash(x)}
	resident, found := s.tree.Find(probe, byHash[T])
	if !found {
		return s
	}
	i := resident.indexOf(x, s.hasher)
	if i < 0 {
		return s
	}
	if len(resident.elems) == 1 { // last entry: the node goes as well
		cow, _ := s.tree.WithDeleted(probe, byHash[T])
		return Set[T]{tree: cow, hasher: s.hasher, size: s.size - 1}
	}
	cow, _ := s.tree.With(resident.without(i), byHash[T], true)
	return Set[T]{tree: cow, hasher: s.hasher, size: s.size - 1}
}

// WithHasher rebuilds the set under a different hash/equality strategy, which
// may regroup collisions and collapse formerly distinct elements (first, in
// old iteration order, write wins).
func (s Set[T]) WithHasher(h Hasher[T]) Set[T] {
	assertThat(h != nil, "set requires a hasher")
	cow := Immutable(h)
	s.Each(func(x T) bool {
		cow = cow.With(x)
		return true
	})
	tracer().Debugf("set.WithHasher: re-hashed %d elements into %d", s.size, cow.size)
	return cow
}

// Each walks the set in hash order — insertion order inside one bucket —
// calling f for every element until f returns false.
func (s Set[T]) Each(f func(T) bool) {
	s.tree.Each(func(b bucket[T]) bool {
		for _, x := range b.elems {
			if !f(x) {
				return false
			}
		}
		return true
	})
}

// Slice returns the elements in iteration order as a freshly allocated slice.
func (s Set[T]) Slice() []T {
	xs := make([]T, 0, s.size)
	s.Each(func(x T) bool {
		xs = append(xs, x)
		return true
	})
	return xs
}

// --- Iteration -------------------------------------------------------------

// Iterator walks a set incarnation in hash order, insertion order inside one
// bucket. It stays valid no matter what happens to derived incarnations.
type Iterator[T any] struct {
	buckets *avl.Iterator[bucket[T]]
	current []T
	at      int
}

// Iterator returns an iterator positioned before the first element.
func (s Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{buckets: s.tree.Iterator()}
}

// Next returns the next element, or done=false after the last one.
func (it *Iterator[T]) Next() (T, bool) {
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

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashset: "+msg, msgargs...)
		panic(msg)
	}
}
