package sortedset

import (
	"sort"

	"github.com/npillmayer/persistent/avl"
)

// Set algebra is implemented as a merge-style co-traversal: the receiver's
// in-order sequence and the argument's sequence — aligned to the receiver's
// comparator first, see aligned(…) — are walked simultaneously and elements
// are emitted according to the requested Boolean combinator, then a balanced
// result tree is rebuilt from the merged, strictly increasing output sequence.
// With a shared comparator this is O(n+m); it beats m individual O(log n)
// inserts. The receiver's comparator wins in every operation and is carried
// into the result.

// aligned returns other's elements as a strictly increasing sequence under
// s's comparator. A set ordered the same way as s is passed through as is
// (the shared-comparator fast path); otherwise the sequence is re-sorted and
// collapsed under s.cmp, first (in other's iteration order) write wins.
func (s Set[T]) aligned(other Set[T]) []T {
	xs := other.tree.Slice()
	for i := 1; i < len(xs); i++ {
		if s.cmp(xs[i-1], xs[i]) < 0 {
			continue
		}
		tracer().Debugf("set algebra: re-keying %d foreign-ordered elements", len(xs))
		sort.SliceStable(xs, func(i, j int) bool { return s.cmp(xs[i], xs[j]) < 0 })
		uniq := xs[:0]
		for k, x := range xs {
			if k == 0 || s.cmp(x, uniq[len(uniq)-1]) != 0 {
				uniq = append(uniq, x)
			}
		}
		return uniq
	}
	return xs
}

// Union returns a set incarnation holding every element present in s or in
// other. For elements present in both, the resident element of s wins.
func (s Set[T]) Union(other Set[T]) Set[T] {
	if other.IsEmpty() {
		return s
	}
	return s.combine(other, true, true, true)
}

// Intersect returns a set holding every element present in s and in other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	return s.combine(other, false, true, false)
}

// Except returns a set holding every element of s not present in other.
func (s Set[T]) Except(other Set[T]) Set[T] {
	if other.IsEmpty() {
		return s
	}
	return s.combine(other, true, false, false)
}

// SymmetricExcept returns a set holding the elements present in exactly one
// of s and other.
func (s Set[T]) SymmetricExcept(other Set[T]) Set[T] {
	return s.combine(other, true, false, true)
}

// combine runs the merge walk. onlyS, both and onlyOther select which of the
// three disjoint regions make it into the output.
func (s Set[T]) combine(other Set[T], onlyS, both, onlyOther bool) Set[T] {
	bs := s.aligned(other)
	out := make([]T, 0, s.Len()+len(bs))
	ita := s.tree.Iterator()
	a, aok := ita.Next()
	j := 0
	for aok && j < len(bs) {
		switch c := s.cmp(a, bs[j]); {
		case c < 0:
			if onlyS {
				out = append(out, a)
			}
			a, aok = ita.Next()
		case c > 0:
			if onlyOther {
				out = append(out, bs[j])
			}
			j++
		default:
			if both {
				out = append(out, a)
			}
			a, aok = ita.Next()
			j++
		}
	}
	for aok {
		if onlyS {
			out = append(out, a)
		}
		a, aok = ita.Next()
	}
	for ; j < len(bs); j++ {
		if onlyOther {
			out = append(out, bs[j])
		}
	}
	tracer().Debugf("set algebra: merged %d + %d elements into %d", s.Len(), len(bs), len(out))
	return Set[T]{tree: avl.FromOrdered(out), cmp: s.cmp}
}

// --- Predicates ------------------------------------------------------------

// The predicates are early-exit variants of the same merge walk: a subset
// check terminates as soon as one element of s has no match in other. Like
// the algebra above, they align the argument to the receiver's comparator.

// subsetOfSeq walks s against a strictly increasing (under s.cmp) sequence.
func (s Set[T]) subsetOfSeq(bs []T) bool {
	ita := s.tree.Iterator()
	a, aok := ita.Next()
	j := 0
	for aok {
		if j >= len(bs) {
			return false
		}
		switch c := s.cmp(a, bs[j]); {
		case c < 0: // a has no match
			return false
		case c > 0:
			j++
		default:
			a, aok = ita.Next()
			j++
		}
	}
	return true
}

// supersetOfSeq checks that every element of a strictly increasing (under
// s.cmp) sequence is present in s.
func (s Set[T]) supersetOfSeq(bs []T) bool {
	ita := s.tree.Iterator()
	a, aok := ita.Next()
	j := 0
	for j < len(bs) {
		if !aok {
			return false
		}
		switch c := s.cmp(a, bs[j]); {
		case c < 0:
			a, aok = ita.Next()
		case c > 0: // bs[j] has no match
			return false
		default:
			a, aok = ita.Next()
			j++
		}
	}
	return true
}

// IsSubsetOf reports whether every element of s is present in other.
func (s Set[T]) IsSubsetOf(other Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	return s.subsetOfSeq(s.aligned(other))
}

// IsSupersetOf reports whether every element of other is present in s.
func (s Set[T]) IsSupersetOf(other Set[T]) bool {
	return s.supersetOfSeq(s.aligned(other))
}

// IsProperSubsetOf reports whether s is a subset of other and other holds at
// least one element not in s.
func (s Set[T]) IsProperSubsetOf(other Set[T]) bool {
	bs := s.aligned(other)
	return s.Len() < len(bs) && s.subsetOfSeq(bs)
}

// IsProperSupersetOf reports whether s is a superset of other and s holds at
// least one element not in other.
func (s Set[T]) IsProperSupersetOf(other Set[T]) bool {
	bs := s.aligned(other)
	return s.Len() > len(bs) && s.supersetOfSeq(bs)
}

// Overlaps reports whether s and other have at least one element in common.
func (s Set[T]) Overlaps(other Set[T]) bool {
	bs := s.aligned(other)
	ita := s.tree.Iterator()
	a, aok := ita.Next()
	j := 0
	for aok && j < len(bs) {
		switch c := s.cmp(a, bs[j]); {
		case c < 0:
			a, aok = ita.Next()
		case c > 0:
			j++
		default:
			return true
		}
	}
	return false
}

// SetEquals reports whether s and other hold exactly the same elements.
func (s Set[T]) SetEquals(other Set[T]) bool {
	bs := s.aligned(other)
	return s.Len() == len(bs) && s.subsetOfSeq(bs)
}
