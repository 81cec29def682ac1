package hashset

import "github.com/npillmayer/persistent/avl"

// Set algebra walks both operand trees in hash order, analogous to the merge
// co-traversal of the sorted-set, with an inner bucket-level comparison
// whenever both sides own a node at the same hash. The merged, strictly
// hash-increasing bucket sequence is rebuilt into a balanced tree in O(n+m).
// Operands must share one Hasher (or at least agree on hash codes and
// equality); the receiver's Hasher is carried into the result.

// Union returns a set incarnation holding every element present in s or in
// other. For elements present in both, the resident element of s wins.
func (s Set[T]) Union(other Set[T]) Set[T] {
	if other.IsEmpty() {
		return s
	}
	return s.combine(other, func(a, b bucket[T]) []T {
		return append(append(make([]T, 0, len(a.elems)+len(b.elems)), a.elems...), b.minus(a, s.hasher)...)
	}, true, true)
}

// Intersect returns a set holding every element present in s and in other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	return s.combine(other, func(a, b bucket[T]) []T {
		return a.common(b, s.hasher)
	}, false, false)
}

// Except returns a set holding every element of s not present in other.
func (s Set[T]) Except(other Set[T]) Set[T] {
	if other.IsEmpty() {
		return s
	}
	return s.combine(other, func(a, b bucket[T]) []T {
		return a.minus(b, s.hasher)
	}, true, false)
}

// SymmetricExcept returns a set holding the elements present in exactly one
// of s and other.
func (s Set[T]) SymmetricExcept(other Set[T]) Set[T] {
	return s.combine(other, func(a, b bucket[T]) []T {
		return append(a.minus(b, s.hasher), b.minus(a, s.hasher)...)
	}, true, true)
}

// combine runs the hash-order merge walk. inner resolves buckets sharing one
// hash; keepS and keepOther select whether single-sided buckets survive.
// Buckets that inner empties are dropped along with their node.
func (s Set[T]) combine(other Set[T], inner func(a, b bucket[T]) []T, keepS, keepOther bool) Set[T] {
	out := make([]bucket[T], 0, s.tree.Len()+other.tree.Len())
	size := 0
	emit := func(hash uint64, elems []T) {
		if len(elems) > 0 {
			out = append(out, bucket[T]{hash: hash, elems: elems})
			size += len(elems)
		}
	}
	ita, itb := s.tree.Iterator(), other.tree.Iterator()
	a, aok := ita.Next()
	b, bok := itb.Next()
	for aok && bok {
		switch {
		case a.hash < b.hash:
			if keepS {
				emit(a.hash, a.elems)
			}
			a, aok = ita.Next()
		case a.hash > b.hash:
			if keepOther {
				emit(b.hash, b.elems)
			}
			b, bok = itb.Next()
		default:
			emit(a.hash, inner(a, b))
			a, aok = ita.Next()
			b, bok = itb.Next()
		}
	}
	for aok {
		if keepS {
			emit(a.hash, a.elems)
		}
		a, aok = ita.Next()
	}
	for bok {
		if keepOther {
			emit(b.hash, b.elems)
		}
		b, bok = itb.Next()
	}
	tracer().Debugf("set algebra: merged %d + %d elements into %d", s.size, other.size, size)
	return Set[T]{tree: avl.FromOrdered(out), hasher: s.hasher, size: size}
}

// --- Predicates ------------------------------------------------------------

// IsSubsetOf reports whether every element of s is present in other. The
// merge walk exits at the first element of s without a match.
func (s Set[T]) IsSubsetOf(other Set[T]) bool {
	if s.size > other.size {
		return false
	}
	ita, itb := s.tree.Iterator(), other.tree.Iterator()
	a, aok := ita.Next()
	b, bok := itb.Next()
	for aok {
		if !bok {
			return false
		}
		switch {
		case a.hash < b.hash: // a's bucket has no counterpart
			return false
		case a.hash > b.hash:
			b, bok = itb.Next()
		default:
			for _, x := range a.elems {
				if b.indexOf(x, s.hasher) < 0 {
					return false
				}
			}
			a, aok = ita.Next()
			b, bok = itb.Next()
		}
	}
	return true
}

// IsSupersetOf reports whether every element of other is present in s.
func (s Set[T]) IsSupersetOf(other Set[T]) bool {
	return other.IsSubsetOf(s)
}

// Overlaps reports whether s and other have at least one element in common.
func (s Set[T]) Overlaps(other Set[T]) bool {
	ita, itb := s.tree.Iterator(), other.tree.Iterator()
	a, aok := ita.Next()
	b, bok := itb.Next()
	for aok && bok {
		switch {
		case a.hash < b.hash:
			a, aok = ita.Next()
		case a.hash > b.hash:
			b, bok = itb.Next()
		default:
			for _, x := range a.elems {
				if b.indexOf(x, s.hasher) >= 0 {
					return true
				}
			}
			a, aok = ita.Next()
			b, bok = itb.Next()
		}
	}
	return false
}

// SetEquals reports whether s and other hold exactly the same elements.
func (s Set[T]) SetEquals(other Set[T]) bool {
	return s.size == other.size && s.IsSubsetOf(other)
}
