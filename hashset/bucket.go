package hashset

// bucket is the payload of one tree node: all elements presently mapping to
// one hash code, in insertion order. The tree's ordering key is the hash, not
// element identity. A bucket is immutable and never empty while its owning
// node exists — removing the last element removes the node.
type bucket[T any] struct {
	hash  uint64
	elems []T
}

// byHash is the comparator the backing tree runs under.
func byHash[T any](a, b bucket[T]) int {
	switch {
	case a.hash < b.hash:
		return -1
	case a.hash > b.hash:
		return 1
	}
	return 0
}

// indexOf scans the bucket for an element equal to x. This scan is the only
// O(k) cost hash collisions inflict.
func (b bucket[T]) indexOf(x T, h Hasher[T]) int {
	for i, y := range b.elems {
		if h.Equal(x, y) {
			return i
		}
	}
	return -1
}

// withAppended returns a bucket incarnation with x appended. The element
// slice is copied; buckets share no mutable state across incarnations.
func (b bucket[T]) withAppended(x T) bucket[T] {
	cow := make([]T, len(b.elems), len(b.elems)+1)
	copy(cow, b.elems)
	return bucket[T]{hash: b.hash, elems: append(cow, x)}
}

// without returns a bucket incarnation with the element at position i removed.
func (b bucket[T]) without(i int) bucket[T] {
	cow := make([]T, 0, len(b.elems)-1)
	cow = append(cow, b.elems[:i]...)
	cow = append(cow, b.elems[i+1:]...)
	return bucket[T]{hash: b.hash, elems: cow}
}

// minus returns the elements of b with no Equal counterpart in other's
// elements, keeping b's insertion order.
func (b bucket[T]) minus(other bucket[T], h Hasher[T]) []T {
	out := make([]T, 0, len(b.elems))
	for _, x := range b.elems {
		if other.indexOf(x, h) < 0 {
			out = append(out, x)
		}
	}
	return out
}

// common returns the elements of b with an Equal counterpart in other's
// elements, keeping b's insertion order.
func (b bucket[T]) common(other bucket[T], h Hasher[T]) []T {
	out := make([]T, 0, len(b.elems))
	for _, x := range b.elems {
		if other.indexOf(x, h) >= 0 {
			out = append(out, x)
		}
	}
	return out
}
