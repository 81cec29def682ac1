/*
Package hashset implements a persistent (immutable) set for elements without
a natural order, organized by hash code.

The backing tree orders its nodes by the elements' hash codes; each node
carries a collision bucket, an insertion-ordered sequence of equal-hash but
unequal elements. Tree navigation therefore stays O(log n) in the number of
distinct hash codes, and a bucket scan — O(k) in the number of collisions —
is the only cost adversarial hash collisions can inflict. This is the reason
this design exists over a flat hash table when persistence and structural
sharing are required.

Hashing and equality are supplied as a Hasher strategy; both must stay stable
for the lifetime of every set built under them (WithHasher rebuilds a set
under a new strategy explicitly). Set algebra walks both operand trees in
hash order with a bucket-level inner comparison and assumes both operands
share one Hasher.

Use it like this:

	s := hashset.From[string](hashset.Strings(), "a", "b")
	s = s.With("c")
	s.Contains("b")   // true
*/
package hashset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.hashset'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.hashset")
}
