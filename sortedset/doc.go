/*
Package sortedset implements a persistent (immutable) set, ordered by a
caller-supplied 3-way comparator.

All single-element operations run in O(log n); set algebra (Union, Intersect,
Except, SymmetricExcept) runs in O(n+m) by an in-order merge co-traversal of
both operand trees, rebuilding a balanced result tree from the merged output
sequence instead of doing m individual inserts. Every modifying operation
returns a new set incarnation sharing all unedited subtrees with its
predecessor, so snapshots are cheap and safe to read concurrently.

The comparator must define a total order and must stay stable for the
lifetime of every set built under it; rebuilding a set under a different
order is an explicit O(n) operation (WithComparator). In set algebra and the
subset/superset predicates the receiver's comparator wins: an argument set
ordered the same way takes the O(n+m) merge path directly, an argument built
under a different comparator is re-keyed (sorted and collapsed under the
receiver's order) first.

Use it like this:

	s := sortedset.From(cmp, 5, 1, 3, 1, 2)   // {1 2 3 5}
	s = s.WithDeleted(3)                      // {1 2 5}
	s.IsSubsetOf(sortedset.From(cmp, 1, 2, 5, 9))  // true
*/
package sortedset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.sortedset'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.sortedset")
}
