/*
Package list implements a persistent (immutable) list, addressed by position.

Elements are positioned purely by their 0-based in-order rank; there is no
key and no comparator. All positional operations — Get, Set, Insert, RemoveAt —
run in O(log n) over a balanced tree with size-annotated nodes, and every
modifying operation returns a new list incarnation which shares all unedited
subtrees with its predecessor.

Use it like this:

	l := list.From("a", "b")
	l = l.Insert(0, "z")        // ["z" "a" "b"]
	l2 := l.RemoveAt(1)         // ["z" "b"], l unchanged

For batches of edits, Builder amortizes the per-operation wrapping:

	b := l.Builder()
	b.Append("x")
	b.Append("y")
	l = b.ToImmutable()
*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.list'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.list")
}
