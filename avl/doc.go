/*
Package avl implements a persistent (immutable) in-memory AVL tree with
size-annotated nodes.

Nodes are never modified after construction. Every edit copies the nodes on
the path from the root to the edit site and shares all remaining subtrees by
reference, so any number of tree incarnations may coexist — and be read
concurrently — at the price of O(log n) fresh nodes per edit.

Besides the usual key-ordered operations (driven by a caller-supplied 3-way
comparator), every node caches the size of its subtree, which gives rank
queries and rank-addressed edits in O(log n) as well. The collection types
of this module (list, sortedset, hashset) are thin adapters over this one
core.

A good introduction to AVL trees and their rotations may be found at
https://en.wikipedia.org/wiki/AVL_tree.
*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.avl'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.avl")
}
