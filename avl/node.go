package avl

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables
  holding clones of nodes.

- We use a programming-style reminiscent of functional programming: the node
  algorithms are pure functions from old roots to new roots. A new modified
  incarnation of a tree always is reflected by a new root.

*/

import "fmt"

// node is an immutable tree node. A node is never mutated after construction;
// any number of trees may reference the same node instance.
type node[T any] struct {
	elem   T
	left   *node[T]
	right  *node[T]
	size   uint32 // 1 + left.size + right.size
	height int8   // 1 for a leaf
}

// mknode links elem, left and right into a fresh node, caching size and height.
func mknode[T any](elem T, left, right *node[T]) *node[T] {
	return &node[T]{
		elem:   elem,
		left:   left,
		right:  right,
		size:   1 + left.len() + right.len(),
		height: 1 + maxi8(left.ht(), right.ht()),
	}
}

func (n *node[T]) len() uint32 {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[T]) ht() int8 {
	if n == nil {
		return 0
	}
	return n.height
}

// withElem returns a copy of n carrying a replaced payload. Shape, size and
// height are unchanged, so no rebalancing is due.
func (n *node[T]) withElem(elem T) *node[T] {
	cow := *n
	cow.elem = elem
	return &cow
}

func (n *node[T]) String() string {
	if n == nil {
		return "⟨⟩"
	}
	return fmt.Sprintf("⟨%v #%d h%d⟩", n.elem, n.size, n.height)
}

// --- Rebalancing -----------------------------------------------------------

// balanced joins elem, left and right into a node and re-establishes the AVL
// invariant |height(left)-height(right)| ≤ 1. left and right stem from a
// single insertion or deletion below a formerly balanced node, so their
// heights differ by at most 2 and one single or double rotation suffices.
// Each rotation allocates O(1) nodes and shares the rotated children
// unchanged.
func balanced[T any](elem T, left, right *node[T]) *node[T] {
	switch bf := left.ht() - right.ht(); {
	case bf > 1:
		if left.left.ht() >= left.right.ht() {
			return rotateRight(elem, left, right)
		}
		return rotateLeftRight(elem, left, right)
	case bf < -1:
		if right.right.ht() >= right.left.ht() {
			return rotateLeft(elem, left, right)
		}
		return rotateRightLeft(elem, left, right)
	}
	return mknode(elem, left, right)
}

func rotateRight[T any](elem T, l, r *node[T]) *node[T] {
	return mknode(l.elem, l.left, mknode(elem, l.right, r))
}

func rotateLeft[T any](elem T, l, r *node[T]) *node[T] {
	return mknode(r.elem, mknode(elem, l, r.left), r.right)
}

func rotateLeftRight[T any](elem T, l, r *node[T]) *node[T] {
	lr := l.right
	return mknode(lr.elem, mknode(l.elem, l.left, lr.left), mknode(elem, lr.right, r))
}

func rotateRightLeft[T any](elem T, l, r *node[T]) *node[T] {
	rl := r.left
	return mknode(rl.elem, mknode(elem, l, rl.left), mknode(r.elem, rl.right, r.right))
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("avl: "+msg, msgargs...)
		panic(msg)
	}
}

func maxi8(a, b int8) int8 {
	if a > b {
		return a
	}
	return b
}
