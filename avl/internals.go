package avl

// The functions in this file carry the actual tree algorithms. They all follow
// the same discipline: walk down along the comparison (or rank) path, then
// rebuild that path bottom-up through balanced(…), sharing every untouched
// subtree by reference.

// insert returns the root of a tree incarnation with x inserted. When nothing
// changes — duplicate key without overwrite — the receiver itself is returned,
// which lets every caller up the path short-circuit without allocating.
// The boolean reports whether the tree grew by one element.
func insert[T any](n *node[T], x T, cmp Cmp[T], overwrite bool) (*node[T], bool) {
	if n == nil {
		return mknode(x, nil, nil), true
	}
	switch c := cmp(x, n.elem); {
	case c < 0:
		cow, grown := insert(n.left, x, cmp, overwrite)
		if cow == n.left {
			return n, false
		}
		return balanced(n.elem, cow, n.right), grown
	case c > 0:
		cow, grown := insert(n.right, x, cmp, overwrite)
		if cow == n.right {
			return n, false
		}
		return balanced(n.elem, n.left, cow), grown
	}
	if !overwrite { // first write wins: keep the resident element
		return n, false
	}
	return n.withElem(x), false
}

// remove returns the root of a tree incarnation with x deleted. Removing an
// absent element is a no-op returning the receiver itself.
func remove[T any](n *node[T], x T, cmp Cmp[T]) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	switch c := cmp(x, n.elem); {
	case c < 0:
		cow, ok := remove(n.left, x, cmp)
		if !ok {
			return n, false
		}
		return balanced(n.elem, cow, n.right), true
	case c > 0:
		cow, ok := remove(n.right, x, cmp)
		if !ok {
			return n, false
		}
		return balanced(n.elem, n.left, cow), true
	}
	return dropRoot(n), true
}

// dropRoot removes n itself. For an inner node with two children the in-order
// successor is stolen from the right subtree and swapped into n's position.
func dropRoot[T any](n *node[T]) *node[T] {
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	succ, rest := cutLeftmost(n.right)
	return balanced(succ.elem, n.left, rest)
}

// cutLeftmost splits the leftmost node off a non-empty subtree, returning it
// together with the rebalanced remainder.
func cutLeftmost[T any](n *node[T]) (*node[T], *node[T]) {
	if n.left == nil {
		return n, n.right
	}
	leftmost, rest := cutLeftmost(n.left)
	return leftmost, balanced(n.elem, rest, n.right)
}

// search walks the comparison path down to x.
func search[T any](n *node[T], x T, cmp Cmp[T]) (T, bool) {
	for n != nil {
		switch c := cmp(x, n.elem); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.elem, true
		}
	}
	var none T
	return none, false
}

// rankOf accumulates the number of elements preceding x in the ordering.
// found is false when no equal element exists (distinguishing "absent" from
// rank 0).
func rankOf[T any](n *node[T], x T, cmp Cmp[T]) (uint32, bool) {
	var r uint32
	for n != nil {
		switch c := cmp(x, n.elem); {
		case c < 0:
			n = n.left
		case c > 0:
			r += n.left.len() + 1
			n = n.right
		default:
			return r + n.left.len(), true
		}
	}
	return 0, false
}

// at selects the element of in-order rank i. The caller has range-checked i.
func at[T any](n *node[T], i uint32) T {
	for {
		switch l := n.left.len(); {
		case i < l:
			n = n.left
		case i > l:
			i -= l + 1
			n = n.right
		default:
			return n.elem
		}
	}
}

// insertAt inserts x in front of the element of rank i; i == len appends.
// Positions, not keys, are the identity here, so there is no duplicate case.
func insertAt[T any](n *node[T], i uint32, x T) *node[T] {
	if n == nil {
		return mknode(x, nil, nil)
	}
	if l := n.left.len(); i <= l {
		return balanced(n.elem, insertAt(n.left, i, x), n.right)
	} else {
		return balanced(n.elem, n.left, insertAt(n.right, i-l-1, x))
	}
}

// removeAt removes the element of rank i, returning it alongside the new root.
func removeAt[T any](n *node[T], i uint32) (*node[T], T) {
	switch l := n.left.len(); {
	case i < l:
		cow, old := removeAt(n.left, i)
		return balanced(n.elem, cow, n.right), old
	case i > l:
		cow, old := removeAt(n.right, i-l-1)
		return balanced(n.elem, n.left, cow), old
	default:
		return dropRoot(n), n.elem
	}
}

// replaceAt swaps the payload of the element of rank i. Only the path down to
// rank i is copied; shape, sizes and heights stay as they are.
func replaceAt[T any](n *node[T], i uint32, x T) *node[T] {
	switch l := n.left.len(); {
	case i < l:
		cow := *n
		cow.left = replaceAt(n.left, i, x)
		return &cow
	case i > l:
		cow := *n
		cow.right = replaceAt(n.right, i-l-1, x)
		return &cow
	default:
		return n.withElem(x)
	}
}

// build constructs a balanced tree over an ordered slice in O(n) by recursive
// midpoint splitting. Ordering is the caller's responsibility.
func build[T any](xs []T) *node[T] {
	if len(xs) == 0 {
		return nil
	}
	m := len(xs) / 2
	return mknode(xs[m], build(xs[:m]), build(xs[m+1:]))
}

// each is an in-order walk with early exit.
func each[T any](n *node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}
	return each(n.left, f) && f(n.elem) && each(n.right, f)
}
