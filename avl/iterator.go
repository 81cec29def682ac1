package avl

// Iterator walks a tree incarnation in-order. Since the underlying nodes are
// immutable, an iterator stays valid no matter what happens to other
// incarnations sharing the same nodes; it holds the root-to-current path on an
// explicit stack of at most Height() nodes.
type Iterator[T any] struct {
	stack []*node[T]
}

// Iterator returns an in-order iterator positioned before the first element.
func (t Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{stack: make([]*node[T], 0, t.root.ht())}
	it.descend(t.root)
	return it
}

func (it *Iterator[T]) descend(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next returns the next element in-order, or done=false after the last one.
func (it *Iterator[T]) Next() (_ T, ok bool) {
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.descend(n.right)
	return n.elem, true
}
