package tree

// Iterator is a bidirectional cursor over linked nodes. Successor and
// predecessor are derived purely from the tree links, no auxiliary stack.
// The end position is the tree's sentinel head; it is not dereferenceable.
//
// An iterator stays valid as long as the node it points at stays linked
// into the tree.
type Iterator[T any] struct {
	head *Node[T]
	node *Node[T]
}

// Valid reports whether the iterator points at a linked record, i.e. it is
// neither the end position nor the zero value.
func (it Iterator[T]) Valid() bool {
	return it.node != nil && it.node != it.head
}

// Item yields the record the iterator points at.
func (it Iterator[T]) Item() T {
	if !it.Valid() {
		// impossible by contract
		panic("[rbtree] dereference of an end iterator")
	}
	return it.node.item
}

// Equal compares two iterators by position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

// Next advances to the inorder successor: the leftmost descendant of the
// right child if there is one, otherwise the first ancestor reached from a
// left child. Climbing from the maximum naturally terminates at the
// sentinel, which is the end position. Next of the end position is a no-op.
func (it *Iterator[T]) Next() {
	n := it.node
	if n == nil || n == it.head {
		return
	}
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left
		}
		it.node = n
		return
	}
	p := n.parent
	for p != it.head && n == p.right {
		n = p
		p = n.parent
	}
	it.node = p
}

// Prev is the mirror of Next. Prev of the end position lands on the cached
// maximum; Prev of the minimum lands back on the end position.
func (it *Iterator[T]) Prev() {
	n := it.node
	if n == nil {
		return
	}
	if n == it.head {
		// head.right caches the maximum, or the head itself when empty.
		it.node = n.right
		return
	}
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right
		}
		it.node = n
		return
	}
	p := n.parent
	for p != it.head && n == p.left {
		n = p
		p = n.parent
	}
	it.node = p
}
