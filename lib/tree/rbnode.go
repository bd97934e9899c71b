package tree

// Node is the intrusive link state a record type embeds by value, one per
// tree it can be a member of. It owns no payload; the record containing it
// does. Go has no way to cast an embedded field back to its container, so
// the node carries a back-reference to the owning record instead, set when
// the node is linked and cleared when it is unlinked.
//
// The zero value is the unlinked state.
type Node[T any] struct {
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
	item   T
	color  RBColor
}

func (node *Node[T]) Color() RBColor {
	return node.color
}

// Unlinked reports whether the node is not part of any tree.
func (node *Node[T]) Unlinked() bool {
	return node.parent == nil && node.left == nil && node.right == nil
}

func (node *Node[T]) reset() {
	var zero T
	node.parent = nil
	node.left = nil
	node.right = nil
	node.item = zero
	node.color = Black
}

func (node *Node[T]) isRed() bool {
	return node != nil && node.color == Red
}

// A nil node is a leaf and all leaves are black.
func (node *Node[T]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *Node[T]) minimum() *Node[T] {
	aux := node
	for aux.left != nil {
		aux = aux.left
	}
	return aux
}

func (node *Node[T]) maximum() *Node[T] {
	aux := node
	for aux.right != nil {
		aux = aux.right
	}
	return aux
}
