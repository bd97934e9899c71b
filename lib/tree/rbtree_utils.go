package tree

import (
	"errors"
)

// rbtree rule validation utilities, exported for test suites that want to
// re-check the balance invariants after every mutation.

var (
	ErrRBTreeRedViolation   = errors.New("[rbtree] red violation")
	ErrRBTreeBlackViolation = errors.New("[rbtree] black violation")
	ErrRBTreeOrderViolation = errors.New("[rbtree] inorder sequence violation")
)

// RedViolationValidate walks the tree inorder and reports a red root or a
// red node with a red parent or child.
func RedViolationValidate[T any, K any](tree *RBTree[T, K]) error {
	if tree.root().isRed() {
		return ErrRBTreeRedViolation
	}
	for it := tree.Begin(); it.Valid(); it.Next() {
		node := it.node
		if node.isRed() &&
			((node.parent != &tree.head && node.parent.isRed()) ||
				node.left.isRed() || node.right.isRed()) {
			return ErrRBTreeRedViolation
		}
	}
	return nil
}

// blackDepthTo counts the black nodes on the path from target up to the
// head sentinel, target included.
func blackDepthTo[T any](target, head *Node[T]) int {
	depth := 0
	for aux := target; aux != head; aux = aux.parent {
		if aux.isBlack() {
			depth++
		}
	}
	return depth
}

// BlackViolationValidate checks that every path ending in an absent child
// carries the same number of black nodes. Any node missing at least one
// child terminates such a path, so those are the ones compared.
func BlackViolationValidate[T any, K any](tree *RBTree[T, K]) error {
	depth := -1
	for it := tree.Begin(); it.Valid(); it.Next() {
		node := it.node
		if node.left != nil && node.right != nil {
			continue
		}
		d := blackDepthTo(node, &tree.head)
		if depth == -1 {
			depth = d
		} else if d != depth {
			return ErrRBTreeBlackViolation
		}
	}
	return nil
}

// OrderViolationValidate checks that inorder iteration yields keys in
// strictly ascending order under the tree's own comparator and that the
// walk visits exactly Len nodes.
func OrderViolationValidate[T any, K any](tree *RBTree[T, K]) error {
	var (
		n    int64
		prev K
	)
	for it := tree.Begin(); it.Valid(); it.Next() {
		key := tree.keyOf(it.Item())
		if n > 0 && !tree.less(prev, key) {
			return ErrRBTreeOrderViolation
		}
		prev = key
		n++
	}
	if n != tree.count {
		return ErrRBTreeOrderViolation
	}
	return nil
}
