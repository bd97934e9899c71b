package tree

import (
	"github.com/aiwl/intrusive-rbtree/lib/infra"
)

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// https://www.boost.org/doc/libs/release/doc/html/intrusive.html
// rbtree properties:
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

// RBTree is an intrusive self-balancing ordered container. The node state
// lives inside the caller's records; the tree owns the link topology only
// and never allocates or frees a record.
//
// One synthetic head node anchors the whole structure: its parent caches
// the root, its left and right cache the current minimum and maximum, so
// Begin and the last position before End are O(1). When the tree is empty
// the head's left and right point at the head itself and its parent is nil.
//
// Not safe for concurrent use; callers coordinate their own locking.
// A tree must be created through NewRBTree or NewRBTreeFunc.
type RBTree[T any, K any] struct {
	head  Node[T]
	hook  HookFunc[T]
	keyOf KeyFunc[T, K]
	less  infra.LessFunc[K]
	count int64
}

// NewRBTree builds a tree over naturally ordered keys.
func NewRBTree[T any, K infra.OrderedKey](hook HookFunc[T], keyOf KeyFunc[T, K]) *RBTree[T, K] {
	return NewRBTreeFunc[T, K](hook, keyOf, infra.OrderedLess[K])
}

// NewRBTreeFunc builds a tree with an explicit comparator policy. The
// policies are bound once and used by every algorithm afterwards.
func NewRBTreeFunc[T any, K any](hook HookFunc[T], keyOf KeyFunc[T, K], less infra.LessFunc[K]) *RBTree[T, K] {
	if hook == nil || keyOf == nil || less == nil {
		// impossible by contract
		panic("[rbtree] nil hook, key or comparator policy")
	}
	tree := &RBTree[T, K]{
		hook:  hook,
		keyOf: keyOf,
		less:  less,
	}
	tree.head.left = &tree.head
	tree.head.right = &tree.head
	return tree
}

func (tree *RBTree[T, K]) root() *Node[T] {
	return tree.head.parent
}

func (tree *RBTree[T, K]) setRoot(n *Node[T]) {
	if n != nil {
		n.parent = &tree.head
	}
	tree.head.parent = n
}

func (tree *RBTree[T, K]) Len() int64 {
	return tree.count
}

func (tree *RBTree[T, K]) IsEmpty() bool {
	return tree.head.parent == nil
}

// Begin yields the cached minimum in O(1). Equal to End for an empty tree.
func (tree *RBTree[T, K]) Begin() Iterator[T] {
	return Iterator[T]{head: &tree.head, node: tree.head.left}
}

// End yields the past-the-last position, which is the sentinel head.
func (tree *RBTree[T, K]) End() Iterator[T] {
	return Iterator[T]{head: &tree.head, node: &tree.head}
}

/*
		 |                         |
		 X                         Y
		/ \     leftRotate(X)     / \
	   L   Y    ============>    X   Yd
		  / \                   / \
		Yc   Yd                L   Yc
*/
func (tree *RBTree[T, K]) leftRotate(x *Node[T]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic("[rbtree] left rotate node x is nil or x.right is nil")
	}
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == &tree.head {
		tree.setRoot(y)
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

/*
		 |                         |
		 X                         Y
		/ \     rightRotate(X)    / \
	   Y   R    ============>   Yc   X
	  / \                           / \
	Yc   Yd                       Yd   R
*/
func (tree *RBTree[T, K]) rightRotate(x *Node[T]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic("[rbtree] right rotate node x is nil or x.left is nil")
	}
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == &tree.head {
		tree.setRoot(y)
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.right = x
	x.parent = y
}

// Insert links the record into the tree. If a record with an equal key
// (neither less than the other) is already linked, nothing is mutated and
// the iterator to the existing record is returned with false.
func (tree *RBTree[T, K]) Insert(item T) (Iterator[T], bool) {
	key := tree.keyOf(item)
	var y *Node[T]
	x := tree.root()
	for x != nil {
		y = x
		if tree.less(key, tree.keyOf(x.item)) {
			x = y.left
		} else if tree.less(tree.keyOf(x.item), key) {
			x = y.right
		} else {
			return Iterator[T]{head: &tree.head, node: x}, false
		}
	}
	z := tree.hook(item)
	z.reset()
	z.item = item
	return tree.linkNode(y, z, key), true
}

// InsertOrGet is the allocation-avoiding insertion: create is invoked only
// when no equal key occupies the tree, so a rejected duplicate costs
// nothing but the descent.
func (tree *RBTree[T, K]) InsertOrGet(key K, create func() T) (Iterator[T], bool) {
	var y *Node[T]
	x := tree.root()
	for x != nil {
		y = x
		if tree.less(key, tree.keyOf(x.item)) {
			x = y.left
		} else if tree.less(tree.keyOf(x.item), key) {
			x = y.right
		} else {
			return Iterator[T]{head: &tree.head, node: x}, false
		}
	}
	item := create()
	z := tree.hook(item)
	z.reset()
	z.item = item
	return tree.linkNode(y, z, key), true
}

// linkNode attaches the fresh red node z below parent y (nil y means the
// tree was empty), refreshes the boundary caches and rebalances.
func (tree *RBTree[T, K]) linkNode(y, z *Node[T], key K) Iterator[T] {
	if y == nil {
		tree.setRoot(z)
		tree.head.left = z
		tree.head.right = z
	} else if tree.less(key, tree.keyOf(y.item)) {
		z.parent = y
		y.left = z
		if tree.head.left == y {
			tree.head.left = z
		}
	} else {
		z.parent = y
		y.right = z
		if tree.head.right == y {
			tree.head.right = z
		}
	}
	z.left = nil
	z.right = nil
	z.color = Red
	tree.count++
	tree.insertFixup(z)
	return Iterator[T]{head: &tree.head, node: z}
}

/*
New node Z is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

While Z's parent P is red, the grandparent G must be black (p3 held before
the insert). Two shapes resolve the red-violation:

Red uncle U: repaint and continue from G, which may be red-violating again.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<Z>             <Z>

Black uncle U: if Z bends (opposite direction to P), rotate P first to
straighten the line, then rotate G and swap colors. Terminal.

	  [G]                 [G]                <P>              [P]
	  / \    rotate(P)    / \   rotate(G)    / \   repaint    / \
	<P> [U]  ========>  <Z> [U] ========>  <Z> [G] ======>  <Z> <G>
	  \                 /                        \                \
	  <Z>             <P>                        [U]              [U]

The loop exits at the latest at the root, which is forced black.
*/
func (tree *RBTree[T, K]) insertFixup(z *Node[T]) {
	for z.parent != &tree.head && z.parent.isRed() && z.parent.parent != &tree.head {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.isRed() {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					tree.leftRotate(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				tree.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.isRed() {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					tree.rightRotate(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				tree.leftRotate(z.parent.parent)
			}
		}
	}
	tree.root().color = Black
}

// Find locates the record with an equal key, or End.
func (tree *RBTree[T, K]) Find(key K) Iterator[T] {
	return tree.findNode(tree.compareWith(key))
}

// FindFunc is the transparent lookup: cmp reports the ordering of the
// caller's query relative to a stored key, so the query may be of a
// different but ordering-compatible type than K.
func (tree *RBTree[T, K]) FindFunc(cmp infra.KeyCompareFunc[K]) Iterator[T] {
	return tree.findNode(cmp)
}

func (tree *RBTree[T, K]) Contains(key K) bool {
	return tree.Find(key).Valid()
}

func (tree *RBTree[T, K]) ContainsFunc(cmp infra.KeyCompareFunc[K]) bool {
	return tree.findNode(cmp).Valid()
}

func (tree *RBTree[T, K]) compareWith(key K) infra.KeyCompareFunc[K] {
	return func(k K) int64 {
		if tree.less(key, k) {
			return -1
		} else if tree.less(k, key) {
			return 1
		}
		return 0
	}
}

func (tree *RBTree[T, K]) findNode(cmp infra.KeyCompareFunc[K]) Iterator[T] {
	for x := tree.root(); x != nil; {
		res := cmp(tree.keyOf(x.item))
		if res == 0 {
			return Iterator[T]{head: &tree.head, node: x}
		} else if res < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return tree.End()
}

// Erase unlinks the record with an equal key and returns it to the caller;
// the tree never destroys it. An absent key returns the zero value and
// false without mutation.
func (tree *RBTree[T, K]) Erase(key K) (T, bool) {
	return tree.eraseBy(tree.compareWith(key))
}

// EraseFunc is the transparent counterpart of Erase.
func (tree *RBTree[T, K]) EraseFunc(cmp infra.KeyCompareFunc[K]) (T, bool) {
	return tree.eraseBy(cmp)
}

// EraseMin unlinks and returns the current minimum, located in O(1)
// through the head's boundary cache.
func (tree *RBTree[T, K]) EraseMin() (T, bool) {
	var zero T
	if tree.IsEmpty() {
		return zero, false
	}
	return tree.unlink(tree.head.left), true
}

func (tree *RBTree[T, K]) eraseBy(cmp infra.KeyCompareFunc[K]) (T, bool) {
	var zero T
	it := tree.findNode(cmp)
	if !it.Valid() {
		return zero, false
	}
	return tree.unlink(it.node), true
}

func (tree *RBTree[T, K]) unlink(z *Node[T]) T {
	item := z.item
	tree.eraseNode(z)
	z.reset()
	tree.count--
	return item
}

// eraseNode detaches z with the classic deletion procedure: at most one
// child is spliced out directly via transplant; with two children the
// inorder successor is spliced out of its own position first and then
// transplanted into z's place, taking over z's color. The color truly
// vacated from the tree decides whether a rebalance pass is due.
func (tree *RBTree[T, K]) eraseNode(z *Node[T]) {
	// Refresh the boundary caches before any link is rewired. When the
	// last node goes away, z.parent is the head itself, which restores
	// the empty tree's self-links.
	if tree.head.left == z {
		if z.right != nil {
			tree.head.left = z.right.minimum()
		} else {
			tree.head.left = z.parent
		}
	}
	if tree.head.right == z {
		if z.left != nil {
			tree.head.right = z.left.maximum()
		} else {
			tree.head.right = z.parent
		}
	}

	y := z
	yWasRed := y.isRed()
	var x, xParent *Node[T]

	if z.left == nil {
		x = z.right
		xParent = z.parent
		tree.transplant(z, z.right)
	} else if z.right == nil {
		x = z.left
		xParent = z.parent
		tree.transplant(z, z.left)
	} else {
		y = z.right.minimum()
		yWasRed = y.isRed()
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			tree.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		tree.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	// Splicing out a black node leaves one path short of a black; x (which
	// may be a nil leaf, hence the explicit parent) carries the deficiency.
	if !yWasRed {
		tree.eraseFixup(x, xParent)
	}
}

// transplant replaces the subtree rooted at u with the one rooted at v in
// u's parent, updating back-links. v may be nil.
func (tree *RBTree[T, K]) transplant(u, v *Node[T]) {
	if u.parent == &tree.head {
		tree.setRoot(v)
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

/*
<X> is a RED node, [X] a BLACK node (or NIL), {X} either.

x is short one black; w is its sibling and always exists while x is short
(otherwise p4 was already broken before the erase).

Red sibling: rotate the parent to expose a black sibling, then continue.

	  [P]                   <W>               [W]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <W>  ==========>  [P] [D]  ======>  <P> [D]
	    / \               / \               / \
	  [C] [D]           [X] [C]           [X] [C]

Black sibling, both nephews black: repaint w red, pushing the deficiency
up to the parent (terminal if the parent is red, it just turns black).

Black sibling, near nephew red, far nephew black: rotate w to make the far
nephew red, then fall through to the terminal rotation.

Black sibling, far nephew red: rotate the parent, give w the parent's
color, blacken parent and far nephew. Terminal.

	  {P}                   [W]                {W}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [W]  ==========>  {P} <D>  ======>  [P] [D]
	    / \               / \               / \
	  [C] <D>           [X] [C]           [X] [C]
*/
func (tree *RBTree[T, K]) eraseFixup(x, xParent *Node[T]) {
	for x != tree.root() && x.isBlack() {
		if x == xParent.left {
			w := xParent.right
			if w.isRed() {
				w.color = Black
				xParent.color = Red
				tree.leftRotate(xParent)
				w = xParent.right
			}
			if w == nil {
				// impossible run to here
				panic("[rbtree] erase fixup lost the sibling")
			}
			if w.left.isBlack() && w.right.isBlack() {
				w.color = Red
				x = xParent
				xParent = x.parent
			} else {
				if w.right.isBlack() {
					w.left.color = Black
					w.color = Red
					tree.rightRotate(w)
					w = xParent.right
				}
				w.color = xParent.color
				xParent.color = Black
				if w.right != nil {
					w.right.color = Black
				}
				tree.leftRotate(xParent)
				x = tree.root()
				xParent = &tree.head
			}
		} else {
			w := xParent.left
			if w.isRed() {
				w.color = Black
				xParent.color = Red
				tree.rightRotate(xParent)
				w = xParent.left
			}
			if w == nil {
				// impossible run to here
				panic("[rbtree] erase fixup lost the sibling")
			}
			if w.right.isBlack() && w.left.isBlack() {
				w.color = Red
				x = xParent
				xParent = x.parent
			} else {
				if w.left.isBlack() {
					w.right.color = Black
					w.color = Red
					tree.leftRotate(w)
					w = xParent.left
				}
				w.color = xParent.color
				xParent.color = Black
				if w.left != nil {
					w.left.color = Black
				}
				tree.rightRotate(xParent)
				x = tree.root()
				xParent = &tree.head
			}
		}
	}
	if x != nil {
		x.color = Black
	}
}

// Clear resets the sentinel only, in O(1). The detached nodes keep their
// stale link values; this is the documented escape hatch for callers whose
// records are already scheduled for destruction elsewhere. Use
// ClearAndDispose to visit every record.
func (tree *RBTree[T, K]) Clear() {
	tree.head.parent = nil
	tree.head.left = &tree.head
	tree.head.right = &tree.head
	tree.count = 0
}

// ClearAndDispose detaches every node and hands its record to dispose,
// exactly once each, without recursion and without auxiliary storage: a
// node's left child is right-rotated into its place until the node has no
// left child anymore, at which point it is disposed. Amortized O(n).
func (tree *RBTree[T, K]) ClearAndDispose(dispose DisposeFunc[T]) {
	x := tree.root()
	tree.Clear()
	disposeSubtree(x, dispose)
}

func disposeSubtree[T any](x *Node[T], dispose DisposeFunc[T]) {
	for x != nil {
		s := x.left
		if s != nil {
			// Rotate the left child into x's place.
			x.left = s.right
			s.right = x
		} else {
			s = x.right
			dispose(x.item)
		}
		x = s
	}
}

// Clone builds an independent tree with the same topology and colors,
// constructing every node through the caller's clone callback. The walk is
// iterative: descend into the first source child whose counterpart is
// missing, otherwise climb. If the callback fails partway, the partially
// built destination is torn down through dispose and the error returned;
// the source is never mutated either way.
func (tree *RBTree[T, K]) Clone(clone CloneFunc[T], dispose DisposeFunc[T]) (*RBTree[T, K], error) {
	rv := NewRBTreeFunc[T, K](tree.hook, tree.keyOf, tree.less)
	if tree.IsEmpty() {
		return rv, nil
	}

	nodeOrig := tree.root()
	item, err := clone(nodeOrig.item)
	if err != nil {
		return nil, err
	}
	nodeClone := rv.hook(item)
	nodeClone.reset()
	nodeClone.item = item
	nodeClone.color = nodeOrig.color
	rv.setRoot(nodeClone)

	for {
		if nodeOrig.left != nil && nodeClone.left == nil {
			nodeOrig = nodeOrig.left
			if item, err = clone(nodeOrig.item); err != nil {
				disposeSubtree(rv.root(), dispose)
				return nil, err
			}
			parentClone := nodeClone
			nodeClone = rv.hook(item)
			nodeClone.reset()
			nodeClone.item = item
			nodeClone.color = nodeOrig.color
			parentClone.left = nodeClone
			nodeClone.parent = parentClone
		} else if nodeOrig.right != nil && nodeClone.right == nil {
			nodeOrig = nodeOrig.right
			if item, err = clone(nodeOrig.item); err != nil {
				disposeSubtree(rv.root(), dispose)
				return nil, err
			}
			parentClone := nodeClone
			nodeClone = rv.hook(item)
			nodeClone.reset()
			nodeClone.item = item
			nodeClone.color = nodeOrig.color
			parentClone.right = nodeClone
			nodeClone.parent = parentClone
		} else {
			nodeOrig = nodeOrig.parent
			nodeClone = nodeClone.parent
			if nodeOrig == &tree.head {
				break
			}
		}
	}

	rv.head.left = rv.root().minimum()
	rv.head.right = rv.root().maximum()
	rv.count = tree.count
	return rv, nil
}

// Swap exchanges link topology, policies and length of two trees in O(1).
// The empty state's self-referential head links do not survive a naive
// pointer swap, so the empty/non-empty combinations are spelled out.
func (tree *RBTree[T, K]) Swap(other *RBTree[T, K]) {
	tree.hook, other.hook = other.hook, tree.hook
	tree.keyOf, other.keyOf = other.keyOf, tree.keyOf
	tree.less, other.less = other.less, tree.less
	tree.count, other.count = other.count, tree.count

	switch {
	case tree.head.parent != nil && other.head.parent != nil:
		tree.head.left, other.head.left = other.head.left, tree.head.left
		tree.head.right, other.head.right = other.head.right, tree.head.right
		tree.head.parent, other.head.parent = other.head.parent, tree.head.parent
		tree.head.parent.parent = &tree.head
		other.head.parent.parent = &other.head
	case tree.head.parent != nil:
		other.head.left = tree.head.left
		other.head.right = tree.head.right
		other.head.parent = tree.head.parent
		other.head.parent.parent = &other.head
		tree.head.left = &tree.head
		tree.head.right = &tree.head
		tree.head.parent = nil
	case other.head.parent != nil:
		tree.head.left = other.head.left
		tree.head.right = other.head.right
		tree.head.parent = other.head.parent
		tree.head.parent.parent = &tree.head
		other.head.left = &other.head
		other.head.right = &other.head
		other.head.parent = nil
	default:
		// both empty
	}
}

// Foreach walks the tree inorder through the link iterator.
func (tree *RBTree[T, K]) Foreach(action func(idx int64, color RBColor, key K, item T) bool) {
	idx := int64(0)
	for it := tree.Begin(); it.Valid(); it.Next() {
		n := it.node
		if !action(idx, n.color, tree.keyOf(n.item), n.item) {
			return
		}
		idx++
	}
}
