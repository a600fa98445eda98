// Package intervaltree provides an augmented interval tree over
// boundary-typed intervals for efficient range-overlap queries. It supports
// Insert, Delete, QueryOverlap, and QueryPoint with O(log N) insert/delete
// and O(log N + k) query time, where k is the number of matches.
//
// The tree is backed by a red-black tree where each node stores the maximum
// upper bound (maxUpper) in its subtree, enabling subtree pruning during
// overlap queries. Open and closed boundaries are honored through the
// interval overlap semantics; pruning compares bound values conservatively.
package intervaltree

import (
	"cmp"

	"github.com/Sumatoshi-tech/intervals/pkg/interval"
)

// Item is one stored interval with its associated value.
type Item[T cmp.Ordered, V comparable] struct {
	Interval interval.Interval[T]
	Value    V
}

// Tree is an augmented interval tree supporting overlap queries.
type Tree[T cmp.Ordered, V comparable] struct {
	root *node[T, V]
	size int
}

// node is an internal red-black tree node augmented with maxUpper.
type node[T cmp.Ordered, V comparable] struct {
	item        Item[T, V]
	maxUpper    T
	left, right *node[T, V]
	parent      *node[T, V]
	color       color
}

// color represents the red-black tree node color.
type color bool

// Red-black tree color constants.
const (
	red   color = false
	black color = true
)

// New creates an empty interval tree.
func New[T cmp.Ordered, V comparable]() *Tree[T, V] {
	return &Tree[T, V]{}
}

// Len returns the number of intervals in the tree.
func (t *Tree[T, V]) Len() int {
	return t.size
}

// Clear removes all intervals from the tree.
func (t *Tree[T, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds an interval with the given value to the tree. Empty
// intervals are ignored: they overlap nothing and contain nothing.
func (t *Tree[T, V]) Insert(iv interval.Interval[T], value V) {
	if iv.IsEmpty() {
		return
	}

	upper, _ := iv.Upper()
	n := &node[T, V]{
		item:     Item[T, V]{Interval: iv, Value: value},
		maxUpper: upper,
		color:    red,
	}

	t.bstInsert(n)
	t.insertFixup(n)
	t.size++
}

// Delete removes one interval matching iv with the given value.
// Returns true if a match was found and removed, false otherwise.
func (t *Tree[T, V]) Delete(iv interval.Interval[T], value V) bool {
	n := t.findExact(t.root, Item[T, V]{Interval: iv, Value: value})
	if n == nil {
		return false
	}

	t.deleteNode(n)
	t.size--

	return true
}

// QueryOverlap returns all items whose intervals share at least one value
// with the query interval. An empty query matches nothing.
func (t *Tree[T, V]) QueryOverlap(query interval.Interval[T]) []Item[T, V] {
	if t.root == nil || query.IsEmpty() {
		return nil
	}

	var results []Item[T, V]

	t.collectOverlap(t.root, query, &results)

	return results
}

// QueryPoint returns all items whose intervals contain the given point.
func (t *Tree[T, V]) QueryPoint(point T) []Item[T, V] {
	return t.QueryOverlap(interval.Point(point))
}

// bstInsert performs standard BST insertion ordered by the interval
// ordering (lower bound first, inclusive before exclusive at ties).
func (t *Tree[T, V]) bstInsert(n *node[T, V]) {
	if t.root == nil {
		t.root = n

		return
	}

	upper, _ := n.item.Interval.Upper()
	current := t.root

	for {
		updateMaxUpper(current, upper)

		if interval.Compare(n.item.Interval, current.item.Interval) < 0 {
			if current.left == nil {
				current.left = n
				n.parent = current

				return
			}

			current = current.left
		} else {
			if current.right == nil {
				current.right = n
				n.parent = current

				return
			}

			current = current.right
		}
	}
}

// findExact searches for an exact interval-and-value match in the subtree.
func (t *Tree[T, V]) findExact(n *node[T, V], target Item[T, V]) *node[T, V] {
	if n == nil {
		return nil
	}

	c := interval.Compare(target.Interval, n.item.Interval)

	if c == 0 && n.item.Value == target.Value {
		return n
	}

	if c < 0 {
		return t.findExact(n.left, target)
	}

	// c > 0, or c == 0 but the value doesn't match — search right subtree.
	// Also check left for duplicate intervals with different values.
	if c == 0 {
		if found := t.findExact(n.left, target); found != nil {
			return found
		}
	}

	return t.findExact(n.right, target)
}

// deleteNode removes a node from the tree using standard RB-tree deletion.
func (t *Tree[T, V]) deleteNode(n *node[T, V]) {
	// If node has two children, swap with in-order successor.
	if n.left != nil && n.right != nil {
		succ := minimum(n.right)
		n.item = succ.item
		n = succ
	}

	// n now has at most one child.
	child := n.left
	if child == nil {
		child = n.right
	}

	needFixup := n.color == black

	t.transplant(n, child)
	t.propagateMaxUpper(n.parent)

	if !needFixup {
		return
	}

	if child != nil {
		t.deleteFixup(child)

		return
	}

	if n.parent != nil {
		t.deleteFixupLeaf(n.parent, n == n.parent.left)
		t.detachFromParent(n)
	}
}

// transplant replaces node u with node v in the tree.
func (t *Tree[T, V]) transplant(u, v *node[T, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// detachFromParent removes any remaining reference to n from its parent.
func (t *Tree[T, V]) detachFromParent(n *node[T, V]) {
	if n.parent == nil {
		return
	}

	switch n {
	case n.parent.left:
		n.parent.left = nil
	case n.parent.right:
		n.parent.right = nil
	}

	t.propagateMaxUpper(n.parent)
}

// insertFixup restores red-black properties after insertion.
func (t *Tree[T, V]) insertFixup(n *node[T, V]) {
	for n != t.root && nodeColor(n.parent) == red {
		parent := n.parent

		grandparent := parent.parent
		if grandparent == nil {
			break
		}

		isLeft := parent == grandparent.left
		n = t.insertFixupCase(n, parent, grandparent, isLeft)
	}

	t.root.color = black
}

// insertFixupCase handles one side of the insert fixup. When leftCase is
// true, parent is grandparent.left; otherwise parent is grandparent.right.
func (t *Tree[T, V]) insertFixupCase(n, parent, grandparent *node[T, V], leftCase bool) *node[T, V] {
	uncle := childOf(grandparent, !leftCase)

	if nodeColor(uncle) == red {
		parent.color = black
		uncle.color = black
		grandparent.color = red

		return grandparent
	}

	// Check if n is the "inner" child.
	if n == childOf(parent, !leftCase) {
		t.rotate(parent, leftCase)
		n, parent = parent, n
	}

	parent.color = black
	grandparent.color = red
	t.rotate(grandparent, !leftCase)

	return n
}

// deleteFixup restores red-black properties after deletion (non-nil child
// case).
func (t *Tree[T, V]) deleteFixup(x *node[T, V]) {
	for x != t.root && nodeColor(x) == black {
		if x.parent == nil {
			break
		}

		isLeft := x == x.parent.left
		x = t.deleteFixupCase(x.parent, isLeft)
	}

	if x != nil {
		x.color = black
	}
}

// deleteFixupLeaf restores red-black properties when a black leaf was
// deleted.
func (t *Tree[T, V]) deleteFixupLeaf(parent *node[T, V], wasLeft bool) {
	for parent != nil {
		if t.deleteFixupCaseLeaf(parent, wasLeft) {
			break
		}

		// Move up the tree.
		if parent.parent != nil {
			wasLeft = parent == parent.parent.left
		}

		parent = parent.parent
	}
}

// deleteFixupCaseLeaf handles one iteration of delete fixup for a nil leaf.
// Returns true when the fixup loop is done.
func (t *Tree[T, V]) deleteFixupCaseLeaf(parent *node[T, V], isLeft bool) bool {
	sibling := childOf(parent, !isLeft)
	if sibling == nil {
		return false
	}

	if nodeColor(sibling) == red {
		sibling.color = black
		parent.color = red
		t.rotate(parent, isLeft)

		sibling = childOf(parent, !isLeft)

		if sibling == nil {
			return true
		}
	}

	return t.fixupRecolor(parent, sibling, isLeft)
}

// fixupRecolor handles the recolor/rotation sub-cases of delete fixup.
func (t *Tree[T, V]) fixupRecolor(parent, sibling *node[T, V], isLeft bool) bool {
	outerChild := childOf(sibling, !isLeft)
	innerChild := childOf(sibling, isLeft)

	if nodeColor(innerChild) == black && nodeColor(outerChild) == black {
		sibling.color = red

		if parent.color == red {
			parent.color = black

			return true
		}

		return false
	}

	return t.fixupRotate(parent, sibling, isLeft)
}

// fixupRotate performs the final rotation case of delete fixup.
func (t *Tree[T, V]) fixupRotate(parent, sibling *node[T, V], isLeft bool) bool {
	outerChild := childOf(sibling, !isLeft)

	if nodeColor(outerChild) == black {
		setBlack(childOf(sibling, isLeft))
		sibling.color = red
		t.rotate(sibling, !isLeft)

		sibling = childOf(parent, !isLeft)
		outerChild = childOf(sibling, !isLeft)
	}

	if sibling != nil {
		sibling.color = parent.color
	}

	parent.color = black

	setBlack(outerChild)
	t.rotate(parent, isLeft)

	return true
}

// deleteFixupCase handles one iteration of delete fixup for a real child
// node.
func (t *Tree[T, V]) deleteFixupCase(parent *node[T, V], isLeft bool) *node[T, V] {
	sibling := childOf(parent, !isLeft)
	if sibling == nil {
		return parent
	}

	if nodeColor(sibling) == red {
		sibling.color = black
		parent.color = red
		t.rotate(parent, isLeft)

		sibling = childOf(parent, !isLeft)
	}

	if sibling == nil {
		return parent
	}

	outerChild := childOf(sibling, !isLeft)
	innerChild := childOf(sibling, isLeft)

	if nodeColor(innerChild) == black && nodeColor(outerChild) == black {
		sibling.color = red

		return parent
	}

	if nodeColor(outerChild) == black {
		setBlack(innerChild)

		sibling.color = red
		t.rotate(sibling, !isLeft)

		sibling = childOf(parent, !isLeft)
	}

	if sibling != nil {
		sibling.color = parent.color
	}

	parent.color = black

	setBlack(childOf(sibling, !isLeft))
	t.rotate(parent, isLeft)

	return t.root
}

// rotate performs a rotation at node n. When left is true, rotates left;
// otherwise rotates right. Maintains the maxUpper augmentation.
func (t *Tree[T, V]) rotate(n *node[T, V], left bool) {
	var pivot *node[T, V]

	if left {
		pivot = n.right
		n.right = pivot.left

		if pivot.left != nil {
			pivot.left.parent = n
		}

		pivot.left = n
	} else {
		pivot = n.left
		n.left = pivot.right

		if pivot.right != nil {
			pivot.right.parent = n
		}

		pivot.right = n
	}

	pivot.parent = n.parent

	switch {
	case n.parent == nil:
		t.root = pivot
	case n == n.parent.left:
		n.parent.left = pivot
	default:
		n.parent.right = pivot
	}

	n.parent = pivot

	// Recalculate maxUpper bottom-up: n first, then pivot.
	recalcMaxUpper(n)
	recalcMaxUpper(pivot)
}

// collectOverlap recursively collects items overlapping the query interval.
// Pruning compares bound values only, which is conservative for open
// bounds; the exact boundary semantics come from Interval.Overlaps.
func (t *Tree[T, V]) collectOverlap(n *node[T, V], query interval.Interval[T], results *[]Item[T, V]) {
	if n == nil {
		return
	}

	queryLower, _ := query.Lower()
	queryUpper, _ := query.Upper()

	// Prune: if no upper bound in this subtree reaches the query's lower
	// bound, no overlap is possible.
	if n.maxUpper < queryLower {
		return
	}

	// Search left subtree.
	t.collectOverlap(n.left, query, results)

	if n.item.Interval.Overlaps(query) {
		*results = append(*results, n.item)
	}

	// Prune right: every interval to the right starts at or after this
	// node's lower bound.
	nodeLower, _ := n.item.Interval.Lower()
	if nodeLower > queryUpper {
		return
	}

	// Search right subtree.
	t.collectOverlap(n.right, query, results)
}

// nodeColor returns the color of a node, treating nil as black.
func nodeColor[T cmp.Ordered, V comparable](n *node[T, V]) color {
	if n == nil {
		return black
	}

	return n.color
}

// setBlack sets a node's color to black if it is non-nil.
func setBlack[T cmp.Ordered, V comparable](n *node[T, V]) {
	if n != nil {
		n.color = black
	}
}

// childOf returns the left or right child of a node.
// When left is true, returns n.left; otherwise n.right.
func childOf[T cmp.Ordered, V comparable](n *node[T, V], left bool) *node[T, V] {
	if n == nil {
		return nil
	}

	if left {
		return n.left
	}

	return n.right
}

// recalcMaxUpper recalculates a node's maxUpper from its interval and
// children.
func recalcMaxUpper[T cmp.Ordered, V comparable](n *node[T, V]) {
	if n == nil {
		return
	}

	m, _ := n.item.Interval.Upper()

	if n.left != nil && n.left.maxUpper > m {
		m = n.left.maxUpper
	}

	if n.right != nil && n.right.maxUpper > m {
		m = n.right.maxUpper
	}

	n.maxUpper = m
}

// updateMaxUpper updates a node's maxUpper if the given bound is larger.
func updateMaxUpper[T cmp.Ordered, V comparable](n *node[T, V], upper T) {
	if upper > n.maxUpper {
		n.maxUpper = upper
	}
}

// propagateMaxUpper recalculates maxUpper from the given node up to the
// root.
func (t *Tree[T, V]) propagateMaxUpper(n *node[T, V]) {
	for n != nil {
		recalcMaxUpper(n)
		n = n.parent
	}
}

// minimum returns the leftmost node in the subtree rooted at n.
func minimum[T cmp.Ordered, V comparable](n *node[T, V]) *node[T, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}
