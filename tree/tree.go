// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements an intrusive binary search tree.
//
// A [Tree] orders [Node]s that the caller allocates and owns.
// The tree never allocates or frees anything; it only rewires the
// parent, left and right links of the nodes it is given.
// This lets one caller-owned record carry nodes for several trees at once.
//
// The tree is not balanced. Its shape depends only on the order of
// insertions and erasures, and its depth is O(n) in the worst case.
package tree

import (
	"errors"
	"fmt"
	"iter"

	"github.com/jba/bimap/rng"
)

// ErrCorrupt is returned by [Tree.Verify] when a link or ordering invariant
// does not hold.
var ErrCorrupt = errors.New("corrupt tree")

// A Node is a node in a [Tree].
// Value is the key the tree orders the node by; it must not change while
// the node is in a tree.
// Owner is not used by the tree. It lets the caller get back from a node
// to the record that contains it.
type Node[T, P any] struct {
	parent *Node[T, P]
	left   *Node[T, P]
	right  *Node[T, P]
	Value  T
	Owner  P
}

// A Tree is a binary search tree ordered by a comparison function.
//
// Every tree has a sentinel node, supplied by [Tree.Init].
// The sentinel's left child is the root, and the sentinel is the
// position just past the last node, as returned by [Tree.End].
// The zero Tree is not usable; call Init first.
type Tree[T, P any] struct {
	end *Node[T, P]
	cmp func(T, T) int
}

// Init makes t an empty tree with the given sentinel, ordered by cmp.
// cmp(a, b) must be negative, zero or positive as a is less than,
// equivalent to, or greater than b.
// Any nodes previously in t are abandoned with their links intact.
func (t *Tree[T, P]) Init(sentinel *Node[T, P], cmp func(T, T) int) {
	sentinel.parent = nil
	sentinel.left = nil
	sentinel.right = nil
	t.end = sentinel
	t.cmp = cmp
}

// Compare compares a and b with t's comparison function.
func (t *Tree[T, P]) Compare(a, b T) int { return t.cmp(a, b) }

// Equal reports whether a and b are equivalent: neither orders before the other.
func (t *Tree[T, P]) Equal(a, b T) bool { return t.cmp(a, b) == 0 }

// CompareFunc returns t's comparison function.
func (t *Tree[T, P]) CompareFunc() func(T, T) int { return t.cmp }

// Empty reports whether t has no nodes.
func (t *Tree[T, P]) Empty() bool { return t.end.left == nil }

// End returns the sentinel of t.
func (t *Tree[T, P]) End() *Node[T, P] { return t.end }

// Begin returns the node with the smallest value,
// or the sentinel if t is empty.
func (t *Tree[T, P]) Begin() *Node[T, P] { return t.end.minNode() }

// Last returns the node with the largest value,
// or the sentinel if t is empty.
func (t *Tree[T, P]) Last() *Node[T, P] {
	if t.end.left == nil {
		return t.end
	}
	return t.end.left.maxNode()
}

// findNearest descends from the root towards v.
// It returns the node equivalent to v if there is one,
// and otherwise the node under which v would be attached.
// It returns the sentinel if t is empty.
func (t *Tree[T, P]) findNearest(v T) *Node[T, P] {
	x := t.end.left
	if x == nil {
		return t.end
	}
	for {
		c := t.cmp(v, x.Value)
		switch {
		case c > 0 && x.right != nil:
			x = x.right
		case c < 0 && x.left != nil:
			x = x.left
		default:
			return x
		}
	}
}

// Find returns the node equivalent to v, or the sentinel if there is none.
func (t *Tree[T, P]) Find(v T) *Node[T, P] {
	x := t.findNearest(v)
	if x == t.end || t.cmp(x.Value, v) != 0 {
		return t.end
	}
	return x
}

// Insert adds n to t and returns it.
// If t already has a node equivalent to n, Insert leaves t unchanged
// and returns the sentinel.
// n must not be in any tree that uses the same links.
func (t *Tree[T, P]) Insert(n *Node[T, P]) *Node[T, P] {
	p := t.findNearest(n.Value)
	if p == t.end {
		t.end.left = n
	} else {
		switch c := t.cmp(n.Value, p.Value); {
		case c > 0:
			p.right = n
		case c < 0:
			p.left = n
		default:
			return t.end
		}
	}
	n.parent = p
	n.left = nil
	n.right = nil
	return n
}

// Erase removes n from t. n must be in t.
// No other node moves in memory and no values are copied,
// so references to other nodes stay valid.
// On return n is detached: its links are cleared.
func (t *Tree[T, P]) Erase(n *Node[T, P]) {
	assert(n != t.end && n.parent != nil)
	switch {
	case n.left == nil:
		n.replaceWith(n.right)
	case n.right == nil:
		n.replaceWith(n.left)
	default:
		// Substitute the in-order predecessor, which has no right child.
		p := n.left.maxNode()
		p.replaceWith(p.left)
		// If p was n.left, n.left is now p's old left child (maybe nil).
		p.left = n.left
		p.right = n.right
		if p.left != nil {
			p.left.parent = p
		}
		p.right.parent = p
		n.replaceWith(p)
	}
	n.parent = nil
	n.left = nil
	n.right = nil
}

// replaceWith puts c in x's place under x's parent.
// c may be nil.
func (x *Node[T, P]) replaceWith(c *Node[T, P]) {
	p := x.parent
	if p.left == x {
		p.left = c
	} else {
		p.right = c
	}
	if c != nil {
		c.parent = p
	}
}

// LowerBound returns the first node whose value is not less than v,
// or the sentinel if there is none.
func (t *Tree[T, P]) LowerBound(v T) *Node[T, P] {
	x := t.findNearest(v)
	if x == t.end || t.cmp(x.Value, v) >= 0 {
		return x
	}
	return x.Next()
}

// UpperBound returns the first node whose value is greater than v,
// or the sentinel if there is none.
func (t *Tree[T, P]) UpperBound(v T) *Node[T, P] {
	x := t.findNearest(v)
	if x == t.end || t.cmp(x.Value, v) > 0 {
		return x
	}
	return x.Next()
}

// Swap exchanges the contents and comparison functions of t and u.
// The sentinels stay where they are, so each root is re-parented
// to its new sentinel.
func (t *Tree[T, P]) Swap(u *Tree[T, P]) {
	t.end.left, u.end.left = u.end.left, t.end.left
	t.cmp, u.cmp = u.cmp, t.cmp
	t.adoptRoot()
	u.adoptRoot()
}

func (t *Tree[T, P]) adoptRoot() {
	if r := t.end.left; r != nil {
		r.parent = t.end
	}
}

// Linked reports whether x is in a tree.
// It is false for sentinels and for erased nodes.
func (x *Node[T, P]) Linked() bool { return x.parent != nil }

// minNode returns the node in x's subtree with the smallest value.
// x must not be nil.
func (x *Node[T, P]) minNode() *Node[T, P] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest value.
// x must not be nil.
func (x *Node[T, P]) maxNode() *Node[T, P] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// Next returns the successor of x.
// The successor of the last node is the sentinel,
// and the successor of the sentinel is the first node.
// x must be linked or be a sentinel.
func (x *Node[T, P]) Next() *Node[T, P] {
	if x.right != nil {
		return x.right.minNode()
	}
	if x.parent == nil {
		return x.minNode()
	}
	// The root is the sentinel's left child, so this stops at the sentinel.
	for x.parent.right == x {
		x = x.parent
	}
	return x.parent
}

// Prev returns the predecessor of x.
// The predecessor of the first node is the sentinel,
// and the predecessor of the sentinel is the last node.
// x must be linked or be a sentinel.
func (x *Node[T, P]) Prev() *Node[T, P] {
	if x.left != nil {
		return x.left.maxNode()
	}
	for x.parent != nil && x.parent.left == x {
		x = x.parent
	}
	if x.parent == nil {
		// Climbed out of the root: x is the sentinel.
		return x
	}
	return x.parent
}

// after returns the node following x in t, even if x has been erased.
func (t *Tree[T, P]) after(x *Node[T, P]) *Node[T, P] {
	if !x.Linked() {
		return t.UpperBound(x.Value)
	}
	return x.Next()
}

// before returns the node preceding x in t, even if x has been erased.
func (t *Tree[T, P]) before(x *Node[T, P]) *Node[T, P] {
	if !x.Linked() {
		return t.LowerBound(x.Value).Prev()
	}
	return x.Prev()
}

// All returns an iterator over the nodes of t from smallest to largest.
// If t is modified during the iteration, some nodes may not be visited.
// No node will be visited multiple times.
func (t *Tree[T, P]) All() iter.Seq[*Node[T, P]] {
	return t.Scan(rng.All[T]())
}

// Backward returns an iterator over the nodes of t from largest to smallest.
// It has the same behavior under modification as [Tree.All].
func (t *Tree[T, P]) Backward() iter.Seq[*Node[T, P]] {
	return t.Scan(rng.All[T]().Backwards())
}

// Scan returns an iterator over the nodes of t whose values lie in r,
// in the direction r specifies.
// It has the same behavior under modification as [Tree.All].
func (t *Tree[T, P]) Scan(r rng.Range[T]) iter.Seq[*Node[T, P]] {
	if r.IsBackwards() {
		return func(yield func(*Node[T, P]) bool) {
			for x := t.last(r); x != t.end && r.AboveLow(t.cmp, x.Value); x = t.before(x) {
				if !yield(x) {
					return
				}
			}
		}
	}
	return func(yield func(*Node[T, P]) bool) {
		for x := t.first(r); x != t.end && r.BelowHigh(t.cmp, x.Value); x = t.after(x) {
			if !yield(x) {
				return
			}
		}
	}
}

// first returns the smallest node satisfying r's low bound.
func (t *Tree[T, P]) first(r rng.Range[T]) *Node[T, P] {
	lo, inf, incl := r.Low()
	switch {
	case inf:
		return t.Begin()
	case incl:
		return t.LowerBound(lo)
	default:
		return t.UpperBound(lo)
	}
}

// last returns the largest node satisfying r's high bound.
func (t *Tree[T, P]) last(r rng.Range[T]) *Node[T, P] {
	hi, inf, incl := r.High()
	switch {
	case inf:
		return t.Last()
	case incl:
		return t.UpperBound(hi).Prev()
	default:
		return t.LowerBound(hi).Prev()
	}
}

// Depth returns the number of nodes on the longest path from the root
// to a leaf. It is 0 for an empty tree.
func (t *Tree[T, P]) Depth() int {
	var depth func(*Node[T, P]) int
	depth = func(x *Node[T, P]) int {
		if x == nil {
			return 0
		}
		return 1 + max(depth(x.left), depth(x.right))
	}
	return depth(t.end.left)
}

// Verify checks the links and ordering of t.
// It returns an error wrapping [ErrCorrupt] describing the first
// problem it finds.
func (t *Tree[T, P]) Verify() error {
	if t.end.parent != nil || t.end.right != nil {
		return fmt.Errorf("sentinel has parent or right child: %w", ErrCorrupt)
	}
	var (
		prev    *Node[T, P]
		walkErr error
	)
	var walk func(x, parent *Node[T, P]) bool
	walk = func(x, parent *Node[T, P]) bool {
		if x == nil {
			return true
		}
		if x.parent != parent {
			walkErr = fmt.Errorf("node %v: parent link does not match: %w", x.Value, ErrCorrupt)
			return false
		}
		if !walk(x.left, x) {
			return false
		}
		if prev != nil && t.cmp(prev.Value, x.Value) >= 0 {
			walkErr = fmt.Errorf("node %v follows %v out of order: %w", x.Value, prev.Value, ErrCorrupt)
			return false
		}
		prev = x
		return walk(x.right, x)
	}
	walk(t.end.left, t.end)
	return walkErr
}

func assert(b bool) {
	if !b {
		panic("assertion failed")
	}
}
