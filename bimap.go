// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bimap implements in-memory ordered bidirectional maps.
//
// A [Map][L, R] holds pairs (l, r) in which every l is unique under the
// left ordering and every r is unique under the right ordering.
// Either side can be searched, iterated in order, or scanned by range,
// and a position on one side converts to the same pair's position on the
// other side in constant time with [LeftIter.Flip] or [RightIter.Flip].
//
// A Map is not safe for concurrent use.
package bimap

// The implementation runs two unbalanced binary search trees, one per
// side, over shared pair records. Each pair holds one node for each tree,
// and each node points back at its pair. See package tree.

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/jba/bimap/tree"
)

// ErrKeyNotFound is returned by [Map.AtLeft] and [Map.AtRight]
// when the key is not in the map.
var ErrKeyNotFound = errors.New("key not found")

// A pair is one entry of a Map. It is a node in both trees.
type pair[L, R any] struct {
	left  tree.Node[L, *pair[L, R]]
	right tree.Node[R, *pair[L, R]]
	end   bool // the Map's header; its nodes are the trees' sentinels
}

// A Map is a set of (L, R) pairs ordered independently by L and by R.
// Use [New] or [NewFunc] to create a Map.
// A Map must not be copied; use [Map.Clone] or [Map.Assign].
type Map[L, R any] struct {
	header pair[L, R]
	left   tree.Tree[L, *pair[L, R]]
	right  tree.Tree[R, *pair[L, R]]
	n      int
}

// New returns an empty Map ordered by the standard Go ordering of L and R.
func New[L, R cmp.Ordered]() *Map[L, R] {
	return NewFunc[L, R](cmp.Compare[L], cmp.Compare[R])
}

// NewFunc returns an empty Map whose left side is ordered by lcmp
// and whose right side is ordered by rcmp.
// Each function must return a negative number, zero, or a positive number
// as its first argument is less than, equivalent to, or greater than its second.
func NewFunc[L, R any](lcmp func(L, L) int, rcmp func(R, R) int) *Map[L, R] {
	if lcmp == nil || rcmp == nil {
		panic("bimap: nil comparison function")
	}
	m := new(Map[L, R])
	m.header.end = true
	m.header.left.Owner = &m.header
	m.header.right.Owner = &m.header
	m.left.Init(&m.header.left, lcmp)
	m.right.Init(&m.header.right, rcmp)
	return m
}

// Len returns the number of pairs in m.
func (m *Map[L, R]) Len() int { return m.n }

// Empty reports whether m has no pairs.
func (m *Map[L, R]) Empty() bool { return m.n == 0 }

// Insert adds the pair (l, r) to m and returns its left position.
// If m already has a pair with left value l or a pair with right value r,
// Insert does nothing and returns [Map.EndLeft].
func (m *Map[L, R]) Insert(l L, r R) LeftIter[L, R] {
	if m.left.Find(l) != m.left.End() || m.right.Find(r) != m.right.End() {
		return m.EndLeft()
	}
	p := new(pair[L, R])
	p.left.Value, p.left.Owner = l, p
	p.right.Value, p.right.Owner = r, p
	// Both values are known to be absent, so neither insertion can fail.
	m.left.Insert(&p.left)
	m.right.Insert(&p.right)
	m.n++
	return LeftIter[L, R]{&p.left}
}

// erase unlinks p from both trees.
func (m *Map[L, R]) erase(p *pair[L, R]) {
	m.left.Erase(&p.left)
	m.right.Erase(&p.right)
	m.n--
}

// EraseLeft removes the pair at it from m and returns the left position
// that followed it.
// Iterators to the removed pair, on either side, become invalid;
// all other iterators stay valid.
// EraseLeft panics if it is an end or zero iterator.
func (m *Map[L, R]) EraseLeft(it LeftIter[L, R]) LeftIter[L, R] {
	it.mustDeref("EraseLeft")
	next := it.Next()
	m.erase(it.n.Owner)
	return next
}

// EraseRight removes the pair at it from m and returns the right position
// that followed it. It is the mirror image of [Map.EraseLeft].
func (m *Map[L, R]) EraseRight(it RightIter[L, R]) RightIter[L, R] {
	it.mustDeref("EraseRight")
	next := it.Next()
	m.erase(it.n.Owner)
	return next
}

// DeleteLeft removes the pair with left value l, if any,
// and reports whether there was one.
func (m *Map[L, R]) DeleteLeft(l L) bool {
	it := m.FindLeft(l)
	if it.IsEnd() {
		return false
	}
	m.EraseLeft(it)
	return true
}

// DeleteRight removes the pair with right value r, if any,
// and reports whether there was one.
func (m *Map[L, R]) DeleteRight(r R) bool {
	it := m.FindRight(r)
	if it.IsEnd() {
		return false
	}
	m.EraseRight(it)
	return true
}

// EraseLeftRange removes the pairs in the left-ordered range [first, last)
// and returns last.
func (m *Map[L, R]) EraseLeftRange(first, last LeftIter[L, R]) LeftIter[L, R] {
	for first != last {
		first = m.EraseLeft(first)
	}
	return last
}

// EraseRightRange removes the pairs in the right-ordered range [first, last)
// and returns last.
func (m *Map[L, R]) EraseRightRange(first, last RightIter[L, R]) RightIter[L, R] {
	for first != last {
		first = m.EraseRight(first)
	}
	return last
}

// Clear removes every pair from m.
// All iterators to pairs of m become invalid.
func (m *Map[L, R]) Clear() {
	for !m.left.Empty() {
		m.erase(m.left.Begin().Owner)
	}
}

// FindLeft returns the position of left value l,
// or [Map.EndLeft] if l is not in m.
func (m *Map[L, R]) FindLeft(l L) LeftIter[L, R] {
	return LeftIter[L, R]{m.left.Find(l)}
}

// FindRight returns the position of right value r,
// or [Map.EndRight] if r is not in m.
func (m *Map[L, R]) FindRight(r R) RightIter[L, R] {
	return RightIter[L, R]{m.right.Find(r)}
}

// GetLeft returns the right value paired with l and reports whether it exists.
func (m *Map[L, R]) GetLeft(l L) (R, bool) {
	if it := m.FindLeft(l); !it.IsEnd() {
		return it.Flip().Value(), true
	}
	var zero R
	return zero, false
}

// GetRight returns the left value paired with r and reports whether it exists.
func (m *Map[L, R]) GetRight(r R) (L, bool) {
	if it := m.FindRight(r); !it.IsEnd() {
		return it.Flip().Value(), true
	}
	var zero L
	return zero, false
}

// AtLeft returns the right value paired with l.
// If l is not in m, the error wraps [ErrKeyNotFound].
func (m *Map[L, R]) AtLeft(l L) (R, error) {
	r, ok := m.GetLeft(l)
	if !ok {
		return r, fmt.Errorf("left value %v: %w", l, ErrKeyNotFound)
	}
	return r, nil
}

// AtRight returns the left value paired with r.
// If r is not in m, the error wraps [ErrKeyNotFound].
func (m *Map[L, R]) AtRight(r R) (L, error) {
	l, ok := m.GetRight(r)
	if !ok {
		return l, fmt.Errorf("right value %v: %w", r, ErrKeyNotFound)
	}
	return l, nil
}

// AtLeftOrDefault returns the right value paired with l.
// If l is not in m, it adds the pair (l, zero) and returns zero,
// where zero is the zero value of R. Any pair that already had
// zero as its right value is removed first.
func (m *Map[L, R]) AtLeftOrDefault(l L) R {
	if it := m.FindLeft(l); !it.IsEnd() {
		return it.Flip().Value()
	}
	var zero R
	m.DeleteRight(zero)
	return m.Insert(l, zero).Flip().Value()
}

// AtRightOrDefault returns the left value paired with r.
// If r is not in m, it adds the pair (zero, r) and returns zero,
// where zero is the zero value of L. Any pair that already had
// zero as its left value is removed first.
func (m *Map[L, R]) AtRightOrDefault(r R) L {
	if it := m.FindRight(r); !it.IsEnd() {
		return it.Flip().Value()
	}
	var zero L
	m.DeleteLeft(zero)
	return m.Insert(zero, r).Value()
}

// LowerBoundLeft returns the first left position whose value is not less than l.
func (m *Map[L, R]) LowerBoundLeft(l L) LeftIter[L, R] {
	return LeftIter[L, R]{m.left.LowerBound(l)}
}

// UpperBoundLeft returns the first left position whose value is greater than l.
func (m *Map[L, R]) UpperBoundLeft(l L) LeftIter[L, R] {
	return LeftIter[L, R]{m.left.UpperBound(l)}
}

// LowerBoundRight returns the first right position whose value is not less than r.
func (m *Map[L, R]) LowerBoundRight(r R) RightIter[L, R] {
	return RightIter[L, R]{m.right.LowerBound(r)}
}

// UpperBoundRight returns the first right position whose value is greater than r.
func (m *Map[L, R]) UpperBoundRight(r R) RightIter[L, R] {
	return RightIter[L, R]{m.right.UpperBound(r)}
}

// BeginLeft returns the position of the smallest left value.
func (m *Map[L, R]) BeginLeft() LeftIter[L, R] { return LeftIter[L, R]{m.left.Begin()} }

// EndLeft returns the position following the largest left value.
func (m *Map[L, R]) EndLeft() LeftIter[L, R] { return LeftIter[L, R]{m.left.End()} }

// BeginRight returns the position of the smallest right value.
func (m *Map[L, R]) BeginRight() RightIter[L, R] { return RightIter[L, R]{m.right.Begin()} }

// EndRight returns the position following the largest right value.
func (m *Map[L, R]) EndRight() RightIter[L, R] { return RightIter[L, R]{m.right.End()} }

// Equal reports whether m and o hold equivalent pairs.
// Values are compared with m's comparison functions.
func (m *Map[L, R]) Equal(o *Map[L, R]) bool {
	if m == o {
		return true
	}
	if m.n != o.n {
		return false
	}
	for a, b := m.BeginLeft(), o.BeginLeft(); !a.IsEnd(); a, b = a.Next(), b.Next() {
		if !m.left.Equal(a.Value(), b.Value()) || !m.right.Equal(a.Flip().Value(), b.Flip().Value()) {
			return false
		}
	}
	return true
}

// Clone returns a copy of m with the same comparison functions.
func (m *Map[L, R]) Clone() *Map[L, R] {
	c := NewFunc(m.left.CompareFunc(), m.right.CompareFunc())
	for l, r := range m.All() {
		c.Insert(l, r)
	}
	return c
}

// Assign replaces the contents and comparison functions of m
// with a copy of those of src.
func (m *Map[L, R]) Assign(src *Map[L, R]) {
	if m == src {
		return
	}
	c := src.Clone()
	m.Swap(c)
	c.Clear()
}

// Swap exchanges the contents and comparison functions of m and o.
// Iterators to pairs stay valid and follow their pairs;
// end iterators stay with their maps.
func (m *Map[L, R]) Swap(o *Map[L, R]) {
	m.left.Swap(&o.left)
	m.right.Swap(&o.right)
	m.n, o.n = o.n, m.n
}

// Move replaces the contents and comparison functions of m
// with those of src, leaving src empty.
// The previous pairs of m are removed.
func (m *Map[L, R]) Move(src *Map[L, R]) {
	if m == src {
		return
	}
	m.Clear()
	m.Swap(src)
}

// All returns an iterator over the pairs of m in left order.
// It is shorthand for m.Left().All().
func (m *Map[L, R]) All() iter.Seq2[L, R] {
	return m.Left().All()
}

func (m *Map[L, R]) String() string {
	var b strings.Builder
	b.WriteString("bimap[")
	sep := ""
	for l, r := range m.All() {
		fmt.Fprintf(&b, "%s%v:%v", sep, l, r)
		sep = " "
	}
	b.WriteByte(']')
	return b.String()
}

// Verify checks the internal consistency of m:
// the links and ordering of both trees, that each tree holds exactly
// Len nodes, and that every node belongs to a pair linked into both trees.
// Errors wrap [tree.ErrCorrupt].
func (m *Map[L, R]) Verify() error {
	if err := m.left.Verify(); err != nil {
		return fmt.Errorf("left tree: %w", err)
	}
	if err := m.right.Verify(); err != nil {
		return fmt.Errorf("right tree: %w", err)
	}
	nl := 0
	for x := range m.left.All() {
		nl++
		if p := x.Owner; p == nil || &p.left != x || !p.right.Linked() {
			return fmt.Errorf("left value %v: pair not linked on both sides: %w", x.Value, tree.ErrCorrupt)
		}
	}
	nr := 0
	for x := range m.right.All() {
		nr++
		if p := x.Owner; p == nil || &p.right != x || !p.left.Linked() {
			return fmt.Errorf("right value %v: pair not linked on both sides: %w", x.Value, tree.ErrCorrupt)
		}
	}
	if nl != m.n || nr != m.n {
		return fmt.Errorf("size %d, but %d left and %d right nodes: %w", m.n, nl, nr, tree.ErrCorrupt)
	}
	return nil
}
