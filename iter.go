// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bimap

import "github.com/jba/bimap/tree"

// A LeftIter is a position in the left ordering of a [Map]:
// either a pair, or the end position that follows the last pair.
// Two LeftIters are equal if they are at the same position.
//
// The zero LeftIter is at no position. Only Flip and IsEnd
// may be called on it.
type LeftIter[L, R any] struct {
	n *tree.Node[L, *pair[L, R]]
}

// A RightIter is a position in the right ordering of a [Map].
// It behaves like a [LeftIter].
type RightIter[L, R any] struct {
	n *tree.Node[R, *pair[L, R]]
}

// Value returns the left value at it.
// It panics if it is an end or zero iterator.
func (it LeftIter[L, R]) Value() L {
	it.mustDeref("Value")
	return it.n.Value
}

// Next returns the position of the next larger left value.
// Next of the last pair is the end position.
func (it LeftIter[L, R]) Next() LeftIter[L, R] {
	assert(it.n != nil, "Next of zero LeftIter")
	return LeftIter[L, R]{it.n.Next()}
}

// Prev returns the position of the next smaller left value.
// Prev of the end position is the last pair.
func (it LeftIter[L, R]) Prev() LeftIter[L, R] {
	assert(it.n != nil, "Prev of zero LeftIter")
	return LeftIter[L, R]{it.n.Prev()}
}

// Flip returns the right position of the same pair.
// The left end position flips to the right end position.
func (it LeftIter[L, R]) Flip() RightIter[L, R] {
	if it.n == nil {
		return RightIter[L, R]{}
	}
	return RightIter[L, R]{&it.n.Owner.right}
}

// IsEnd reports whether it is the end position.
func (it LeftIter[L, R]) IsEnd() bool { return it.n != nil && it.n.Owner.end }

// Valid reports whether it is at a pair that is still in a map.
func (it LeftIter[L, R]) Valid() bool {
	return it.n != nil && !it.n.Owner.end && it.n.Linked()
}

func (it LeftIter[L, R]) mustDeref(op string) {
	assert(it.n != nil, op+" of zero LeftIter")
	assert(!it.n.Owner.end, op+" of end LeftIter")
}

// Value returns the right value at it.
// It panics if it is an end or zero iterator.
func (it RightIter[L, R]) Value() R {
	it.mustDeref("Value")
	return it.n.Value
}

// Next returns the position of the next larger right value.
// Next of the last pair is the end position.
func (it RightIter[L, R]) Next() RightIter[L, R] {
	assert(it.n != nil, "Next of zero RightIter")
	return RightIter[L, R]{it.n.Next()}
}

// Prev returns the position of the next smaller right value.
// Prev of the end position is the last pair.
func (it RightIter[L, R]) Prev() RightIter[L, R] {
	assert(it.n != nil, "Prev of zero RightIter")
	return RightIter[L, R]{it.n.Prev()}
}

// Flip returns the left position of the same pair.
// The right end position flips to the left end position.
func (it RightIter[L, R]) Flip() LeftIter[L, R] {
	if it.n == nil {
		return LeftIter[L, R]{}
	}
	return LeftIter[L, R]{&it.n.Owner.left}
}

// IsEnd reports whether it is the end position.
func (it RightIter[L, R]) IsEnd() bool { return it.n != nil && it.n.Owner.end }

// Valid reports whether it is at a pair that is still in a map.
func (it RightIter[L, R]) Valid() bool {
	return it.n != nil && !it.n.Owner.end && it.n.Linked()
}

func (it RightIter[L, R]) mustDeref(op string) {
	assert(it.n != nil, op+" of zero RightIter")
	assert(!it.n.Owner.end, op+" of end RightIter")
}

func assert(b bool, msg string) {
	if !b {
		panic("bimap: " + msg)
	}
}
