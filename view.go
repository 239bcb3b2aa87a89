// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bimap

import (
	"iter"

	"github.com/jba/bimap/rng"
	"github.com/jba/bimap/tree"
)

// A View is one side of a [Map], ordered by that side's values.
// K is the type of that side and V the type of the other side.
// Views read the map they come from; they do not copy it.
//
// The iterators of a View behave like a Go map's under modification:
// pairs may be deleted during iteration, including the current one,
// and no pair is visited twice. Pairs added during iteration may or may
// not be visited.
type View[K, V any] struct {
	scan func(rng.Range[K]) iter.Seq2[K, V]
}

// Left returns the view of m ordered by left values.
func (m *Map[L, R]) Left() View[L, R] {
	return View[L, R]{func(r rng.Range[L]) iter.Seq2[L, R] {
		return withOther(m.left.Scan(r), func(p *pair[L, R]) R { return p.right.Value })
	}}
}

// Right returns the view of m ordered by right values.
func (m *Map[L, R]) Right() View[R, L] {
	return View[R, L]{func(r rng.Range[R]) iter.Seq2[R, L] {
		return withOther(m.right.Scan(r), func(p *pair[L, R]) L { return p.left.Value })
	}}
}

// withOther pairs each node's value with the other side of its pair.
func withOther[K, V, P any](s iter.Seq[*tree.Node[K, P]], other func(P) V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := range s {
			if !yield(x.Value, other(x.Owner)) {
				return
			}
		}
	}
}

// All returns an iterator over the pairs from smallest to largest key.
func (v View[K, V]) All() iter.Seq2[K, V] {
	return v.scan(rng.All[K]())
}

// Backward returns an iterator over the pairs from largest to smallest key.
func (v View[K, V]) Backward() iter.Seq2[K, V] {
	return v.scan(rng.All[K]().Backwards())
}

// Keys returns an iterator over the keys from smallest to largest.
func (v View[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range v.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Scan returns an iterator over the pairs whose keys lie in r,
// in increasing order, or decreasing order if r is backwards.
func (v View[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return v.scan(r)
}

// Min returns the smallest key and the value paired with it.
// If the map is empty, the last return value is false.
func (v View[K, V]) Min() (K, V, bool) {
	for k, val := range v.All() {
		return k, val, true
	}
	var (
		zk K
		zv V
	)
	return zk, zv, false
}

// Max returns the largest key and the value paired with it.
// If the map is empty, the last return value is false.
func (v View[K, V]) Max() (K, V, bool) {
	for k, val := range v.Backward() {
		return k, val, true
	}
	var (
		zk K
		zv V
	)
	return zk, zv, false
}
