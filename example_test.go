// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bimap_test

import (
	"errors"
	"fmt"

	"github.com/jba/bimap"
	"github.com/jba/bimap/rng"
)

func ExampleMap_Insert() {
	m := bimap.New[int, string]()
	m.Insert(1, "one")
	m.Insert(2, "two")
	if m.Insert(3, "two").IsEnd() {
		fmt.Println("two is taken")
	}
	fmt.Println(m)

	// Output:
	// two is taken
	// bimap[1:one 2:two]
}

func ExampleMap_AtLeft() {
	m := bimap.New[int, string]()
	m.Insert(1, "one")

	r, err := m.AtLeft(1)
	fmt.Println(r, err)
	_, err = m.AtLeft(2)
	fmt.Println(errors.Is(err, bimap.ErrKeyNotFound))

	// Output:
	// one <nil>
	// true
}

func ExampleLeftIter_Flip() {
	m := bimap.New[string, int]()
	m.Insert("a", 3)
	m.Insert("b", 1)
	m.Insert("c", 2)

	// Walk the right side, then jump to the left side of each pair.
	for it := m.BeginRight(); !it.IsEnd(); it = it.Next() {
		fmt.Println(it.Value(), it.Flip().Value())
	}
	fmt.Println(m.EndLeft().Flip() == m.EndRight())

	// Output:
	// 1 b
	// 2 c
	// 3 a
	// true
}

func ExampleView_All() {
	m := bimap.New[int, string]()
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")

	for r, l := range m.Right().All() {
		fmt.Println(r, l)
	}

	// Output:
	// one 1
	// three 3
	// two 2
}

func ExampleView_Scan() {
	m := bimap.New[int, string]()
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")

	for l, r := range m.Left().Scan(rng.Above(1).To(3).Backwards()) {
		fmt.Println(l, r)
	}

	// Output:
	// 3 three
	// 2 two
}

func ExampleMap_AtLeftOrDefault() {
	m := bimap.New[string, int]()
	m.Insert("x", 0)
	m.Insert("y", 1)

	// "z" takes the zero value from "x".
	fmt.Println(m.AtLeftOrDefault("z"))
	fmt.Println(m)

	// Output:
	// 0
	// bimap[y:1 z:0]
}
