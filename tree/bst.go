// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// BST - plain binary search tree, the shape depends on insert order
type BST[T constraints.Ordered] struct {
	core[T]
}

// NewBST - create a tree and add the initial values one at a time
func NewBST[T constraints.Ordered](values ...T) *BST[T] {
	t := &BST[T]{
		core: core[T]{
			rebalance: keep[T],
		},
	}
	for _, v := range values {
		t.Add(v)
	}
	return t
}

// String - values in pre-order
func (t *BST[T]) String() string {
	return "BST pre-order { " + joinValues(t.PreOrder()) + " }"
}
