// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// allocate a new node, reuses reclaimed nodes if any are available
func (t *core[T]) newNode(value T) *Node[T] {
	p := t.pool
	if nil == p {
		return &Node[T]{
			value:  value,
			height: 0,
		}
	}
	t.pool = p.up
	p.value = value
	p.height = 0
	p.up = nil // ensure freelist pointer is cleared
	return p
}

// reclaim a node and keep it in the tree's pool
func (t *core[T]) freeNode(p *Node[T]) {
	var zero T
	p.left = nil
	p.right = nil
	p.value = zero
	p.height = 0

	p.up = t.pool // use as free list pointer
	t.pool = p
}
