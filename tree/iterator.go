// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// First - return the node with the lowest value
func (t *core[T]) First() *Node[T] {
	return t.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value
func (t *core[T]) Last() *Node[T] {
	return t.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest value
// or nil if no more nodes.
func (p *Node[T]) Next() *Node[T] {
	if p.right == nil {
		value := p.value
		for {
			p = p.up
			if p == nil {
				return nil
			}
			if p.value > value {
				return p
			}
		}
	}
	return p.right.first()
}

// Prev - given a node, return the node with the next lowest value or
// nil if no more nodes
func (p *Node[T]) Prev() *Node[T] {
	if p.left == nil {
		value := p.value
		for {
			p = p.up
			if p == nil {
				return nil
			}
			if p.value < value {
				return p
			}
		}
	}
	return p.left.last()
}
