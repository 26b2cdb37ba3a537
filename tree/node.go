// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// Node - a node in the tree
type Node[T constraints.Ordered] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	up     *Node[T] // points to parent node
	value  T        // ordering value
	height int      // leaf is 0
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - root of the left sub-tree or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - root of the right sub-tree or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.up
}

// Height - height of the sub-tree rooted here
func (p *Node[T]) Height() int {
	return p.height
}

// Depth - get the depth of a node
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// ChildrenByDepth - returns all descendants at a specific depth below
// this node, left to right
func (p *Node[T]) ChildrenByDepth(depth uint) []*Node[T] {
	if depth == 0 {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	if p.left != nil {
		nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
	}
	if p.right != nil {
		nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
	}
	return nodes
}

// absent sub-tree has height -1
func height[T constraints.Ordered](p *Node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

func (p *Node[T]) updateHeight() {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// height(right) - height(left)
func (p *Node[T]) balanceFactor() int {
	return height(p.right) - height(p.left)
}
