// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/collections/fault"
)

// AVL - self balancing tree, every node has |balance factor| <= 1
type AVL[T constraints.Ordered] struct {
	core[T]
}

// NewAVL - create a tree and add the initial values one at a time
func NewAVL[T constraints.Ordered](values ...T) *AVL[T] {
	t := &AVL[T]{
		core: core[T]{
			rebalance: balance[T],
		},
	}
	for _, v := range values {
		t.Add(v)
	}
	return t
}

// String - values in pre-order
func (t *AVL[T]) String() string {
	return "AVL pre-order { " + joinValues(t.PreOrder()) + " }"
}

// balance - the AVL hook: refresh the height and rotate if one side
// is more than one level deeper than the other
func balance[T constraints.Ordered](t *core[T], p *Node[T]) *Node[T] {
	p.updateHeight()

	bf := p.balanceFactor()
	switch {
	case bf < -1: // left heavy
		if p.left.balanceFactor() > 0 { // left-right shape
			t.rotateLeft(p.left)
		}
		return t.rotateRight(p)
	case bf > 1: // right heavy
		if p.right.balanceFactor() < 0 { // right-left shape
			t.rotateRight(p.right)
		}
		return t.rotateLeft(p)
	}
	return p
}

// rotateLeft - promote p.right into the position of p
func (t *core[T]) rotateLeft(p *Node[T]) *Node[T] {
	p1 := p.right
	if nil == p1 {
		fault.Panicf("tree: rotate left at: %v without right child", p.value)
	}

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	t.replace(p, p1)
	p.up = p1

	p.updateHeight()
	p1.updateHeight()

	if nil != t.log {
		t.log.Tracef("rotate left: %v  new sub-tree root: %v", p.value, p1.value)
	}
	return p1
}

// rotateRight - promote p.left into the position of p
func (t *core[T]) rotateRight(p *Node[T]) *Node[T] {
	p1 := p.left
	if nil == p1 {
		fault.Panicf("tree: rotate right at: %v without left child", p.value)
	}

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	t.replace(p, p1)
	p.up = p1

	p.updateHeight()
	p1.updateHeight()

	if nil != t.log {
		t.log.Tracef("rotate right: %v  new sub-tree root: %v", p.value, p1.value)
	}
	return p1
}

// put p1 into the parent slot (or root) currently holding p
func (t *core[T]) replace(p *Node[T], p1 *Node[T]) {
	up := p.up
	p1.up = up
	switch {
	case nil == up:
		t.root = p1
	case up.left == p:
		up.left = p1
	default:
		up.right = p1
	}
}

func joinValues[T constraints.Ordered](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ", ")
}
