// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"
)

// rebalancer - called at every ancestor of a changed position, deepest
// first, and returns the node that now roots that sub-tree
type rebalancer[T constraints.Ordered] func(t *core[T], p *Node[T]) *Node[T]

// core - state and operations shared by both trees
type core[T constraints.Ordered] struct {
	root      *Node[T]
	count     int
	pool      *Node[T] // reclaimed nodes linked through up
	rebalance rebalancer[T]
	log       *logger.L
}

// keep - hook for a tree that never restructures, only the height of
// the sub-tree is brought up to date
func keep[T constraints.Ordered](_ *core[T], p *Node[T]) *Node[T] {
	p.updateHeight()
	return p
}

// SetLogger - attach a channel to receive restructuring events
func (t *core[T]) SetLogger(log *logger.L) {
	t.log = log
}

// IsEmpty - true if tree contains no data
func (t *core[T]) IsEmpty() bool {
	return nil == t.root
}

// Count - number of nodes currently in the tree
func (t *core[T]) Count() int {
	return t.count
}

// Height - height of the whole tree, -1 when empty
func (t *core[T]) Height() int {
	return height(t.root)
}

// Root - return the root node of the tree
func (t *core[T]) Root() *Node[T] {
	return t.root
}

// Clear - drop every node
func (t *core[T]) Clear() {
	t.root = nil
	t.count = 0
	t.pool = nil
}

// Add - insert a value, false if it was already present
func (t *core[T]) Add(value T) bool {
	added := false
	t.root, added = t.insert(value, t.root)
	if added {
		t.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly changed sub-tree root
func (t *core[T]) insert(value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // insert new node
		return t.newNode(value), true
	}

	added := false
	switch {
	case value < p.value:
		p.left, added = t.insert(value, p.left)
		p.left.up = p
	case value > p.value:
		p.right, added = t.insert(value, p.right)
		p.right.up = p
	default:
		return p, false // duplicate
	}
	if !added {
		return p, false
	}
	return t.rebalance(t, p), true
}

// Remove - removes a specific value from the tree
func (t *core[T]) Remove(value T) bool {
	removed := false
	t.root, removed = t.delete(value, t.root)
	if nil != t.root {
		t.root.up = nil
	}
	if removed {
		t.count -= 1
	}
	return removed
}

// internal delete routine, returns the possibly changed sub-tree root
func (t *core[T]) delete(value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch {
	case value < p.value:
		p.left, removed = t.delete(value, p.left)
		if nil != p.left {
			p.left.up = p
		}
	case value > p.value:
		p.right, removed = t.delete(value, p.right)
		if nil != p.right {
			p.right.up = p
		}
	default: // found: splice out p
		if nil == p.right || nil == p.left {
			child := p.left
			if nil == child {
				child = p.right
			}
			if nil != child {
				child.up = p.up
			}
			t.freeNode(p)
			return child, true
		}

		// two children: take over the in-order successor's value
		// then delete the successor from the right sub-tree
		successor := p.right.first()
		p.value = successor.value
		p.right, _ = t.delete(successor.value, p.right)
		if nil != p.right {
			p.right.up = p
		}
		removed = true
	}
	if !removed {
		return p, false
	}
	return t.rebalance(t, p), true
}

// Contains - true if the value is stored in the tree
func (t *core[T]) Contains(value T) bool {
	return nil != t.Search(value)
}

// Search - find the node holding a specific value
func (t *core[T]) Search(value T) *Node[T] {
	p := t.root
	for nil != p {
		switch {
		case value < p.value:
			p = p.left
		case value > p.value:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// FindMin - lowest value, false on an empty tree
func (t *core[T]) FindMin() (T, bool) {
	return valueOf(t.First())
}

// FindMax - highest value, false on an empty tree
func (t *core[T]) FindMax() (T, bool) {
	return valueOf(t.Last())
}

func valueOf[T constraints.Ordered](p *Node[T]) (T, bool) {
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// InOrder - all values in ascending order
func (t *core[T]) InOrder() []T {
	values := make([]T, 0, t.count)
	for p := t.First(); nil != p; p = p.Next() {
		values = append(values, p.value)
	}
	return values
}

// PreOrder - all values, each node before its left then right sub-tree
func (t *core[T]) PreOrder() []T {
	values := make([]T, 0, t.count)
	var walk func(p *Node[T])
	walk = func(p *Node[T]) {
		if nil == p {
			return
		}
		values = append(values, p.value)
		walk(p.left)
		walk(p.right)
	}
	walk(t.root)
	return values
}

// Get - node at a specific in-order position, nil if out of range
func (t *core[T]) Get(index int) *Node[T] {
	if index < 0 || index >= t.count {
		return nil
	}
	p := t.First()
	for i := 0; i < index; i += 1 {
		p = p.Next()
	}
	return p
}
