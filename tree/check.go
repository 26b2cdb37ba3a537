// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/collections/stack"
)

// diagnostic walks, not used by any tree operation

// CheckUp - check the up pointers for consistency
func (t *core[T]) CheckUp() bool {
	return t.checkup(t.root, nil)
}

// internal: consistency checker
func (t *core[T]) checkup(p *Node[T], up *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		if nil != t.log {
			t.log.Warnf("up pointer fail at node: %v", p.value)
		}
		return false
	}
	if !t.checkup(p.left, p) {
		return false
	}
	return t.checkup(p.right, p)
}

// IsValidBST - pre-order walk verifying that every left child is
// smaller and every right child larger than its parent
func (t *core[T]) IsValidBST() bool {
	s := stack.New[*Node[T]]()
	s.Push(t.root)
	for !s.IsEmpty() {
		p, _ := s.Pop()
		if nil == p {
			continue
		}
		if nil != p.left && p.left.value >= p.value {
			return false
		}
		if nil != p.right && p.right.value <= p.value {
			return false
		}
		s.Push(p.right)
		s.Push(p.left)
	}
	return true
}

// IsValid - pre-order walk verifying ordering, stored heights,
// balance factors and parent links at every node
func (t *AVL[T]) IsValid() bool {
	s := stack.New[*Node[T]]()
	s.Push(t.root)
	for !s.IsEmpty() {
		p, _ := s.Pop()
		if nil == p {
			continue
		}

		// stored height against the children
		l := height(p.left)
		r := height(p.right)
		expected := 1 + r
		if l > r {
			expected = 1 + l
		}
		if p.height != expected {
			return false
		}
		if bf := r - l; bf < -1 || bf > 1 {
			return false
		}

		if nil != p.left && p.left.value >= p.value {
			return false
		}
		if nil != p.right && p.right.value <= p.value {
			return false
		}

		// parent and child pointers are in sync, nil parent only
		// at the root
		if nil != p.up {
			if p.up.left != p && p.up.right != p {
				return false
			}
		} else if p != t.root {
			return false
		}

		s.Push(p.right)
		s.Push(p.left)
	}
	return true
}
