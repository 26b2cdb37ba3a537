// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bag - unordered collection that allows duplicates
package bag

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/collections/dynarray"
	"github.com/bitmark-inc/collections/fault"
)

// Bag - multiset backed by a dynamic array
type Bag[T comparable] struct {
	da *dynarray.Array[T]
}

// New - create a bag holding the initial values
func New[T comparable](values ...T) *Bag[T] {
	b := &Bag[T]{
		da: dynarray.New[T](),
	}
	for _, v := range values {
		b.Add(v)
	}
	return b
}

// Size - total number of items including duplicates
func (b *Bag[T]) Size() int {
	return b.da.Length()
}

// Add - put one more item in the bag
func (b *Bag[T]) Add(value T) {
	b.da.Append(value)
}

// Remove - take out one occurrence of value, false if none present
func (b *Bag[T]) Remove(value T) bool {
	for i, v := range b.da.Values() {
		if v == value {
			if err := b.da.RemoveAt(i); nil != err {
				fault.Panicf("bag: remove at: %d failed: %s", i, err)
			}
			return true
		}
	}
	return false
}

// Count - occurrences of value
func (b *Bag[T]) Count(value T) int {
	n := 0
	for _, v := range b.da.Values() {
		if v == value {
			n += 1
		}
	}
	return n
}

// Clear - discard all items
func (b *Bag[T]) Clear() {
	b.da = dynarray.New[T]()
}

// Equal - true if both bags hold the same items with the same
// multiplicities, in any order
func (b *Bag[T]) Equal(other *Bag[T]) bool {
	if b.Size() != other.Size() {
		return false
	}
	counts := make(map[T]int, b.Size())
	for _, v := range b.da.Values() {
		counts[v] += 1
	}
	for v, n := range counts {
		if other.Count(v) != n {
			return false
		}
	}
	return true
}

// Values - copy of the items in insertion order
func (b *Bag[T]) Values() []T {
	return b.da.Values()
}

// String - size and items
func (b *Bag[T]) String() string {
	values := b.da.Values()
	e := make([]string, len(values))
	for i, v := range values {
		e[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("BAG: %d elements. [%s]", len(values), strings.Join(e, ", "))
}
