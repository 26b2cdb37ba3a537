// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package minheap - binary min-heap stored level by level in a
// dynamic array, the children of index i are at 2i+1 and 2i+2
package minheap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/collections/dynarray"
	"github.com/bitmark-inc/collections/fault"
)

// MinHeap - the smallest value is always at index zero
type MinHeap[T constraints.Ordered] struct {
	heap *dynarray.Array[T]
}

// New - create a heap and add the initial values one at a time
func New[T constraints.Ordered](values ...T) *MinHeap[T] {
	h := &MinHeap[T]{
		heap: dynarray.New[T](),
	}
	for _, v := range values {
		h.Add(v)
	}
	return h
}

// Add - append then percolate up
func (h *MinHeap[T]) Add(value T) {
	h.heap.Append(value)
	percolateUp(h.heap, h.heap.Length()-1)
}

// IsEmpty - true if the heap holds no values
func (h *MinHeap[T]) IsEmpty() bool {
	return h.heap.IsEmpty()
}

// Size - number of values in the heap
func (h *MinHeap[T]) Size() int {
	return h.heap.Length()
}

// Clear - drop all values
func (h *MinHeap[T]) Clear() {
	h.heap = dynarray.New[T]()
}

// GetMin - the smallest value without removing it
func (h *MinHeap[T]) GetMin() (T, error) {
	if h.heap.IsEmpty() {
		var zero T
		return zero, fault.ErrEmptyHeap
	}
	return get(h.heap, 0), nil
}

// RemoveMin - remove and return the smallest value, the last value
// takes its place and percolates down
func (h *MinHeap[T]) RemoveMin() (T, error) {
	min, err := h.GetMin()
	if nil != err {
		return min, err
	}

	last := h.heap.Length() - 1
	set(h.heap, 0, get(h.heap, last))
	if err := h.heap.RemoveAt(last); nil != err {
		fault.Panicf("minheap: remove at: %d failed: %s", last, err)
	}
	percolateDown(h.heap, 0, h.heap.Length())
	return min, nil
}

// BuildHeap - replace the content with a copy of the array arranged
// into heap order, the array itself is not modified
func (h *MinHeap[T]) BuildHeap(da *dynarray.Array[T]) {
	h.heap = dynarray.NewWithCapacity(da.Capacity(), da.Values()...)
	heapify(h.heap)
}

// Values - copy of the backing array in heap order
func (h *MinHeap[T]) Values() []T {
	return h.heap.Values()
}

// String - values in heap order
func (h *MinHeap[T]) String() string {
	values := h.heap.Values()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	return "HEAP [" + strings.Join(s, ", ") + "]"
}

// HeapSort - sort the array in place into non-ascending order
//
// the array is heapified then the minimum is repeatedly swapped to
// the end of a shrinking heap region
func HeapSort[T constraints.Ordered](da *dynarray.Array[T]) {
	heapify(da)
	for last := da.Length() - 1; last > 0; last -= 1 {
		swap(da, 0, last)
		percolateDown(da, 0, last)
	}
}

// bottom-up: percolate down every parent starting from the last one
func heapify[T constraints.Ordered](da *dynarray.Array[T]) {
	n := da.Length()
	for i := n/2 - 1; i >= 0; i -= 1 {
		percolateDown(da, i, n)
	}
}

func percolateUp[T constraints.Ordered](da *dynarray.Array[T], i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if get(da, parent) <= get(da, i) {
			return
		}
		swap(da, parent, i)
		i = parent
	}
}

// only indices below limit are part of the heap
func percolateDown[T constraints.Ordered](da *dynarray.Array[T], i int, limit int) {
	for {
		smallest := i
		l := 2*i + 1
		r := l + 1
		if l < limit && get(da, l) < get(da, smallest) {
			smallest = l
		}
		if r < limit && get(da, r) < get(da, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		swap(da, i, smallest)
		i = smallest
	}
}

func swap[T any](da *dynarray.Array[T], i int, j int) {
	vi := get(da, i)
	set(da, i, get(da, j))
	set(da, j, vi)
}

// indices are always computed inside the heap, an error here is a bug
func get[T any](da *dynarray.Array[T], i int) T {
	v, err := da.Get(i)
	if nil != err {
		fault.Panicf("minheap: get at: %d failed: %s", i, err)
	}
	return v
}

func set[T any](da *dynarray.Array[T], i int, v T) {
	if err := da.Set(i, v); nil != err {
		fault.Panicf("minheap: set at: %d failed: %s", i, err)
	}
}
