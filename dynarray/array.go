// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dynarray

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/collections/configuration"
	"github.com/bitmark-inc/collections/fault"
)

// sizing limits
const (
	MinimumCapacity = 4  // capacity of a newly created array
	ShrinkFloor     = 10 // never shrink below this capacity
)

// Array - type to hold the backing buffer of a dynamic array
//
// elements at index >= size are logically absent
type Array[T any] struct {
	size int
	data []T
	log  *logger.L
}

// New - create an array and append the initial values in order
func New[T any](values ...T) *Array[T] {
	return NewWithCapacity(MinimumCapacity, values...)
}

// NewWithCapacity - create an array with a specific starting capacity
// (raised to the minimum if smaller) then append the initial values
func NewWithCapacity[T any](capacity int, values ...T) *Array[T] {
	if capacity < MinimumCapacity {
		capacity = MinimumCapacity
	}
	a := &Array[T]{
		size: 0,
		data: make([]T, capacity),
	}
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// NewFromConfiguration - create an empty array with the configured
// starting capacity
func NewFromConfiguration[T any](c configuration.ArrayConfiguration) *Array[T] {
	return NewWithCapacity[T](c.InitialCapacity)
}

// SetLogger - attach a channel to receive resize events
func (a *Array[T]) SetLogger(log *logger.L) {
	a.log = log
}

// Length - number of elements stored
func (a *Array[T]) Length() int {
	return a.size
}

// Capacity - size of the backing buffer
func (a *Array[T]) Capacity() int {
	return len(a.data)
}

// IsEmpty - true if no elements are stored
func (a *Array[T]) IsEmpty() bool {
	return 0 == a.size
}

// Get - value at index
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, fault.ErrIndexOutOfRange
	}
	return a.data[index], nil
}

// Set - overwrite the value at index
func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= a.size {
		return fault.ErrIndexOutOfRange
	}
	a.data[index] = value
	return nil
}

// Resize - move the elements into a buffer of the new capacity
//
// silently ignored if the capacity is not positive or cannot hold the
// current elements
func (a *Array[T]) Resize(newCapacity int) {
	if newCapacity <= 0 || newCapacity < a.size {
		return
	}
	if nil != a.log {
		a.log.Tracef("resize: %d → %d  size: %d", len(a.data), newCapacity, a.size)
	}
	data := make([]T, newCapacity)
	copy(data, a.data[:a.size])
	a.data = data
}

// Append - add an element at the end, doubling the capacity when full
func (a *Array[T]) Append(value T) {
	if a.size == len(a.data) {
		a.Resize(2 * len(a.data))
	}
	a.data[a.size] = value
	a.size += 1
}

// InsertAt - insert at index in [0, size], shifting later elements right
func (a *Array[T]) InsertAt(index int, value T) error {
	if index < 0 || index > a.size {
		return fault.ErrIndexOutOfRange
	}
	if a.size == len(a.data) {
		a.Resize(2 * len(a.data))
	}
	copy(a.data[index+1:a.size+1], a.data[index:a.size])
	a.data[index] = value
	a.size += 1
	return nil
}

// RemoveAt - remove the element at index in [0, size), shifting later
// elements left
//
// the shrink test uses the size before the removal
func (a *Array[T]) RemoveAt(index int) error {
	if index < 0 || index >= a.size {
		return fault.ErrIndexOutOfRange
	}
	if len(a.data) > ShrinkFloor && 4*a.size < len(a.data) {
		newCapacity := 2 * a.size
		if newCapacity < ShrinkFloor {
			newCapacity = ShrinkFloor
		}
		a.Resize(newCapacity)
	}
	copy(a.data[index:a.size-1], a.data[index+1:a.size])

	var zero T
	a.data[a.size-1] = zero // release any reference
	a.size -= 1
	return nil
}

// Slice - independent copy of length elements starting at start
func (a *Array[T]) Slice(start int, length int) (*Array[T], error) {
	if start < 0 || start >= a.size || length < 0 || length > a.size-start {
		return nil, fault.ErrSliceOutOfRange
	}
	out := New[T]()
	for _, v := range a.data[start : start+length] {
		out.Append(v)
	}
	return out, nil
}

// Merge - append every element of another array in order
func (a *Array[T]) Merge(other *Array[T]) {
	n := other.size // merging with itself must stop at the starting size
	for i := 0; i < n; i += 1 {
		a.Append(other.data[i])
	}
}

// Values - copy of the stored elements
func (a *Array[T]) Values() []T {
	values := make([]T, a.size)
	copy(values, a.data[:a.size])
	return values
}

// String - size, capacity and elements
func (a *Array[T]) String() string {
	s := make([]string, a.size)
	for i, v := range a.data[:a.size] {
		s[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("DYN_ARR Size/Cap: %d/%d [%s]", a.size, len(a.data), strings.Join(s, ", "))
}
