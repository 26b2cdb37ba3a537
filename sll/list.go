// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sll - singly linked list with a front sentinel
//
// The sentinel means every insert or remove works on "the node
// before index" without special cases for the head.
package sll

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/collections/fault"
)

type node[T comparable] struct {
	next  *node[T]
	value T
}

// LinkedList - the sentinel holds no value
type LinkedList[T comparable] struct {
	head node[T]
}

// New - create a list holding the values in order
func New[T comparable](values ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	for _, v := range values {
		l.InsertBack(v)
	}
	return l
}

// Length - number of nodes, O(n)
func (l *LinkedList[T]) Length() int {
	n := 0
	for p := l.head.next; nil != p; p = p.next {
		n += 1
	}
	return n
}

// IsEmpty - true if no nodes follow the sentinel
func (l *LinkedList[T]) IsEmpty() bool {
	return nil == l.head.next
}

// InsertFront - new node at the head
func (l *LinkedList[T]) InsertFront(value T) {
	l.head.next = &node[T]{
		next:  l.head.next,
		value: value,
	}
}

// InsertBack - new node at the tail
func (l *LinkedList[T]) InsertBack(value T) {
	p := &l.head
	for nil != p.next {
		p = p.next
	}
	p.next = &node[T]{value: value}
}

// InsertAt - new node at index in [0, length]
func (l *LinkedList[T]) InsertAt(index int, value T) error {
	p := l.before(index, 0)
	if nil == p {
		return fault.ErrIndexOutOfRange
	}
	p.next = &node[T]{
		next:  p.next,
		value: value,
	}
	return nil
}

// RemoveAt - unlink the node at index in [0, length)
func (l *LinkedList[T]) RemoveAt(index int) error {
	p := l.before(index, 1)
	if nil == p {
		return fault.ErrIndexOutOfRange
	}
	p.next = p.next.next
	return nil
}

// node preceding index, nil unless at least "following" nodes exist
// from index onwards
func (l *LinkedList[T]) before(index int, following int) *node[T] {
	if index < 0 {
		return nil
	}
	p := &l.head
	for i := 0; i < index; i += 1 {
		if nil == p.next {
			return nil
		}
		p = p.next
	}
	if 1 == following && nil == p.next {
		return nil
	}
	return p
}

// Remove - unlink the first node holding value
func (l *LinkedList[T]) Remove(value T) bool {
	return l.RemoveFunc(func(v T) bool { return v == value })
}

// RemoveFunc - unlink the first node for which match is true
func (l *LinkedList[T]) RemoveFunc(match func(T) bool) bool {
	for p := &l.head; nil != p.next; p = p.next {
		if match(p.next.value) {
			p.next = p.next.next
			return true
		}
	}
	return false
}

// Count - number of nodes holding value
func (l *LinkedList[T]) Count(value T) int {
	n := 0
	for p := l.head.next; nil != p; p = p.next {
		if p.value == value {
			n += 1
		}
	}
	return n
}

// Find - true if some node holds value
func (l *LinkedList[T]) Find(value T) bool {
	_, ok := l.FindFunc(func(v T) bool { return v == value })
	return ok
}

// FindFunc - first value for which match is true
func (l *LinkedList[T]) FindFunc(match func(T) bool) (T, bool) {
	for p := l.head.next; nil != p; p = p.next {
		if match(p.value) {
			return p.value, true
		}
	}
	var zero T
	return zero, false
}

// Each - call f on every value from head to tail
func (l *LinkedList[T]) Each(f func(T)) {
	for p := l.head.next; nil != p; p = p.next {
		f(p.value)
	}
}

// Slice - new list of size values starting at start
func (l *LinkedList[T]) Slice(start int, size int) (*LinkedList[T], error) {
	length := l.Length()
	if start < 0 || start >= length || size < 0 || size > length-start {
		return nil, fault.ErrSliceOutOfRange
	}

	out := New[T]()
	tail := &out.head
	p := l.head.next
	for i := 0; i < start; i += 1 {
		p = p.next
	}
	for i := 0; i < size; i += 1 {
		tail.next = &node[T]{value: p.value}
		tail = tail.next
		p = p.next
	}
	return out, nil
}

// String - values joined by arrows
func (l *LinkedList[T]) String() string {
	e := make([]string, 0)
	l.Each(func(v T) {
		e = append(e, fmt.Sprint(v))
	})
	return "SLL [" + strings.Join(e, " -> ") + "]"
}
