// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - LIFO stack on top of a dynamic array
package stack

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/collections/dynarray"
	"github.com/bitmark-inc/collections/fault"
)

// Stack - the top is the last element of the array
type Stack[T any] struct {
	da *dynarray.Array[T]
}

// New - create an empty stack
func New[T any]() *Stack[T] {
	return &Stack[T]{
		da: dynarray.New[T](),
	}
}

// IsEmpty - true if nothing has been pushed
func (s *Stack[T]) IsEmpty() bool {
	return s.da.IsEmpty()
}

// Size - number of elements on the stack
func (s *Stack[T]) Size() int {
	return s.da.Length()
}

// Push - add a value to the top
func (s *Stack[T]) Push(value T) {
	s.da.Append(value)
}

// Pop - remove and return the top value
func (s *Stack[T]) Pop() (T, error) {
	top, err := s.Top()
	if nil != err {
		return top, err
	}
	if err := s.da.RemoveAt(s.da.Length() - 1); nil != err {
		fault.Panicf("stack: pop at: %d failed: %s", s.da.Length()-1, err)
	}
	return top, nil
}

// Top - the top value without removing it
func (s *Stack[T]) Top() (T, error) {
	if s.da.IsEmpty() {
		var zero T
		return zero, fault.ErrEmptyStack
	}
	return s.da.Get(s.da.Length() - 1)
}

// String - bottom to top
func (s *Stack[T]) String() string {
	values := s.da.Values()
	e := make([]string, len(values))
	for i, v := range values {
		e[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("STACK: %d elements. [%s]", len(values), strings.Join(e, ", "))
}
