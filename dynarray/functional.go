// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dynarray

// Map - new array of f applied to every element
//
// a function rather than a method as the result type differs
func Map[T any, U any](a *Array[T], f func(T) U) *Array[U] {
	out := New[U]()
	for _, v := range a.data[:a.size] {
		out.Append(f(v))
	}
	return out
}

// Filter - new array of the elements for which keep is true
func (a *Array[T]) Filter(keep func(T) bool) *Array[T] {
	out := New[T]()
	for _, v := range a.data[:a.size] {
		if keep(v) {
			out.Append(v)
		}
	}
	return out
}

// Reduce - left fold without a seed
//
// returns false for an empty array; a single element is returned
// without calling f
func (a *Array[T]) Reduce(f func(T, T) T) (T, bool) {
	if 0 == a.size {
		var zero T
		return zero, false
	}
	accumulator := a.data[0]
	for _, v := range a.data[1:a.size] {
		accumulator = f(accumulator, v)
	}
	return accumulator, true
}

// Fold - left fold from a seed, the seed is returned for an empty array
func Fold[T any, U any](a *Array[T], f func(U, T) U, seed U) U {
	accumulator := seed
	for _, v := range a.data[:a.size] {
		accumulator = f(accumulator, v)
	}
	return accumulator
}
