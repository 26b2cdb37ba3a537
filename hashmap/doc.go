// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashmap - pieces shared by the two string keyed hash map
// implementations
//
// openaddr resolves collisions by quadratic probing inside a single
// bucket array; chained keeps a singly linked list per bucket.
//
// Both tables have a prime capacity and take a Hasher, so a test can
// substitute a mock to force collisions.
//
// Note: maps are not thread safe.
package hashmap

// Map - operations common to both implementations
type Map[V any] interface {
	Put(key string, value V)
	Get(key string) (V, bool)
	ContainsKey(key string) bool
	Remove(key string) bool
	ResizeTable(capacity int)
	TableLoad() float64
	EmptyBuckets() int
	KeysAndValues() []Pair[V]
	Clear()
	Size() int
	Capacity() int
}

// Pair - a key and its value
type Pair[V any] struct {
	Key   string
	Value V
}
