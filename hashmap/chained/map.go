// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chained - hash map with a singly linked list per bucket
package chained

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/collections/configuration"
	"github.com/bitmark-inc/collections/hashmap"
	"github.com/bitmark-inc/collections/sll"
)

// defaults
const (
	DefaultCapacity   = 11
	DefaultLoadFactor = 1.0
)

// list nodes hold pointers so a value need not be comparable
type entry[V any] struct {
	key   string
	value V
}

func (e *entry[V]) String() string {
	return fmt.Sprintf("(%s: %v)", e.key, e.value)
}

// HashMap - string keys to values of any type
type HashMap[V any] struct {
	buckets    []*sll.LinkedList[*entry[V]]
	size       int
	loadFactor float64
	hasher     hashmap.Hasher
	log        *logger.L
}

// New - create a map with the next prime capacity, see
// hashmap.NextPrime
func New[V any](capacity int, hasher hashmap.Hasher) *HashMap[V] {
	return &HashMap[V]{
		buckets:    makeBuckets[V](hashmap.NextPrime(capacity)),
		size:       0,
		loadFactor: DefaultLoadFactor,
		hasher:     hasher,
	}
}

// NewFromConfiguration - create a map from settings, fails on an
// unknown hash name
func NewFromConfiguration[V any](c configuration.MapConfiguration) (*HashMap[V], error) {
	hasher, err := c.Hasher()
	if nil != err {
		return nil, err
	}
	m := New[V](c.Capacity, hasher)
	m.loadFactor = c.LoadFactor
	return m, nil
}

func makeBuckets[V any](n int) []*sll.LinkedList[*entry[V]] {
	buckets := make([]*sll.LinkedList[*entry[V]], n)
	for i := range buckets {
		buckets[i] = sll.New[*entry[V]]()
	}
	return buckets
}

// SetLogger - attach a channel to receive resize events
func (m *HashMap[V]) SetLogger(log *logger.L) {
	m.log = log
}

// Size - number of entries
func (m *HashMap[V]) Size() int {
	return m.size
}

// Capacity - number of buckets
func (m *HashMap[V]) Capacity() int {
	return len(m.buckets)
}

func (m *HashMap[V]) bucket(key string) *sll.LinkedList[*entry[V]] {
	return m.buckets[m.hasher.Hash(key)%uint64(len(m.buckets))]
}

func (m *HashMap[V]) find(key string) *entry[V] {
	e, _ := m.bucket(key).FindFunc(func(e *entry[V]) bool {
		return e.key == key
	})
	return e
}

// Put - add or update a key
//
// the table is doubled first if the load factor has been reached
func (m *HashMap[V]) Put(key string, value V) {
	if m.TableLoad() >= m.loadFactor {
		m.ResizeTable(2 * len(m.buckets))
	}

	if e := m.find(key); nil != e {
		e.value = value
		return
	}
	m.bucket(key).InsertFront(&entry[V]{
		key:   key,
		value: value,
	})
	m.size += 1
}

// Get - value stored for a key
func (m *HashMap[V]) Get(key string) (V, bool) {
	e := m.find(key)
	if nil == e {
		var zero V
		return zero, false
	}
	return e.value, true
}

// ContainsKey - true if the key is stored
func (m *HashMap[V]) ContainsKey(key string) bool {
	return nil != m.find(key)
}

// Remove - unlink a key's entry, false if absent
func (m *HashMap[V]) Remove(key string) bool {
	removed := m.bucket(key).RemoveFunc(func(e *entry[V]) bool {
		return e.key == key
	})
	if removed {
		m.size -= 1
	}
	return removed
}

// ResizeTable - rehash every entry into a new bucket array
//
// ignored for a capacity below one; a prime capacity is used as is,
// any other is raised to the next prime
func (m *HashMap[V]) ResizeTable(capacity int) {
	if capacity < 1 {
		return
	}

	if !hashmap.IsPrime(capacity) {
		capacity = hashmap.NextPrime(capacity)
	}

	old := m.buckets
	m.buckets = makeBuckets[V](capacity)
	m.size = 0

	for _, b := range old {
		b.Each(func(e *entry[V]) {
			m.Put(e.key, e.value)
		})
	}

	if nil != m.log {
		m.log.Debugf("resize from: %d  to: %d  size: %d", len(old), len(m.buckets), m.size)
	}
}

// TableLoad - average entries per bucket
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// EmptyBuckets - buckets with no entries
func (m *HashMap[V]) EmptyBuckets() int {
	n := 0
	for _, b := range m.buckets {
		if b.IsEmpty() {
			n += 1
		}
	}
	return n
}

// KeysAndValues - entries in bucket order, each bucket from its head
func (m *HashMap[V]) KeysAndValues() []hashmap.Pair[V] {
	pairs := make([]hashmap.Pair[V], 0, m.size)
	m.Each(func(key string, value V) {
		pairs = append(pairs, hashmap.Pair[V]{Key: key, Value: value})
	})
	return pairs
}

// Each - call f for every entry in bucket order
func (m *HashMap[V]) Each(f func(key string, value V)) {
	for _, b := range m.buckets {
		b.Each(func(e *entry[V]) {
			f(e.key, e.value)
		})
	}
}

// Clear - drop all entries, capacity is unchanged
func (m *HashMap[V]) Clear() {
	m.buckets = makeBuckets[V](len(m.buckets))
	m.size = 0
}

// String - one line per bucket
func (m *HashMap[V]) String() string {
	b := strings.Builder{}
	for i, l := range m.buckets {
		fmt.Fprintf(&b, "%d: %s\n", i, l)
	}
	return b.String()
}
