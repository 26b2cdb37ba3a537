// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package openaddr - hash map that keeps every entry in a single
// bucket array and resolves collisions by quadratic probing
//
// a removed entry becomes a tombstone so that probe sequences passing
// through it stay intact; tombstones are dropped when the table is
// resized.
package openaddr

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/collections/configuration"
	"github.com/bitmark-inc/collections/fault"
	"github.com/bitmark-inc/collections/hashmap"
)

// DefaultLoadFactor - table doubles when a Put finds it this full
const DefaultLoadFactor = 0.5

type entry[V any] struct {
	key       string
	value     V
	tombstone bool
}

func (e *entry[V]) String() string {
	if nil == e {
		return "None"
	}
	if e.tombstone {
		return fmt.Sprintf("%s: %v (removed)", e.key, e.value)
	}
	return fmt.Sprintf("%s: %v", e.key, e.value)
}

// HashMap - string keys to values of any type
type HashMap[V any] struct {
	buckets    []*entry[V]
	size       int
	loadFactor float64
	hasher     hashmap.Hasher
	log        *logger.L
}

// New - create a map with the next prime capacity, see
// hashmap.NextPrime
func New[V any](capacity int, hasher hashmap.Hasher) *HashMap[V] {
	return &HashMap[V]{
		buckets:    make([]*entry[V], hashmap.NextPrime(capacity)),
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

// SetLogger - attach a channel to receive resize events
func (m *HashMap[V]) SetLogger(log *logger.L) {
	m.log = log
}

// Size - number of live entries
func (m *HashMap[V]) Size() int {
	return m.size
}

// Capacity - number of buckets
func (m *HashMap[V]) Capacity() int {
	return len(m.buckets)
}

// j-th position of the probe sequence starting at base
func (m *HashMap[V]) probe(base uint64, j int) int {
	n := uint64(len(m.buckets))
	return int((base + uint64(j)*uint64(j)) % n)
}

func (m *HashMap[V]) base(key string) uint64 {
	return m.hasher.Hash(key) % uint64(len(m.buckets))
}

// find the live entry for a key, nil if absent
func (m *HashMap[V]) find(key string) *entry[V] {
	base := m.base(key)
	for j := 0; j < len(m.buckets); j += 1 {
		e := m.buckets[m.probe(base, j)]
		if nil == e {
			return nil
		}
		if !e.tombstone && e.key == key {
			return e
		}
	}
	return nil
}

// Put - add or update a key
//
// the table is doubled first if the load factor has been reached
func (m *HashMap[V]) Put(key string, value V) {
	if m.TableLoad() >= m.loadFactor {
		m.ResizeTable(2 * len(m.buckets))
	}

	base := m.base(key)
	free := -1
probing:
	for j := 0; j < len(m.buckets); j += 1 {
		i := m.probe(base, j)
		e := m.buckets[i]
		switch {
		case nil == e:
			if free < 0 {
				free = i
			}
			break probing

		case e.key == key:
			if e.tombstone {
				e.tombstone = false
				m.size += 1
			}
			e.value = value
			return

		case e.tombstone && free < 0:
			free = i
		}
	}

	if free < 0 {
		fault.Panicf("openaddr: no free bucket for: %q  size: %d  capacity: %d", key, m.size, len(m.buckets))
	}
	m.buckets[free] = &entry[V]{
		key:   key,
		value: value,
	}
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

// ContainsKey - true if the key has a live entry
func (m *HashMap[V]) ContainsKey(key string) bool {
	return nil != m.find(key)
}

// Remove - turn the key's entry into a tombstone, false if absent
func (m *HashMap[V]) Remove(key string) bool {
	e := m.find(key)
	if nil == e {
		return false
	}
	e.tombstone = true
	m.size -= 1
	return true
}

// ResizeTable - rehash live entries into the next prime capacity
// from the one given, so an even prime is not kept; ignored if it
// could not hold them
func (m *HashMap[V]) ResizeTable(capacity int) {
	if capacity < m.size {
		return
	}

	old := m.buckets
	m.buckets = make([]*entry[V], hashmap.NextPrime(capacity))
	m.size = 0

	for _, e := range old {
		if nil != e && !e.tombstone {
			m.Put(e.key, e.value)
		}
	}

	if nil != m.log {
		m.log.Debugf("resize from: %d  to: %d  size: %d", len(old), len(m.buckets), m.size)
	}
}

// TableLoad - live entries per bucket
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// EmptyBuckets - buckets that are unused or hold a tombstone
func (m *HashMap[V]) EmptyBuckets() int {
	n := 0
	for _, e := range m.buckets {
		if nil == e || e.tombstone {
			n += 1
		}
	}
	return n
}

// KeysAndValues - live entries in bucket order
func (m *HashMap[V]) KeysAndValues() []hashmap.Pair[V] {
	pairs := make([]hashmap.Pair[V], 0, m.size)
	m.Each(func(key string, value V) {
		pairs = append(pairs, hashmap.Pair[V]{Key: key, Value: value})
	})
	return pairs
}

// Each - call f for every live entry in bucket order
func (m *HashMap[V]) Each(f func(key string, value V)) {
	for _, e := range m.buckets {
		if nil != e && !e.tombstone {
			f(e.key, e.value)
		}
	}
}

// Clear - drop all entries, capacity is unchanged
func (m *HashMap[V]) Clear() {
	m.buckets = make([]*entry[V], len(m.buckets))
	m.size = 0
}

// String - one line per bucket
func (m *HashMap[V]) String() string {
	b := strings.Builder{}
	for i, e := range m.buckets {
		fmt.Fprintf(&b, "%d: %s\n", i, e)
	}
	return b.String()
}
