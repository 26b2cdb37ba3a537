// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package openaddr_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/collections/configuration"
	"github.com/bitmark-inc/collections/fault"
	"github.com/bitmark-inc/collections/fixtures"
	"github.com/bitmark-inc/collections/hashmap"
	"github.com/bitmark-inc/collections/hashmap/mocks"
	"github.com/bitmark-inc/collections/hashmap/openaddr"
)

var (
	hash1 = hashmap.HasherFunc(hashmap.HashFunction1)
	hash2 = hashmap.HasherFunc(hashmap.HashFunction2)
)

// every key lands on bucket zero
func collidingHasher(t *testing.T) (*mocks.MockHasher, *gomock.Controller) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockHasher(ctl)
	m.EXPECT().Hash(gomock.Any()).Return(uint64(0)).AnyTimes()
	return m, ctl
}

type snapshot struct {
	empty    int
	load     float64
	size     int
	capacity int
}

func check(t *testing.T, m *openaddr.HashMap[int], expected snapshot, label string) {
	assert.Equal(t, expected.empty, m.EmptyBuckets(), "%s: empty buckets", label)
	assert.InDelta(t, expected.load, m.TableLoad(), 0.005, "%s: table load", label)
	assert.Equal(t, expected.size, m.Size(), "%s: size", label)
	assert.Equal(t, expected.capacity, m.Capacity(), "%s: capacity", label)
}

func TestPutGrowth(t *testing.T) {
	expected := []snapshot{
		{28, 0.47, 25, 53},
		{57, 0.47, 50, 107},
		{148, 0.34, 75, 223},
		{123, 0.45, 100, 223},
		{324, 0.28, 125, 449},
		{299, 0.33, 150, 449},
	}
	m := openaddr.New[int](53, hash1)
	for i := 0; i < 150; i += 1 {
		m.Put("str"+strconv.Itoa(i), i*100)
		if 24 == i%25 {
			check(t, m, expected[i/25], fmt.Sprintf("put: %d", i))
		}
	}
}

func TestPutUpdates(t *testing.T) {
	expected := []snapshot{
		{37, 0.1, 4, 41},
		{34, 0.17, 7, 41},
		{31, 0.24, 10, 41},
		{27, 0.34, 14, 41},
		{24, 0.41, 17, 41},
	}
	m := openaddr.New[int](41, hash2)
	for i := 0; i < 50; i += 1 {
		m.Put("str"+strconv.Itoa(i/3), i*100)
		if 9 == i%10 {
			check(t, m, expected[i/10], fmt.Sprintf("put: %d", i))
		}
	}
	v, ok := m.Get("str16")
	assert.True(t, ok, "last key")
	assert.Equal(t, 4900, v, "last value")
}

func TestResizeTable(t *testing.T) {
	m := openaddr.New[int](20, hash1)
	m.Put("key1", 10)
	assert.Equal(t, 23, m.Capacity(), "initial capacity")

	m.ResizeTable(30)
	assert.Equal(t, 31, m.Capacity(), "resized capacity")
	v, ok := m.Get("key1")
	assert.True(t, ok, "key after resize")
	assert.Equal(t, 10, v, "value after resize")

	m.ResizeTable(0)
	assert.Equal(t, 31, m.Capacity(), "smaller than size must be ignored")
}

func TestSmallCapacities(t *testing.T) {
	for _, c := range []int{0, 1, 2, 3} {
		m := openaddr.New[int](c, hash1)
		assert.Equal(t, 3, m.Capacity(), "new: %d", c)
	}

	m := openaddr.New[int](11, hash1)
	m.ResizeTable(2)
	assert.Equal(t, 3, m.Capacity(), "two is raised")
	m.ResizeTable(4)
	assert.Equal(t, 5, m.Capacity(), "next prime")

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	assert.Equal(t, 5, m.Capacity(), "below load factor")
	m.Put("d", 4)
	assert.Equal(t, 11, m.Capacity(), "doubled to the next prime")
	assert.Equal(t, 4, m.Size(), "size")
}

func TestResizeKeepsKeys(t *testing.T) {
	m := openaddr.New[int](75, hash2)
	keys := []int{}
	for k := 1; k < 1000; k += 13 {
		keys = append(keys, k)
		m.Put(strconv.Itoa(k), k*42)
	}
	assert.Equal(t, 77, m.Size(), "size")
	assert.Equal(t, 163, m.Capacity(), "capacity")

	capacities := map[int]int{
		111: 227, // grows again while rehashing
		228: 229,
		345: 347,
		462: 463,
		579: 587,
		930: 937,
	}
	for c := 111; c < 1000; c += 117 {
		m.ResizeTable(c)

		m.Put("some key", 0)
		require.True(t, m.ContainsKey("some key"), "capacity: %d", c)
		require.True(t, m.Remove("some key"), "capacity: %d", c)

		for _, k := range keys {
			require.True(t, m.ContainsKey(strconv.Itoa(k)), "capacity: %d  key: %d", c, k)
			require.False(t, m.ContainsKey(strconv.Itoa(k+1)), "capacity: %d  key: %d", c, k+1)
		}
		if expected, ok := capacities[c]; ok {
			assert.Equal(t, expected, m.Capacity(), "resize: %d", c)
		}
		assert.Equal(t, 77, m.Size(), "size after resize: %d", c)
		assert.True(t, hashmap.IsPrime(m.Capacity()), "capacity: %d not prime", m.Capacity())
	}
}

func TestTombstones(t *testing.T) {
	hasher, ctl := collidingHasher(t)
	defer ctl.Finish()

	// probe sequence from bucket zero in 11 buckets: 0 1 4 9 5 3
	m := openaddr.New[string](11, hasher)
	m.Put("a", "A")
	m.Put("b", "B")
	m.Put("c", "C")
	assert.Equal(t, 8, m.EmptyBuckets(), "empty")

	assert.True(t, m.Remove("b"), "remove b")
	assert.False(t, m.Remove("b"), "remove b twice")
	assert.Equal(t, 9, m.EmptyBuckets(), "tombstone counts as empty")

	v, ok := m.Get("c")
	assert.True(t, ok, "chain through tombstone")
	assert.Equal(t, "C", v, "value through tombstone")
	_, ok = m.Get("b")
	assert.False(t, ok, "removed key")

	// absent key takes the first tombstone
	m.Put("d", "D")
	assert.Contains(t, m.String(), "1: d: D\n", "tombstone reused")
	assert.Equal(t, 3, m.Size(), "size")

	// removed key comes back in its own bucket
	assert.True(t, m.Remove("c"))
	m.Put("c", "C2")
	assert.Contains(t, m.String(), "4: c: C2\n", "revived")
	assert.Equal(t, 3, m.Size(), "size after revive")
	assert.Equal(t, 8, m.EmptyBuckets(), "empty after revive")
}

func TestFullProbeSequence(t *testing.T) {
	hasher, ctl := collidingHasher(t)
	defer ctl.Finish()

	m := openaddr.New[int](11, hasher)
	for i := 0; i < 6; i += 1 {
		m.Put(strconv.Itoa(i), i)
	}
	assert.Equal(t, 11, m.Capacity(), "no resize below load factor")
	assert.Equal(t, 5, m.EmptyBuckets(), "unreachable buckets")

	// every reachable bucket is in use, lookups must still stop
	assert.False(t, m.ContainsKey("missing"), "missing key")
	assert.False(t, m.Remove("missing"), "remove missing key")

	assert.True(t, m.Remove("3"), "remove")
	m.Put("x", 99)
	v, ok := m.Get("x")
	assert.True(t, ok, "insert into the only tombstone")
	assert.Equal(t, 99, v)

	for i := 0; i < 6; i += 1 {
		_, ok := m.Get(strconv.Itoa(i))
		assert.Equal(t, 3 != i, ok, "key: %d", i)
	}

	// the seventh entry doubles the table
	m.Put("y", 100)
	assert.Equal(t, 23, m.Capacity(), "resized")
	assert.Equal(t, 7, m.Size(), "size")
}

func TestResizeDropsTombstones(t *testing.T) {
	m := openaddr.New[int](53, hash1)
	for i := 0; i < 20; i += 1 {
		m.Put("key"+strconv.Itoa(i), i)
	}
	for i := 0; i < 20; i += 2 {
		m.Remove("key" + strconv.Itoa(i))
	}
	m.ResizeTable(53)
	assert.Equal(t, 53, m.Capacity(), "capacity")
	assert.Equal(t, 10, m.Size(), "size")
	assert.Equal(t, 43, m.EmptyBuckets(), "empty")
	assert.NotContains(t, m.String(), "(removed)", "tombstone survived resize")
}

func TestKeysAndValues(t *testing.T) {
	m := openaddr.New[string](11, hash2)
	for i := 1; i < 6; i += 1 {
		m.Put(strconv.Itoa(i), strconv.Itoa(i*10))
	}
	assert.Equal(t, []hashmap.Pair[string]{
		{Key: "1", Value: "10"}, {Key: "2", Value: "20"}, {Key: "3", Value: "30"}, {Key: "4", Value: "40"}, {Key: "5", Value: "50"},
	}, m.KeysAndValues(), "bucket order")

	m.Put("20", "200")
	m.Remove("1")
	m.ResizeTable(2)
	assert.Equal(t, []hashmap.Pair[string]{
		{Key: "20", Value: "200"}, {Key: "2", Value: "20"}, {Key: "3", Value: "30"}, {Key: "4", Value: "40"}, {Key: "5", Value: "50"},
	}, m.KeysAndValues(), "after resize")
	assert.Equal(t, 11, m.Capacity(), "capacity after small resize")

	n := 0
	m.Each(func(key string, value string) {
		assert.Equal(t, key+"0", value, "each: %s", key)
		n += 1
	})
	assert.Equal(t, 5, n, "each count")
}

func TestClear(t *testing.T) {
	m := openaddr.New[int](101, hash1)
	m.Put("key1", 10)
	m.Put("key2", 20)
	m.Put("key1", 30)
	assert.Equal(t, 2, m.Size(), "size")

	m.Clear()
	assert.Equal(t, 0, m.Size(), "size after clear")
	assert.Equal(t, 101, m.Capacity(), "capacity after clear")
	assert.Equal(t, 101, m.EmptyBuckets(), "empty after clear")
	assert.False(t, m.ContainsKey("key1"), "key after clear")
}

func TestString(t *testing.T) {
	m := openaddr.New[int](3, hash1)
	m.Put("a", 1)
	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	assert.Equal(t, []string{"0: None", "1: a: 1", "2: None"}, lines, "97 mod 3 is 1")
}

func TestNewFromConfiguration(t *testing.T) {
	c := configuration.MapConfiguration{
		Capacity:   8,
		LoadFactor: 0.25,
		Hash:       "murmur3",
	}
	m, err := openaddr.NewFromConfiguration[int](c)
	require.Nil(t, err, "new")
	assert.Equal(t, 11, m.Capacity(), "prime capacity")

	for i := 0; i < 3; i += 1 {
		m.Put(strconv.Itoa(i), i)
	}
	assert.Equal(t, 11, m.Capacity(), "below configured load")
	m.Put("3", 3)
	assert.Equal(t, 23, m.Capacity(), "configured load reached")

	var _ hashmap.Map[int] = m

	c.Hash = "sha1"
	m, err = openaddr.NewFromConfiguration[int](c)
	assert.Nil(t, m, "unknown hash name")
	assert.Equal(t, fault.ErrInvalidHashName, err, "error")
}

func TestResizeIsLogged(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := openaddr.New[int](2, hash1)
	m.SetLogger(logger.New(fixtures.LogCategory))
	for i := 0; i < 100; i += 1 {
		m.Put(strconv.Itoa(i), i)
	}
	assert.Equal(t, 100, m.Size(), "size")
	assert.LessOrEqual(t, m.TableLoad(), 0.5, "load")
}
