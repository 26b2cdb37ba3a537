// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/collections/fault"
	"github.com/bitmark-inc/collections/sll"
)

func TestInsertFrontBack(t *testing.T) {
	front := sll.New[string]()
	back := sll.New[string]()
	assert.True(t, front.IsEmpty(), "not empty")
	for _, v := range []string{"A", "B", "C"} {
		front.InsertFront(v)
		back.InsertBack(v)
	}
	assert.Equal(t, "SLL [C -> B -> A]", front.String(), "front")
	assert.Equal(t, "SLL [A -> B -> C]", back.String(), "back")
	assert.Equal(t, 3, back.Length(), "length")
}

func TestInsertAt(t *testing.T) {
	l := sll.New[string]()
	items := []struct {
		index    int
		value    string
		err      error
		expected string
	}{
		{0, "A", nil, "SLL [A]"},
		{0, "B", nil, "SLL [B -> A]"},
		{1, "C", nil, "SLL [B -> C -> A]"},
		{3, "D", nil, "SLL [B -> C -> A -> D]"},
		{-1, "E", fault.ErrIndexOutOfRange, "SLL [B -> C -> A -> D]"},
		{5, "F", fault.ErrIndexOutOfRange, "SLL [B -> C -> A -> D]"},
	}
	for i, item := range items {
		err := l.InsertAt(item.index, item.value)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, l.String(), "%d: wrong list", i)
	}
}

func TestRemoveAt(t *testing.T) {
	l := sll.New(1, 2, 3, 4, 5, 6)
	items := []struct {
		index    int
		err      error
		expected string
	}{
		{0, nil, "SLL [2 -> 3 -> 4 -> 5 -> 6]"},
		{2, nil, "SLL [2 -> 3 -> 5 -> 6]"},
		{0, nil, "SLL [3 -> 5 -> 6]"},
		{2, nil, "SLL [3 -> 5]"},
		{2, fault.ErrIndexOutOfRange, "SLL [3 -> 5]"},
		{-2, fault.ErrIndexOutOfRange, "SLL [3 -> 5]"},
	}
	for i, item := range items {
		err := l.RemoveAt(item.index)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, l.String(), "%d: wrong list", i)
	}

	empty := sll.New[int]()
	assert.Equal(t, fault.ErrIndexOutOfRange, empty.RemoveAt(0), "remove from empty")
}

func TestRemoveCountFind(t *testing.T) {
	l := sll.New(1, 2, 3, 1, 2, 3, 3, 2, 1)
	assert.Equal(t, 3, l.Count(1), "count 1")
	assert.Equal(t, 0, l.Count(7), "count 7")
	assert.True(t, l.Find(2), "find 2")
	assert.False(t, l.Find(7), "find 7")

	assert.True(t, l.Remove(1), "remove 1")
	assert.False(t, l.Remove(7), "remove 7")
	assert.Equal(t, "SLL [2 -> 3 -> 1 -> 2 -> 3 -> 3 -> 2 -> 1]", l.String(), "first occurrence only")

	for l.Remove(3) {
	}
	assert.Equal(t, 0, l.Count(3), "all removed")
	assert.False(t, l.Find(3), "all removed")
}

func TestFuncHelpers(t *testing.T) {
	l := sll.New("apple", "banana", "cherry")
	v, ok := l.FindFunc(func(s string) bool { return 'b' == s[0] })
	assert.True(t, ok, "find func")
	assert.Equal(t, "banana", v, "find func")

	_, ok = l.FindFunc(func(s string) bool { return "" == s })
	assert.False(t, ok, "find func absent")

	assert.True(t, l.RemoveFunc(func(s string) bool { return "cherry" == s }), "remove func")

	seen := []string{}
	l.Each(func(s string) { seen = append(seen, s) })
	assert.Equal(t, []string{"apple", "banana"}, seen, "each")
}

func TestSlice(t *testing.T) {
	l := sll.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	s, err := l.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "SLL [2 -> 3 -> 4]", s.String(), "slice")

	require.NoError(t, s.RemoveAt(0))
	assert.Equal(t, "SLL [3 -> 4]", s.String(), "slice after remove")
	assert.Equal(t, 9, l.Length(), "source changed")

	src := sll.New(10, 11, 12, 13, 14, 15, 16)
	valid := [][2]int{{0, 7}, {2, 3}, {5, 0}, {6, 1}}
	for _, item := range valid {
		_, err := src.Slice(item[0], item[1])
		assert.NoError(t, err, "slice %d/%d", item[0], item[1])
	}
	invalid := [][2]int{{-1, 7}, {0, 8}, {5, 3}, {6, -1}}
	for _, item := range invalid {
		_, err := src.Slice(item[0], item[1])
		assert.Equal(t, fault.ErrSliceOutOfRange, err, "slice %d/%d", item[0], item[1])
	}
}
