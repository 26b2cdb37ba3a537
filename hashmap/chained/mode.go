// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chained

import (
	"github.com/bitmark-inc/collections/dynarray"
	"github.com/bitmark-inc/collections/hashmap"
)

// FindMode - the most frequent values of an unsorted array and how
// often they occur, an empty array gives no modes and zero
func FindMode(da *dynarray.Array[string]) (*dynarray.Array[string], int) {
	mode := dynarray.New[string]()
	if da.IsEmpty() {
		return mode, 0
	}

	frequencies := New[int](DefaultCapacity, hashmap.HasherFunc(hashmap.HashFunction1))
	for _, v := range da.Values() {
		n, _ := frequencies.Get(v)
		frequencies.Put(v, n+1)
	}

	maximum := 0
	frequencies.Each(func(_ string, n int) {
		if n > maximum {
			maximum = n
		}
	})
	frequencies.Each(func(key string, n int) {
		if n == maximum {
			mode.Append(key)
		}
	})
	return mode, maximum
}
