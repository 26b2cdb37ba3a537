// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dynarray

import (
	"github.com/bitmark-inc/collections/fault"
)

// FindMode - the most frequent values of a sorted array and how often
// they occur, modes are returned in the order they appear
//
// runs are detected by adjacency so the input must be sorted
func FindMode[T comparable](sorted *Array[T]) (*Array[T], int, error) {
	if sorted.IsEmpty() {
		return nil, 0, fault.ErrEmptyArray
	}

	mode := New[T]()
	frequency := 0

	current := sorted.data[0]
	count := 0
	for _, v := range sorted.data[:sorted.size] {
		if v == current {
			count += 1
			continue
		}
		mode, frequency = tally(mode, frequency, current, count)
		current = v
		count = 1
	}
	mode, frequency = tally(mode, frequency, current, count)

	return mode, frequency, nil
}

// close one run of equal values
func tally[T any](mode *Array[T], frequency int, value T, count int) (*Array[T], int) {
	switch {
	case count > frequency:
		return New(value), count
	case count == frequency:
		mode.Append(value)
	}
	return mode, frequency
}
