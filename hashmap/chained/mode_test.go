// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chained_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/collections/dynarray"
	"github.com/bitmark-inc/collections/hashmap/chained"
)

func TestFindMode(t *testing.T) {
	cases := []struct {
		input     []string
		modes     []string
		frequency int
	}{
		{[]string{"apple", "apple", "grape", "melon", "peach"}, []string{"apple"}, 2},
		{[]string{"Arch", "Manjaro", "Manjaro", "Mint", "Mint", "Mint", "Ubuntu", "Ubuntu", "Ubuntu"}, []string{"Mint", "Ubuntu"}, 3},
		{[]string{"one", "two", "three", "four", "five"}, []string{"one", "two", "three", "four", "five"}, 1},
		{[]string{"2", "4", "2", "6", "8", "4", "1", "3", "4", "5", "7", "3", "3", "2"}, []string{"2", "3", "4"}, 3},
	}
	for i, c := range cases {
		da := dynarray.New(c.input...)
		mode, frequency := chained.FindMode(da)
		assert.ElementsMatch(t, c.modes, mode.Values(), "%d: modes", i)
		assert.Equal(t, c.frequency, frequency, "%d: frequency", i)
		assert.Equal(t, c.input, da.Values(), "%d: input modified", i)
	}
}

func TestFindModeEmpty(t *testing.T) {
	mode, frequency := chained.FindMode(dynarray.New[string]())
	assert.True(t, mode.IsEmpty(), "modes")
	assert.Equal(t, 0, frequency, "frequency")
}
