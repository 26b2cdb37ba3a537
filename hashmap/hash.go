// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"strings"

	"github.com/spaolacci/murmur3"

	"github.com/bitmark-inc/collections/fault"
)

// names accepted by HasherByName
const (
	Hash1Name   = "hash1"
	Hash2Name   = "hash2"
	Murmur3Name = "murmur3"
)

// Hasher - maps a key to an unbounded bucket number, the table
// reduces it modulo its capacity
type Hasher interface {
	Hash(key string) uint64
}

// HasherFunc - adapter to use an ordinary function as a Hasher
type HasherFunc func(key string) uint64

// Hash - calls f(key)
func (f HasherFunc) Hash(key string) uint64 {
	return f(key)
}

// HashFunction1 - sum of the code points
func HashFunction1(key string) uint64 {
	hash := uint64(0)
	for _, r := range key {
		hash += uint64(r)
	}
	return hash
}

// HashFunction2 - sum of the code points each weighted by its
// one-based position, so anagrams hash differently
func HashFunction2(key string) uint64 {
	hash := uint64(0)
	index := uint64(0)
	for _, r := range key {
		index += 1
		hash += index * uint64(r)
	}
	return hash
}

// Murmur3 - 64 bit murmur3 of the key bytes
func Murmur3(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

// HasherByName - select a hash function by its configuration name
func HasherByName(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case Hash1Name:
		return HasherFunc(HashFunction1), nil
	case Hash2Name:
		return HasherFunc(HashFunction2), nil
	case Murmur3Name:
		return HasherFunc(Murmur3), nil
	default:
		return nil, fault.ErrInvalidHashName
	}
}
