// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dynarray - a growable index addressable sequence
//
// Capacity doubles when a write would exceed it, so a run of N
// appends costs O(N) in total.  Removing elements shrinks the buffer
// to max(2*size, 10) once the array is less than a quarter full and
// the capacity is above 10.
//
// Note: an individual array is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package dynarray
