// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - binary search trees with parent pointers to allow
// iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Both trees share one core: a recursive descent to the insert or
// delete position followed by a hook called at every ancestor on the
// way back up.  Both hooks recompute the height; only the AVL hook
// rotates, when the balance factor leaves [-1, +1].
//
// Duplicate values are never stored, an Add of a value already in the
// tree is ignored.
//
// Removing a node with two children copies the in-order successor's
// value into that node and then deletes the successor node, so a
// *Node obtained before a Remove may afterwards hold a different
// value.
package tree
