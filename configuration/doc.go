// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a table, e.g.
//
//   local M = {}
//   M.open_addressing = {
//       capacity = 53,
//       load_factor = 0.5,
//       hash = "hash2",
//   }
//   M.logging = {
//       directory = "log",
//       levels = { DEFAULT = "info" },
//   }
//   return M
//
// any item that is not set keeps its value from Default()
package configuration
