// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Only two classes are produced by the containers themselves:
// OutOfRangeError for an index or size outside of the valid domain
// and EmptyError for an operation that needs at least one element.
// Absence of a value is never an error.  Configuration validation
// returns InvalidError.
package fault
