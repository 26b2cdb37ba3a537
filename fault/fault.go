// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type InvalidError GenericError
type OutOfRangeError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrEmptyArray           = EmptyError("array is empty")
	ErrEmptyHeap            = EmptyError("heap is empty")
	ErrEmptyStack           = EmptyError("stack is empty")
	ErrIndexOutOfRange      = OutOfRangeError("index out of range")
	ErrInvalidCapacity      = InvalidError("invalid capacity")
	ErrInvalidConfiguration = InvalidError("configuration did not return a table")
	ErrInvalidFileName      = InvalidError("invalid file name")
	ErrInvalidHashName      = InvalidError("invalid hash function name")
	ErrInvalidLoadFactor    = InvalidError("invalid load factor")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrSliceOutOfRange      = OutOfRangeError("slice out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string      { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e OutOfRangeError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool      { _, ok := e.(EmptyError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrOutOfRange(e error) bool { _, ok := e.(OutOfRangeError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
