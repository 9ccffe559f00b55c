// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type SpecificationError GenericError
type ConversionError GenericError
type UsageError GenericError

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e SpecificationError) Error() string { return string(e) }
func (e ConversionError) Error() string    { return string(e) }
func (e UsageError) Error() string         { return string(e) }

// determine the class of an error
func IsErrSpecification(e error) bool { _, ok := e.(SpecificationError); return ok }
func IsErrConversion(e error) bool    { _, ok := e.(ConversionError); return ok }
func IsErrUsage(e error) bool         { _, ok := e.(UsageError); return ok }
