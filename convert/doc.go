// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package convert - built-in converters for common scalar kinds
//
// Each converter matches the argument.Converter signature so it can be
// handed straight to a declaration; a caller-supplied converter fully
// replaces the built-in one for that declaration.  Malformed or
// out-of-range input is reported as a fault.ConversionError naming the
// owning argument, never as a panic.
package convert
