// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argument

// Converter - turn one raw token into a typed value
//
// The owning argument is supplied so the diagnostic can name it.  Any
// failure must be reported as a fault.ConversionError, never a panic.
type Converter[T any] func(value string, arg Argument) (T, error)

// FlagConverter - turn a toggle state into a typed value
type FlagConverter[T any] func(on bool, arg Argument) (T, error)

// Argument - capabilities common to all declaration kinds
type Argument interface {
	Key() string         // identity; equal keys of the same kind are equivalent
	Description() string // human readable text for usage rendering
	HasValue() bool      // true if a raw token carries the value
	DisplayName() string // name as shown in usage and diagnostics
}

// Option - a named argument introduced by "-" or "--"
type Option interface {
	Argument
	Names() []string   // all names in declaration order
	ValueName() string // placeholder for the value, empty for flags
	IsMulti() bool     // true if each occurrence appends
}

// TextSetter - implemented by value-bearing arguments
type TextSetter interface {
	SetText(raw string) error
}

// Toggler - implemented by flags
type Toggler interface {
	Toggle(name string) error
}

// Parameter - a positional argument matched by position
type Parameter interface {
	Argument
	TextSetter
	Optional() bool
	IsMulti() bool // true if all remaining tokens are consumed
}
