// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argument

import (
	"unicode/utf8"

	"github.com/bjornharrtell/argot/fault"
)

// data shared by all named option kinds
type optionCore struct {
	names       []string
	valueName   string
	description string
}

// Key - the first declared name, undecorated
func (o *optionCore) Key() string {
	return o.names[0]
}

// Names - all names in declaration order
func (o *optionCore) Names() []string {
	return o.names
}

// ValueName - placeholder for the value in usage text
func (o *optionCore) ValueName() string {
	return o.valueName
}

// Description - text for usage rendering
func (o *optionCore) Description() string {
	return o.description
}

// DisplayName - the first declared name with its dash prefix
func (o *optionCore) DisplayName() string {
	return Dashed(o.names[0])
}

// Dashed - prefix a name the way it appears on a command line
//
// One character gets "-", anything longer gets "--".
func Dashed(name string) string {
	if 1 == utf8.RuneCountInString(name) {
		return "-" + name
	}
	return "--" + name
}

// all names must be non-empty
func checkOptionNames(names []string) {
	if 0 == len(names) {
		panic(fault.SpecificationError("option has no name"))
	}
	for _, name := range names {
		if "" == name {
			panic(fault.SpecificationError("option has an empty name"))
		}
	}
}

// SingleValueOption - named option taking one value, last occurrence wins
type SingleValueOption[T any] struct {
	optionCore
	convert Converter[T]
	value   SingleValue[T]
}

// NewSingleValueOption - build a single-valued option declaration
//
// Panics with a fault.SpecificationError on an empty name.
func NewSingleValueOption[T any](names []string, valueName string, description string, convert Converter[T]) *SingleValueOption[T] {
	checkOptionNames(names)
	return &SingleValueOption[T]{
		optionCore: optionCore{
			names:       names,
			valueName:   valueName,
			description: description,
		},
		convert: convert,
	}
}

// HasValue - a raw token carries the value
func (o *SingleValueOption[T]) HasValue() bool { return true }

// IsMulti - occurrences overwrite
func (o *SingleValueOption[T]) IsMulti() bool { return false }

// SetText - convert a raw token and store the result
func (o *SingleValueOption[T]) SetText(raw string) error {
	v, err := o.convert(raw, o)
	if nil != err {
		return err
	}
	o.value.Store(v)
	return nil
}

// Get - stored value and whether the option occurred
func (o *SingleValueOption[T]) Get() (T, bool) { return o.value.Get() }

// GetOr - stored value, or the supplied default
func (o *SingleValueOption[T]) GetOr(def T) T { return o.value.GetOr(def) }

// IsSet - check if the option occurred
func (o *SingleValueOption[T]) IsSet() bool { return o.value.IsSet() }

// MultiValueOption - named option where each occurrence appends
type MultiValueOption[T any] struct {
	optionCore
	convert Converter[T]
	value   MultiValue[T]
}

// NewMultiValueOption - build a multi-valued option declaration
//
// Panics with a fault.SpecificationError on an empty name.
func NewMultiValueOption[T any](names []string, valueName string, description string, convert Converter[T]) *MultiValueOption[T] {
	checkOptionNames(names)
	return &MultiValueOption[T]{
		optionCore: optionCore{
			names:       names,
			valueName:   valueName,
			description: description,
		},
		convert: convert,
	}
}

// HasValue - a raw token carries the value
func (o *MultiValueOption[T]) HasValue() bool { return true }

// IsMulti - occurrences accumulate
func (o *MultiValueOption[T]) IsMulti() bool { return true }

// SetText - convert a raw token and append the result
func (o *MultiValueOption[T]) SetText(raw string) error {
	v, err := o.convert(raw, o)
	if nil != err {
		return err
	}
	o.value.Store(v)
	return nil
}

// Values - accumulated values in arrival order
func (o *MultiValueOption[T]) Values() []T { return o.value.Values() }

// Count - number of occurrences
func (o *MultiValueOption[T]) Count() int { return o.value.Count() }
