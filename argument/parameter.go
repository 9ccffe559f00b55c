// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argument

import (
	"github.com/bjornharrtell/argot/fault"
)

// data shared by the positional parameter kinds
type parameterCore struct {
	placeholder string
	description string
	optional    bool
}

// Key - the placeholder name
func (p *parameterCore) Key() string {
	return p.placeholder
}

// Description - text for usage rendering
func (p *parameterCore) Description() string {
	return p.description
}

// DisplayName - the placeholder name
func (p *parameterCore) DisplayName() string {
	return p.placeholder
}

// HasValue - parameters always carry a value
func (p *parameterCore) HasValue() bool {
	return true
}

// Optional - check if the parameter may be left out
func (p *parameterCore) Optional() bool {
	return p.optional
}

func checkPlaceholder(placeholder string) {
	if "" == placeholder {
		panic(fault.SpecificationError("parameter has an empty placeholder"))
	}
}

// SingleValueParameter - positional argument taking exactly one token
type SingleValueParameter[T any] struct {
	parameterCore
	convert Converter[T]
	value   SingleValue[T]
}

// NewSingleValueParameter - build a single-valued parameter declaration
func NewSingleValueParameter[T any](placeholder string, description string, optional bool, convert Converter[T]) *SingleValueParameter[T] {
	checkPlaceholder(placeholder)
	return &SingleValueParameter[T]{
		parameterCore: parameterCore{
			placeholder: placeholder,
			description: description,
			optional:    optional,
		},
		convert: convert,
	}
}

// IsMulti - consumes exactly one token
func (p *SingleValueParameter[T]) IsMulti() bool { return false }

// SetText - convert a raw token and store the result
func (p *SingleValueParameter[T]) SetText(raw string) error {
	v, err := p.convert(raw, p)
	if nil != err {
		return err
	}
	p.value.Store(v)
	return nil
}

// Get - stored value and whether one was matched
func (p *SingleValueParameter[T]) Get() (T, bool) { return p.value.Get() }

// GetOr - stored value, or the supplied default
func (p *SingleValueParameter[T]) GetOr(def T) T { return p.value.GetOr(def) }

// IsSet - check if the parameter was matched
func (p *SingleValueParameter[T]) IsSet() bool { return p.value.IsSet() }

// MultiValueParameter - positional argument taking all remaining tokens
//
// Only one may be declared and it must be the last parameter.
type MultiValueParameter[T any] struct {
	parameterCore
	convert Converter[T]
	value   MultiValue[T]
}

// NewMultiValueParameter - build a multi-valued parameter declaration
func NewMultiValueParameter[T any](placeholder string, description string, optional bool, convert Converter[T]) *MultiValueParameter[T] {
	checkPlaceholder(placeholder)
	return &MultiValueParameter[T]{
		parameterCore: parameterCore{
			placeholder: placeholder,
			description: description,
			optional:    optional,
		},
		convert: convert,
	}
}

// IsMulti - consumes all remaining tokens
func (p *MultiValueParameter[T]) IsMulti() bool { return true }

// SetText - convert a raw token and append the result
func (p *MultiValueParameter[T]) SetText(raw string) error {
	v, err := p.convert(raw, p)
	if nil != err {
		return err
	}
	p.value.Store(v)
	return nil
}

// Values - accumulated values in arrival order
func (p *MultiValueParameter[T]) Values() []T { return p.value.Values() }

// Count - number of tokens consumed
func (p *MultiValueParameter[T]) Count() int { return p.value.Count() }
