// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"github.com/bjornharrtell/argot/argument"
	"github.com/bjornharrtell/argot/fault"
)

// Option - declare a named option taking one value
//
// Short names are one character, long names two or more; all names are
// aliases for the same declaration.  The returned handle is read after
// a successful parse.
func Option[T any](r *Registry, names []string, valueName string, description string, convert argument.Converter[T]) *argument.SingleValueOption[T] {
	opt := argument.NewSingleValueOption[T](names, valueName, description, convert)
	r.indexOption(opt)
	return opt
}

// MultiOption - declare a named option where each occurrence appends
func MultiOption[T any](r *Registry, names []string, valueName string, description string, convert argument.Converter[T]) *argument.MultiValueOption[T] {
	opt := argument.NewMultiValueOption[T](names, valueName, description, convert)
	r.indexOption(opt)
	return opt
}

// Flag - declare a value-less option toggled by on/off name sets
func Flag[T any](r *Registry, onNames []string, offNames []string, defaultValue T, description string, convert argument.FlagConverter[T]) *argument.FlagOption[T] {
	opt := argument.NewFlagOption[T](onNames, offNames, defaultValue, description, convert)
	r.indexOption(opt)
	return opt
}

// Parameter - declare a positional parameter taking exactly one token
func Parameter[T any](r *Registry, placeholder string, description string, optional bool, convert argument.Converter[T]) *argument.SingleValueParameter[T] {
	p := argument.NewSingleValueParameter[T](placeholder, description, optional, convert)
	r.indexParameter(p)
	return p
}

// MultiParameter - declare a positional parameter taking all remaining tokens
//
// Only one may be declared and no parameter may follow it.
func MultiParameter[T any](r *Registry, placeholder string, description string, optional bool, convert argument.Converter[T]) *argument.MultiValueParameter[T] {
	p := argument.NewMultiValueParameter[T](placeholder, description, optional, convert)
	r.indexParameter(p)
	return p
}

// enforce the parameter ordering invariants
func (r *Registry) indexParameter(p argument.Parameter) {
	if r.haveMulti {
		panic(fault.SpecificationError(fmt.Sprintf("parameter %q cannot follow a multi-valued parameter", p.DisplayName())))
	}
	if r.haveOptional && !p.Optional() {
		panic(fault.SpecificationError(fmt.Sprintf("required parameter %q cannot follow an optional parameter", p.DisplayName())))
	}
	if p.Optional() {
		r.haveOptional = true
	}
	if p.IsMulti() {
		r.haveMulti = true
	}
	r.parameters = append(r.parameters, p)
}
