// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argument

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bjornharrtell/argot/fault"
)

// FlagOption - value-less option toggled by the presence of a name
//
// Names in the on set toggle true, names in the off set toggle false;
// the converter maps each toggle to the stored type.  The default is
// returned while no toggle has happened.
type FlagOption[T any] struct {
	optionCore
	onNames      []string
	offNames     []string
	defaultValue T
	convert      FlagConverter[T]
	value        SingleValue[T]
}

// NewFlagOption - build a flag declaration
//
// Panics with a fault.SpecificationError on an empty name or when a
// name appears in both the on and off sets.
func NewFlagOption[T any](onNames []string, offNames []string, defaultValue T, description string, convert FlagConverter[T]) *FlagOption[T] {
	checkOptionNames(onNames)
	for _, name := range offNames {
		if "" == name {
			panic(fault.SpecificationError("option has an empty name"))
		}
	}
	for _, on := range onNames {
		for _, off := range offNames {
			if on == off {
				panic(fault.SpecificationError(fmt.Sprintf("flag name %q is both on and off", on)))
			}
		}
	}

	names := make([]string, 0, len(onNames)+len(offNames))
	names = append(names, onNames...)
	names = append(names, offNames...)

	return &FlagOption[T]{
		optionCore: optionCore{
			names:       names,
			description: description,
		},
		onNames:      onNames,
		offNames:     offNames,
		defaultValue: defaultValue,
		convert:      convert,
	}
}

// HasValue - flags never consume a value token
func (f *FlagOption[T]) HasValue() bool { return false }

// IsMulti - toggles overwrite
func (f *FlagOption[T]) IsMulti() bool { return false }

// OnNames - names that toggle true
func (f *FlagOption[T]) OnNames() []string { return f.onNames }

// OffNames - names that toggle false
func (f *FlagOption[T]) OffNames() []string { return f.offNames }

// Toggle - resolve a name against the on/off sets and store the result
//
// The name must be one of the declared names; anything else is an
// engine defect since the lookup tables are built from the same sets.
func (f *FlagOption[T]) Toggle(name string) error {
	on := false
	switch {
	case contains(f.onNames, name):
		on = true
	case contains(f.offNames, name):
		// off, value stays false
	default:
		logger.Panicf("argument: flag %s toggled by unknown name: %q", f.DisplayName(), name)
	}

	v, err := f.convert(on, f)
	if nil != err {
		return err
	}
	f.value.Store(v)
	return nil
}

// Get - last toggled value, or the default when never toggled
func (f *FlagOption[T]) Get() T { return f.value.GetOr(f.defaultValue) }

// IsSet - check if the flag was toggled
func (f *FlagOption[T]) IsSet() bool { return f.value.IsSet() }

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
