// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"unicode/utf8"

	"github.com/bjornharrtell/argot/argument"
)

// default wrap column for usage text
const defaultWidth = 79

// Config - settings for a registry
type Config struct {
	Program        string // program name shown in the usage header
	PreUsage       string // optional banner line before the usage header
	PostUsage      string // optional trailer after the catalogue
	InsertionOrder bool   // render options in declaration order instead of sorted
	Width          int    // wrap column for descriptions, zero gives the default
}

// Registry - one independent argument specification
//
// No ambient global registry exists; a registry is threaded explicitly
// through the parser and formatter.
type Registry struct {
	config     Config
	options    []argument.Option // insertion-ordered catalogue
	parameters []argument.Parameter
	shortNames map[string]argument.Option // single character names
	longNames  map[string]argument.Option // two or more character names

	haveOptional bool // an optional parameter was declared
	haveMulti    bool // a multi-valued parameter was declared
}

// New - create an empty registry
func New(config Config) *Registry {
	if config.Width <= 0 {
		config.Width = defaultWidth
	}
	return &Registry{
		config:     config,
		shortNames: make(map[string]argument.Option),
		longNames:  make(map[string]argument.Option),
	}
}

// Program - the configured program name
func (r *Registry) Program() string {
	return r.config.Program
}

// HasOptions - check if any option was declared
func (r *Registry) HasOptions() bool {
	return len(r.options) > 0
}

// Options - the insertion-ordered option catalogue
//
// A declaration superseded by a name collision stays in this list even
// though the lookup maps no longer reach it.
func (r *Registry) Options() []argument.Option {
	return r.options
}

// Parameters - declared parameters in declaration order
func (r *Registry) Parameters() []argument.Parameter {
	return r.parameters
}

// FindShort - look up a single character option name
func (r *Registry) FindShort(name string) (argument.Option, bool) {
	opt, ok := r.shortNames[name]
	return opt, ok
}

// FindLong - look up a long option name
func (r *Registry) FindLong(name string) (argument.Option, bool) {
	opt, ok := r.longNames[name]
	return opt, ok
}

// file an option into the catalogue and both lookup maps
func (r *Registry) indexOption(opt argument.Option) {
	r.options = append(r.options, opt)
	for _, name := range opt.Names() {
		if 1 == utf8.RuneCountInString(name) {
			r.shortNames[name] = opt // replaces any earlier mapping
		} else {
			r.longNames[name] = opt // replaces any earlier mapping
		}
	}
}
