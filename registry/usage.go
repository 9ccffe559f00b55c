// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/bjornharrtell/argot/argument"
)

// annotation appended to options that accumulate
const multiUseNote = "(May be specified multiple times.)"

// Usage - render the help text for the current state of the registry
//
// Rendering is deterministic: repeated calls without intervening
// declarations produce byte-identical output.  Options are ordered by
// their primary display name unless Config.InsertionOrder is set.
func (r *Registry) Usage() string {
	var b strings.Builder

	if "" != r.config.PreUsage {
		b.WriteString(r.config.PreUsage)
		b.WriteString("\n")
	}

	b.WriteString("Usage: ")
	b.WriteString(r.config.Program)
	if len(r.options) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	for _, p := range r.parameters {
		b.WriteString(" ")
		b.WriteString(parameterLabel(p))
	}
	b.WriteString("\n")

	if len(r.options) > 0 {
		options := r.options
		if !r.config.InsertionOrder {
			options = make([]argument.Option, len(r.options))
			copy(options, r.options)
			sort.SliceStable(options, func(i, j int) bool {
				return options[i].DisplayName() < options[j].DisplayName()
			})
		}

		labels := make([]string, len(options))
		column := 0
		for i, opt := range options {
			labels[i] = optionLabel(opt)
			if len(labels[i]) > column {
				column = len(labels[i])
			}
		}

		b.WriteString("\nOPTIONS\n\n")
		for i, opt := range options {
			description := opt.Description()
			if opt.IsMulti() {
				if "" == description {
					description = multiUseNote
				} else {
					description += " " + multiUseNote
				}
			}
			writeEntry(&b, labels[i], description, column, r.config.Width)
		}
	}

	withDescription := false
	column := 0
	for _, p := range r.parameters {
		if "" != p.Description() {
			withDescription = true
		}
		if len(p.DisplayName()) > column {
			column = len(p.DisplayName())
		}
	}
	if withDescription {
		b.WriteString("\nPARAMETERS\n\n")
		for _, p := range r.parameters {
			writeEntry(&b, p.DisplayName(), p.Description(), column, r.config.Width)
		}
	}

	if "" != r.config.PostUsage {
		b.WriteString("\n")
		b.WriteString(r.config.PostUsage)
		b.WriteString("\n")
	}

	return b.String()
}

// placeholder for the usage header: bracketed when optional, ellipsis
// when multi-valued
func parameterLabel(p argument.Parameter) string {
	label := p.DisplayName()
	if p.IsMulti() {
		label += "..."
	}
	if p.Optional() {
		label = "[" + label + "]"
	}
	return label
}

// aliases comma-joined in declaration order, the last one carrying the
// value placeholder for value-bearing options
func optionLabel(opt argument.Option) string {
	names := opt.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = argument.Dashed(name)
	}
	label := strings.Join(parts, ", ")
	if opt.HasValue() && "" != opt.ValueName() {
		label += " " + opt.ValueName()
	}
	return label
}

// one catalogue line: label column, two space gutter, description
// word-wrapped with a hanging indent aligned to the column
func writeEntry(b *strings.Builder, label string, description string, column int, width int) {
	if "" == description {
		b.WriteString(label)
		b.WriteString("\n")
		return
	}

	wrap := width - column - 2
	if wrap < 16 {
		wrap = 16
	}
	lines := strings.Split(wordwrap.WrapString(description, uint(wrap)), "\n")

	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", column-len(label)+2))
	b.WriteString(lines[0])
	b.WriteString("\n")

	indent := strings.Repeat(" ", column+2)
	for _, line := range lines[1:] {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
}
