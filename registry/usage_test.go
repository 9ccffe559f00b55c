// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjornharrtell/argot/convert"
	"github.com/bjornharrtell/argot/registry"
)

func TestUsageMinimal(t *testing.T) {
	r := registry.New(registry.Config{Program: "tool"})
	registry.Option(r, []string{"o", "output"}, "file", "output file", convert.String)

	expected := "Usage: tool [OPTIONS]\n" +
		"\n" +
		"OPTIONS\n" +
		"\n" +
		"-o, --output file  output file\n"

	assert.Equal(t, expected, r.Usage(), "wrong usage text")
}

// no [OPTIONS] segment when nothing is declared as an option
func TestUsageNoOptions(t *testing.T) {
	r := registry.New(registry.Config{Program: "prog"})
	registry.Parameter(r, "a", "", false, convert.String)

	assert.Equal(t, "Usage: prog a\n", r.Usage(), "wrong usage text")
}

func TestUsageFull(t *testing.T) {
	r := registry.New(registry.Config{
		Program:  "copy",
		PreUsage: "copy version 1.0",
	})

	registry.Flag(r, []string{"v", "verbose"}, []string{"q", "quiet"}, false, "enable verbose messages", convert.Bool)
	registry.Option(r, []string{"i", "iterations"}, "n", "number of copy passes", convert.Int)
	registry.MultiOption(r, []string{"u", "user"}, "name", "user to notify", convert.String)
	registry.Parameter(r, "input", "input file", false, convert.String)
	registry.MultiParameter(r, "output", "output files", true, convert.String)

	expected := "copy version 1.0\n" +
		"Usage: copy [OPTIONS] input [output...]\n" +
		"\n" +
		"OPTIONS\n" +
		"\n" +
		"-i, --iterations n          number of copy passes\n" +
		"-u, --user name             user to notify (May be specified multiple times.)\n" +
		"-v, --verbose, -q, --quiet  enable verbose messages\n" +
		"\n" +
		"PARAMETERS\n" +
		"\n" +
		"input   input file\n" +
		"output  output files\n"

	assert.Equal(t, expected, r.Usage(), "wrong usage text")
}

// long descriptions wrap with a hanging indent aligned past the column
func TestUsageWordWrap(t *testing.T) {
	r := registry.New(registry.Config{Program: "wrap", Width: 40})
	registry.Option(r, []string{"x", "expand"}, "", "alpha beta gamma delta epsilon zeta", convert.String)

	expected := "Usage: wrap [OPTIONS]\n" +
		"\n" +
		"OPTIONS\n" +
		"\n" +
		"-x, --expand  alpha beta gamma delta\n" +
		"              epsilon zeta\n"

	assert.Equal(t, expected, r.Usage(), "wrong wrapping")
}

func TestUsageOrderingModes(t *testing.T) {
	sorted := registry.New(registry.Config{Program: "order"})
	registry.Option(sorted, []string{"z", "zebra"}, "v", "last alphabetically", convert.String)
	registry.Option(sorted, []string{"a", "aardvark"}, "v", "first alphabetically", convert.String)

	text := sorted.Usage()
	assert.True(t, strings.Index(text, "--aardvark") < strings.Index(text, "--zebra"),
		"default mode must sort lexically:\n%s", text)

	declared := registry.New(registry.Config{Program: "order", InsertionOrder: true})
	registry.Option(declared, []string{"z", "zebra"}, "v", "declared first", convert.String)
	registry.Option(declared, []string{"a", "aardvark"}, "v", "declared second", convert.String)

	text = declared.Usage()
	assert.True(t, strings.Index(text, "--zebra") < strings.Index(text, "--aardvark"),
		"insertion mode must keep declaration order:\n%s", text)
}

// repeated rendering without intervening declarations is byte identical
func TestUsageIdempotent(t *testing.T) {
	r := registry.New(registry.Config{
		Program:   "again",
		PostUsage: "report bugs upstream",
	})
	registry.Flag(r, []string{"d", "debug"}, nil, false, "enable debugging", convert.Bool)
	registry.Parameter(r, "file", "the file to process", false, convert.String)

	first := r.Usage()
	second := r.Usage()
	assert.Equal(t, first, second, "rendering is not idempotent")
	assert.True(t, strings.HasSuffix(first, "report bugs upstream\n"), "post usage trailer missing:\n%s", first)
}
