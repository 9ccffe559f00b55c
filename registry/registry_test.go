// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjornharrtell/argot/argument"
	"github.com/bjornharrtell/argot/convert"
	"github.com/bjornharrtell/argot/registry"
)

func TestLookupTables(t *testing.T) {
	r := registry.New(registry.Config{Program: "copy"})

	iterations := registry.Option(r, []string{"i", "iterations"}, "n", "number of passes", convert.Int)
	verbose := registry.Flag(r, []string{"v", "verbose"}, []string{"q", "quiet"}, false, "enable verbose messages", convert.Bool)

	opt, ok := r.FindShort("i")
	require.True(t, ok, "short name not indexed")
	assert.Equal(t, "i", opt.Key(), "wrong option found")

	opt, ok = r.FindLong("iterations")
	require.True(t, ok, "long name not indexed")
	assert.Equal(t, iterations.Key(), opt.Key(), "wrong option found")

	// every flag alias reaches the same declaration
	for _, name := range []string{"q", "v"} {
		opt, ok = r.FindShort(name)
		require.True(t, ok, "flag short name %q not indexed", name)
		assert.Equal(t, verbose.Key(), opt.Key(), "wrong option found")
	}
	for _, name := range []string{"quiet", "verbose"} {
		opt, ok = r.FindLong(name)
		require.True(t, ok, "flag long name %q not indexed", name)
		assert.Equal(t, verbose.Key(), opt.Key(), "wrong option found")
	}

	_, ok = r.FindLong("frobnicate")
	assert.False(t, ok, "unknown name resolved")
	_, ok = r.FindShort("x")
	assert.False(t, ok, "unknown name resolved")
}

// last registration of a literal name wins in the lookup maps, but the
// superseded declaration stays in the catalogue
func TestNameReplacement(t *testing.T) {
	r := registry.New(registry.Config{Program: "copy"})

	registry.Option(r, []string{"o", "output"}, "file", "first output", convert.String)
	second := registry.Option(r, []string{"output"}, "file", "second output", convert.String)

	opt, ok := r.FindLong("output")
	require.True(t, ok, "long name not indexed")

	setter, ok := opt.(argument.TextSetter)
	require.True(t, ok, "option is not value-bearing")
	err := setter.SetText("here")
	require.Nil(t, err, "wrong error")
	assert.Equal(t, "here", second.GetOr(""), "replacement mapping does not reach the last declaration")

	// short alias of the first declaration is untouched
	_, ok = r.FindShort("o")
	assert.True(t, ok, "unrelated short mapping lost")

	assert.Equal(t, 2, len(r.Options()), "catalogue must keep the superseded declaration")
}

func TestParameterOrderingInvariants(t *testing.T) {
	r := registry.New(registry.Config{Program: "copy"})
	registry.Parameter(r, "a", "", true, convert.String)

	assert.PanicsWithError(t, `required parameter "b" cannot follow an optional parameter`, func() {
		registry.Parameter(r, "b", "", false, convert.String)
	}, "required after optional accepted")

	// a further optional parameter is still fine
	registry.Parameter(r, "c", "", true, convert.String)
	assert.Equal(t, 2, len(r.Parameters()), "wrong parameter count")
}

func TestMultiParameterMustBeLast(t *testing.T) {
	r := registry.New(registry.Config{Program: "copy"})
	registry.MultiParameter(r, "files", "", false, convert.String)

	assert.PanicsWithError(t, `parameter "extra" cannot follow a multi-valued parameter`, func() {
		registry.Parameter(r, "extra", "", false, convert.String)
	}, "parameter after multi accepted")

	assert.PanicsWithError(t, `parameter "more" cannot follow a multi-valued parameter`, func() {
		registry.MultiParameter(r, "more", "", false, convert.String)
	}, "second multi parameter accepted")
}
