// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bjornharrtell/argot/convert"
	"github.com/bjornharrtell/argot/parser"
	"github.com/bjornharrtell/argot/registry"
	"github.com/bjornharrtell/argot/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program := filepath.Base(os.Args[0])

	reg := registry.New(registry.Config{
		Program:  program,
		PreUsage: fmt.Sprintf("%s version: %s", program, version.Version),
	})

	help := registry.Flag(reg, []string{"h", "help"}, nil, false, "show this message", convert.Bool)
	verbose := registry.Flag(reg, []string{"v", "verbose"}, []string{"q", "quiet"}, false, "enable verbose messages", convert.Bool)
	iterations := registry.Option(reg, []string{"i", "iterations"}, "n", "number of copy passes", convert.Int)
	separator := registry.Option(reg, []string{"s", "separator"}, "char", "separator between joined records", convert.Char)
	users := registry.MultiOption(reg, []string{"u", "user"}, "name", "user to notify on completion", convert.String)
	configFile := registry.Option(reg, []string{"c", "config-file"}, "file", "read settings from this Lua file", convert.String)
	runLine := registry.Option(reg, []string{"r", "run"}, "line", "also parse this quoted command line", convert.String)
	input := registry.Parameter(reg, "input", "file to copy from", false, convert.String)
	outputs := registry.MultiParameter(reg, "output", "files to copy to", true, convert.String)

	run := parser.New(reg)

	if err := run.Parse(os.Args[1:]); nil != err {
		exitwithstatus.Message("%s", err)
	}

	if help.Get() {
		exitwithstatus.Message("%s", reg.Usage())
	}

	// read options and parse the configuration file
	configuration := defaultConfiguration()
	if fileName, ok := configFile.Get(); ok {
		c, err := readConfiguration(fileName)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, fileName, err)
		}
		configuration = c
	}

	// start logging
	if err := logger.Initialise(configuration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version.Version)

	// a quoted line goes through the same registry, accumulating on
	// top of the process arguments
	if line, ok := runLine.Get(); ok {
		tokens, err := parser.SplitLine(line)
		if nil != err {
			exitwithstatus.Message("%s: cannot split %q  error: %s", program, line, err)
		}
		log.Infof("extra tokens: %v", tokens)
		if err := run.Parse(tokens); nil != err {
			exitwithstatus.Message("%s", err)
		}
	}

	passes := iterations.GetOr(configuration.Iterations)
	log.Infof("copy passes: %d", passes)

	if verbose.Get() {
		fmt.Printf("version: %s\n", version.Version)
		fmt.Printf("iterations: %d\n", passes)
		fmt.Printf("separator: %q\n", separator.GetOr(','))
		fmt.Printf("users: %s\n", strings.Join(users.Values(), ", "))
	}

	fmt.Printf("input: %s\n", input.GetOr(""))
	for i, output := range outputs.Values() {
		fmt.Printf("output[%d]: %s\n", i, output)
	}
}
