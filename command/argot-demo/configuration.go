// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/logger"
)

// Configuration - settings for the demonstration program
type Configuration struct {
	Iterations int                  `gluamapper:"iterations"`
	Logging    logger.Configuration `gluamapper:"logging"`
}

// settings used when no configuration file option is given
func defaultConfiguration() *Configuration {
	return &Configuration{
		Iterations: 1,
		Logging: logger.Configuration{
			Directory: ".",
			File:      "argot-demo.log",
			Size:      1048576,
			Count:     10,
			Console:   true,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}
}

// readConfiguration - read and execute a Lua file and assign the
// results to a configuration structure
func readConfiguration(fileName string) (*Configuration, error) {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return nil, err
	}

	configuration := defaultConfiguration()

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	err := mapper.Map(L.Get(L.GetTop()).(*lua.LTable), configuration)
	if nil != err {
		return nil, err
	}
	return configuration, nil
}
