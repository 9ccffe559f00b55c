// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/kballard/go-shellquote"
)

// SplitLine - split one shell-quoted command line into tokens
//
// For drivers that receive a whole command line as a single string
// instead of an argument vector.  Quoting and escaping follow /bin/sh
// rules; the result feeds straight into Parse.
func SplitLine(line string) ([]string, error) {
	return shellquote.Split(line)
}
