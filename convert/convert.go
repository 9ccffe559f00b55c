// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package convert

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/bjornharrtell/argot/argument"
	"github.com/bjornharrtell/argot/fault"
)

// build the standard rejection message
func invalid(arg argument.Argument, value string, kind string) error {
	return fault.ConversionError(fmt.Sprintf("%s: %q is not a valid %s", arg.DisplayName(), value, kind))
}

func signed(value string, arg argument.Argument, bitSize int, kind string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, bitSize)
	if nil != err {
		return 0, invalid(arg, value, kind)
	}
	return n, nil
}

// Int - signed integer at the platform width
func Int(value string, arg argument.Argument) (int, error) {
	n, err := signed(value, arg, strconv.IntSize, "integer")
	return int(n), err
}

// Int8 - signed 8 bit integer
func Int8(value string, arg argument.Argument) (int8, error) {
	n, err := signed(value, arg, 8, "8-bit integer")
	return int8(n), err
}

// Int16 - signed 16 bit integer
func Int16(value string, arg argument.Argument) (int16, error) {
	n, err := signed(value, arg, 16, "16-bit integer")
	return int16(n), err
}

// Int32 - signed 32 bit integer
func Int32(value string, arg argument.Argument) (int32, error) {
	n, err := signed(value, arg, 32, "32-bit integer")
	return int32(n), err
}

// Int64 - signed 64 bit integer
func Int64(value string, arg argument.Argument) (int64, error) {
	return signed(value, arg, 64, "64-bit integer")
}

// Float32 - 32 bit floating point
func Float32(value string, arg argument.Argument) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	if nil != err {
		return 0, invalid(arg, value, "32-bit floating point number")
	}
	return float32(f), nil
}

// Float64 - 64 bit floating point
func Float64(value string, arg argument.Argument) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if nil != err {
		return 0, invalid(arg, value, "64-bit floating point number")
	}
	return f, nil
}

// Char - exactly one character
func Char(value string, arg argument.Argument) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if utf8.RuneError == r && size <= 1 || size != len(value) {
		return 0, invalid(arg, value, "single character")
	}
	return r, nil
}

// Byte - unsigned integer restricted to 0..255
func Byte(value string, arg argument.Argument) (byte, error) {
	n, err := strconv.ParseUint(value, 10, 8)
	if nil != err {
		return 0, invalid(arg, value, "byte (0..255)")
	}
	return byte(n), nil
}

// String - identity pass-through, never fails
func String(value string, arg argument.Argument) (string, error) {
	return value, nil
}

// Bool - pass-through for flag toggles, never fails
func Bool(on bool, arg argument.Argument) (bool, error) {
	return on, nil
}
