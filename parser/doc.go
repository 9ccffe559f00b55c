// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package parser - the command-line parsing state machine
//
// Consumes a token sequence (the argument vector without the program
// name) against a registry.  Token forms:
//   -x          - single short option
//   -xREST      - inline value for a value-bearing x, otherwise x is a
//                 flag and REST is re-injected as "-REST" (clustering)
//   --name      - long option; a value-bearing one takes the next token
//   --          - ends option scanning, the rest is positional
//   anything else ends option scanning and starts parameter matching
//
// Every failure is returned as a fault.UsageError carrying the specific
// diagnostic followed by the full usage text; converter rejections are
// caught here and surfaced the same way.
//
// Note: a parse mutates the value containers held by the registry's
//       declarations, and repeated parses against the same registry
//       keep accumulating into multi-value containers.
package parser
