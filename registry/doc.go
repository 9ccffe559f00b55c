// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the argument specification registry
//
// A registry owns the declared options and parameters for one program:
// the short-name and long-name lookup maps used by the parser, the
// insertion-ordered catalogue used by the usage formatter, and the
// registration-time invariants:
//
//   1. no option name may be empty
//   2. a flag's on and off name sets must be disjoint
//   3. redeclaring a literal name replaces the lookup mapping
//      (deliberate override, last registration wins)
//   4. at most one multi-valued parameter, and it must be last
//   5. a required parameter cannot follow an optional one
//
// A violation is a programming defect and panics with a
// fault.SpecificationError at the declaration call.
//
// Because methods cannot carry type parameters the declaration
// operations are package functions taking the registry as the first
// argument, e.g. registry.Option[int](r, ...).
//
// Note: declare everything before the first parse; the registry is not
//       thread safe and has no teardown.
package registry
