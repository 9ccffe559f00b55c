// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package argument - typed command-line argument declarations
//
// An argument combines a value container, a converter and the identity
// data used for lookup and usage rendering.  The concrete kinds are:
//
//   SingleValueOption  - named, one value, overwrite semantics
//   MultiValueOption   - named, each occurrence appends
//   FlagOption         - named, value-less, toggled by on/off name sets
//   SingleValueParameter - positional, exactly one token
//   MultiValueParameter  - positional, all remaining tokens
//
// Note: a declaration is built once, before parsing starts, and its
//       container is only mutated by a parse.  Nothing here is thread
//       safe; callers must serialise access.
package argument
