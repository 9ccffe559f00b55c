// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides typed error classes so that callers can detect the kind of
// failure without having to resort to partial string matches.
//
// The classes are:
//   SpecificationError - a declaration operation was misused; this is a
//                        programming defect and is raised as a panic at
//                        the point of declaration
//   ConversionError    - a converter rejected a raw token; always caught
//                        by the parser and folded into a UsageError
//   UsageError         - the only error that crosses the parse boundary;
//                        its text is the diagnostic followed by the full
//                        usage message
package fault
