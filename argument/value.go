// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argument

// SingleValue - container holding at most one value
//
// Store overwrites, so repeated occurrences keep the last one.
type SingleValue[T any] struct {
	value T
	set   bool
}

// Store - overwrite the current value
func (s *SingleValue[T]) Store(v T) {
	s.value = v
	s.set = true
}

// Get - current value and whether one was ever stored
func (s *SingleValue[T]) Get() (T, bool) {
	return s.value, s.set
}

// GetOr - current value, or the supplied default when empty
func (s *SingleValue[T]) GetOr(def T) T {
	if !s.set {
		return def
	}
	return s.value
}

// IsSet - check if a value was stored
func (s *SingleValue[T]) IsSet() bool {
	return s.set
}

// MultiValue - container accumulating values in arrival order
type MultiValue[T any] struct {
	values []T
}

// Store - append, never overwrite
func (m *MultiValue[T]) Store(v T) {
	m.values = append(m.values, v)
}

// Values - copy of the accumulated values in arrival order
func (m *MultiValue[T]) Values() []T {
	values := make([]T, len(m.values))
	copy(values, m.values)
	return values
}

// Count - number of accumulated values
func (m *MultiValue[T]) Count() int {
	return len(m.values)
}
