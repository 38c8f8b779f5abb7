// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers used by the TUI.
package slicest

// Map applies fn to every element of s.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U { return fn(t) })
}

// MapI applies fn to every element of s.
// - I: Provides index to callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

// Filter returns the elements of s for which keep returns true.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var result S
	for _, v := range s {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
