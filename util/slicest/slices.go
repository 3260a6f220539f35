// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers.
package slicest

// Map returns fn applied to every element of s.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U { return fn(t) })
}

// MapI is Map with the element index passed to fn.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(i, t)
	}
	return result
}

// Filter returns a new slice with the elements of s for which keep is true,
// in their original order.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var result S
	for _, t := range s {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// ReduceD reduces slice S to type U using explicit initial value.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}
