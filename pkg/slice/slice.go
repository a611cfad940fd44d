// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with generic
transforms whose results are always non-nil, so they encode as JSON arrays.
*/
package slice

// Map applies transform to every element. A nil input yields an empty slice.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter keeps the elements for which predicate returns true.
// A nil input yields an empty slice.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(input))
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FilterMap transforms every element and keeps those for which transform reports ok.
func FilterMap[T any, U any](input []T, transform func(T) (U, bool)) []U {
	result := make([]U, 0, len(input))
	for _, v := range input {
		if u, ok := transform(v); ok {
			result = append(result, u)
		}
	}
	return result
}
