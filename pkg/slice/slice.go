// Copyright (c) 2026 Folio. All rights reserved.

/*
Package slice complements the standard [slices] package with small generic
helpers used when building views and relations.
*/
package slice

// Map transforms every element of input. A nil input yields a nil result.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements for which predicate is true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Clone returns a copy of input that never aliases it. A nil input stays nil.
func Clone[T any](input []T) []T {
	if input == nil {
		return nil
	}
	return append(make([]T, 0, len(input)), input...)
}

// OrEmpty returns input, or an empty non-nil slice when input is nil, so JSON
// encodes [] instead of null.
func OrEmpty[T any](input []T) []T {
	if input == nil {
		return []T{}
	}
	return input
}
