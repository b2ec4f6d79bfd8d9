// Copyright (c) 2026 Folio. All rights reserved.

/*
Package pointer provides generic helpers for optional (pointer) fields, used
heavily by the partial-update patch types.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

