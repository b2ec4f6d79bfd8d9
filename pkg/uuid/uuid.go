// Copyright (c) 2026 Folio. All rights reserved.

/*
Package uuid generates time-ordered identifiers (UUID version 7).

Upload object names and request ids use them so listings sort by creation time.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only when the system entropy source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}
	return id.String()
}
