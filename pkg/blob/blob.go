// Copyright (c) 2026 Folio. All rights reserved.

/*
Package blob encodes and decodes the JSON text columns used for structured
fields (arrays, nested objects).

Decoding never fails: a missing or malformed blob yields the zero value, so a
single corrupt row cannot break a listing.
*/
package blob

import (
	"encoding/json"
	"strings"
)

// Strings decodes a JSON array of strings. Non-string elements make the whole
// blob invalid.
func Strings(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil || values == nil {
		return []string{}
	}
	return values
}

// Decode fills target from raw and reports whether the blob was usable.
// target is left untouched on failure.
func Decode[T any](raw string, target *T) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}

	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return false
	}
	*target = decoded
	return true
}

// Encode marshals value for storage. Nil slices are stored as "[]".
func Encode(value any) (string, error) {
	if values, ok := value.([]string); ok && values == nil {
		return "[]", nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
