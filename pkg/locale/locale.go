// Copyright (c) 2026 Folio. All rights reserved.

/*
Package locale implements localized text records and the rules that reduce a
record to a single display string for a requested locale.

A [Text] maps locale codes ("en", "ru", legacy "en-EN", "ru-RU") to strings.
Key order is the order in which keys were first written (JSON document order
when decoded), which makes the "first matching key" fallbacks deterministic.

Resolution order (first match wins):

 1. Base code of the requested locale ("en-US" -> "en").
 2. The requested locale verbatim (legacy keys such as "en-EN").
 3. Legacy regional keys for the base code ("en-EN", "en-US", "en-GB" / "ru-RU").
 4. First key whose lowercase form starts with the lowercase base code.
 5. "en", then "en-EN".
 6. First value in key order.
 7. Empty string for an empty record.
*/
package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// # Locale Codes

const (
	English = "en"
	Russian = "ru"

	// LegacyEnglish is the pre-migration English key still present in stored data.
	LegacyEnglish = "en-EN"
)

// regionalFallbacks lists legacy regional keys tried for a base code, in order.
var regionalFallbacks = map[string][]string{
	English: {"en-EN", "en-US", "en-GB"},
	Russian: {"ru-RU"},
}

// Base returns the base language code of a locale by cutting at the first dash.
//
// Example:
//
//	locale.Base("en-US") // "en"
func Base(requested string) string {
	base, _, _ := strings.Cut(requested, "-")
	return base
}

// # Localized Text

// Text is an insertion-ordered mapping of locale code to display string.
//
// The zero value is an empty record ready for use. Empty strings are never
// stored: setting a key to "" removes it.
type Text struct {
	keys   []string
	values map[string]string
}

// NewText builds a [Text] from alternating key/value pairs.
//
// Example:
//
//	locale.NewText("en", "Hello", "ru", "Привет")
func NewText(pairs ...string) Text {
	var text Text
	for i := 0; i+1 < len(pairs); i += 2 {
		text.Set(pairs[i], pairs[i+1])
	}
	return text
}

// Get returns the value stored under key.
func (t Text) Get(key string) (string, bool) {
	value, ok := t.values[key]
	return value, ok
}

// Set stores value under key, keeping the original position of an existing key.
func (t *Text) Set(key, value string) {
	if value == "" {
		t.Delete(key)
		return
	}

	if t.values == nil {
		t.values = make(map[string]string)
	}

	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Delete removes key from the record.
func (t *Text) Delete(key string) {
	if _, exists := t.values[key]; !exists {
		return
	}

	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i:i], t.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the locale codes in insertion order.
func (t Text) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len reports the number of translations.
func (t Text) Len() int { return len(t.keys) }

// IsEmpty reports whether the record holds no translations.
func (t Text) IsEmpty() bool { return len(t.keys) == 0 }

// Clone returns an independent copy.
func (t Text) Clone() Text {
	var out Text
	for _, k := range t.keys {
		out.Set(k, t.values[k])
	}
	return out
}

// Merge returns a copy of t with every key of patch added or overwritten.
// Keys absent from patch are retained.
func (t Text) Merge(patch Text) Text {
	out := t.Clone()
	for _, k := range patch.keys {
		out.Set(k, patch.values[k])
	}
	return out
}

// Map returns the translations as a plain map (order is lost).
func (t Text) Map() map[string]string {
	out := make(map[string]string, len(t.keys))
	for _, k := range t.keys {
		out[k] = t.values[k]
	}
	return out
}

// Resolve reduces the record to a single string for the requested locale.
func (t Text) Resolve(requested string) string {
	return Resolve(t, requested)
}

// # Resolution

// Resolve applies the fallback chain documented on the package.
func Resolve(record Text, requested string) string {
	if record.IsEmpty() {
		return ""
	}

	base := Base(requested)

	if value, ok := record.Get(base); ok {
		return value
	}

	if value, ok := record.Get(requested); ok {
		return value
	}

	for _, key := range regionalFallbacks[base] {
		if value, ok := record.Get(key); ok {
			return value
		}
	}

	if base != "" {
		prefix := strings.ToLower(base)
		for _, key := range record.keys {
			if strings.HasPrefix(strings.ToLower(key), prefix) {
				return record.values[key]
			}
		}
	}

	for _, key := range []string{English, LegacyEnglish} {
		if value, ok := record.Get(key); ok {
			return value
		}
	}

	return record.values[record.keys[0]]
}

// # Serialization

// MarshalJSON encodes the record as a JSON object in key order.
func (t Text) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')

	for i, key := range t.keys {
		if i > 0 {
			buffer.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		encodedValue, err := json.Marshal(t.values[key])
		if err != nil {
			return nil, err
		}

		buffer.Write(encodedKey)
		buffer.WriteByte(':')
		buffer.Write(encodedValue)
	}

	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of strings, keeping document order.
// A JSON null decodes to an empty record.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))

	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("locale: expected object, got %v", token)
	}

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("locale: %w", err)
		}
		key, _ := keyToken.(string)

		var value string
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("locale: value for %q must be a string", key)
		}
		t.Set(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("locale: %w", err)
	}

	return nil
}

// ParseBlob decodes a stored JSON blob. Missing or malformed blobs yield an
// empty record rather than an error.
func ParseBlob(blob string) Text {
	var text Text
	if strings.TrimSpace(blob) == "" {
		return text
	}
	if err := json.Unmarshal([]byte(blob), &text); err != nil {
		return Text{}
	}
	return text
}

// Blob encodes the record for storage.
func (t Text) Blob() string {
	encoded, _ := t.MarshalJSON()
	return string(encoded)
}
