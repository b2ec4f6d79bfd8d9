// Copyright (c) 2026 Folio. All rights reserved.

/*
Package flag resolves free-form country and language names to flag codes.

The vocabulary is data, not code: it is read from a YAML table (see
default.yaml, embedded as the fallback).

Country normalization, first match wins:

 1. The trimmed, lowercased input is a country key ("russia").
 2. It is an alias ("ru", "gb").
 3. The accent-folded letters-and-digits form is a key or an alias ("U.S.A." -> "usa").
 4. Otherwise [Unknown].
*/
package flag

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/folioworks/folio/pkg/slug"
)

// Unknown is the placeholder code for unresolvable input.
const Unknown = "unknown"

//go:embed default.yaml
var defaultTable []byte

// Table is the flag vocabulary.
type Table struct {
	// Countries maps internal country keys to ISO alpha-2 codes.
	Countries map[string]string `yaml:"countries"`
	// Aliases maps alternative spellings (ISO codes) to country keys.
	Aliases map[string]string `yaml:"aliases"`
	// Languages maps language display names to ISO alpha-2 codes.
	Languages map[string]string `yaml:"languages"`
}

// Default returns the built-in table.
func Default() *Table {
	table, err := Parse(defaultTable)
	if err != nil {
		panic("flag: embedded table is invalid: " + err.Error())
	}
	return table
}

// Load reads a table from path. An empty path returns [Default].
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flag: failed to read table: %w", err)
	}

	table, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("flag: %s: %w", path, err)
	}
	return table, nil
}

// Parse decodes and validates a YAML table.
func Parse(raw []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("failed to parse table: %w", err)
	}

	table.normalize()

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks that every alias points at a known country.
// It expects a normalized table.
func (t *Table) Validate() error {
	if len(t.Countries) == 0 {
		return errors.New("table has no countries")
	}

	var errs []error
	for alias, key := range t.Aliases {
		if _, ok := t.Countries[key]; !ok {
			errs = append(errs, fmt.Errorf("alias %q points at unknown country %q", alias, key))
		}
	}
	return errors.Join(errs...)
}

// normalize lowercases country keys and aliases so lookups are case-insensitive.
func (t *Table) normalize() {
	countries := make(map[string]string, len(t.Countries))
	for key, code := range t.Countries {
		countries[strings.ToLower(key)] = strings.ToUpper(code)
	}
	t.Countries = countries

	aliases := make(map[string]string, len(t.Aliases))
	for alias, key := range t.Aliases {
		aliases[strings.ToLower(alias)] = strings.ToLower(key)
	}
	t.Aliases = aliases
}

// CountryKey normalizes free-form input to an internal country key.
// It returns "" when nothing matches.
func (t *Table) CountryKey(input string) string {
	value := strings.ToLower(strings.TrimSpace(input))
	if value == "" {
		return ""
	}

	if key := t.lookup(value); key != "" {
		return key
	}

	return t.lookup(slug.Compact(value))
}

func (t *Table) lookup(value string) string {
	if _, ok := t.Countries[value]; ok {
		return value
	}
	if key, ok := t.Aliases[value]; ok {
		return key
	}
	return ""
}

// Country returns the flag code for a free-form country, or [Unknown].
func (t *Table) Country(input string) string {
	key := t.CountryKey(input)
	if key == "" {
		return Unknown
	}
	return t.Countries[key]
}

// Language returns the flag code for a language name, or [Unknown].
// The exact name wins; a case-insensitive match is tried next.
func (t *Table) Language(name string) string {
	name = strings.TrimSpace(name)
	if code, ok := t.Languages[name]; ok {
		return code
	}
	for known, code := range t.Languages {
		if strings.EqualFold(known, name) {
			return code
		}
	}
	return Unknown
}

// LanguageFlags maps each name to its flag code, keeping input order.
func (t *Table) LanguageFlags(names []string) []LanguageFlag {
	flags := make([]LanguageFlag, 0, len(names))
	for _, name := range names {
		flags = append(flags, LanguageFlag{Language: name, Flag: t.Language(name)})
	}
	return flags
}

// LanguageFlag pairs a spoken language with its flag code.
type LanguageFlag struct {
	Language string `json:"language"`
	Flag     string `json:"flag"`
}
