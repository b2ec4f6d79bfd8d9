// Copyright (c) 2026 Folio. All rights reserved.

package flag_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioworks/folio/internal/core/flag"
)

/*
TestTable_Country walks each normalization step.
*/
func TestTable_Country(t *testing.T) {
	table := flag.Default()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"exact_key", "russia", "RU"},
		{"exact_key_any_case", "  Germany ", "DE"},
		{"iso_alias", "ru", "RU"},
		{"gb_alias_to_uk", "GB", "GB"},
		{"uk_key", "uk", "GB"},
		{"stripped_key", "U.S.A.", "US"},
		{"stripped_alias", "k-z", "KZ"},
		{"accent_folded", "Brazil!", "BR"},
		{"unknown", "Atlantis", flag.Unknown},
		{"empty", "", flag.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Country(tt.input))
		})
	}
}

func TestTable_Language(t *testing.T) {
	table := flag.Default()

	assert.Equal(t, "GB", table.Language("English"))
	assert.Equal(t, "RU", table.Language("russian"))
	assert.Equal(t, flag.Unknown, table.Language("Klingon"))

	flags := table.LanguageFlags([]string{"Japanese", "Esperanto"})
	assert.Equal(t, []flag.LanguageFlag{
		{Language: "Japanese", Flag: "JP"},
		{Language: "Esperanto", Flag: flag.Unknown},
	}, flags)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	custom := filepath.Join(dir, "flags.yaml")
	require.NoError(t, os.WriteFile(custom, []byte(`
countries:
  kyrgyzstan: kg
aliases:
  KG: Kyrgyzstan
languages:
  Kyrgyz: KG
`), 0o600))

	table, err := flag.Load(custom)
	require.NoError(t, err)
	assert.Equal(t, "KG", table.Country("kg"))
	assert.Equal(t, flag.Unknown, table.Country("russia"))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("countries:\n  a: A\naliases:\n  b: nowhere\n"), 0o600))
	_, err = flag.Load(broken)
	assert.Error(t, err)

	table, err = flag.Load("")
	require.NoError(t, err)
	assert.Equal(t, "UA", table.Country("ua"))
}
