// Copyright (c) 2026 Folio. All rights reserved.

package blob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioworks/folio/pkg/blob"
)

func TestStrings(t *testing.T) {
	assert.Equal(t, []string{"go", "sql"}, blob.Strings(`["go","sql"]`))
	assert.Equal(t, []string{}, blob.Strings(""))
	assert.Equal(t, []string{}, blob.Strings("null"))
	assert.Equal(t, []string{}, blob.Strings(`{"a":1}`))
	assert.Equal(t, []string{}, blob.Strings(`[1,2]`))
	assert.Equal(t, []string{}, blob.Strings(`["unterminated`))
}

func TestDecode(t *testing.T) {
	type contacts struct {
		Email string `json:"email"`
	}

	var target contacts
	assert.True(t, blob.Decode(`{"email":"a@x.com"}`, &target))
	assert.Equal(t, "a@x.com", target.Email)

	kept := contacts{Email: "keep@x.com"}
	assert.False(t, blob.Decode(`{"email":`, &kept))
	assert.Equal(t, "keep@x.com", kept.Email)
}

func TestEncode(t *testing.T) {
	encoded, err := blob.Encode([]string(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	encoded, err = blob.Encode([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, encoded)
}
