// Copyright (c) 2026 Folio. All rights reserved.

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "endpoint", "alice", false},
		{"empty_string", "endpoint", "", true},
		{"whitespace_only", "endpoint", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Endpoint covers the URL-safe endpoint rule.
*/
func TestValidator_Endpoint(t *testing.T) {
	tests := []struct {
		value   string
		isValid bool
	}{
		{"alice", true},
		{"Alice_Dev-2", true},
		{"9lives", true},
		{"-leading", false},
		{"has space", false},
		{"slash/inside", false},
		{"", false},
		{strings.Repeat("a", validate.MaxEndpointLen), true},
		{strings.Repeat("a", validate.MaxEndpointLen+1), false},
	}

	for _, tt := range tests {
		v := &validate.Validator{}
		v.Endpoint("endpoint", tt.value)
		assert.Equal(t, !tt.isValid, v.HasErrors(), "value %q", tt.value)
	}
}

func TestValidator_URL(t *testing.T) {
	valid := []string{"https://example.com/a.png", "http://cdn.test/x", "/api/v1/uploads/a.png"}
	invalid := []string{"ftp://example.com", "example.com", "//evil.test/x", "https://"}

	for _, value := range valid {
		v := &validate.Validator{}
		assert.False(t, v.URL("bannerUrl", value).HasErrors(), value)
	}
	for _, value := range invalid {
		v := &validate.Validator{}
		assert.True(t, v.URL("bannerUrl", value).HasErrors(), value)
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("endpoint", "").       // Fails
		NonNegative("age", -1).         // Fails
		Email("email", "not-an-email"). // Fails
		Range("slot", 2, 1, 3).
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Len(t, ae.Details, 3)
}
