// Copyright (c) 2026 Folio. All rights reserved.

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "get_developer"))

	noRows := dberr.Wrap(fmt.Errorf("query: %w", pgx.ErrNoRows), "get_developer")
	assert.True(t, apperr.HasCode(noRows, apperr.CodeInternal))

	conflict := apperr.Conflict("taken")
	assert.Same(t, conflict, dberr.Wrap(conflict, "create_developer"))

	internal := dberr.Wrap(errors.New("connection reset"), "list_developers")
	require.True(t, apperr.HasCode(internal, apperr.CodeInternal))
	assert.Contains(t, apperr.As(internal).Cause.Error(), "list_developers")
}

func TestWrapNotFound(t *testing.T) {
	missing := apperr.NotFound("Developer")
	assert.Same(t, missing, dberr.WrapNotFound(fmt.Errorf("scan: %w", pgx.ErrNoRows), "get_developer", missing))
	assert.NoError(t, dberr.WrapNotFound(nil, "get_developer", missing))

	internal := dberr.WrapNotFound(errors.New("connection reset"), "get_developer", missing)
	assert.True(t, apperr.HasCode(internal, apperr.CodeInternal))
}

func TestUniqueConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "developers_endpoint_key"}

	name, ok := dberr.UniqueConstraint(fmt.Errorf("insert: %w", pgErr))
	assert.True(t, ok)
	assert.Equal(t, "developers_endpoint_key", name)

	_, ok = dberr.UniqueConstraint(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	assert.False(t, dberr.IsUniqueViolation(errors.New("plain")))
	assert.True(t, dberr.IsUniqueViolation(pgErr))
}
