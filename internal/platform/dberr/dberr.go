// Copyright (c) 2026 Folio. All rights reserved.

// Package dberr translates pgx errors into application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/folioworks/folio/internal/platform/apperr"
)

const uniqueViolation = "23505"

// Wrap classifies a database error. Application errors pass through and
// anything else becomes Internal with the action recorded in the cause.
// Lookups that can miss a row use [WrapNotFound].
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.As(err) != nil {
		return err
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// WrapNotFound is [Wrap] that maps a missing row to the domain's notFound.
func WrapNotFound(err error, action string, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return Wrap(err, action)
}

// UniqueConstraint reports the constraint name of a unique violation.
//
// Unique violations are not mapped by [Wrap] because only the store knows
// which constraint means what.
//
// Example:
//
//	if name, ok := dberr.UniqueConstraint(err); ok && name == schema.Developers.EndpointKey { ... }
func UniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// IsUniqueViolation reports whether err is a Postgres unique violation.
func IsUniqueViolation(err error) bool {
	_, ok := UniqueConstraint(err)
	return ok
}
