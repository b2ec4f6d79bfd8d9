// Copyright (c) 2026 Folio. All rights reserved.

package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/internal/platform/constants"
	"github.com/folioworks/folio/internal/platform/ctxutil"
	"github.com/folioworks/folio/internal/platform/respond"
)

var bearerPrefix = regexp.MustCompile(`(?i)^Bearer\s+`)

// PresentedKey extracts the write credential from a request.
//
// X-API-Key wins over Authorization. A leading "Bearer " (any case) is
// stripped and surrounding whitespace trimmed.
func PresentedKey(request *http.Request) string {
	raw := request.Header.Get(constants.HeaderAPIKey)
	if raw == "" {
		raw = request.Header.Get(constants.HeaderAuthorization)
	}
	return strings.TrimSpace(bearerPrefix.ReplaceAllString(strings.TrimSpace(raw), ""))
}

// RequireAPIKey gates a route behind the static write credential.
//
// # Flow
//  1. An unset server key fails every request with 500.
//  2. A missing or different key fails with 401.
//  3. Otherwise the context is marked as a writer and the request proceeds.
//
// The comparison is exact and case-sensitive.
func RequireAPIKey(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if expected == "" {
				respond.Error(writer, request, apperr.Misconfigured("API key is not configured on the server"))
				return
			}

			presented := PresentedKey(request)
			if presented == "" {
				respond.Error(writer, request, apperr.Unauthorized("API key required"))
				return
			}

			if presented != expected {
				respond.Error(writer, request, apperr.Unauthorized("Invalid API key"))
				return
			}

			markWriter(request.Context())
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithWriter(request.Context())))
		})
	}
}
