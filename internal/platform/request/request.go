// Copyright (c) 2026 Folio. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction and the body decoding pattern so
handlers report malformed input the same way.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/folioworks/folio/internal/platform/constants"
	"github.com/folioworks/folio/internal/platform/validate"
)

// maxJSONBody bounds JSON request bodies. Article content is the largest payload.
const maxJSONBody = 2 << 20

/*
DecodeJSON reads the request body and decodes it into target.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, maxJSONBody)

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	// Trailing garbage after the object is rejected as well
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}

	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Lang returns the requested display locale, or "" when the caller asked for raw
localized records.
*/
func Lang(request *http.Request) string {
	return strings.TrimSpace(request.URL.Query().Get(constants.QueryLang))
}
