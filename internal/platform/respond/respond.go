// Copyright (c) 2026 Folio. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// Every success body is wrapped as {"data": ...}; every error body is
// {"error", "code", "details"}.
package respond

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/internal/platform/ctxutil"
)

// SuccessEnvelope is the JSON envelope for successful responses.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes a 201 Created response with data wrapped in the success envelope.
func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Stream copies a binary body with the given content type.
func Stream(writer http.ResponseWriter, request *http.Request, contentType string, body io.Reader) {
	if contentType != "" {
		writer.Header().Set("Content-Type", contentType)
	}
	writer.Header().Set("Cache-Control", "public, max-age=300")
	writer.WriteHeader(http.StatusOK)

	if _, err := io.Copy(writer, body); err != nil {
		ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "stream_interrupted",
			slog.String("error", err.Error()),
		)
	}
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	// 5xx responses indicate server-side issues; the cause never leaves the process
	if appError.HTTPStatus >= 500 {
		attrs := []any{
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		}
		if appError.Cause != nil {
			attrs = append(attrs, slog.String("cause", appError.Cause.Error()))
		}
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "api_server_error", attrs...)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
