// Copyright (c) 2026 Folio. All rights reserved.

// Package ctxkey defines typed context keys used by middleware and handlers.
package ctxkey

// key is unexported so values stored under it cannot collide with other packages.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyWriter marks a request that presented a valid write credential.
	KeyWriter key = "writer"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
