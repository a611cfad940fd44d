// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the keys under which middleware stores per-request values.
// Read them through ctxutil rather than directly.
package ctxkey

// key is unexported so values set here cannot be read or overwritten with a plain string key.
type key string

const (
	// KeyRequestID holds the X-Request-ID of the current request.
	KeyRequestID key = "request_id"

	// KeyUser holds the *sec.AuthClaims of a signed-in editor or admin.
	KeyUser key = "auth_user"

	// KeyLogger holds the request-scoped *slog.Logger.
	KeyLogger key = "logger"
)
