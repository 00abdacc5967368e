// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers: request
logging, JSON response and body-parsing helpers, and CORS handling
for the single-page portal.

	mux.HandleFunc("POST /session/login", middleware.WithLogging(h.Login))

ErrorResponse renders the shared models.ErrorResponse envelope with the
standard status text plus a caller-supplied message.
*/
package middleware
