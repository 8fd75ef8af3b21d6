// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps a handler and logs request start/completion with a
generated request_id and duration:

	mux.HandleFunc("POST /nights", middleware.WithLogging(h.CreateNight))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Movie night not found")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse uses the shared models.ErrorResponse shape (error, message).

# CORS

CORS reflects the request origin and handles OPTIONS preflight; the
frontend is served from a different origin in both dev and production.

# Client IP

GetClientIP resolves the caller address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr.
*/
package middleware
