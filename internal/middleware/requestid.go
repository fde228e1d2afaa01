// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/wellbore/internal/logging"
)

const (
	// RequestIDHeader carries the per-request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// CorrelationIDHeader lets a caller tie several requests together.
	CorrelationIDHeader = "X-Correlation-ID"
)

// maxInboundIDLength bounds IDs accepted from clients.
const maxInboundIDLength = 128

// RequestID assigns each request an ID, reusing one sent by an upstream
// proxy, and stores it with a correlation ID in the logging context. The
// ID is echoed in the response header. One access log line is written per
// request when it completes.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := inboundID(r.Header.Get(RequestIDHeader))
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		correlationID := inboundID(r.Header.Get(CorrelationIDHeader))
		if correlationID == "" {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r.WithContext(ctx))

		event := logging.Ctx(ctx).Info()
		if rec.status >= http.StatusInternalServerError {
			event = logging.Ctx(ctx).Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", logging.SanitizeValue(r.URL.Path)).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request completed")
	})
}

// inboundID accepts a client-supplied ID only when it is short and free of
// control characters.
func inboundID(id string) string {
	if id == "" || len(id) > maxInboundIDLength || logging.SanitizeValue(id) != id {
		return ""
	}
	return id
}

// GetRequestID extracts the request ID from an incoming request.
func GetRequestID(r *http.Request) string {
	return logging.RequestIDFromContext(r.Context())
}
