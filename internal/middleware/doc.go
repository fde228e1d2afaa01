// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: per-request and correlation IDs carried in the logging
    context, echoed in X-Request-ID, plus one access log line per request
  - Prometheus Metrics: request count, latency and in-flight gauge labelled
    by chi route pattern

Both take and return http.Handler and are installed with chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Access the request ID in a handler:

	func handler(w http.ResponseWriter, r *http.Request) {
	    logging.Ctx(r.Context()).Info().Msg("Processing request")
	    id := middleware.GetRequestID(r)
	    ...
	}

See Also:

  - internal/api: router and handlers wrapped by these middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
