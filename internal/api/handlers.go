// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"time"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files by resource:
//   - handlers_health.go: GET /health
//   - handlers_production.go: /production and /wells
//   - handlers_rigs.go: /rigs
//   - handlers_wells_down.go: /wells-down
//   - handlers_workovers.go: /workovers
//   - handlers_workover_updates.go: /workover-updates
type Handler struct {
	store Store
	now   func() time.Time
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithHandlerClock replaces time.Now for response timestamps.
func WithHandlerClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates the API handler over store.
//
// Example:
//
//	store := database.NewStore(database.NewPoolManager(cfg.Database))
//	handler := api.NewHandler(store)
//	srv := &http.Server{Handler: api.NewRouter(handler, cfg.Security)}
func NewHandler(store Store, opts ...HandlerOption) *Handler {
	h := &Handler{store: store, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
