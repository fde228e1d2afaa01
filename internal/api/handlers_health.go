// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/wellbore/internal/logging"
)

// healthCheckTimeout bounds the database ping so a hung store cannot hold
// the health endpoint open.
const healthCheckTimeout = 5 * time.Second

// HealthStatus is the /health response body.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Health reports whether the database answers. The first call also creates
// the connection pool.
//
// @Summary Database health check
// @Description Pings the database with a 5 second timeout. The first call also creates the connection pool.
// @Tags Core
// @Produce json
// @Success 200 {object} HealthStatus "Database reachable"
// @Failure 503 {object} HealthStatus "Database unreachable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check failed")
		respondJSON(w, http.StatusServiceUnavailable, HealthStatus{
			Status:    "unhealthy",
			Timestamp: h.now().UTC(),
			Error:     err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthStatus{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Database:  "connected",
	})
}
