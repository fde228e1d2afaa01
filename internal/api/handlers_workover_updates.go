// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"net/http"

	"github.com/tomtom215/wellbore/internal/models"
	"github.com/tomtom215/wellbore/internal/validation"
)

const (
	msgWorkoverIDRequired = "workover_id is required"
	msgUpdateIDRequired   = "update_id query parameter is required"
)

// ListWorkoverUpdates handles GET /workover-updates. With ?workover_id it
// returns that workover's updates and their total; without, every update
// joined with its workover's well and rig.
//
// @Summary List workover cost updates
// @Description With workover_id, that workover's updates and their total. Without, every update joined with its workover.
// @Tags Workover Updates
// @Produce json
// @Param workover_id query int false "Workover ID; the response is then a models.WorkoverCostSummary"
// @Success 200 {array} models.WorkoverUpdateWithWorkover "Without workover_id"
// @Failure 400 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /workover-updates [get]
func (h *Handler) ListWorkoverUpdates(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("workover_id"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid workover_id")
			return
		}
		summary, err := h.store.WorkoverCostSummary(r.Context(), id)
		if err != nil {
			respondStoreError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
		return
	}

	rows, err := h.store.ListWorkoverUpdates(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// CreateWorkoverUpdate handles POST /workover-updates. The workover id may
// come from the query string, which wins, or the body.
//
// @Summary Add a workover cost update
// @Description Inserts the update and recomputes the workover's final cost in one transaction.
// @Tags Workover Updates
// @Accept json
// @Produce json
// @Param workover_id query int false "Workover ID; overrides the body"
// @Param update body models.CreateWorkoverUpdateRequest true "Update"
// @Success 201 {object} models.WorkoverUpdateCreated
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /workover-updates [post]
func (h *Handler) CreateWorkoverUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWorkoverUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var workoverID int64
	if raw := r.URL.Query().Get("workover_id"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid workover_id")
			return
		}
		workoverID = id
	} else if req.WorkoverID != nil && *req.WorkoverID != 0 {
		workoverID = *req.WorkoverID
	}
	if workoverID == 0 {
		respondValidation(w, validation.NewRequestValidationError(msgWorkoverIDRequired, "workover_id"))
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidation(w, verr)
		return
	}

	created, err := h.store.CreateWorkoverUpdate(r.Context(), workoverID, req)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// DeleteWorkoverUpdate handles DELETE /workover-updates?update_id=N.
//
// @Summary Delete a workover cost update
// @Description Recomputes the owning workover's final cost.
// @Tags Workover Updates
// @Produce json
// @Param update_id query int true "Update ID"
// @Success 200 {object} successBody
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /workover-updates [delete]
func (h *Handler) DeleteWorkoverUpdate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("update_id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, msgUpdateIDRequired)
		return
	}
	id, ok := parseID(raw)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid update_id")
		return
	}
	if err := h.store.DeleteWorkoverUpdate(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondDeleted(w, "Update deleted")
}
