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

const msgWorkoverMissingFields = "Missing required fields: well, rig, reason"

// ListWorkovers handles GET /workovers.
//
// @Summary List workovers
// @Description Newest start date first.
// @Tags Workovers
// @Produce json
// @Success 200 {array} models.Workover
// @Failure 500 {object} errorBody
// @Router /workovers [get]
func (h *Handler) ListWorkovers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListWorkovers(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// CreateWorkover handles POST /workovers.
//
// @Summary Create a workover
// @Description Well, rig and reason are required. The work-order number is assigned by the server.
// @Tags Workovers
// @Accept json
// @Produce json
// @Param workover body models.CreateWorkoverRequest true "Workover"
// @Success 201 {object} models.Workover
// @Failure 400 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /workovers [post]
func (h *Handler) CreateWorkover(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWorkoverRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		respondValidation(w, validation.NewRequestValidationError(msgWorkoverMissingFields, missing...))
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidation(w, verr)
		return
	}

	wo, err := h.store.CreateWorkover(r.Context(), req)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, wo)
}

// PatchWorkover handles PATCH /workovers/{id}. A status of "completed" in
// any case stamps the completion date.
//
// @Summary Update a workover
// @Description Partial update. Status Completed stamps the completion date.
// @Tags Workovers
// @Accept json
// @Produce json
// @Param id path int true "Workover ID"
// @Param patch body models.WorkoverPatch true "Fields to update"
// @Success 200 {object} models.Workover
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /workovers/{id} [patch]
func (h *Handler) PatchWorkover(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	var patch models.WorkoverPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch.Empty() {
		respondError(w, http.StatusBadRequest, msgNoFields)
		return
	}
	if verr := validation.ValidateStruct(&patch); verr != nil {
		respondValidation(w, verr)
		return
	}

	wo, err := h.store.PatchWorkover(r.Context(), id, patch)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wo)
}

// DeleteWorkover handles DELETE /workovers/{id}. The workover's cost
// updates are left in place.
//
// @Summary Delete a workover
// @Description Cost updates of the workover are kept.
// @Tags Workovers
// @Produce json
// @Param id path int true "Workover ID"
// @Success 200 {object} successBody
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /workovers/{id} [delete]
func (h *Handler) DeleteWorkover(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	if err := h.store.DeleteWorkover(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondDeleted(w, "Workover deleted")
}
