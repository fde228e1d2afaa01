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

const msgRigMissingFields = "Missing required fields: name, contractor, dayRate"

// ListRigs handles GET /rigs.
//
// @Summary List rigs
// @Description Returns every rig ordered by name.
// @Tags Rigs
// @Produce json
// @Success 200 {array} models.Rig
// @Failure 500 {object} errorBody
// @Router /rigs [get]
func (h *Handler) ListRigs(w http.ResponseWriter, r *http.Request) {
	rigs, err := h.store.ListRigs(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rigs)
}

// CreateRig handles POST /rigs.
//
// @Summary Create a rig
// @Description Name, contractor and dayRate are required.
// @Tags Rigs
// @Accept json
// @Produce json
// @Param rig body models.CreateRigRequest true "Rig"
// @Success 201 {object} models.Rig
// @Failure 400 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /rigs [post]
func (h *Handler) CreateRig(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRigRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		respondValidation(w, validation.NewRequestValidationError(msgRigMissingFields, missing...))
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidation(w, verr)
		return
	}

	rig, err := h.store.CreateRig(r.Context(), req)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, rig)
}

// DeleteRig handles DELETE /rigs/{id}.
//
// @Summary Delete a rig
// @Tags Rigs
// @Produce json
// @Param id path int true "Rig ID"
// @Success 200 {object} successBody
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /rigs/{id} [delete]
func (h *Handler) DeleteRig(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	if err := h.store.DeleteRig(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondDeleted(w, "Rig deleted")
}
