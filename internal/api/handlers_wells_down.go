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

const msgWellDownBody = "Request body must be a well down record or an array of them"

// ListWellsDown handles GET /wells-down.
//
// @Summary List downtime records
// @Description Open records first, with days offline and production down computed at request time.
// @Tags Wells Down
// @Produce json
// @Success 200 {array} models.WellDown
// @Failure 500 {object} errorBody
// @Router /wells-down [get]
func (h *Handler) ListWellsDown(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListWellsDown(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// ListDeferred handles GET /wells-down/deferred: wells down or
// underperforming, with the production deferred since their last reading.
//
// @Summary Deferred production estimate
// @Description Wells that are down or producing under 10% of their historical oil rate, with volumes deferred since their last reading.
// @Tags Wells Down
// @Produce json
// @Success 200 {array} models.DeferredWell
// @Failure 500 {object} errorBody
// @Router /wells-down/deferred [get]
func (h *Handler) ListDeferred(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListDeferred(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// UpsertWellsDown handles POST /wells-down with one record or an array.
//
// @Summary Upsert downtime records
// @Description Accepts one record or an array. A Down record refreshes the well's open record; an Up record closes it.
// @Tags Wells Down
// @Accept json
// @Produce json
// @Param records body []models.WellDownInput true "One record or an array"
// @Success 201 {object} successBody "upserted holds the record count"
// @Failure 400 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /wells-down [post]
func (h *Handler) UpsertWellsDown(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var records []models.WellDownInput
	switch jsonKind(body) {
	case '[':
		err = unmarshalBody(body, &records)
	case '{':
		var one models.WellDownInput
		err = unmarshalBody(body, &one)
		records = []models.WellDownInput{one}
	default:
		respondError(w, http.StatusBadRequest, msgWellDownBody)
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(records) == 0 {
		respondError(w, http.StatusBadRequest, msgWellDownBody)
		return
	}
	if verr := validateAll(records); verr != nil {
		respondValidation(w, verr)
		return
	}

	n, err := h.store.UpsertWellsDown(r.Context(), records)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, successBody{Success: true, Upserted: &n})
}

// PatchWellDown handles PATCH /wells-down/{id}.
//
// @Summary Update a downtime record
// @Description Sets status, date_up or comments. Marking a record Up stamps date_up; marking it Down clears it.
// @Tags Wells Down
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param patch body models.WellDownPatch true "Fields to update"
// @Success 200 {object} models.WellDown
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Failure 409 {object} errorBody "The well already has an open record"
// @Failure 500 {object} errorBody
// @Router /wells-down/{id} [patch]
func (h *Handler) PatchWellDown(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	var patch models.WellDownPatch
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

	row, err := h.store.PatchWellDown(r.Context(), id, patch)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// DeleteWellDown handles DELETE /wells-down/{id}.
//
// @Summary Delete a downtime record
// @Tags Wells Down
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} successBody
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /wells-down/{id} [delete]
func (h *Handler) DeleteWellDown(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	if err := h.store.DeleteWellDown(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondDeleted(w, "Well down record deleted")
}
