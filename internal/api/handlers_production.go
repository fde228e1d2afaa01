// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wellbore/internal/database"
	"github.com/tomtom215/wellbore/internal/models"
)

// ListProduction handles GET /production?days=N.
//
// @Summary List production readings
// @Description Returns readings recorded in the last N days, newest first.
// @Tags Production
// @Produce json
// @Param days query int false "Window in days (default 30, max 36500)"
// @Success 200 {array} models.ProductionReading
// @Failure 500 {object} errorBody
// @Router /production [get]
func (h *Handler) ListProduction(w http.ResponseWriter, r *http.Request) {
	days := getIntParam(r, "days", database.DefaultProductionDays)
	rows, err := h.store.ListProduction(r.Context(), days)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// UpsertProduction handles POST /production. The body must be an array;
// every element is stored or none is.
//
// @Summary Upsert production readings
// @Description Stores one reading per well per UTC day. Every element is written or none is.
// @Tags Production
// @Accept json
// @Produce json
// @Param readings body []models.ProductionInput true "Readings"
// @Success 201 {object} successBody "inserted holds the row count"
// @Failure 400 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /production [post]
func (h *Handler) UpsertProduction(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if jsonKind(body) != '[' {
		respondError(w, http.StatusBadRequest, msgProductionArray)
		return
	}

	var readings []models.ProductionInput
	if err := unmarshalBody(body, &readings); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if verr := validateAll(readings); verr != nil {
		respondValidation(w, verr)
		return
	}

	n, err := h.store.UpsertProduction(r.Context(), readings)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, successBody{Success: true, Inserted: &n})
}

// ListWells handles GET /wells.
//
// @Summary List wells
// @Description Distinct well names that have production readings.
// @Tags Production
// @Produce json
// @Success 200 {array} models.Well
// @Failure 500 {object} errorBody
// @Router /wells [get]
func (h *Handler) ListWells(w http.ResponseWriter, r *http.Request) {
	wells, err := h.store.ListWells(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wells)
}

// DeleteWell handles DELETE /wells/{wellName}, removing all of the well's
// production rows.
//
// @Summary Delete a well
// @Description Removes every production reading of the well. The name is URL-decoded.
// @Tags Production
// @Produce json
// @Param wellName path string true "Well name"
// @Success 200 {object} successBody
// @Failure 404 {object} errorBody
// @Failure 500 {object} errorBody
// @Router /wells/{wellName} [delete]
func (h *Handler) DeleteWell(w http.ResponseWriter, r *http.Request) {
	name, ok := wellNameParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid well name")
		return
	}
	if err := h.store.DeleteWell(r.Context(), name); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondDeleted(w, "Well deleted")
}

// wellNameParam returns the decoded {wellName}. chi matches against the raw
// path when the URL carries escapes such as %2F, leaving them encoded.
func wellNameParam(r *http.Request) (string, bool) {
	name := chi.URLParam(r, "wellName")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return "", false
		}
		name = decoded
	}
	return name, name != ""
}
