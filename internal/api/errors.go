// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/wellbore/internal/database"
	"github.com/tomtom215/wellbore/internal/logging"
)

// Client-facing messages.
const (
	msgInternal        = "Internal server error"
	msgInvalidID       = "Invalid id"
	msgNoFields        = "No fields to update"
	msgProductionArray = "Request body must be an array of wells"
	msgConflict        = "Conflicts with an existing record"
)

// respondStoreError maps a store error onto a response:
//   - NotFoundError: 404 with the entity message
//   - ErrNoFields: 400
//   - ParamError: 400, the value does not fit its column
//   - unique violation: 409
//   - anything else: 500 with the store message as details
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		nf *database.NotFoundError
		pe *database.ParamError
		qe *database.QueryError
	)
	switch {
	case errors.As(err, &nf):
		respondError(w, http.StatusNotFound, nf.Error())
		return
	case errors.Is(err, database.ErrNoFields):
		respondError(w, http.StatusBadRequest, msgNoFields)
		return
	case errors.As(err, &pe):
		respondErrorDetails(w, http.StatusBadRequest, "Invalid value for "+pe.Name, pe.Reason)
		return
	case errors.As(err, &qe) && qe.IsConflict():
		respondErrorDetails(w, http.StatusConflict, msgConflict, qe.Error())
		return
	}

	logging.Ctx(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", logging.SanitizeValue(r.URL.Path)).
		Msg("Database error")
	respondErrorDetails(w, http.StatusInternalServerError, msgInternal, err.Error())
}
