// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/wellbore/internal/logging"
	"github.com/tomtom215/wellbore/internal/validation"
)

// maxBodyBytes bounds request bodies. A bulk production upload of a few
// thousand wells fits comfortably.
const maxBodyBytes = 4 << 20

// errorBody is the error envelope: {error} or {error, details}.
type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// successBody is the envelope for deletes and bulk writes.
type successBody struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Inserted *int   `json:"inserted,omitempty"`
	Upserted *int   `json:"upserted,omitempty"`
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends {error} with status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: message})
}

// respondErrorDetails sends {error, details} with status.
func respondErrorDetails(w http.ResponseWriter, status int, message string, details any) {
	respondJSON(w, status, errorBody{Error: message, Details: details})
}

// respondDeleted sends {success:true, message}.
func respondDeleted(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, successBody{Success: true, Message: message})
}

// errMalformedBody is reported for bodies that are not valid JSON.
var errMalformedBody = errors.New("Invalid JSON body") //nolint:staticcheck // surfaced verbatim to API clients

// readBody reads the request body up to maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errMalformedBody
	}
	return body, nil
}

// decodeJSON decodes the body into v. An empty body leaves v unchanged.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	return unmarshalBody(body, v)
}

func unmarshalBody(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errMalformedBody
	}
	return nil
}

// jsonKind reports the first significant byte of body: '[', '{', or 0.
func jsonKind(body []byte) byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// validateAll runs struct validation over each element in turn and
// returns the first failure.
func validateAll[T any](items []T) *validation.RequestValidationError {
	for i := range items {
		if err := validation.ValidateStruct(&items[i]); err != nil {
			return err
		}
	}
	return nil
}

// respondValidation sends a 400 naming the failing fields.
func respondValidation(w http.ResponseWriter, err *validation.RequestValidationError) {
	respondErrorDetails(w, http.StatusBadRequest, err.Error(), map[string]any{"fields": err.Fields()})
}

// pathID parses the {id} URL parameter as a positive int4 identifier.
func pathID(r *http.Request) (int64, bool) {
	return parseID(chi.URLParam(r, "id"))
}

// parseID accepts positive integers that fit an int4 column.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
