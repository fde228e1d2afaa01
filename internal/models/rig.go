// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package models

// RigStatusAvailable is the status every new rig starts with.
const RigStatusAvailable = "Available"

// Rig is a contracted rig. CurrentWell names a well when the rig is on site.
type Rig struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Contractor  string  `json:"contractor" db:"contractor"`
	DayRate     Money   `json:"dayRate" db:"day_rate"`
	Status      string  `json:"status" db:"status"`
	CurrentWell *string `json:"currentWell" db:"current_well"`
}

// CreateRigRequest is the POST /rigs body.
type CreateRigRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Contractor string `json:"contractor" validate:"required,max=100"`
	DayRate    *Money `json:"dayRate" validate:"omitempty,rate"`
}

// Missing lists the required fields absent from the request. A zero day
// rate counts as present.
func (r *CreateRigRequest) Missing() []string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Contractor == "" {
		missing = append(missing, "contractor")
	}
	if r.DayRate == nil {
		missing = append(missing, "dayRate")
	}
	return missing
}
