// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package models

import "time"

// Production statuses written by the field data feed.
const (
	StatusActive = "Active"
	StatusDown   = "Down"
)

// ProductionReading is one day's reading for a well. The oil, gas and water
// names are what dashboards consume; they carry avg_bopd, def_bopd and
// dt_hrs respectively.
type ProductionReading struct {
	ID         int64     `json:"id" db:"id"`
	Well       string    `json:"well" db:"well"`
	WellName   string    `json:"well_name" db:"well_name"`
	Oil        Money     `json:"oil" db:"oil"`
	Gas        Money     `json:"gas" db:"gas"`
	Water      Money     `json:"water" db:"water"`
	Status     string    `json:"status" db:"status"`
	ReasonDown *string   `json:"reason_down" db:"reason_down"`
	Date       time.Time `json:"date" db:"date"`
}

// ProductionInput is one element of the bulk POST /production body.
type ProductionInput struct {
	Name       string  `json:"name" validate:"required,max=100"`
	AvgBopd    *Money  `json:"avg_bopd" validate:"omitempty,rate"`
	DefBopd    *Money  `json:"def_bopd" validate:"omitempty,rate"`
	DtHrs      *Money  `json:"dt_hrs" validate:"omitempty,rate"`
	Status     string  `json:"status" validate:"omitempty,max=50"`
	ReasonDown *string `json:"reason_down" validate:"omitempty,max=255"`
}

// StatusOrDefault returns the submitted status, or Active when empty.
func (p *ProductionInput) StatusOrDefault() string {
	if p.Status == "" {
		return StatusActive
	}
	return p.Status
}

// Well is the implicit well entity: a distinct well name with readings.
type Well struct {
	Name string `json:"name" db:"name"`
}
