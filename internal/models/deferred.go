// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package models

import "time"

// DeferredWell is a well whose production is currently lost, with the
// estimated deferred volume per stream since its last reading.
type DeferredWell struct {
	Well          string    `json:"well" db:"well"`
	Status        string    `json:"status" db:"status"`
	ReasonDown    *string   `json:"reason_down" db:"reason_down"`
	LastDate      time.Time `json:"last_date" db:"last_date"`
	DowntimeHours int64     `json:"downtime_hours" db:"downtime_hours"`
	AvgOilBopd    Money     `json:"avg_oil_bopd" db:"avg_oil_bopd"`
	AvgGasMcf     Money     `json:"avg_gas_mcf" db:"avg_gas_mcf"`
	AvgWaterBbl   Money     `json:"avg_water_bbl" db:"avg_water_bbl"`
	DeferredOil   Money     `json:"deferred_oil" db:"deferred_oil"`
	DeferredGas   Money     `json:"deferred_gas" db:"deferred_gas"`
	DeferredWater Money     `json:"deferred_water" db:"deferred_water"`
}
