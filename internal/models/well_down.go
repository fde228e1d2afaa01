// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WellDown statuses. A well has at most one Down record open at a time.
const (
	WellDownStatusDown = "Down"
	WellDownStatusUp   = "Up"
)

// WellDown records a period a well spent offline.
type WellDown struct {
	ID        int64      `json:"id" db:"id"`
	Well      string     `json:"well" db:"well"`
	Lease     *string    `json:"lease" db:"lease"`
	Route     *string    `json:"route" db:"route"`
	DefBopd   Money      `json:"def_bopd" db:"def_bopd"`
	DtHrs     Money      `json:"dt_hrs" db:"dt_hrs"`
	Reason    *string    `json:"reason" db:"reason"`
	Status    string     `json:"status" db:"status"`
	DateDown  time.Time  `json:"date_down" db:"date_down"`
	DateUp    *time.Time `json:"date_up" db:"date_up"`
	PreWOCost *Money     `json:"pre_wo_cost" db:"pre_wo_cost"`
	Comments  *string    `json:"comments" db:"comments"`

	DaysOffline    int   `json:"days_offline" db:"-"`
	ProductionDown Money `json:"production_down" db:"-"`
}

// ComputeOffline fills DaysOffline and ProductionDown. Days are whole days
// from DateDown to DateUp, or to now while the record is open.
func (w *WellDown) ComputeOffline(now time.Time) {
	end := now
	if w.DateUp != nil {
		end = *w.DateUp
	}
	days := int(end.Sub(w.DateDown) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}
	w.DaysOffline = days
	w.ProductionDown = NewMoney(w.DefBopd.Mul(decimal.NewFromInt(int64(days))))
}

// WellDownInput is one record of the POST /wells-down body.
type WellDownInput struct {
	Well      string    `json:"well" validate:"required,max=100"`
	Lease     *string   `json:"lease" validate:"omitempty,max=100"`
	Route     *string   `json:"route" validate:"omitempty,max=100"`
	DefBopd   *Money    `json:"def_bopd" validate:"omitempty,rate"`
	DtHrs     *Money    `json:"dt_hrs" validate:"omitempty,rate"`
	Reason    *string   `json:"reason" validate:"omitempty,max=255"`
	Status    string    `json:"status" validate:"omitempty,oneof=Down Up"`
	DateDown  *FlexTime `json:"date_down"`
	DateUp    *FlexTime `json:"date_up"`
	PreWOCost *Money    `json:"pre_wo_cost" validate:"omitempty,money"`
	Comments  *string   `json:"comments" validate:"omitempty,max=2000"`
}

// StatusOrDefault returns the submitted status, or Down when empty.
func (w *WellDownInput) StatusOrDefault() string {
	if w.Status == "" {
		return WellDownStatusDown
	}
	return w.Status
}

// WellDownPatch is the PATCH /wells-down/{id} body. Nil fields are left alone.
type WellDownPatch struct {
	Status   *string   `json:"status" validate:"omitempty,oneof=Down Up"`
	DateUp   *FlexTime `json:"date_up"`
	Comments *string   `json:"comments" validate:"omitempty,max=2000"`
}

// Empty reports whether no field was supplied.
func (p *WellDownPatch) Empty() bool {
	return p.Status == nil && p.DateUp == nil && p.Comments == nil
}

// ClosesRecord reports whether the patch marks the record Up.
func (p *WellDownPatch) ClosesRecord() bool {
	return p.Status != nil && strings.EqualFold(*p.Status, WellDownStatusUp)
}
