// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package models

import (
	"strings"
	"time"
)

// Workover defaults and statuses.
const (
	WorkoverStatusActive    = "Active"
	WorkoverStatusCompleted = "Completed"
	WorkoverTypeDefault     = "Workover"
)

// Workover is a job on a well. Cost is the sum of the job's daily cost
// updates, kept current by the store.
type Workover struct {
	ID              int64      `json:"id" db:"id"`
	WONumber        string     `json:"woNumber" db:"wo_number"`
	Well            string     `json:"well" db:"well"`
	WellName        string     `json:"well_name" db:"well_name"`
	Rig             string     `json:"rig" db:"rig"`
	Reason          string     `json:"reason" db:"reason"`
	WorkType        string     `json:"work_type" db:"work_type"`
	EstCost         *Money     `json:"estCost" db:"est_cost"`
	Cost            *Money     `json:"cost" db:"cost"`
	DefBopd         *Money     `json:"defBopd" db:"def_bopd"`
	Status          string     `json:"status" db:"status"`
	StartDate       time.Time  `json:"start_date" db:"start_date"`
	EndDate         *time.Time `json:"end_date" db:"end_date"`
	Notes           *string    `json:"notes" db:"notes"`
	CompletionNotes *string    `json:"completion_notes" db:"completion_notes"`
	CreatedBy       *string    `json:"created_by" db:"created_by"`
}

// CreateWorkoverRequest is the POST /workovers body.
type CreateWorkoverRequest struct {
	Well      string    `json:"well" validate:"required,max=100"`
	Rig       string    `json:"rig" validate:"required,max=100"`
	Reason    string    `json:"reason" validate:"required,max=255"`
	Type      string    `json:"type" validate:"omitempty,max=50"`
	EstCost   *Money    `json:"estCost" validate:"omitempty,money"`
	DefBopd   *Money    `json:"defBopd" validate:"omitempty,rate"`
	Status    string    `json:"status" validate:"omitempty,max=50"`
	Notes     *string   `json:"notes" validate:"omitempty,max=2000"`
	CreatedBy *string   `json:"createdBy" validate:"omitempty,max=100"`
	StartDate *FlexTime `json:"startDate"`
	EndDate   *FlexTime `json:"endDate"`
	Cost      *Money    `json:"cost" validate:"omitempty,money"`
}

// Missing lists the required fields absent from the request.
func (r *CreateWorkoverRequest) Missing() []string {
	var missing []string
	if r.Well == "" {
		missing = append(missing, "well")
	}
	if r.Rig == "" {
		missing = append(missing, "rig")
	}
	if r.Reason == "" {
		missing = append(missing, "reason")
	}
	return missing
}

// TypeOrDefault returns the submitted type, or Workover when empty.
func (r *CreateWorkoverRequest) TypeOrDefault() string {
	if r.Type == "" {
		return WorkoverTypeDefault
	}
	return r.Type
}

// StatusOrDefault returns the submitted status, or Active when empty.
func (r *CreateWorkoverRequest) StatusOrDefault() string {
	if r.Status == "" {
		return WorkoverStatusActive
	}
	return r.Status
}

// WorkoverPatch is the PATCH /workovers/{id} body. Empty strings count as
// absent. finalCost takes precedence over cost, completionNotes over notes.
type WorkoverPatch struct {
	Status          *string `json:"status" validate:"omitempty,max=50"`
	Rig             *string `json:"rig" validate:"omitempty,max=100"`
	FinalCost       *Money  `json:"finalCost" validate:"omitempty,money"`
	Cost            *Money  `json:"cost" validate:"omitempty,money"`
	CompletionNotes *string `json:"completionNotes" validate:"omitempty,max=2000"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
}

// EffectiveFinalCost returns finalCost, falling back to cost.
func (p *WorkoverPatch) EffectiveFinalCost() *Money {
	if p.FinalCost != nil {
		return p.FinalCost
	}
	return p.Cost
}

// EffectiveCompletionNotes returns completionNotes, falling back to notes.
func (p *WorkoverPatch) EffectiveCompletionNotes() *string {
	if nonEmpty(p.CompletionNotes) {
		return p.CompletionNotes
	}
	if nonEmpty(p.Notes) {
		return p.Notes
	}
	return nil
}

// Empty reports whether the patch carries no effective field.
func (p *WorkoverPatch) Empty() bool {
	return !nonEmpty(p.Status) && !nonEmpty(p.Rig) &&
		p.EffectiveFinalCost() == nil && p.EffectiveCompletionNotes() == nil
}

// Completes reports whether the patch sets status to completed, in any case.
func (p *WorkoverPatch) Completes() bool {
	return nonEmpty(p.Status) && strings.EqualFold(*p.Status, WorkoverStatusCompleted)
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

// WorkoverUpdate is one daily cost entry for a workover.
type WorkoverUpdate struct {
	ID         int64     `json:"id" db:"id"`
	WorkoverID int64     `json:"workover_id" db:"workover_id"`
	UpdateDate time.Time `json:"update_date" db:"update_date"`
	DailyCost  Money     `json:"daily_cost" db:"daily_cost"`
	Notes      *string   `json:"notes" db:"notes"`
	CreatedBy  *string   `json:"created_by" db:"created_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// WorkoverUpdateWithWorkover adds the parent job's well and rig.
type WorkoverUpdateWithWorkover struct {
	WorkoverUpdate
	Well string `json:"well" db:"well"`
	Rig  string `json:"rig" db:"rig"`
}

// CreateWorkoverUpdateRequest is the POST /workover-updates body. The
// workover id may also arrive as a query parameter.
type CreateWorkoverUpdateRequest struct {
	WorkoverID *int64    `json:"workover_id" validate:"omitempty,gt=0"`
	DailyCost  *Money    `json:"daily_cost" validate:"omitempty,money"`
	Notes      *string   `json:"notes" validate:"omitempty,max=2000"`
	CreatedBy  *string   `json:"created_by" validate:"omitempty,max=100"`
	UpdateDate *FlexTime `json:"update_date"`
}

// WorkoverUpdateCreated is the POST /workover-updates response.
type WorkoverUpdateCreated struct {
	ID         int64     `json:"id"`
	WorkoverID int64     `json:"workover_id"`
	DailyCost  Money     `json:"daily_cost"`
	Notes      *string   `json:"notes"`
	UpdateDate time.Time `json:"update_date"`
	TotalCost  Money     `json:"total_cost"`
}

// WorkoverCostSummary is the GET /workover-updates?workover_id= response.
type WorkoverCostSummary struct {
	Updates   []WorkoverUpdate `json:"updates"`
	TotalCost Money            `json:"total_cost"`
}
