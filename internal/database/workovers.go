// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tomtom215/wellbore/internal/models"
)

const (
	tableWorkovers  = "workovers"
	workoverEntity  = "Workover"
	workoverColumns = `id, wo_number, well, well AS well_name, rig, reason, type AS work_type,
       est_cost, final_cost AS cost, def_bopd, status, start_date,
       completed_date AS end_date, notes, completion_notes, created_by`
)

// ListWorkovers returns all workovers, newest start first.
func (s *Store) ListWorkovers(ctx context.Context) ([]models.Workover, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return nil, err
	}
	return Query(ctx, e, Op{"select", tableWorkovers},
		`SELECT `+workoverColumns+` FROM workovers ORDER BY start_date DESC, id DESC`,
		nil, pgx.RowToStructByName[models.Workover])
}

// CreateWorkover inserts a workover and returns it with its assigned
// work-order number.
func (s *Store) CreateWorkover(ctx context.Context, req models.CreateWorkoverRequest) (models.Workover, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return models.Workover{}, err
	}
	var endDate *time.Time
	if req.EndDate != nil && !req.EndDate.IsZero() {
		t := req.EndDate.Time
		endDate = &t
	}
	return QueryOne(ctx, e, Op{"insert", tableWorkovers},
		`INSERT INTO workovers (well, rig, reason, type, est_cost, def_bopd, status,
		                        start_date, completed_date, final_cost, notes, created_by)
		 VALUES (@well, @rig, @reason, @type, @est_cost, @def_bopd, @status,
		         @start_date, @completed_date, @final_cost, @notes, @created_by)
		 RETURNING `+workoverColumns,
		Params{
			Text("well", req.Well),
			Text("rig", req.Rig),
			Text("reason", req.Reason),
			Text("type", req.TypeOrDefault()),
			NullableDecimal("est_cost", req.EstCost),
			NullableDecimal("def_bopd", req.DefBopd),
			Text("status", req.StatusOrDefault()),
			Timestamp("start_date", req.StartDate.TimeOr(s.clock())),
			NullableTimestamp("completed_date", endDate),
			NullableDecimal("final_cost", req.Cost),
			NullableText("notes", req.Notes),
			NullableText("created_by", req.CreatedBy),
		},
		pgx.RowToStructByName[models.Workover])
}

// workoverPatchSet maps a patch onto columns. Completing a workover stamps
// completed_date.
func workoverPatchSet(p models.WorkoverPatch, now time.Time) UpdateSet {
	var set UpdateSet
	if p.Status != nil && *p.Status != "" {
		set.Add(Set("status", Text("", *p.Status)))
		if p.Completes() {
			set.Add(Set("completed_date", Timestamp("", now)))
		}
	}
	if p.Rig != nil && *p.Rig != "" {
		set.Add(Set("rig", Text("", *p.Rig)))
	}
	if cost := p.EffectiveFinalCost(); cost != nil {
		set.Add(Set("final_cost", Decimal("", *cost)))
	}
	if notes := p.EffectiveCompletionNotes(); notes != nil {
		set.Add(Set("completion_notes", Text("", *notes)))
	}
	return set
}

// PatchWorkover applies p to workover id and returns the updated row.
func (s *Store) PatchWorkover(ctx context.Context, id int64, p models.WorkoverPatch) (models.Workover, error) {
	set := workoverPatchSet(p, s.clock())
	if set.Empty() {
		return models.Workover{}, ErrNoFields
	}
	e, err := s.executor(ctx)
	if err != nil {
		return models.Workover{}, err
	}
	clause, params := set.Clause()
	row, err := QueryOne(ctx, e, Op{"update", tableWorkovers},
		`UPDATE workovers SET `+clause+` WHERE id = @id RETURNING `+workoverColumns,
		append(params, Int32("id", id)),
		pgx.RowToStructByName[models.Workover])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Workover{}, notFound(workoverEntity)
	}
	return row, err
}

// DeleteWorkover removes workover id. Its cost updates are kept.
func (s *Store) DeleteWorkover(ctx context.Context, id int64) error {
	e, err := s.executor(ctx)
	if err != nil {
		return err
	}
	n, err := e.Exec(ctx, Op{"delete", tableWorkovers},
		`DELETE FROM workovers WHERE id = @id`, Params{Int32("id", id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(workoverEntity)
	}
	return nil
}
