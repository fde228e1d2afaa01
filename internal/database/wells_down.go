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
	tableWellsDown  = "wells_down"
	wellDownEntity  = "Well down record"
	wellDownColumns = `id, well, lease, route, def_bopd, dt_hrs, reason, status,
       date_down, date_up, pre_wo_cost, comments`
)

// ListWellsDown returns stored downtime records, open ones first and each
// group by date_down descending, with days offline filled in.
func (s *Store) ListWellsDown(ctx context.Context) ([]models.WellDown, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := Query(ctx, e, Op{"select", tableWellsDown},
		`SELECT `+wellDownColumns+` FROM wells_down
		 ORDER BY (status = 'Down') DESC, date_down DESC, id DESC`,
		nil, pgx.RowToStructByName[models.WellDown])
	if err != nil {
		return nil, err
	}
	now := s.clock()
	for i := range rows {
		rows[i].ComputeOffline(now)
	}
	return rows, nil
}

// submittedDateUp returns the record's date_up. Up records without one are
// stamped with now.
func submittedDateUp(in models.WellDownInput, now time.Time) *time.Time {
	if in.DateUp != nil && !in.DateUp.IsZero() {
		t := in.DateUp.Time
		return &t
	}
	if in.StatusOrDefault() == models.WellDownStatusUp {
		return &now
	}
	return nil
}

// wellDownUpsert keys on down_key, which holds the well name only while the
// record is open. A second Down submission for the same well refreshes the
// open record and keeps its original date_down.
func wellDownUpsert(in models.WellDownInput, now time.Time) (string, Params) {
	dateUp := submittedDateUp(in, now)
	return Upsert{
		Table:    tableWellsDown,
		Conflict: []string{"down_key"},
		Insert: []Assignment{
			Set("well", Text("", in.Well)),
			Set("lease", NullableText("", in.Lease)),
			Set("route", NullableText("", in.Route)),
			Set("def_bopd", Decimal("", in.DefBopd.OrZero())),
			Set("dt_hrs", Decimal("", in.DtHrs.OrZero())),
			Set("reason", NullableText("", in.Reason)),
			Set("status", Text("", in.StatusOrDefault())),
			Set("date_down", Timestamp("", in.DateDown.TimeOr(now))),
			Set("date_up", NullableTimestamp("", dateUp)),
			Set("pre_wo_cost", NullableDecimal("", in.PreWOCost)),
			Set("comments", NullableText("", in.Comments)),
		},
		Update: []string{"lease", "route", "def_bopd", "dt_hrs", "reason", "status", "date_up", "pre_wo_cost", "comments"},
	}.Statement()
}

// wellDownClose merges an Up submission into the well's open record.
// Only supplied fields overwrite; status and date_up are always set.
func wellDownClose(in models.WellDownInput, now time.Time) (string, Params) {
	var set UpdateSet
	if in.Lease != nil {
		set.Add(Set("lease", NullableText("", in.Lease)))
	}
	if in.Route != nil {
		set.Add(Set("route", NullableText("", in.Route)))
	}
	if in.DefBopd != nil {
		set.Add(Set("def_bopd", Decimal("", *in.DefBopd)))
	}
	if in.DtHrs != nil {
		set.Add(Set("dt_hrs", Decimal("", *in.DtHrs)))
	}
	if in.Reason != nil {
		set.Add(Set("reason", NullableText("", in.Reason)))
	}
	if in.PreWOCost != nil {
		set.Add(Set("pre_wo_cost", NullableDecimal("", in.PreWOCost)))
	}
	if in.Comments != nil {
		set.Add(Set("comments", NullableText("", in.Comments)))
	}
	set.Add(Set("status", Text("", models.WellDownStatusUp)))
	set.Add(Set("date_up", NullableTimestamp("", submittedDateUp(in, now))))

	clause, params := set.Clause()
	return `UPDATE wells_down SET ` + clause + ` WHERE well = @well AND status = 'Down'`,
		append(params, Text("well", in.Well))
}

// UpsertWellsDown writes every record in one transaction. An Up record
// closes the well's open record when there is one and is inserted otherwise.
func (s *Store) UpsertWellsDown(ctx context.Context, records []models.WellDownInput) (int, error) {
	now := s.clock()
	err := s.inTxExec(ctx, func(e *Executor) error {
		for _, in := range records {
			if in.StatusOrDefault() == models.WellDownStatusUp {
				stmt, params := wellDownClose(in, now)
				n, err := e.Exec(ctx, Op{"update", tableWellsDown}, stmt, params)
				if err != nil {
					return err
				}
				if n > 0 {
					continue
				}
			}
			stmt, params := wellDownUpsert(in, now)
			if _, err := e.Exec(ctx, Op{"upsert", tableWellsDown}, stmt, params); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// wellDownPatchSet maps a patch onto columns. Marking a record Up without
// a date_up stamps now; marking it Down clears date_up.
func wellDownPatchSet(p models.WellDownPatch, now time.Time) UpdateSet {
	var set UpdateSet
	if p.Status != nil {
		status := *p.Status
		if p.ClosesRecord() {
			status = models.WellDownStatusUp
		}
		set.Add(Set("status", Text("", status)))
	}
	switch {
	case p.DateUp != nil && !p.DateUp.IsZero():
		set.Add(Set("date_up", Timestamp("", p.DateUp.Time)))
	case p.ClosesRecord():
		set.Add(Set("date_up", Timestamp("", now)))
	case p.Status != nil:
		set.Add(Set("date_up", NullableTimestamp("", nil)))
	}
	if p.Comments != nil {
		set.Add(Set("comments", NullableText("", p.Comments)))
	}
	return set
}

// PatchWellDown applies p to record id and returns the updated row.
func (s *Store) PatchWellDown(ctx context.Context, id int64, p models.WellDownPatch) (models.WellDown, error) {
	now := s.clock()
	set := wellDownPatchSet(p, now)
	if set.Empty() {
		return models.WellDown{}, ErrNoFields
	}
	e, err := s.executor(ctx)
	if err != nil {
		return models.WellDown{}, err
	}
	clause, params := set.Clause()
	row, err := QueryOne(ctx, e, Op{"update", tableWellsDown},
		`UPDATE wells_down SET `+clause+` WHERE id = @id RETURNING `+wellDownColumns,
		append(params, Int32("id", id)),
		pgx.RowToStructByName[models.WellDown])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.WellDown{}, notFound(wellDownEntity)
	}
	if err != nil {
		return models.WellDown{}, err
	}
	row.ComputeOffline(now)
	return row, nil
}

// DeleteWellDown removes record id.
func (s *Store) DeleteWellDown(ctx context.Context, id int64) error {
	e, err := s.executor(ctx)
	if err != nil {
		return err
	}
	n, err := e.Exec(ctx, Op{"delete", tableWellsDown},
		`DELETE FROM wells_down WHERE id = @id`, Params{Int32("id", id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(wellDownEntity)
	}
	return nil
}
