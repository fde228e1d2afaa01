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

	"github.com/tomtom215/wellbore/internal/metrics"
	"github.com/tomtom215/wellbore/internal/models"
)

const (
	tableWorkoverUpdates = "workover_updates"
	workoverUpdateEntity = "Update"
)

const (
	sumWorkoverCost = `SELECT COALESCE(SUM(daily_cost), 0) FROM workover_updates WHERE workover_id = @workover_id`

	// recomputeWorkoverCost keeps workovers.final_cost equal to the sum of
	// the workover's updates.
	recomputeWorkoverCost = `
UPDATE workovers
SET final_cost = (SELECT COALESCE(SUM(daily_cost), 0) FROM workover_updates WHERE workover_id = @workover_id)
WHERE id = @workover_id`
)

// ListWorkoverUpdates returns every update joined with its workover's well
// and rig, newest first. Updates whose workover was deleted are omitted.
func (s *Store) ListWorkoverUpdates(ctx context.Context) ([]models.WorkoverUpdateWithWorkover, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return nil, err
	}
	return Query(ctx, e, Op{"select", tableWorkoverUpdates},
		`SELECT u.id, u.workover_id, u.update_date, u.daily_cost, u.notes, u.created_by, u.created_at,
		        w.well, w.rig
		 FROM workover_updates u
		 JOIN workovers w ON w.id = u.workover_id
		 ORDER BY u.update_date DESC, u.id DESC`,
		nil, pgx.RowToStructByName[models.WorkoverUpdateWithWorkover])
}

// WorkoverCostSummary returns one workover's updates and their total cost.
func (s *Store) WorkoverCostSummary(ctx context.Context, workoverID int64) (models.WorkoverCostSummary, error) {
	var summary models.WorkoverCostSummary
	err := s.inTxExec(ctx, func(e *Executor) error {
		params := Params{Int32("workover_id", workoverID)}
		updates, err := Query(ctx, e, Op{"select", tableWorkoverUpdates},
			`SELECT id, workover_id, update_date, daily_cost, notes, created_by, created_at
			 FROM workover_updates
			 WHERE workover_id = @workover_id
			 ORDER BY update_date DESC, id DESC`,
			params, pgx.RowToStructByName[models.WorkoverUpdate])
		if err != nil {
			return err
		}
		total, err := QueryOne(ctx, e, Op{"select", tableWorkoverUpdates}, sumWorkoverCost, params,
			pgx.RowTo[models.Money])
		if err != nil {
			return err
		}
		summary = models.WorkoverCostSummary{Updates: updates, TotalCost: models.NewMoney(total.Decimal)}
		return nil
	})
	return summary, err
}

// recompute writes the running total back to the workover and returns it.
func recompute(ctx context.Context, e *Executor, workoverID int64, trigger string) (models.Money, error) {
	params := Params{Int32("workover_id", workoverID)}
	if _, err := e.Exec(ctx, Op{"update", tableWorkovers}, recomputeWorkoverCost, params); err != nil {
		return models.Money{}, err
	}
	total, err := QueryOne(ctx, e, Op{"select", tableWorkoverUpdates}, sumWorkoverCost, params,
		pgx.RowTo[models.Money])
	if err != nil {
		return models.Money{}, err
	}
	metrics.WorkoverCostRecomputes.WithLabelValues(trigger).Inc()
	return models.NewMoney(total.Decimal), nil
}

// CreateWorkoverUpdate records a daily cost against workoverID and
// recomputes the workover's final cost in the same transaction. The parent
// row is locked for the duration so concurrent updates serialize.
func (s *Store) CreateWorkoverUpdate(ctx context.Context, workoverID int64, req models.CreateWorkoverUpdateRequest) (models.WorkoverUpdateCreated, error) {
	var created models.WorkoverUpdateCreated
	now := s.clock()
	dailyCost := models.NewMoney(req.DailyCost.OrZero().Decimal)

	err := s.inTxExec(ctx, func(e *Executor) error {
		_, err := QueryOne(ctx, e, Op{"lock", tableWorkovers},
			`SELECT id FROM workovers WHERE id = @id FOR UPDATE`,
			Params{Int32("id", workoverID)}, pgx.RowTo[int32])
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound(workoverEntity)
		}
		if err != nil {
			return err
		}

		type inserted struct {
			ID         int64     `db:"id"`
			UpdateDate time.Time `db:"update_date"`
		}
		row, err := QueryOne(ctx, e, Op{"insert", tableWorkoverUpdates},
			`INSERT INTO workover_updates (workover_id, update_date, daily_cost, notes, created_by)
			 VALUES (@workover_id, @update_date, @daily_cost, @notes, @created_by)
			 RETURNING id, update_date`,
			Params{
				Int32("workover_id", workoverID),
				Date("update_date", req.UpdateDate.TimeOr(now)),
				Decimal("daily_cost", dailyCost),
				NullableText("notes", req.Notes),
				NullableText("created_by", req.CreatedBy),
			},
			pgx.RowToStructByName[inserted])
		if err != nil {
			return err
		}

		total, err := recompute(ctx, e, workoverID, "insert")
		if err != nil {
			return err
		}
		created = models.WorkoverUpdateCreated{
			ID:         row.ID,
			WorkoverID: workoverID,
			DailyCost:  dailyCost,
			Notes:      req.Notes,
			UpdateDate: row.UpdateDate,
			TotalCost:  total,
		}
		return nil
	})
	return created, err
}

// DeleteWorkoverUpdate removes update id and recomputes its workover's
// final cost in the same transaction.
func (s *Store) DeleteWorkoverUpdate(ctx context.Context, id int64) error {
	return s.inTxExec(ctx, func(e *Executor) error {
		workoverID, err := QueryOne(ctx, e, Op{"delete", tableWorkoverUpdates},
			`DELETE FROM workover_updates WHERE id = @id RETURNING workover_id`,
			Params{Int32("id", id)}, pgx.RowTo[int64])
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound(workoverUpdateEntity)
		}
		if err != nil {
			return err
		}
		_, err = recompute(ctx, e, workoverID, "delete")
		return err
	})
}
