// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tomtom215/wellbore/internal/metrics"
	"github.com/tomtom215/wellbore/internal/models"
)

const tableProduction = "production_data"

// Production window bounds, in days. DefaultProductionDays is used when a
// caller passes no valid window; larger windows are cut to MaxProductionDays.
const (
	DefaultProductionDays = 30
	MaxProductionDays     = 36500
)

const selectProduction = `
SELECT id, well, well AS well_name, avg_bopd AS oil, def_bopd AS gas, dt_hrs AS water,
       status, reason_down, data_date AS date
FROM production_data
WHERE data_date >= @since
ORDER BY data_date DESC, well`

// productionSince returns the start of a days-long window ending at now.
func productionSince(now time.Time, days int) time.Time {
	switch {
	case days <= 0:
		days = DefaultProductionDays
	case days > MaxProductionDays:
		days = MaxProductionDays
	}
	return now.AddDate(0, 0, -days)
}

// ListProduction returns readings recorded in the last days days.
// Non-positive values fall back to DefaultProductionDays.
func (s *Store) ListProduction(ctx context.Context, days int) ([]models.ProductionReading, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return nil, err
	}
	since := productionSince(s.clock(), days)
	return Query(ctx, e, Op{"select", tableProduction}, selectProduction,
		Params{Timestamp("since", since)},
		pgx.RowToStructByName[models.ProductionReading])
}

// productionUpsert builds the per-well statement. A well keeps one row per
// UTC calendar day; a repeat submission on the same day overwrites it.
func productionUpsert(in models.ProductionInput, now time.Time) (string, Params) {
	return Upsert{
		Table:    tableProduction,
		Conflict: []string{"well", "reading_date"},
		Insert: []Assignment{
			Set("well", Text("", in.Name)),
			Set("avg_bopd", Decimal("", in.AvgBopd.OrZero())),
			Set("def_bopd", Decimal("", in.DefBopd.OrZero())),
			Set("dt_hrs", Decimal("", in.DtHrs.OrZero())),
			Set("status", Text("", in.StatusOrDefault())),
			Set("reason_down", NullableText("", in.ReasonDown)),
			Set("reading_date", Date("", now)),
			Set("data_date", Timestamp("", now)),
		},
		Update: []string{"avg_bopd", "def_bopd", "dt_hrs", "status", "reason_down", "data_date"},
	}.Statement()
}

// UpsertProduction writes every reading in one transaction: either all are
// stored or none are.
func (s *Store) UpsertProduction(ctx context.Context, readings []models.ProductionInput) (int, error) {
	now := s.clock()
	err := s.inTxExec(ctx, func(e *Executor) error {
		for _, in := range readings {
			stmt, params := productionUpsert(in, now)
			if _, err := e.Exec(ctx, Op{"upsert", tableProduction}, stmt, params); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	metrics.ProductionReadingsUpserted.Add(float64(len(readings)))
	return len(readings), nil
}

// ListWells returns the distinct non-empty well names in production data.
func (s *Store) ListWells(ctx context.Context) ([]models.Well, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return nil, err
	}
	return Query(ctx, e, Op{"select", tableProduction},
		`SELECT DISTINCT well AS name FROM production_data WHERE well <> '' ORDER BY well`,
		nil, pgx.RowToStructByName[models.Well])
}

// DeleteWell removes all production rows for name.
func (s *Store) DeleteWell(ctx context.Context, name string) error {
	e, err := s.executor(ctx)
	if err != nil {
		return err
	}
	n, err := e.Exec(ctx, Op{"delete", tableProduction},
		`DELETE FROM production_data WHERE well = @well`, Params{Text("well", name)})
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("Well")
	}
	return nil
}
