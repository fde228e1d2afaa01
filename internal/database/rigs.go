// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/tomtom215/wellbore/internal/models"
)

const (
	tableRigs  = "rigs"
	rigColumns = `id, name, contractor, day_rate, status, current_well`
	rigEntity  = "Rig"
)

// ListRigs returns all rigs ordered by name.
func (s *Store) ListRigs(ctx context.Context) ([]models.Rig, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return nil, err
	}
	return Query(ctx, e, Op{"select", tableRigs},
		`SELECT `+rigColumns+` FROM rigs ORDER BY name`,
		nil, pgx.RowToStructByName[models.Rig])
}

// CreateRig inserts an available rig with no current well.
func (s *Store) CreateRig(ctx context.Context, req models.CreateRigRequest) (models.Rig, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return models.Rig{}, err
	}
	return QueryOne(ctx, e, Op{"insert", tableRigs},
		`INSERT INTO rigs (name, contractor, day_rate, status)
		 VALUES (@name, @contractor, @day_rate, @status)
		 RETURNING `+rigColumns,
		Params{
			Text("name", req.Name),
			Text("contractor", req.Contractor),
			Decimal("day_rate", req.DayRate.OrZero()),
			Text("status", models.RigStatusAvailable),
		},
		pgx.RowToStructByName[models.Rig])
}

// DeleteRig removes the rig with id.
func (s *Store) DeleteRig(ctx context.Context, id int64) error {
	e, err := s.executor(ctx)
	if err != nil {
		return err
	}
	n, err := e.Exec(ctx, Op{"delete", tableRigs},
		`DELETE FROM rigs WHERE id = @id`, Params{Int32("id", id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(rigEntity)
	}
	return nil
}
