// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"context"

	"github.com/tomtom215/wellbore/internal/models"
)

// Store is the persistence the handlers depend on. *database.Store
// implements it; tests substitute an in-memory fake.
type Store interface {
	Ping(ctx context.Context) error

	ListProduction(ctx context.Context, days int) ([]models.ProductionReading, error)
	UpsertProduction(ctx context.Context, readings []models.ProductionInput) (int, error)
	ListWells(ctx context.Context) ([]models.Well, error)
	DeleteWell(ctx context.Context, name string) error

	ListRigs(ctx context.Context) ([]models.Rig, error)
	CreateRig(ctx context.Context, req models.CreateRigRequest) (models.Rig, error)
	DeleteRig(ctx context.Context, id int64) error

	ListWellsDown(ctx context.Context) ([]models.WellDown, error)
	ListDeferred(ctx context.Context) ([]models.DeferredWell, error)
	UpsertWellsDown(ctx context.Context, records []models.WellDownInput) (int, error)
	PatchWellDown(ctx context.Context, id int64, p models.WellDownPatch) (models.WellDown, error)
	DeleteWellDown(ctx context.Context, id int64) error

	ListWorkovers(ctx context.Context) ([]models.Workover, error)
	CreateWorkover(ctx context.Context, req models.CreateWorkoverRequest) (models.Workover, error)
	PatchWorkover(ctx context.Context, id int64, p models.WorkoverPatch) (models.Workover, error)
	DeleteWorkover(ctx context.Context, id int64) error

	ListWorkoverUpdates(ctx context.Context) ([]models.WorkoverUpdateWithWorkover, error)
	WorkoverCostSummary(ctx context.Context, workoverID int64) (models.WorkoverCostSummary, error)
	CreateWorkoverUpdate(ctx context.Context, workoverID int64, req models.CreateWorkoverUpdateRequest) (models.WorkoverUpdateCreated, error)
	DeleteWorkoverUpdate(ctx context.Context, id int64) error
}
