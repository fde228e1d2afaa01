// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package api

import (
	"context"

	"github.com/tomtom215/wellbore/internal/models"
)

// mockStore implements Store. Unset funcs return zero values.
type mockStore struct {
	pingFunc func(ctx context.Context) error

	listProductionFunc   func(ctx context.Context, days int) ([]models.ProductionReading, error)
	upsertProductionFunc func(ctx context.Context, readings []models.ProductionInput) (int, error)
	listWellsFunc        func(ctx context.Context) ([]models.Well, error)
	deleteWellFunc       func(ctx context.Context, name string) error

	listRigsFunc  func(ctx context.Context) ([]models.Rig, error)
	createRigFunc func(ctx context.Context, req models.CreateRigRequest) (models.Rig, error)
	deleteRigFunc func(ctx context.Context, id int64) error

	listWellsDownFunc   func(ctx context.Context) ([]models.WellDown, error)
	listDeferredFunc    func(ctx context.Context) ([]models.DeferredWell, error)
	upsertWellsDownFunc func(ctx context.Context, records []models.WellDownInput) (int, error)
	patchWellDownFunc   func(ctx context.Context, id int64, p models.WellDownPatch) (models.WellDown, error)
	deleteWellDownFunc  func(ctx context.Context, id int64) error

	listWorkoversFunc  func(ctx context.Context) ([]models.Workover, error)
	createWorkoverFunc func(ctx context.Context, req models.CreateWorkoverRequest) (models.Workover, error)
	patchWorkoverFunc  func(ctx context.Context, id int64, p models.WorkoverPatch) (models.Workover, error)
	deleteWorkoverFunc func(ctx context.Context, id int64) error

	listWorkoverUpdatesFunc  func(ctx context.Context) ([]models.WorkoverUpdateWithWorkover, error)
	workoverCostSummaryFunc  func(ctx context.Context, workoverID int64) (models.WorkoverCostSummary, error)
	createWorkoverUpdateFunc func(ctx context.Context, workoverID int64, req models.CreateWorkoverUpdateRequest) (models.WorkoverUpdateCreated, error)
	deleteWorkoverUpdateFunc func(ctx context.Context, id int64) error
}

var _ Store = (*mockStore)(nil)

func (m *mockStore) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func (m *mockStore) ListProduction(ctx context.Context, days int) ([]models.ProductionReading, error) {
	if m.listProductionFunc != nil {
		return m.listProductionFunc(ctx, days)
	}
	return []models.ProductionReading{}, nil
}

func (m *mockStore) UpsertProduction(ctx context.Context, readings []models.ProductionInput) (int, error) {
	if m.upsertProductionFunc != nil {
		return m.upsertProductionFunc(ctx, readings)
	}
	return len(readings), nil
}

func (m *mockStore) ListWells(ctx context.Context) ([]models.Well, error) {
	if m.listWellsFunc != nil {
		return m.listWellsFunc(ctx)
	}
	return []models.Well{}, nil
}

func (m *mockStore) DeleteWell(ctx context.Context, name string) error {
	if m.deleteWellFunc != nil {
		return m.deleteWellFunc(ctx, name)
	}
	return nil
}

func (m *mockStore) ListRigs(ctx context.Context) ([]models.Rig, error) {
	if m.listRigsFunc != nil {
		return m.listRigsFunc(ctx)
	}
	return []models.Rig{}, nil
}

func (m *mockStore) CreateRig(ctx context.Context, req models.CreateRigRequest) (models.Rig, error) {
	if m.createRigFunc != nil {
		return m.createRigFunc(ctx, req)
	}
	return models.Rig{}, nil
}

func (m *mockStore) DeleteRig(ctx context.Context, id int64) error {
	if m.deleteRigFunc != nil {
		return m.deleteRigFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) ListWellsDown(ctx context.Context) ([]models.WellDown, error) {
	if m.listWellsDownFunc != nil {
		return m.listWellsDownFunc(ctx)
	}
	return []models.WellDown{}, nil
}

func (m *mockStore) ListDeferred(ctx context.Context) ([]models.DeferredWell, error) {
	if m.listDeferredFunc != nil {
		return m.listDeferredFunc(ctx)
	}
	return []models.DeferredWell{}, nil
}

func (m *mockStore) UpsertWellsDown(ctx context.Context, records []models.WellDownInput) (int, error) {
	if m.upsertWellsDownFunc != nil {
		return m.upsertWellsDownFunc(ctx, records)
	}
	return len(records), nil
}

func (m *mockStore) PatchWellDown(ctx context.Context, id int64, p models.WellDownPatch) (models.WellDown, error) {
	if m.patchWellDownFunc != nil {
		return m.patchWellDownFunc(ctx, id, p)
	}
	return models.WellDown{ID: id}, nil
}

func (m *mockStore) DeleteWellDown(ctx context.Context, id int64) error {
	if m.deleteWellDownFunc != nil {
		return m.deleteWellDownFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) ListWorkovers(ctx context.Context) ([]models.Workover, error) {
	if m.listWorkoversFunc != nil {
		return m.listWorkoversFunc(ctx)
	}
	return []models.Workover{}, nil
}

func (m *mockStore) CreateWorkover(ctx context.Context, req models.CreateWorkoverRequest) (models.Workover, error) {
	if m.createWorkoverFunc != nil {
		return m.createWorkoverFunc(ctx, req)
	}
	return models.Workover{}, nil
}

func (m *mockStore) PatchWorkover(ctx context.Context, id int64, p models.WorkoverPatch) (models.Workover, error) {
	if m.patchWorkoverFunc != nil {
		return m.patchWorkoverFunc(ctx, id, p)
	}
	return models.Workover{ID: id}, nil
}

func (m *mockStore) DeleteWorkover(ctx context.Context, id int64) error {
	if m.deleteWorkoverFunc != nil {
		return m.deleteWorkoverFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) ListWorkoverUpdates(ctx context.Context) ([]models.WorkoverUpdateWithWorkover, error) {
	if m.listWorkoverUpdatesFunc != nil {
		return m.listWorkoverUpdatesFunc(ctx)
	}
	return []models.WorkoverUpdateWithWorkover{}, nil
}

func (m *mockStore) WorkoverCostSummary(ctx context.Context, workoverID int64) (models.WorkoverCostSummary, error) {
	if m.workoverCostSummaryFunc != nil {
		return m.workoverCostSummaryFunc(ctx, workoverID)
	}
	return models.WorkoverCostSummary{Updates: []models.WorkoverUpdate{}}, nil
}

func (m *mockStore) CreateWorkoverUpdate(ctx context.Context, workoverID int64, req models.CreateWorkoverUpdateRequest) (models.WorkoverUpdateCreated, error) {
	if m.createWorkoverUpdateFunc != nil {
		return m.createWorkoverUpdateFunc(ctx, workoverID, req)
	}
	return models.WorkoverUpdateCreated{WorkoverID: workoverID}, nil
}

func (m *mockStore) DeleteWorkoverUpdate(ctx context.Context, id int64) error {
	if m.deleteWorkoverUpdateFunc != nil {
		return m.deleteWorkoverUpdateFunc(ctx, id)
	}
	return nil
}
