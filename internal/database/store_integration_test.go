// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

//go:build integration

package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wellbore/internal/models"
	"github.com/tomtom215/wellbore/internal/testinfra"
)

// fakeClock is a settable clock for deterministic windows.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newIntegrationStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	pg := testinfra.StartPostgres(t)

	pm := NewPoolManager(pg.Database)
	t.Cleanup(pm.Close)

	clock := &fakeClock{now: time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)}
	store := NewStore(pm, WithClock(clock.Now), WithStatementTimeout(10*time.Second))

	// A fresh database reports version 0 before schema_migrations exists.
	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	require.Zero(t, version)
	history, err := store.MigrationHistory(context.Background())
	require.NoError(t, err)
	require.Empty(t, history)

	applied, err := store.Migrate(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(migrations), applied)
	return store, clock
}

func money(s string) *models.Money {
	m := models.Money{}
	if err := m.UnmarshalJSON([]byte(s)); err != nil {
		panic(err)
	}
	return &m
}

func TestStoreIntegration(t *testing.T) {
	store, clock := newIntegrationStore(t)
	ctx := context.Background()

	t.Run("migrations are idempotent", func(t *testing.T) {
		applied, err := store.Migrate(ctx)
		require.NoError(t, err)
		assert.Zero(t, applied)

		version, err := store.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(migrations), version)

		history, err := store.MigrationHistory(ctx)
		require.NoError(t, err)
		require.Len(t, history, len(migrations))
		assert.Equal(t, "create_production_data", history[0].Name)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
	})

	t.Run("rig round trip", func(t *testing.T) {
		rig, err := store.CreateRig(ctx, models.CreateRigRequest{
			Name: "Rig-7", Contractor: "Acme", DayRate: money("1500.00"),
		})
		require.NoError(t, err)
		assert.NotZero(t, rig.ID)
		assert.Equal(t, "1500.00", rig.DayRate.String())
		assert.Equal(t, models.RigStatusAvailable, rig.Status)
		assert.Nil(t, rig.CurrentWell)

		_, err = store.CreateRig(ctx, models.CreateRigRequest{Name: "Alpha", Contractor: "Nabors", DayRate: money("990.5")})
		require.NoError(t, err)

		rigs, err := store.ListRigs(ctx)
		require.NoError(t, err)
		require.Len(t, rigs, 2)
		assert.Equal(t, "Alpha", rigs[0].Name)

		require.NoError(t, store.DeleteRig(ctx, rig.ID))
		assert.ErrorIs(t, store.DeleteRig(ctx, rig.ID), ErrNotFound)

		rigs, err = store.ListRigs(ctx)
		require.NoError(t, err)
		assert.Len(t, rigs, 1)
	})

	t.Run("production upsert keeps one row per well per day", func(t *testing.T) {
		n, err := store.UpsertProduction(ctx, []models.ProductionInput{
			{Name: "W-1", AvgBopd: money("120")},
			{Name: "W-2", AvgBopd: money("80"), Status: models.StatusDown},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = store.UpsertProduction(ctx, []models.ProductionInput{{Name: "W-1", AvgBopd: money("125.5")}})
		require.NoError(t, err)

		rows, err := store.ListProduction(ctx, 30)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, r := range rows {
			if r.Well == "W-1" {
				assert.Equal(t, "125.50", r.Oil.String())
				assert.Equal(t, "W-1", r.WellName)
			}
		}

		wells, err := store.ListWells(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Well{{Name: "W-1"}, {Name: "W-2"}}, wells)

		require.NoError(t, store.DeleteWell(ctx, "W-2"))
		assert.ErrorIs(t, store.DeleteWell(ctx, "W-2"), ErrNotFound)
	})

	t.Run("production bulk insert is atomic", func(t *testing.T) {
		before, err := store.ListProduction(ctx, 30)
		require.NoError(t, err)

		_, err = store.UpsertProduction(ctx, []models.ProductionInput{
			{Name: "ATOMIC-1"},
			{Name: "ATOMIC-2", AvgBopd: money("100000000")},
		})
		require.Error(t, err)

		after, err := store.ListProduction(ctx, 30)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("deferred production", func(t *testing.T) {
		start := clock.Now()
		t.Cleanup(func() { clock.Set(start) })

		// Ten days of healthy history, then a Down reading two days ago.
		for d := 12; d >= 3; d-- {
			clock.Set(start.Add(-time.Duration(d) * 24 * time.Hour))
			_, err := store.UpsertProduction(ctx, []models.ProductionInput{{Name: "DEF-1", AvgBopd: money("100"), DefBopd: money("50")}})
			require.NoError(t, err)
		}
		clock.Set(start.Add(-48 * time.Hour))
		_, err := store.UpsertProduction(ctx, []models.ProductionInput{{Name: "DEF-1", Status: models.StatusDown}})
		require.NoError(t, err)
		clock.Set(start)

		deferred, err := store.ListDeferred(ctx)
		require.NoError(t, err)
		var found *models.DeferredWell
		for i := range deferred {
			if deferred[i].Well == "DEF-1" {
				found = &deferred[i]
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, models.StatusDown, found.Status)
		assert.Equal(t, int64(48), found.DowntimeHours)
		assert.Equal(t, "100.00", found.AvgOilBopd.String())
		assert.Equal(t, "200.00", found.DeferredOil.String())
		assert.Equal(t, "100.00", found.DeferredGas.String())
	})

	t.Run("deferred filter and order", func(t *testing.T) {
		start := clock.Now()
		t.Cleanup(func() { clock.Set(start) })

		seed := func(at time.Time, in models.ProductionInput) {
			t.Helper()
			clock.Set(at)
			_, err := store.UpsertProduction(ctx, []models.ProductionInput{in})
			require.NoError(t, err)
		}
		for d := 12; d >= 4; d-- {
			at := start.Add(-time.Duration(d) * 24 * time.Hour)
			seed(at, models.ProductionInput{Name: "WEAK-2", AvgBopd: money("50")})
			seed(at, models.ProductionInput{Name: "OK-3", AvgBopd: money("100")})
			seed(at, models.ProductionInput{Name: "EDGE-5", AvgBopd: money("100")})
			seed(at, models.ProductionInput{Name: "ROUND-6", AvgBopd: money("33.333")})
		}
		seed(start.Add(-36*time.Hour), models.ProductionInput{Name: "WEAK-2", AvgBopd: money("4")})
		seed(start.Add(-2*time.Hour), models.ProductionInput{Name: "OK-3", AvgBopd: money("90")})
		seed(start.Add(-24*time.Hour), models.ProductionInput{Name: "EDGE-5", AvgBopd: money("10")})
		seed(start.Add(-90*time.Minute), models.ProductionInput{Name: "NEW-4", Status: models.StatusDown})
		seed(start.Add(-5*time.Hour), models.ProductionInput{Name: "ROUND-6", Status: models.StatusDown})
		clock.Set(start)

		deferred, err := store.ListDeferred(ctx)
		require.NoError(t, err)
		byWell := map[string]models.DeferredWell{}
		var order []string
		for _, d := range deferred {
			switch d.Well {
			case "WEAK-2", "OK-3", "EDGE-5", "NEW-4", "ROUND-6":
				byWell[d.Well] = d
				order = append(order, d.Well)
			}
		}

		// Healthy wells and a well at exactly 10% of history are left out.
		assert.Equal(t, []string{"WEAK-2", "ROUND-6", "NEW-4"}, order)

		weak := byWell["WEAK-2"]
		assert.Equal(t, int64(36), weak.DowntimeHours)
		assert.Equal(t, "75.00", weak.DeferredOil.String())

		// 5h/24 x 33.333 = 6.944375
		rounded := byWell["ROUND-6"]
		assert.Equal(t, "6.94", rounded.DeferredOil.String())
		assert.Equal(t, "33.33", rounded.AvgOilBopd.String())

		// No history defers nothing but the well is still reported.
		fresh := byWell["NEW-4"]
		assert.Equal(t, int64(1), fresh.DowntimeHours)
		assert.True(t, fresh.DeferredOil.IsZero())
	})

	t.Run("wells down lifecycle", func(t *testing.T) {
		now := clock.Now()
		down := models.FlexTime{Time: now.Add(-5 * 24 * time.Hour)}
		n, err := store.UpsertWellsDown(ctx, []models.WellDownInput{{Well: "WD-1", DefBopd: money("100"), DateDown: &down}})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		// A second open record for the same well updates the first.
		later := models.FlexTime{Time: now.Add(-time.Hour)}
		reason := "ESP failure"
		_, err = store.UpsertWellsDown(ctx, []models.WellDownInput{{Well: "WD-1", DefBopd: money("100"), Reason: &reason, DateDown: &later}})
		require.NoError(t, err)

		rows, err := store.ListWellsDown(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 5, rows[0].DaysOffline)
		assert.Equal(t, "500.00", rows[0].ProductionDown.String())
		assert.Equal(t, "ESP failure", *rows[0].Reason)

		up := models.WellDownStatusUp
		patched, err := store.PatchWellDown(ctx, rows[0].ID, models.WellDownPatch{Status: &up})
		require.NoError(t, err)
		require.NotNil(t, patched.DateUp)
		assert.True(t, patched.DateUp.Equal(now))

		// Closed record frees the key; a new Down inserts a fresh row.
		_, err = store.UpsertWellsDown(ctx, []models.WellDownInput{{Well: "WD-1"}})
		require.NoError(t, err)
		rows, err = store.ListWellsDown(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, models.WellDownStatusDown, rows[0].Status)

		// Reopening the closed one collides with the open record.
		reopen := models.WellDownStatusDown
		_, err = store.PatchWellDown(ctx, patched.ID, models.WellDownPatch{Status: &reopen})
		var qe *QueryError
		require.ErrorAs(t, err, &qe)
		assert.True(t, qe.IsConflict())

		// With the other open record gone the reopen succeeds and date_up
		// is cleared, so days offline run to now again.
		require.NoError(t, store.DeleteWellDown(ctx, rows[0].ID))
		reopened, err := store.PatchWellDown(ctx, patched.ID, models.WellDownPatch{Status: &reopen})
		require.NoError(t, err)
		assert.Equal(t, models.WellDownStatusDown, reopened.Status)
		assert.Nil(t, reopened.DateUp)
		assert.Equal(t, 5, reopened.DaysOffline)
		assert.Equal(t, "500.00", reopened.ProductionDown.String())

		// An Up submission merges into the open record instead of adding one.
		comments := "pump swapped"
		_, err = store.UpsertWellsDown(ctx, []models.WellDownInput{{Well: "WD-1", Status: models.WellDownStatusUp, Comments: &comments}})
		require.NoError(t, err)
		rows, err = store.ListWellsDown(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, patched.ID, rows[0].ID)
		assert.Equal(t, models.WellDownStatusUp, rows[0].Status)
		require.NotNil(t, rows[0].DateUp)
		assert.True(t, rows[0].DateUp.Equal(now))
		assert.Equal(t, "ESP failure", *rows[0].Reason)
		assert.Equal(t, "pump swapped", *rows[0].Comments)

		_, err = store.PatchWellDown(ctx, 999999, models.WellDownPatch{Status: &up})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.PatchWellDown(ctx, patched.ID, models.WellDownPatch{})
		assert.ErrorIs(t, err, ErrNoFields)

		require.NoError(t, store.DeleteWellDown(ctx, patched.ID))
		assert.ErrorIs(t, store.DeleteWellDown(ctx, patched.ID), ErrNotFound)

		// Up with nothing open is stored as a closed record.
		_, err = store.UpsertWellsDown(ctx, []models.WellDownInput{{Well: "WD-2", Status: models.WellDownStatusUp}})
		require.NoError(t, err)
		rows, err = store.ListWellsDown(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "WD-2", rows[0].Well)
		assert.Equal(t, models.WellDownStatusUp, rows[0].Status)
		require.NotNil(t, rows[0].DateUp)
		require.NoError(t, store.DeleteWellDown(ctx, rows[0].ID))
	})

	t.Run("workover cost follows updates", func(t *testing.T) {
		wo, err := store.CreateWorkover(ctx, models.CreateWorkoverRequest{
			Well: "W-1", Rig: "Alpha", Reason: "Hole in tubing", EstCost: money("25000"),
		})
		require.NoError(t, err)
		assert.Regexp(t, `^WO-\d{5}$`, wo.WONumber)
		assert.Equal(t, models.WorkoverTypeDefault, wo.WorkType)
		assert.Equal(t, models.WorkoverStatusActive, wo.Status)
		assert.True(t, wo.StartDate.Equal(clock.Now()))
		assert.Nil(t, wo.Cost)

		first, err := store.CreateWorkoverUpdate(ctx, wo.ID, models.CreateWorkoverUpdateRequest{DailyCost: money("1000.25")})
		require.NoError(t, err)
		assert.Equal(t, "1000.25", first.TotalCost.String())

		second, err := store.CreateWorkoverUpdate(ctx, wo.ID, models.CreateWorkoverUpdateRequest{DailyCost: money("500")})
		require.NoError(t, err)
		assert.Equal(t, "1500.25", second.TotalCost.String())

		require.NoError(t, store.DeleteWorkoverUpdate(ctx, first.ID))
		assert.ErrorIs(t, store.DeleteWorkoverUpdate(ctx, first.ID), ErrNotFound)

		summary, err := store.WorkoverCostSummary(ctx, wo.ID)
		require.NoError(t, err)
		require.Len(t, summary.Updates, 1)
		assert.Equal(t, "500.00", summary.TotalCost.String())

		list, err := store.ListWorkovers(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		require.NotNil(t, list[0].Cost)
		assert.Equal(t, "500.00", list[0].Cost.String())

		joined, err := store.ListWorkoverUpdates(ctx)
		require.NoError(t, err)
		require.Len(t, joined, 1)
		assert.Equal(t, "W-1", joined[0].Well)
		assert.Equal(t, "Alpha", joined[0].Rig)

		_, err = store.CreateWorkoverUpdate(ctx, 424242, models.CreateWorkoverUpdateRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("concurrent updates keep the total consistent", func(t *testing.T) {
		wo, err := store.CreateWorkover(ctx, models.CreateWorkoverRequest{Well: "W-5", Rig: "Alpha", Reason: "Paraffin"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.CreateWorkoverUpdate(ctx, wo.ID, models.CreateWorkoverUpdateRequest{DailyCost: money("10")})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		summary, err := store.WorkoverCostSummary(ctx, wo.ID)
		require.NoError(t, err)
		assert.Equal(t, "100.00", summary.TotalCost.String())
	})

	t.Run("workover patch and delete", func(t *testing.T) {
		wo, err := store.CreateWorkover(ctx, models.CreateWorkoverRequest{Well: "W-9", Rig: "Alpha", Reason: "Pump change"})
		require.NoError(t, err)

		onHold := "On Hold"
		patched, err := store.PatchWorkover(ctx, wo.ID, models.WorkoverPatch{Status: &onHold})
		require.NoError(t, err)
		assert.Nil(t, patched.EndDate)

		completed := "Completed"
		notes := "Pump swapped"
		patched, err = store.PatchWorkover(ctx, wo.ID, models.WorkoverPatch{Status: &completed, Notes: &notes})
		require.NoError(t, err)
		require.NotNil(t, patched.EndDate)
		assert.Equal(t, "Pump swapped", *patched.CompletionNotes)

		_, err = store.PatchWorkover(ctx, wo.ID, models.WorkoverPatch{})
		assert.ErrorIs(t, err, ErrNoFields)

		require.NoError(t, store.DeleteWorkover(ctx, wo.ID))
		assert.ErrorIs(t, store.DeleteWorkover(ctx, wo.ID), ErrNotFound)
		_, err = store.PatchWorkover(ctx, wo.ID, models.WorkoverPatch{Status: &completed})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
