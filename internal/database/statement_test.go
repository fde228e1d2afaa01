// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wellbore/internal/models"
)

func TestUpsertStatement(t *testing.T) {
	stmt, params := Upsert{
		Table:    "production_data",
		Conflict: []string{"well", "reading_date"},
		Insert: []Assignment{
			Set("well", Text("", "W-1")),
			Set("avg_bopd", Decimal("", models.MoneyFromInt(10))),
			Set("reading_date", Date("", time.Now())),
		},
		Update: []string{"avg_bopd"},
	}.Statement()

	assert.Equal(t,
		`INSERT INTO "production_data" ("well", "avg_bopd", "reading_date") VALUES (@well, @avg_bopd, @reading_date)`+
			` ON CONFLICT ("well", "reading_date") DO UPDATE SET "avg_bopd" = EXCLUDED."avg_bopd"`,
		stmt)
	require.Len(t, params, 3)
	assert.Equal(t, "avg_bopd", params[1].Name)
}

func TestUpsertStatement_DoNothing(t *testing.T) {
	stmt, _ := Upsert{
		Table:    "rigs",
		Conflict: []string{"name"},
		Insert:   []Assignment{Set("name", Text("", "Rig-7"))},
	}.Statement()
	assert.Contains(t, stmt, `ON CONFLICT ("name") DO NOTHING`)
}

func TestUpdateSetClause(t *testing.T) {
	var set UpdateSet
	assert.True(t, set.Empty())

	set.Add(Set("status", Text("", "Completed")))
	set.Add(Set("final_cost", Decimal("", models.MoneyFromInt(250))))
	clause, params := set.Clause()

	assert.Equal(t, `"status" = @status, "final_cost" = @final_cost`, clause)
	assert.Len(t, params, 2)
	assert.False(t, set.Empty())
}

func TestIdentRejectsUnsafeNames(t *testing.T) {
	for _, name := range []string{"", "Well", "well; DROP TABLE rigs", `a"b`, "1col"} {
		assert.Panics(t, func() { ident(name) }, name)
	}
	assert.Equal(t, `"date_up"`, ident("date_up"))
}

func TestProductionUpsert(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	stmt, params := productionUpsert(models.ProductionInput{Name: "W-9"}, now)

	assert.Contains(t, stmt, `ON CONFLICT ("well", "reading_date")`)
	assert.NotContains(t, stmt, `"reading_date" = EXCLUDED`)
	args, err := params.Bind()
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, args["status"])
	assert.Nil(t, args["reason_down"])
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), args["reading_date"])
	assert.Equal(t, now, args["data_date"])
}

func TestProductionSince(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		days int
		want time.Time
	}{
		{"explicit", 7, time.Date(2026, 4, 24, 8, 30, 0, 0, time.UTC)},
		{"zero uses default", 0, time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC)},
		{"negative uses default", -3, time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC)},
		{"huge is capped", 200000, now.AddDate(0, 0, -MaxProductionDays)},
		{"max int is capped", int(^uint(0) >> 1), now.AddDate(0, 0, -MaxProductionDays)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productionSince(now, tt.days)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Before(now))
		})
	}
}

func TestWellDownUpsert_KeepsDateDown(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	stmt, params := wellDownUpsert(models.WellDownInput{Well: "W-3"}, now)

	assert.Contains(t, stmt, `ON CONFLICT ("down_key")`)
	assert.NotContains(t, stmt, `"date_down" = EXCLUDED`)
	args, err := params.Bind()
	require.NoError(t, err)
	assert.Equal(t, models.WellDownStatusDown, args["status"])
	assert.Equal(t, now, args["date_down"])
	assert.Nil(t, args["date_up"])
}

func TestWellDownUpsert_UpStampsDateUp(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	_, params := wellDownUpsert(models.WellDownInput{Well: "W-3", Status: models.WellDownStatusUp}, now)
	args, err := params.Bind()
	require.NoError(t, err)
	assert.Equal(t, models.WellDownStatusUp, args["status"])
	assert.Equal(t, now, args["date_up"])
}

func TestWellDownClose(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)

	t.Run("minimal body keeps stored fields", func(t *testing.T) {
		stmt, params := wellDownClose(models.WellDownInput{Well: "W-3", Status: models.WellDownStatusUp}, now)
		assert.Equal(t,
			`UPDATE wells_down SET "status" = @status, "date_up" = @date_up WHERE well = @well AND status = 'Down'`,
			stmt)
		args, err := params.Bind()
		require.NoError(t, err)
		assert.Equal(t, "W-3", args["well"])
		assert.Equal(t, models.WellDownStatusUp, args["status"])
		assert.Equal(t, now, args["date_up"])
	})

	t.Run("supplied fields overwrite", func(t *testing.T) {
		comments := "pump replaced"
		explicit := models.FlexTime{Time: now.Add(-3 * time.Hour)}
		rate := models.MoneyFromInt(42)
		stmt, params := wellDownClose(models.WellDownInput{
			Well:     "W-3",
			Status:   models.WellDownStatusUp,
			DefBopd:  &rate,
			Comments: &comments,
			DateUp:   &explicit,
		}, now)
		assert.Contains(t, stmt, `"def_bopd" = @def_bopd, "comments" = @comments, "status" = @status`)
		assert.NotContains(t, stmt, `"lease"`)
		args, err := params.Bind()
		require.NoError(t, err)
		assert.Equal(t, explicit.Time, args["date_up"])
		assert.Equal(t, "pump replaced", args["comments"])
	})
}

func TestWellDownPatchSet(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	up := models.WellDownStatusUp
	comment := "back online"

	t.Run("closing stamps date_up", func(t *testing.T) {
		clause, params := wellDownPatchSet(models.WellDownPatch{Status: &up}, now).Clause()
		assert.Equal(t, `"status" = @status, "date_up" = @date_up`, clause)
		args, err := params.Bind()
		require.NoError(t, err)
		assert.Equal(t, now, args["date_up"])
	})

	t.Run("explicit date_up wins", func(t *testing.T) {
		explicit := models.FlexTime{Time: now.Add(-2 * time.Hour)}
		_, params := wellDownPatchSet(models.WellDownPatch{Status: &up, DateUp: &explicit}, now).Clause()
		args, err := params.Bind()
		require.NoError(t, err)
		assert.Equal(t, explicit.Time, args["date_up"])
	})

	t.Run("reopening clears date_up", func(t *testing.T) {
		down := models.WellDownStatusDown
		clause, params := wellDownPatchSet(models.WellDownPatch{Status: &down}, now).Clause()
		assert.Equal(t, `"status" = @status, "date_up" = @date_up`, clause)
		args, err := params.Bind()
		require.NoError(t, err)
		assert.Equal(t, models.WellDownStatusDown, args["status"])
		v, ok := args["date_up"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("comments only", func(t *testing.T) {
		clause, _ := wellDownPatchSet(models.WellDownPatch{Comments: &comment}, now).Clause()
		assert.Equal(t, `"comments" = @comments`, clause)
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, wellDownPatchSet(models.WellDownPatch{}, now).Empty())
	})
}

func TestWorkoverPatchSet(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	completed := "completed"
	onHold := "On Hold"
	cost := models.MoneyFromInt(1200)
	notes := "done"

	clause, params := workoverPatchSet(models.WorkoverPatch{Status: &completed, Cost: &cost, Notes: &notes}, now).Clause()
	assert.Equal(t, `"status" = @status, "completed_date" = @completed_date, "final_cost" = @final_cost, "completion_notes" = @completion_notes`, clause)
	args, err := params.Bind()
	require.NoError(t, err)
	assert.Equal(t, now, args["completed_date"])
	assert.Equal(t, "done", args["completion_notes"])

	clause, _ = workoverPatchSet(models.WorkoverPatch{Status: &onHold}, now).Clause()
	assert.Equal(t, `"status" = @status`, clause)

	empty := ""
	assert.True(t, workoverPatchSet(models.WorkoverPatch{Status: &empty, Rig: &empty}, now).Empty())
}
