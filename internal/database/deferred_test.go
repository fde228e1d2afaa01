// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wellbore/internal/models"
)

func TestDeferredParams(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	args, err := deferredParams(now).Bind()
	require.NoError(t, err)

	assert.Equal(t, now, args["now"])
	assert.Equal(t, time.Date(2026, 6, 7, 12, 0, 0, 0, time.UTC), args["recent_since"])
	assert.Equal(t, time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC), args["historical_since"])
	assert.Equal(t, models.StatusDown, args["status_down"])
	assert.True(t, decimal.RequireFromString("0.1").Equal(args["underperforming_ratio"].(decimal.Decimal)))
}

func TestSelectDeferredReferencesEveryParam(t *testing.T) {
	for _, p := range deferredParams(time.Now()) {
		assert.Contains(t, selectDeferred, "@"+p.Name)
	}
	assert.Contains(t, selectDeferred, "ORDER BY deferred_oil DESC, downtime_hours DESC")
}
