// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tomtom215/wellbore/internal/models"
)

// Deferred production windows. Recent covers the last RecentWindow;
// historical covers [now-HistoricalWindow, now-RecentWindow).
const (
	RecentWindow     = 3 * 24 * time.Hour
	HistoricalWindow = 30 * 24 * time.Hour
)

// underperformingRatio flags a well whose recent oil average falls below
// this fraction of its historical average.
var underperformingRatio = models.MoneyFromFloat(0.1)

// selectDeferred reports wells that are down or underperforming. Volumes are
// downtime_hours/24 days at the historical daily rate; a well without
// history defers nothing.
const selectDeferred = `
WITH recent AS (
	SELECT well,
	       AVG(avg_bopd) AS recent_oil,
	       MAX(data_date) AS last_date,
	       (ARRAY_AGG(status ORDER BY data_date DESC))[1] AS status,
	       (ARRAY_AGG(reason_down ORDER BY data_date DESC))[1] AS reason_down
	FROM production_data
	WHERE data_date >= @recent_since
	GROUP BY well
),
historical AS (
	SELECT well,
	       AVG(avg_bopd) AS hist_oil,
	       AVG(def_bopd) AS hist_gas,
	       AVG(dt_hrs) AS hist_water
	FROM production_data
	WHERE data_date >= @historical_since AND data_date < @recent_since
	GROUP BY well
),
windowed AS (
	SELECT r.well, r.status, r.reason_down, r.last_date,
	       COALESCE(r.recent_oil, 0) AS recent_oil,
	       COALESCE(h.hist_oil, 0) AS hist_oil,
	       COALESCE(h.hist_gas, 0) AS hist_gas,
	       COALESCE(h.hist_water, 0) AS hist_water,
	       GREATEST(FLOOR(EXTRACT(EPOCH FROM (@now::timestamptz - r.last_date)) / 3600), 0)::bigint AS downtime_hours
	FROM recent r
	LEFT JOIN historical h ON h.well = r.well
)
SELECT well, status, reason_down, last_date, downtime_hours,
       ROUND(hist_oil, 2) AS avg_oil_bopd,
       ROUND(hist_gas, 2) AS avg_gas_mcf,
       ROUND(hist_water, 2) AS avg_water_bbl,
       ROUND(hist_oil * downtime_hours / 24, 2) AS deferred_oil,
       ROUND(hist_gas * downtime_hours / 24, 2) AS deferred_gas,
       ROUND(hist_water * downtime_hours / 24, 2) AS deferred_water
FROM windowed
WHERE status = @status_down
   OR (hist_oil > 0 AND recent_oil < hist_oil * @underperforming_ratio::numeric)
ORDER BY deferred_oil DESC, downtime_hours DESC, well`

// deferredParams binds the windows relative to now.
func deferredParams(now time.Time) Params {
	return Params{
		Timestamp("now", now),
		Timestamp("recent_since", now.Add(-RecentWindow)),
		Timestamp("historical_since", now.Add(-HistoricalWindow)),
		Text("status_down", models.StatusDown),
		Decimal("underperforming_ratio", underperformingRatio),
	}
}

// ListDeferred returns wells that are down, or producing under a tenth of
// their historical oil rate, with the volume deferred since their last
// reading. Largest deferred oil first, then longest downtime.
func (s *Store) ListDeferred(ctx context.Context) ([]models.DeferredWell, error) {
	e, err := s.executor(ctx)
	if err != nil {
		return nil, err
	}
	return Query(ctx, e, Op{"select", tableProduction}, selectDeferred,
		deferredParams(s.clock()),
		pgx.RowToStructByName[models.DeferredWell])
}
