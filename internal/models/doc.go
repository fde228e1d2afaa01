// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

/*
Package models defines the records stored by Wellbore and the request bodies
the API accepts for them.

Stored records:

  - ProductionReading: one row per well per calendar day
  - Rig: drilling/workover rig with a day rate
  - Well: distinct well names derived from production readings
  - WellDown: downtime record, at most one open (Down) per well
  - Workover and WorkoverUpdate: a job and its daily cost entries

Computed read models:

  - DeferredWell: wells with lost production and the estimated deferred volume

Monetary and rate columns are NUMERIC(10,2) and use Money, which always
renders two fraction digits in JSON. Struct db tags name the result columns
that pgx maps by name; fields tagged db:"-" are filled in by the store.
*/
package models
