// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

/*
Package database is the PostgreSQL store behind the Wellbore API.

Layers, leaves first:

  - PoolManager: creates one pgxpool.Pool on first use and hands the same
    pool to every caller for the life of the process. Concurrent first
    callers share a single dial. Dials run behind a circuit breaker.
  - Params / Executor: every statement takes its values as named, typed
    parameters (@name) bound out of band. Executor applies the statement
    timeout, records metrics, and classifies failures into ConnectionError
    and QueryError.
  - Upsert and UpdateSet: INSERT ... ON CONFLICT statements and PATCH SET
    clauses assembled from constant column names and bound parameters.
  - Store: the per-entity operations used by the HTTP handlers, including
    the deferred production rollup and the workover cost recompute.

Column names are the only identifiers ever placed in statement text and they
come from constants in this package.
*/
package database
