// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

/*
Package services provides suture.Service wrappers for Wellbore components.

Each wrapper turns a component's own lifecycle into suture's
Serve(ctx) error and returns when ctx is cancelled:

  - HTTPServerService: ListenAndServe plus a bounded graceful Shutdown
  - PoolStatsService: periodic database pool gauges for /metrics

Wrappers depend on small interfaces (HTTPServer, StatsPublisher) rather than
concrete types so they can be tested without a network or database.
*/
package services
