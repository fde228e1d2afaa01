// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

/*
Package api provides the HTTP REST API layer for Wellbore.

Every endpoint is a thin handler over the Store interface: decode and
validate the request, make one store call, encode the result. Business rules
such as downtime keys, workover numbering and cost rollups live in the
database package.

Endpoints:

	GET    /health                  database reachability, 200 or 503
	GET    /metrics                 Prometheus exposition
	GET    /swagger/*               Swagger UI and /swagger/doc.json
	GET    /production?days=N       readings for the last N days (default 30)
	POST   /production              bulk upsert, body must be an array
	GET    /wells                   distinct well names
	DELETE /wells/{wellName}        remove a well's readings
	GET    /rigs                    list rigs
	POST   /rigs                    create a rig
	DELETE /rigs/{id}               delete a rig
	GET    /wells-down              downtime records with days offline
	GET    /wells-down/deferred     deferred production estimate
	POST   /wells-down              upsert one record or an array
	PATCH  /wells-down/{id}         status, date_up, comments
	DELETE /wells-down/{id}         delete a downtime record
	GET    /workovers               list workovers
	POST   /workovers               create a workover
	PATCH  /workovers/{id}          status, rig, cost, notes
	DELETE /workovers/{id}          delete a workover
	GET    /workover-updates        all updates, or ?workover_id=N for one job
	POST   /workover-updates        add a daily cost entry
	DELETE /workover-updates?update_id=N

Every handler carries swag annotations; the generated document lives in the
docs package and is registered by importing it from main.

Errors use the envelope {"error": "..."} with an optional "details" member.
Store failures map to status codes in respondStoreError.

Middleware (see router.go): request ID and access log, real IP, panic
recovery, Prometheus metrics, CORS with a 204 for every OPTIONS request,
gzip compression, and an httprate limiter on the resource routes.

See Also:

  - internal/database: the Store implementation
  - internal/middleware: request ID and metrics middleware
  - internal/models: request and response types
*/
package api
