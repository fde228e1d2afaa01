// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

/*
Package main is the entry point for the Wellbore API server.

Wellbore serves daily well production, rigs, well downtime with deferred
production estimates, and workovers with their daily cost updates over a
JSON HTTP API backed by PostgreSQL.

# Startup

 1. Configuration: koanf v2 layers defaults, an optional YAML file and
    environment variables
 2. Logging: zerolog, JSON or console
 3. Database: a lazily dialled pgx pool behind a circuit breaker
 4. Migrations: applied when DB_AUTO_MIGRATE is true (the default)
 5. Supervisor tree: pool statistics and the HTTP server under suture v4

# Configuration

Environment variables (highest priority):

	SQL_SERVER / DB_HOST        database host
	SQL_DATABASE / DB_NAME      database name (default workover)
	SQL_USER / DB_USER          database user
	SQL_PASSWORD / DB_PASSWORD  database password
	DB_SSLMODE                  disable, require (default), verify-ca, verify-full
	DB_STATEMENT_TIMEOUT        per-statement deadline (default 30s)
	HTTP_PORT                   listen port (default 7071)
	CORS_ORIGINS                comma-separated allowed origins (default *)
	RATE_LIMIT_REQS             requests per window per client IP (default 100)
	LOG_LEVEL, LOG_FORMAT       logging level and format

A YAML file is read from CONFIG_PATH, ./config.yaml or
/etc/wellbore/config.yaml when present.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and drains in-flight requests for up to
SHUTDOWN_TIMEOUT before the pool is closed.

# Example

	export SQL_SERVER=db.internal SQL_USER=wellbore SQL_PASSWORD=secret
	./wellbore
	curl -s localhost:7071/health
*/
package main
