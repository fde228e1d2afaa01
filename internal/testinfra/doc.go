// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run a real PostgreSQL server so the
// store's upserts, generated columns and transactions are exercised against
// the engine they target:
//
//	func TestStore(t *testing.T) {
//	    pg := testinfra.StartPostgres(t)
//	    pm := database.NewPoolManager(pg.Database)
//	    defer pm.Close()
//
//	    store := database.NewStore(pm)
//	    if _, err := store.Migrate(context.Background()); err != nil {
//	        t.Fatal(err)
//	    }
//	    // ...
//	}
//
// Files in this package carry the integration build tag; run them with
// `go test -tags integration ./...`. Tests are skipped when Docker is not
// available. The first run pulls the postgres image.
package testinfra
