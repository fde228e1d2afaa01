// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/wellbore/internal/api"
	"github.com/tomtom215/wellbore/internal/config"
	"github.com/tomtom215/wellbore/internal/database"
	"github.com/tomtom215/wellbore/internal/logging"
	"github.com/tomtom215/wellbore/internal/supervisor"
	"github.com/tomtom215/wellbore/internal/supervisor/services"
)

// migrateTimeout bounds startup migrations, including the first dial.
const migrateTimeout = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("database", cfg.Database.Redacted()).
		Str("addr", cfg.Server.Addr()).
		Bool("auto_migrate", cfg.Database.AutoMigrate).
		Msg("Starting Wellbore")

	// The pool is dialled lazily; a database outage at boot does not stop
	// the server, /health reports it instead.
	pool := database.NewPoolManager(cfg.Database)
	defer pool.Close()

	store := database.NewStore(pool, database.WithStatementTimeout(cfg.Database.StatementTimeout))

	if cfg.Database.AutoMigrate {
		migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), migrateTimeout)
		applied, err := store.Migrate(migrateCtx)
		cancelMigrate()
		if err != nil {
			logging.Error().Err(err).Int("applied", applied).Msg("Schema migration failed; requests will fail until the database is reachable")
		}
	}

	handler := api.NewHandler(store)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewPoolStatsService(pool, services.DefaultPoolStatsInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Wellbore stopped")
}
