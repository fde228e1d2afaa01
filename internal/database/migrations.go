// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomtom215/wellbore/internal/logging"
)

// Migration represents a versioned schema change.
type Migration struct {
	Version     int       `db:"version"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	SQL         string    `db:"-"`
	AppliedAt   time.Time `db:"applied_at"`
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// migrationLockID serializes concurrent migrators (two replicas starting
// together) through a transaction-scoped advisory lock.
const migrationLockID = 727_001

// migrations are append-only: never edit or remove one that has shipped.
var migrations = []Migration{
	{
		Version:     1,
		Name:        "create_production_data",
		Description: "Daily production readings, one row per well per day",
		SQL: `
CREATE TABLE production_data (
	id SERIAL PRIMARY KEY,
	well VARCHAR(100) NOT NULL,
	avg_bopd NUMERIC(10,2) NOT NULL DEFAULT 0,
	def_bopd NUMERIC(10,2) NOT NULL DEFAULT 0,
	dt_hrs NUMERIC(10,2) NOT NULL DEFAULT 0,
	status VARCHAR(50) NOT NULL DEFAULT 'Active',
	reason_down VARCHAR(255),
	reading_date DATE NOT NULL,
	data_date TIMESTAMPTZ NOT NULL,
	CONSTRAINT production_data_well_reading_date_key UNIQUE (well, reading_date)
);
CREATE INDEX idx_production_data_data_date ON production_data (data_date);`,
	},
	{
		Version:     2,
		Name:        "create_rigs",
		Description: "Contracted rigs",
		SQL: `
CREATE TABLE rigs (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	contractor VARCHAR(100) NOT NULL,
	day_rate NUMERIC(10,2) NOT NULL,
	status VARCHAR(50) NOT NULL DEFAULT 'Available',
	current_well VARCHAR(100)
);`,
	},
	{
		Version:     3,
		Name:        "create_wells_down",
		Description: "Downtime records; down_key enforces one open record per well",
		SQL: `
CREATE TABLE wells_down (
	id SERIAL PRIMARY KEY,
	well VARCHAR(100) NOT NULL,
	lease VARCHAR(100),
	route VARCHAR(100),
	def_bopd NUMERIC(10,2) NOT NULL DEFAULT 0,
	dt_hrs NUMERIC(10,2) NOT NULL DEFAULT 0,
	reason VARCHAR(255),
	status VARCHAR(10) NOT NULL DEFAULT 'Down' CHECK (status IN ('Down', 'Up')),
	date_down TIMESTAMPTZ NOT NULL,
	date_up TIMESTAMPTZ,
	pre_wo_cost NUMERIC(10,2),
	comments TEXT,
	down_key VARCHAR(100) GENERATED ALWAYS AS (CASE WHEN status = 'Down' THEN well END) STORED,
	CONSTRAINT wells_down_down_key_key UNIQUE (down_key)
);`,
	},
	{
		Version:     4,
		Name:        "create_workovers",
		Description: "Workover jobs with a computed work-order number",
		SQL: `
CREATE TABLE workovers (
	id SERIAL PRIMARY KEY,
	wo_number VARCHAR(20) GENERATED ALWAYS AS ('WO-' || lpad(id::text, 5, '0')) STORED,
	well VARCHAR(100) NOT NULL,
	rig VARCHAR(100) NOT NULL,
	reason VARCHAR(255) NOT NULL,
	type VARCHAR(50) NOT NULL DEFAULT 'Workover',
	est_cost NUMERIC(10,2),
	def_bopd NUMERIC(10,2),
	status VARCHAR(50) NOT NULL DEFAULT 'Active',
	start_date TIMESTAMPTZ NOT NULL,
	completed_date TIMESTAMPTZ,
	final_cost NUMERIC(10,2),
	notes TEXT,
	completion_notes TEXT,
	created_by VARCHAR(100)
);
CREATE INDEX idx_workovers_start_date ON workovers (start_date DESC);`,
	},
	{
		Version:     5,
		Name:        "create_workover_updates",
		Description: "Daily cost entries; no foreign key so workover deletes do not cascade",
		SQL: `
CREATE TABLE workover_updates (
	id SERIAL PRIMARY KEY,
	workover_id INTEGER NOT NULL,
	update_date DATE NOT NULL,
	daily_cost NUMERIC(10,2) NOT NULL DEFAULT 0,
	notes TEXT,
	created_by VARCHAR(100),
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_workover_updates_workover_id ON workover_updates (workover_id);`,
	},
}

// Migrations returns the registered migrations in version order.
func Migrations() []Migration {
	out := make([]Migration, len(migrations))
	copy(out, migrations)
	return out
}

// Migrate applies every migration not yet recorded in schema_migrations.
// Each migration runs in its own transaction with its bookkeeping row.
// Returns the number of migrations applied.
func (s *Store) Migrate(ctx context.Context) (int, error) {
	pool, err := s.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := pool.Exec(ctx, schemaMigrationsTable); err != nil {
		return 0, classify("create schema_migrations", err)
	}

	applied := 0
	for _, m := range migrations {
		done, err := s.applyMigration(ctx, m)
		if err != nil {
			return applied, err
		}
		if done {
			applied++
			logging.Info().Int("version", m.Version).Str("name", m.Name).Msg("Applied migration")
		}
	}
	if applied > 0 {
		logging.Info().Int("count", applied).Msg("Database migrations complete")
	}
	return applied, nil
}

func (s *Store) applyMigration(ctx context.Context, m Migration) (bool, error) {
	applied := false
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockID); err != nil {
			return err
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, m.Version).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}
		if _, err := tx.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name, description) VALUES ($1, $2, $3)`,
			m.Version, m.Name, m.Description); err != nil {
			return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, classify("migrate", err)
	}
	return applied, nil
}

// SchemaVersion returns the highest applied migration version, 0 when none
// or when schema_migrations does not exist yet.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	pool, err := s.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	var version int
	err = pool.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if isUndefinedTable(err) {
		return 0, nil
	}
	if err != nil {
		return 0, classify("schema version", err)
	}
	return version, nil
}

// MigrationHistory returns all applied migrations in order. A database that
// was never migrated has an empty history.
func (s *Store) MigrationHistory(ctx context.Context) ([]Migration, error) {
	pool, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	history, err := collectHistory(ctx, pool)
	if isUndefinedTable(err) {
		return []Migration{}, nil
	}
	if err != nil {
		return nil, classify("migration history", err)
	}
	return history, nil
}

func collectHistory(ctx context.Context, pool *pgxpool.Pool) ([]Migration, error) {
	rows, err := pool.Query(ctx, `SELECT version, name, description, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[Migration])
}
