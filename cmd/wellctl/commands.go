// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wellbore/internal/config"
	"github.com/tomtom215/wellbore/internal/database"
	"github.com/tomtom215/wellbore/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const commandTimeout = 2 * time.Minute

// storeOpener connects to the configured database. Replaced in tests.
type storeOpener func() (*database.Store, func(), error)

func openStore() (*database.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: "console", Timestamp: true})

	pool := database.NewPoolManager(cfg.Database)
	store := database.NewStore(pool, database.WithStatementTimeout(cfg.Database.StatementTimeout))
	return store, pool.Close, nil
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(openStore)
}

func newRootCmdWith(open storeOpener) *cobra.Command {
	root := &cobra.Command{
		Use:           "wellctl",
		Short:         "Wellbore database administration",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(migrateCmd(open))
	root.AddCommand(statusCmd(open))
	root.AddCommand(migrationsCmd())
	root.AddCommand(versionCmd())
	return root
}

func migrateCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeFn, err := open()
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			applied, err := store.Migrate(ctx)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", applied)
			return nil
		},
	}
}

func statusCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the applied schema version and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeFn, err := open()
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			current, err := store.SchemaVersion(ctx)
			if err != nil {
				return fmt.Errorf("schema version: %w", err)
			}
			history, err := store.MigrationHistory(ctx)
			if err != nil {
				return fmt.Errorf("migration history: %w", err)
			}

			out := cmd.OutOrStdout()
			latest := database.Migrations()
			fmt.Fprintf(out, "Schema version: %d of %d\n\n", current, latest[len(latest)-1].Version)
			return writeMigrations(out, history, true)
		},
	}
}

func migrationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrations",
		Short: "List the migrations built into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeMigrations(cmd.OutOrStdout(), database.Migrations(), false)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wellctl %s\n", version)
		},
	}
}

func writeMigrations(out io.Writer, ms []database.Migration, withApplied bool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if withApplied {
		fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED")
	} else {
		fmt.Fprintln(tw, "VERSION\tNAME\tDESCRIPTION")
	}
	for _, m := range ms {
		if withApplied {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", m.Version, m.Name, m.AppliedAt.UTC().Format(time.RFC3339))
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", m.Version, m.Name, m.Description)
		}
	}
	return tw.Flush()
}
