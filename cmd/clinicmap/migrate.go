package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/clinicmap/internal/db"
	"github.com/gyeh/clinicmap/internal/exitcode"
	"github.com/gyeh/clinicmap/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the view-counter schema to Postgres",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := cmd.Context()

	if cfg.Counter.DSN == "" {
		log.Error().Msg("--dsn or CLINICMAP_DSN is required")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.Counter.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.StoreConnError)
	}
	defer pool.Close()

	if _, err := db.ApplyMigrations(ctx, pool, log); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(exitcode.StoreError)
	}

	log.Info().Msg("all migrations applied successfully")
	return nil
}
