package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/clinicmap/internal/counter"
	"github.com/gyeh/clinicmap/internal/exitcode"
	"github.com/gyeh/clinicmap/internal/logging"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Read or bump the page-view counter",
}

var viewsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current total",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViews(cmd, counter.Store.Get)
	},
}

var viewsIncrCmd = &cobra.Command{
	Use:   "incr",
	Short: "Add one view and print the new total",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViews(cmd, counter.Store.Incr)
	},
}

func init() {
	viewsCmd.AddCommand(viewsGetCmd, viewsIncrCmd)
	rootCmd.AddCommand(viewsCmd)
}

func runViews(cmd *cobra.Command, op func(counter.Store, context.Context) (int64, error)) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := cmd.Context()

	store, closeStore := openStore(ctx, log)
	defer closeStore()

	n, err := op(store, ctx)
	if err != nil {
		log.Error().Err(err).Msg("view counter failed")
		os.Exit(exitcode.StoreError)
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

// openStore opens the configured counter and exits the process on failure.
func openStore(ctx context.Context, log zerolog.Logger) (counter.Store, func()) {
	if err := cfg.ValidateCounter(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	store, closeStore, err := counter.Open(ctx, cfg.Counter, log)
	if errors.Is(err, counter.ErrNotConfigured) {
		log.Error().Err(err).Msg("counter backend needs --dsn or --redis-addr")
		os.Exit(exitcode.UsageError)
	}
	if err != nil {
		log.Error().Err(err).Msg("counter connection failed")
		os.Exit(exitcode.StoreConnError)
	}
	return store, closeStore
}
