package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/gyeh/clinicmap/internal/exitcode"
	"github.com/gyeh/clinicmap/internal/ingest"
	"github.com/gyeh/clinicmap/internal/model"
)

func ingestOptions() ingest.Options {
	return ingest.Options{Strict: cfg.Strict, Bounds: cfg.Bounds}
}

func validateDataset(log zerolog.Logger) {
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
}

// loadClinics runs the ingest pipeline and exits the process on failure.
func loadClinics(ctx context.Context, log zerolog.Logger, opts ingest.Options) *ingest.Result {
	res, err := ingest.Run(ctx, log, cfg.DatasetPath, opts)
	if err == nil {
		return res
	}
	var pe *ingest.PipelineError
	if errors.As(err, &pe) {
		log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("ingest failed")
		if pe.Phase == "read" {
			os.Exit(exitcode.ValidationError)
		}
		os.Exit(exitcode.DataError)
	}
	log.Error().Err(err).Msg("ingest failed")
	os.Exit(exitcode.DataError)
	return nil
}

func selectedFilter() model.Filter {
	// cfg.Validate has already rejected unknown names.
	f, _ := model.ParseFilter(cfg.Filter)
	return f
}
