package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/clinicmap/internal/dataset"
	"github.com/gyeh/clinicmap/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Result is the output of Run.
type Result struct {
	Clinics []model.Clinic
	Audit   AuditReport
	Summary *model.IngestSummary
}

// Run executes the full ingest pipeline: read → enrich → audit. The
// enriched collection is meant to be built once and reused as the candidate
// set for every ranking call.
func Run(ctx context.Context, log zerolog.Logger, path string, opts Options) (*Result, error) {
	totalStart := time.Now()
	batchID := uuid.New()
	log = log.With().Str("batch", batchID.String()).Logger()

	// Phase 1: Read
	log.Info().Str("file", path).Msg("reading dataset")
	readStart := time.Now()
	rows, err := dataset.Open(ctx, path)
	if err != nil {
		return nil, &PipelineError{Phase: "read", Err: err}
	}
	readDur := time.Since(readStart)

	// Phase 2: Enrich
	var skipped int
	userSkip := opts.OnSkip
	opts.OnSkip = func(re *RowError) {
		skipped++
		log.Warn().
			Int("row", re.Row).
			Str("name", re.Name).
			Str("address", re.Address).
			Str("reason", re.Err.Error()).
			Msg("row skipped")
		if userSkip != nil {
			userSkip(re)
		}
	}

	enrichStart := time.Now()
	clinics, err := Enrich(rows, opts)
	if err != nil {
		return nil, &PipelineError{Phase: "enrich", Err: err}
	}
	enrichDur := time.Since(enrichStart)

	stats := CoordinateStats(rows, opts.Bounds)

	// Phase 3: Audit
	rep := Audit(clinics)
	LogAudit(log, rep)

	summary := &model.IngestSummary{
		FilePath:       path,
		IngestBatchID:  batchID.String(),
		RowsRead:       len(rows),
		RowsEnriched:   len(clinics),
		RowsSkipped:    skipped,
		RowsSwapped:    stats.Swapped,
		RowsOutOfRange: stats.OutOfRange,
		RegionMismatch: rep.Mismatches,
		DurationRead:   readDur,
		DurationEnrich: enrichDur,
		DurationTotal:  time.Since(totalStart),
	}

	log.Info().
		Int("rows_read", summary.RowsRead).
		Int("rows_enriched", summary.RowsEnriched).
		Int("rows_skipped", summary.RowsSkipped).
		Int("rows_swapped", summary.RowsSwapped).
		Int("rows_out_of_range", summary.RowsOutOfRange).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return &Result{Clinics: clinics, Audit: rep, Summary: summary}, nil
}
