package model

import "time"

// IngestSummary captures metrics from a single dataset ingest run.
type IngestSummary struct {
	FilePath       string
	IngestBatchID  string
	RowsRead       int
	RowsEnriched   int
	RowsSkipped    int
	RowsSwapped    int
	RowsOutOfRange int
	RegionMismatch int
	DurationRead   time.Duration
	DurationEnrich time.Duration
	DurationTotal  time.Duration
}
