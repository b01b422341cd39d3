package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/clinicmap/internal/exitcode"
	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/logging"
)

var (
	ingestOut     string
	ingestFromLat float64
	ingestFromLng float64
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Enrich a dataset and write the clinic records as JSON",
	RunE:  runIngest,
}

func init() {
	addDatasetFlags(ingestCmd)
	f := ingestCmd.Flags()
	f.StringVar(&ingestOut, "out", "", "Output file (default stdout)")
	f.Float64Var(&ingestFromLat, "from-lat", 0, "Latitude to measure each record's distance from")
	f.Float64Var(&ingestFromLng, "from-lng", 0, "Longitude to measure each record's distance from")
	ingestCmd.MarkFlagsRequiredTogether("from-lat", "from-lng")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := cmd.Context()

	validateDataset(log)

	opts := ingestOptions()
	if cmd.Flags().Changed("from-lat") {
		from := geo.LatLng{Lat: ingestFromLat, Lng: ingestFromLng}
		opts.From = &from
	}

	res := loadClinics(ctx, log, opts)

	var out io.Writer = cmd.OutOrStdout()
	if ingestOut != "" {
		f, err := os.Create(ingestOut)
		if err != nil {
			log.Error().Err(err).Msg("create output file")
			os.Exit(exitcode.UsageError)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.Clinics); err != nil {
		return fmt.Errorf("write clinics: %w", err)
	}

	s := res.Summary
	fmt.Fprintf(cmd.ErrOrStderr(), "Ingest complete: %d of %d rows enriched, %d skipped, %d swapped, %d county mismatches (%.1fs)\n",
		s.RowsEnriched, s.RowsRead, s.RowsSkipped, s.RowsSwapped, s.RegionMismatch, s.DurationTotal.Seconds())
	return nil
}
