package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/clinicmap/internal/dataset"
	"github.com/gyeh/clinicmap/internal/exitcode"
	"github.com/gyeh/clinicmap/internal/ingest"
	"github.com/gyeh/clinicmap/internal/logging"
	"github.com/gyeh/clinicmap/internal/normalize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and coordinate stats (nothing is enriched)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.DatasetPath, "file", "", "Path to the clinic dataset (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := cmd.Context()

	validateDataset(log)

	sha, err := dataset.FileHash(cfg.DatasetPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.DatasetPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	rows, err := dataset.Open(ctx, cfg.DatasetPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read dataset")
		os.Exit(exitcode.ValidationError)
	}

	stats := ingest.CoordinateStats(rows, cfg.Bounds)

	byCounty := make(map[string]int)
	for _, r := range rows {
		byCounty[normalize.Field(r.County)]++
	}
	counties := make([]string, 0, len(byCounty))
	for name := range byCounty {
		counties = append(counties, name)
	}
	sort.Slice(counties, func(i, j int) bool {
		if byCounty[counties[i]] != byCounty[counties[j]] {
			return byCounty[counties[i]] > byCounty[counties[j]]
		}
		return counties[i] < counties[j]
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== clinicmap plan ===")
	fmt.Fprintf(out, "File:         %s\n", cfg.DatasetPath)
	fmt.Fprintf(out, "SHA-256:      %s\n", sha)
	fmt.Fprintf(out, "Size:         %d bytes\n", stat.Size())
	fmt.Fprintf(out, "Total rows:   %d\n", len(rows))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Coordinates:")
	fmt.Fprintf(out, "  %-14s %d\n", "in range", stats.InRange)
	fmt.Fprintf(out, "  %-14s %d\n", "swapped", stats.Swapped)
	fmt.Fprintf(out, "  %-14s %d\n", "out of range", stats.OutOfRange)
	fmt.Fprintf(out, "  %-14s %d\n", "missing", stats.Missing)
	fmt.Fprintf(out, "  %-14s %d\n", "no name/addr", stats.Invalid)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Rows by published county:")
	for _, name := range counties {
		label := name
		if label == "" {
			label = "(blank)"
		}
		fmt.Fprintf(out, "  %-10s %d\n", label, byCounty[name])
	}
	fmt.Fprintf(out, "\nUsable after correction: %d\n", stats.InRange+stats.Swapped+stats.OutOfRange)
	fmt.Fprintln(out, "Schema validation: OK")
	return nil
}
