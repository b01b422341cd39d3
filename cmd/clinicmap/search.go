package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/clinicmap/internal/exitcode"
	"github.com/gyeh/clinicmap/internal/logging"
	"github.com/gyeh/clinicmap/internal/model"
	"github.com/gyeh/clinicmap/internal/rank"
)

var searchKeyword string

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the first clinic whose name or address contains a keyword",
	RunE:  runSearch,
}

func init() {
	addDatasetFlags(searchCmd)
	f := searchCmd.Flags()
	f.StringVar(&searchKeyword, "q", "", "Keyword to look for (required)")
	f.StringVar(&cfg.Filter, "filter", cfg.Filter, "Availability filter: all, has or none")
	_ = searchCmd.MarkFlagRequired("q")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := cmd.Context()

	validateDataset(log)
	res := loadClinics(ctx, log, ingestOptions())

	c, ok := rank.Search(selectedFilter().Apply(res.Clinics), searchKeyword)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "no clinic matches %q\n", searchKeyword)
		os.Exit(exitcode.NotFound)
	}

	printClinics(cmd.OutOrStdout(), []model.Clinic{c})
	return nil
}
