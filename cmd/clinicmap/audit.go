package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gyeh/clinicmap/internal/logging"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Compare published county text with the county inferred from coordinates",
	RunE:  runAudit,
}

func init() {
	addDatasetFlags(auditCmd)
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := cmd.Context()

	validateDataset(log)
	rep := loadClinics(ctx, log, ingestOptions()).Audit

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Checked:\t%d\n", rep.Checked)
	_, _ = fmt.Fprintf(w, "Mismatches:\t%d\n", rep.Mismatches)
	if len(rep.Samples) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "ID\tNAME\tTEXT\tINFERRED\tLAT\tLNG")
		for _, m := range rep.Samples {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.5f\t%.5f\n",
				m.ID, m.OrgName, m.County, m.GeoCounty, m.Position.Lat, m.Position.Lng)
		}
	}
	return w.Flush()
}
