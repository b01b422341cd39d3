package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gyeh/clinicmap/internal/model"
)

func printClinics(out io.Writer, clinics []model.Clinic) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tDISTANCE\tNAME\tCOUNTY\tSLOTS\tTELE\tPHONE\tADDRESS")
	_, _ = fmt.Fprintln(w, "-\t--------\t----\t------\t-----\t----\t-----\t-------")

	for i, c := range clinics {
		dist := "-"
		if c.DistanceKm != nil {
			dist = fmt.Sprintf("%.2f km", *c.DistanceKm)
		}
		tele := ""
		if c.Teleconsultation {
			tele = "yes"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			i+1, dist, c.OrgName, c.GeoCounty, c.TotalSlots(), tele, deref(c.Phone), c.Address)
	}
	_ = w.Flush()
}

func printCounts(out io.Writer, f model.Filter, counts model.AvailabilityCounts) {
	_, _ = fmt.Fprintf(out, "Filter: %s (all %d / has %d / none %d)\n", f, counts.All, counts.Has, counts.None)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
