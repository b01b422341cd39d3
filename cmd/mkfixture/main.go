// mkfixture converts a clinic dataset (JSON or Parquet) into a small
// representative Parquet fixture. Rows with unusual coordinates are kept
// first so tests see every correction path.
// Usage: go run ./cmd/mkfixture --in testdata/clinics.json --out testdata/clinics-small.parquet --rows 200
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gyeh/clinicmap/internal/dataset"
	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/ingest"
	"github.com/gyeh/clinicmap/internal/model"
)

func main() {
	in := flag.String("in", "testdata/clinics.json", "input dataset (.json or .parquet)")
	out := flag.String("out", "testdata/clinics-small.parquet", "output parquet")
	maxRows := flag.Int("rows", 200, "max rows to output (0 keeps all)")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	rows, err := dataset.Open(context.Background(), *in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Scanned %d rows\n", len(rows))

	if *checkOnly {
		printStats(rows)
		return
	}

	selected := rows
	if *maxRows > 0 && len(rows) > *maxRows {
		selected = sample(rows, *maxRows)
	}

	if err := dataset.WriteParquet(*out, selected); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
	printStats(selected)
}

// sample picks up to n rows: a quota of each unusual coordinate status and
// of rows with open slots, then fills the rest in input order.
func sample(rows []model.RawClinicRow, n int) []model.RawClinicRow {
	type bucket struct {
		name string
		want int
		rows []model.RawClinicRow
	}
	buckets := []*bucket{
		{name: string(ingest.StatusSwapped), want: 10},
		{name: string(ingest.StatusMissing), want: 10},
		{name: string(ingest.StatusOutOfRange), want: 5},
		{name: string(ingest.StatusInvalid), want: 5},
		{name: "has_quota", want: n / 4},
		{name: "general", want: n},
	}
	byName := make(map[string]*bucket, len(buckets))
	for _, b := range buckets {
		byName[b.name] = b
	}

	for _, r := range rows {
		b := byName[string(ingest.RowStatus(r, geo.TaiwanBounds))]
		if b == nil {
			if r.HasQuota != nil && *r.HasQuota {
				b = byName["has_quota"]
			} else {
				b = byName["general"]
			}
		}
		if len(b.rows) < b.want {
			b.rows = append(b.rows, r)
		} else if len(byName["general"].rows) < n {
			byName["general"].rows = append(byName["general"].rows, r)
		}
	}

	var selected []model.RawClinicRow
	for _, b := range buckets {
		for _, r := range b.rows {
			if len(selected) >= n {
				return selected
			}
			selected = append(selected, r)
		}
	}
	return selected
}

func printStats(rows []model.RawClinicRow) {
	s := ingest.CoordinateStats(rows, geo.TaiwanBounds)
	quota := 0
	for _, r := range rows {
		if r.HasQuota != nil && *r.HasQuota {
			quota++
		}
	}
	fmt.Println("Coordinate status:")
	fmt.Printf("  %-12s %d\n", ingest.StatusInRange, s.InRange)
	fmt.Printf("  %-12s %d\n", ingest.StatusSwapped, s.Swapped)
	fmt.Printf("  %-12s %d\n", ingest.StatusOutOfRange, s.OutOfRange)
	fmt.Printf("  %-12s %d\n", ingest.StatusMissing, s.Missing)
	fmt.Printf("  %-12s %d\n", ingest.StatusInvalid, s.Invalid)
	fmt.Printf("  %-12s %d\n", "has_quota", quota)
}
