package ingest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/clinicmap/internal/dataset"
	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/ingest"
	"github.com/gyeh/clinicmap/internal/model"
	"github.com/gyeh/clinicmap/internal/rank"
)

// fixtureJSON has four rows: one clean, one with swapped coordinates, one
// without coordinates and one whose county text disagrees with its position.
const fixtureJSON = `{
  "county": "臺北市",
  "total": 4,
  "rows": [
    {"county": "臺北市", "org_name": "心晴診所", "address": "臺北市信義區1號",
     "lat": 25.04, "lng": 121.56, "this_week": 2, "has_quota": true},
    {"county": "臺北市", "org_name": "安心身心科", "address": "臺北市中正區2號",
     "lat": "121.52", "lng": "25.05", "next_week": 1, "has_quota": true},
    {"county": "臺北市", "org_name": "未定位診所", "address": "臺北市大安區3號",
     "lat": null, "lng": null, "has_quota": true},
    {"county": "新北市", "org_name": "港都診所", "address": "高雄市前金區4號",
     "lat": 22.63, "lng": 120.30, "has_quota": false}
  ]
}`

func writeFixture(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestEndToEnd_IngestThenRank(t *testing.T) {
	ctx := context.Background()
	path := writeFixture(t, "clinics.json", fixtureJSON)

	res, err := ingest.Run(ctx, zerolog.Nop(), path, ingest.Options{})
	if err != nil {
		t.Fatalf("ingest.Run: %v", err)
	}

	t.Run("summary_metrics", func(t *testing.T) {
		s := res.Summary
		if s.RowsRead != 4 {
			t.Errorf("RowsRead: got %d, want 4", s.RowsRead)
		}
		if s.RowsEnriched != 3 {
			t.Errorf("RowsEnriched: got %d, want 3", s.RowsEnriched)
		}
		if s.RowsSkipped != 1 {
			t.Errorf("RowsSkipped: got %d, want 1", s.RowsSkipped)
		}
		if s.RowsSwapped != 1 {
			t.Errorf("RowsSwapped: got %d, want 1", s.RowsSwapped)
		}
		if s.RowsOutOfRange != 0 {
			t.Errorf("RowsOutOfRange: got %d, want 0", s.RowsOutOfRange)
		}
		if s.IngestBatchID == "" {
			t.Error("IngestBatchID should be set")
		}
	})

	t.Run("coordinates_corrected", func(t *testing.T) {
		c := res.Clinics[1]
		if c.Lat != 25.05 || c.Lng != 121.52 {
			t.Errorf("got (%v, %v), want (25.05, 121.52)", c.Lat, c.Lng)
		}
	})

	t.Run("audit", func(t *testing.T) {
		if res.Audit.Mismatches != 1 || res.Summary.RegionMismatch != 1 {
			t.Errorf("mismatches: audit %d summary %d, want 1", res.Audit.Mismatches, res.Summary.RegionMismatch)
		}
		if res.Audit.Samples[0].GeoCounty != "高雄市" {
			t.Errorf("inferred county = %q, want 高雄市", res.Audit.Samples[0].GeoCounty)
		}
	})

	t.Run("rank_from_corrected_record", func(t *testing.T) {
		candidates := model.FilterHas.Apply(res.Clinics)
		got := rank.Nearest(candidates, geo.LatLng{Lat: 25.051, Lng: 121.521}, rank.DefaultMaxRadiusKm)
		first, ok := got.Closest()
		if !ok {
			t.Fatal("expected a nearby clinic")
		}
		if first.OrgName != "安心身心科" {
			t.Errorf("closest = %s, want 安心身心科", first.OrgName)
		}
		if len(got.Ranked) != 2 {
			t.Errorf("ranked %d clinics, want 2", len(got.Ranked))
		}
		if got.InferredUserRegion != "臺北市" {
			t.Errorf("InferredUserRegion = %q", got.InferredUserRegion)
		}
	})
}

func TestEndToEnd_ParquetInput(t *testing.T) {
	ctx := context.Background()
	jsonPath := writeFixture(t, "clinics.json", fixtureJSON)
	rows, err := dataset.Open(ctx, jsonPath)
	if err != nil {
		t.Fatalf("dataset.Open: %v", err)
	}
	pqPath := filepath.Join(t.TempDir(), "clinics.parquet")
	if err := dataset.WriteParquet(pqPath, rows); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}

	fromJSON, err := ingest.Run(ctx, zerolog.Nop(), jsonPath, ingest.Options{})
	if err != nil {
		t.Fatalf("Run json: %v", err)
	}
	fromParquet, err := ingest.Run(ctx, zerolog.Nop(), pqPath, ingest.Options{})
	if err != nil {
		t.Fatalf("Run parquet: %v", err)
	}

	if len(fromJSON.Clinics) != len(fromParquet.Clinics) {
		t.Fatalf("clinic counts differ: %d vs %d", len(fromJSON.Clinics), len(fromParquet.Clinics))
	}
	for i := range fromJSON.Clinics {
		a, b := fromJSON.Clinics[i], fromParquet.Clinics[i]
		if a.ID != b.ID || a.LatLng != b.LatLng || a.GeoCounty != b.GeoCounty {
			t.Errorf("row %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestRun_StrictMode(t *testing.T) {
	path := writeFixture(t, "clinics.json", fixtureJSON)

	_, err := ingest.Run(context.Background(), zerolog.Nop(), path, ingest.Options{Strict: true})
	if err == nil {
		t.Fatal("expected strict mode to fail")
	}
	var pe *ingest.PipelineError
	if !errors.As(err, &pe) || pe.Phase != "enrich" {
		t.Errorf("err = %v, want enrich PipelineError", err)
	}
	if !errors.Is(err, ingest.ErrMissingCoordinates) {
		t.Errorf("err = %v, want ErrMissingCoordinates in chain", err)
	}
}

func TestRun_ReadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not_json", "hello"},
		{"scalar", "42"},
		{"truncated", `[{"org_name": "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, "bad.json", tt.body)
			_, err := ingest.Run(context.Background(), zerolog.Nop(), path, ingest.Options{})
			var pe *ingest.PipelineError
			if !errors.As(err, &pe) || pe.Phase != "read" {
				t.Errorf("err = %v, want read PipelineError", err)
			}
		})
	}
}

func TestRun_OnSkipStillCalled(t *testing.T) {
	path := writeFixture(t, "clinics.json", fixtureJSON)
	var rows []int
	_, err := ingest.Run(context.Background(), zerolog.Nop(), path, ingest.Options{
		OnSkip: func(re *ingest.RowError) { rows = append(rows, re.Row) },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 1 || rows[0] != 3 {
		t.Errorf("skipped rows = %v, want [3]", rows)
	}
}
