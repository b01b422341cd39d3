package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/clinicmap/internal/model"
)

func TestAudit(t *testing.T) {
	clinics := []model.Clinic{
		{ID: "a", County: "臺北市", GeoCounty: "臺北市"},
		{ID: "b", County: "台北市", GeoCounty: "臺北市"}, // spelling variant only
		{ID: "c", County: "新北市", GeoCounty: "臺北市"},
		{ID: "d", County: "", GeoCounty: "臺北市"},
	}
	rep := Audit(clinics)
	if rep.Checked != 3 {
		t.Errorf("Checked = %d, want 3", rep.Checked)
	}
	if rep.Mismatches != 1 {
		t.Errorf("Mismatches = %d, want 1", rep.Mismatches)
	}
	if len(rep.Samples) != 1 || rep.Samples[0].ID != "c" {
		t.Errorf("Samples = %+v", rep.Samples)
	}
}

func TestAudit_SamplesCapped(t *testing.T) {
	var clinics []model.Clinic
	for i := 0; i < 12; i++ {
		clinics = append(clinics, model.Clinic{ID: fmt.Sprint(i), County: "花蓮縣", GeoCounty: "臺東縣"})
	}
	rep := Audit(clinics)
	if rep.Mismatches != 12 {
		t.Errorf("Mismatches = %d, want 12", rep.Mismatches)
	}
	if len(rep.Samples) != maxAuditSamples {
		t.Errorf("got %d samples, want %d", len(rep.Samples), maxAuditSamples)
	}
	if rep.Samples[0].ID != "0" || rep.Samples[4].ID != "4" {
		t.Errorf("samples should be the first mismatches in order")
	}
}

func TestLogAudit(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	LogAudit(log, AuditReport{Checked: 2})
	if !strings.Contains(buf.String(), `"level":"info"`) {
		t.Errorf("clean audit should log at info: %s", buf.String())
	}

	buf.Reset()
	LogAudit(log, Audit([]model.Clinic{{ID: "x", OrgName: "診所", County: "新北市", GeoCounty: "臺北市"}}))
	out := buf.String()
	if strings.Count(out, "\n") != 2 {
		t.Errorf("want summary plus one sample line, got:\n%s", out)
	}
	if !strings.Contains(out, `"county_text":"新北市"`) || !strings.Contains(out, `"county_geo":"臺北市"`) {
		t.Errorf("sample fields missing:\n%s", out)
	}
}
