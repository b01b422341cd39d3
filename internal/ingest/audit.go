package ingest

import (
	"github.com/rs/zerolog"

	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/model"
	"github.com/gyeh/clinicmap/internal/normalize"
)

// maxAuditSamples caps how many mismatches are kept for logging.
const maxAuditSamples = 5

// Mismatch is a record whose published county differs from the county
// inferred from its coordinates.
type Mismatch struct {
	ID        string
	OrgName   string
	County    string
	GeoCounty string
	Position  geo.LatLng
}

// AuditReport summarises county mismatches in a dataset.
type AuditReport struct {
	Checked    int
	Mismatches int
	Samples    []Mismatch
}

// Audit compares published county text with the inferred county. The
// inferred county stays authoritative; nothing is reconciled. Records with an
// empty County are not counted. 台/臺 spelling differences are ignored.
func Audit(clinics []model.Clinic) AuditReport {
	var rep AuditReport
	for _, c := range clinics {
		if c.County == "" || c.GeoCounty == "" {
			continue
		}
		rep.Checked++
		if normalize.Field(c.County) == normalize.Field(c.GeoCounty) {
			continue
		}
		rep.Mismatches++
		if len(rep.Samples) < maxAuditSamples {
			rep.Samples = append(rep.Samples, Mismatch{
				ID:        c.ID,
				OrgName:   c.OrgName,
				County:    c.County,
				GeoCounty: c.GeoCounty,
				Position:  c.LatLng,
			})
		}
	}
	return rep
}

// LogAudit writes the report at warn level when there are mismatches.
func LogAudit(log zerolog.Logger, rep AuditReport) {
	if rep.Mismatches == 0 {
		log.Info().Int("checked", rep.Checked).Msg("county text matches coordinates")
		return
	}
	log.Warn().
		Int("checked", rep.Checked).
		Int("mismatches", rep.Mismatches).
		Msg("county text disagrees with coordinates")
	for _, m := range rep.Samples {
		log.Warn().
			Str("id", m.ID).
			Str("name", m.OrgName).
			Str("county_text", m.County).
			Str("county_geo", m.GeoCounty).
			Float64("lat", m.Position.Lat).
			Float64("lng", m.Position.Lng).
			Msg("county mismatch")
	}
}
