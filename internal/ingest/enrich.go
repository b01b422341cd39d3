package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/model"
	"github.com/gyeh/clinicmap/internal/normalize"
)

var (
	// ErrMissingCoordinates marks a row without latitude or longitude.
	ErrMissingCoordinates = errors.New("missing lat/lng")
	// ErrMissingName marks a row without an organisation name or address.
	ErrMissingName = errors.New("missing org_name or address")
)

// RowError identifies a raw row that could not be enriched. Row is the
// 1-based position in the input.
type RowError struct {
	Row     int
	Name    string
	Address string
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %s | %s", e.Row, e.Err, e.Name, e.Address)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Options controls Enrich.
type Options struct {
	// Strict turns a row with missing data into a batch-wide failure instead
	// of skipping it.
	Strict bool
	// From, when set, attaches the distance from this point to every record.
	From *geo.LatLng
	// Bounds is the plausibility box for swap correction; zero means
	// geo.TaiwanBounds.
	Bounds geo.Bounds
	// Classifier infers GeoCounty; nil means geo.DefaultClassifier.
	Classifier *geo.Classifier
	// OnSkip is called for each skipped row in non-strict mode.
	OnSkip func(*RowError)
}

// Enrich turns raw rows into clinic records: coordinates are swap-corrected,
// the county is inferred from them, the stable id is derived and the
// remaining fields are coerced. rows is not modified.
//
// Rows without coordinates (or without a name or address) are skipped, or
// fail the whole batch with a *RowError when opts.Strict is set.
func Enrich(rows []model.RawClinicRow, opts Options) ([]model.Clinic, error) {
	bounds := opts.Bounds
	if bounds == (geo.Bounds{}) {
		bounds = geo.TaiwanBounds
	}
	classifier := opts.Classifier
	if classifier == nil {
		classifier = geo.DefaultClassifier()
	}

	out := make([]model.Clinic, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		if rowErr := checkRow(i+1, r); rowErr != nil {
			if opts.Strict {
				return nil, rowErr
			}
			if opts.OnSkip != nil {
				opts.OnSkip(rowErr)
			}
			continue
		}

		pos := bounds.Normalize(*r.Lat, *r.Lng)
		c := model.Clinic{
			ID:               normalize.ClinicID(r.County, r.OrgName, r.Address),
			County:           strings.TrimSpace(r.County),
			GeoCounty:        classifier.Classify(pos),
			OrgName:          strings.TrimSpace(r.OrgName),
			Address:          strings.TrimSpace(r.Address),
			OrgURL:           normalize.OptText(r.OrgURL),
			Phone:            normalize.OptText(r.Phone),
			MapURL:           normalize.OptText(r.MapURL),
			PayDetail:        normalize.OptText(r.PayDetail),
			LatLng:           pos,
			ThisWeek:         normalize.NonNegative(r.ThisWeek),
			NextWeek:         normalize.NonNegative(r.NextWeek),
			Next2Week:        normalize.NonNegative(r.Next2Week),
			Next3Week:        normalize.NonNegative(r.Next3Week),
			In4Weeks:         normalize.NonNegative(r.In4Weeks),
			Teleconsultation: r.Teleconsultation != nil && *r.Teleconsultation,
			HasQuota:         r.HasQuota != nil && *r.HasQuota,
			EditDate:         normalize.OptText(r.EditDate),
		}
		if c.EditDate != nil {
			c.EditedOn = normalize.ParseDate(*c.EditDate)
		}
		if opts.From != nil {
			c = c.WithDistance(geo.DistanceKm(pos, *opts.From))
		}
		out = append(out, c)
	}
	return out, nil
}

func checkRow(n int, r *model.RawClinicRow) *RowError {
	var err error
	switch {
	case r.Lat == nil || r.Lng == nil:
		err = ErrMissingCoordinates
	case strings.TrimSpace(r.OrgName) == "" || strings.TrimSpace(r.Address) == "":
		err = ErrMissingName
	default:
		return nil
	}
	return &RowError{Row: n, Name: r.OrgName, Address: r.Address, Err: err}
}
