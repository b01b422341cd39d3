package ingest

import (
	"errors"

	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/model"
)

// CoordStatus describes a raw row's coordinates relative to the
// plausibility box.
type CoordStatus string

const (
	StatusInRange    CoordStatus = "in_range"     // usable as published
	StatusSwapped    CoordStatus = "swapped"      // usable after exchanging lat and lng
	StatusOutOfRange CoordStatus = "out_of_range" // outside either way; kept as published
	StatusMissing    CoordStatus = "missing"      // no lat or lng
	StatusInvalid    CoordStatus = "invalid"      // coordinates present, name or address blank
)

// RowStatus classifies one raw row without enriching it. A zero bounds
// means geo.TaiwanBounds.
func RowStatus(r model.RawClinicRow, bounds geo.Bounds) CoordStatus {
	if bounds == (geo.Bounds{}) {
		bounds = geo.TaiwanBounds
	}
	if re := checkRow(0, &r); re != nil {
		if errors.Is(re.Err, ErrMissingCoordinates) {
			return StatusMissing
		}
		return StatusInvalid
	}
	raw := geo.LatLng{Lat: *r.Lat, Lng: *r.Lng}
	switch {
	case bounds.Contains(raw):
		return StatusInRange
	case bounds.Contains(geo.LatLng{Lat: raw.Lng, Lng: raw.Lat}):
		return StatusSwapped
	default:
		return StatusOutOfRange
	}
}

// CoordStats tallies RowStatus over a dataset.
type CoordStats struct {
	InRange    int
	Swapped    int
	OutOfRange int
	Missing    int
	Invalid    int
}

// CoordinateStats classifies every row.
func CoordinateStats(rows []model.RawClinicRow, bounds geo.Bounds) CoordStats {
	var s CoordStats
	for _, r := range rows {
		switch RowStatus(r, bounds) {
		case StatusInRange:
			s.InRange++
		case StatusSwapped:
			s.Swapped++
		case StatusOutOfRange:
			s.OutOfRange++
		case StatusMissing:
			s.Missing++
		case StatusInvalid:
			s.Invalid++
		}
	}
	return s
}
