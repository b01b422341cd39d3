package model

import (
	"time"

	"github.com/gyeh/clinicmap/internal/geo"
)

// RawClinicRow mirrors one record of the source dataset before enrichment.
// Optional values are pointers so a missing field can be told apart from a
// zero one; Lat and Lng in particular may be absent for rows not yet geocoded.
type RawClinicRow struct {
	County           string   `parquet:"county" json:"county"`
	OrgName          string   `parquet:"org_name" json:"org_name"`
	OrgURL           *string  `parquet:"org_url,optional" json:"org_url"`
	Phone            *string  `parquet:"phone,optional" json:"phone"`
	Address          string   `parquet:"address" json:"address"`
	MapURL           *string  `parquet:"map_url,optional" json:"map_url"`
	Lat              *float64 `parquet:"lat,optional" json:"lat"`
	Lng              *float64 `parquet:"lng,optional" json:"lng"`
	PayDetail        *string  `parquet:"pay_detail,optional" json:"pay_detail"`
	ThisWeek         *int64   `parquet:"this_week,optional" json:"this_week"`
	NextWeek         *int64   `parquet:"next_week,optional" json:"next_week"`
	Next2Week        *int64   `parquet:"next_2_week,optional" json:"next_2_week"`
	Next3Week        *int64   `parquet:"next_3_week,optional" json:"next_3_week"`
	In4Weeks         *int64   `parquet:"in_4_weeks,optional" json:"in_4_weeks"`
	EditDate         *string  `parquet:"edit_date,optional" json:"edit_date"`
	Teleconsultation *bool    `parquet:"teleconsultation,optional" json:"teleconsultation"`
	HasQuota         *bool    `parquet:"has_quota,optional" json:"has_quota"`
}

// Clinic is an enriched, coordinate-corrected clinic record.
//
// County is the region text as published and is informational only;
// GeoCounty is inferred from the coordinates and is what filtering and
// ranking use. Optional text fields are nil when absent.
type Clinic struct {
	ID        string `json:"id"`
	County    string `json:"county"`
	GeoCounty string `json:"geo_county"`
	OrgName   string `json:"org_name"`
	Address   string `json:"address"`

	OrgURL    *string `json:"org_url"`
	Phone     *string `json:"phone"`
	MapURL    *string `json:"map_url"`
	PayDetail *string `json:"pay_detail"`

	geo.LatLng

	// Weekly appointment slot counts, current week first.
	ThisWeek  int `json:"this_week"`
	NextWeek  int `json:"next_week"`
	Next2Week int `json:"next_2_week"`
	Next3Week int `json:"next_3_week"`
	In4Weeks  int `json:"in_4_weeks"`

	Teleconsultation bool `json:"teleconsultation"`
	HasQuota         bool `json:"has_quota"`

	EditDate *string    `json:"edit_date"`
	EditedOn *time.Time `json:"edited_on,omitempty"`

	// DistanceKm is set on per-query copies only.
	DistanceKm *float64 `json:"distance,omitempty"`
}

// Coordinates returns the normalized position of the clinic.
func (c Clinic) Coordinates() geo.LatLng {
	return c.LatLng
}

// WithDistance returns a copy of c carrying d as its distance. c itself is
// left untouched.
func (c Clinic) WithDistance(d float64) Clinic {
	c.DistanceKm = &d
	return c
}

// TotalSlots sums the weekly slot counts.
func (c Clinic) TotalSlots() int {
	return c.ThisWeek + c.NextWeek + c.Next2Week + c.Next3Week + c.In4Weeks
}
