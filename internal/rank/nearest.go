// Package rank orders enriched clinics by proximity to a user.
package rank

import (
	"sort"

	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/model"
)

// DefaultMaxRadiusKm bounds "nearest" results to the same area and drops
// outliers whose coordinates survived normalization uncorrected.
const DefaultMaxRadiusKm = 30.0

// Result is the outcome of one ranking query.
type Result struct {
	// Ranked holds per-query copies with DistanceKm set, nearest first.
	Ranked []model.Clinic
	// InferredUserRegion is the county the user's position classifies into.
	InferredUserRegion string
	// RegionFallback is true when no candidate shared the user's county and
	// the whole candidate set was ranked instead.
	RegionFallback bool
}

// Closest returns the first ranked clinic, if any. An empty result means no
// clinic was found nearby; it is not an error.
func (r Result) Closest() (model.Clinic, bool) {
	if len(r.Ranked) == 0 {
		return model.Clinic{}, false
	}
	return r.Ranked[0], true
}

// Ranker ranks candidates with a fixed region classifier.
type Ranker struct {
	classifier *geo.Classifier
}

// NewRanker returns a Ranker using c, or the default county table when c is nil.
func NewRanker(c *geo.Classifier) *Ranker {
	if c == nil {
		c = geo.DefaultClassifier()
	}
	return &Ranker{classifier: c}
}

// Nearest ranks candidates by distance from user.
//
// The user's county is inferred first. Only candidates whose GeoCounty
// matches it are ranked, unless there are none, in which case all candidates
// are. Each ranked entry is a copy carrying its distance; candidates farther
// than maxRadiusKm (or with a non-finite distance) are dropped. The sort is
// stable, so equal distances keep their input order. A maxRadiusKm that is
// not positive (including NaN) selects DefaultMaxRadiusKm; it never means
// "no radius" or "empty result".
//
// candidates should already be filtered by availability. The caller must
// have a user coordinate; Nearest does not check for one.
func (r *Ranker) Nearest(candidates []model.Clinic, user geo.LatLng, maxRadiusKm float64) Result {
	if !(maxRadiusKm > 0) {
		maxRadiusKm = DefaultMaxRadiusKm
	}

	region := r.classifier.Classify(user)

	var sameRegion []model.Clinic
	for _, c := range candidates {
		if c.GeoCounty == region {
			sameRegion = append(sameRegion, c)
		}
	}
	pool, fallback := sameRegion, false
	if len(pool) == 0 {
		pool, fallback = candidates, true
	}

	ranked := make([]model.Clinic, 0, len(pool))
	for _, c := range pool {
		d := geo.DistanceKm(user, c.LatLng)
		if !(d <= maxRadiusKm) {
			continue
		}
		ranked = append(ranked, c.WithDistance(d))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].DistanceKm < *ranked[j].DistanceKm
	})

	return Result{Ranked: ranked, InferredUserRegion: region, RegionFallback: fallback}
}

var defaultRanker = NewRanker(nil)

// Nearest ranks with the default county table. A maxRadiusKm of zero, a
// negative value or NaN is replaced by DefaultMaxRadiusKm (30 km).
func Nearest(candidates []model.Clinic, user geo.LatLng, maxRadiusKm float64) Result {
	return defaultRanker.Nearest(candidates, user, maxRadiusKm)
}
