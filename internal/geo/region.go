package geo

import (
	"errors"
	"math"
)

// Centroid is a named reference point for an administrative region.
type Centroid struct {
	Name string
	LatLng
}

// TaiwanCounties lists approximate centroids of the 22 counties and cities.
// The order is fixed: classification ties go to the earlier entry.
var TaiwanCounties = []Centroid{
	{Name: "基隆市", LatLng: LatLng{Lat: 25.128, Lng: 121.741}},
	{Name: "臺北市", LatLng: LatLng{Lat: 25.037, Lng: 121.564}},
	{Name: "新北市", LatLng: LatLng{Lat: 25.016, Lng: 121.465}},
	{Name: "桃園市", LatLng: LatLng{Lat: 24.993, Lng: 121.301}},
	{Name: "新竹市", LatLng: LatLng{Lat: 24.804, Lng: 120.971}},
	{Name: "新竹縣", LatLng: LatLng{Lat: 24.703, Lng: 121.125}},
	{Name: "苗栗縣", LatLng: LatLng{Lat: 24.56, Lng: 120.82}},
	{Name: "臺中市", LatLng: LatLng{Lat: 24.147, Lng: 120.673}},
	{Name: "彰化縣", LatLng: LatLng{Lat: 24.075, Lng: 120.542}},
	{Name: "南投縣", LatLng: LatLng{Lat: 23.96, Lng: 120.971}},
	{Name: "雲林縣", LatLng: LatLng{Lat: 23.707, Lng: 120.538}},
	{Name: "嘉義市", LatLng: LatLng{Lat: 23.48, Lng: 120.449}},
	{Name: "嘉義縣", LatLng: LatLng{Lat: 23.458, Lng: 120.255}},
	{Name: "臺南市", LatLng: LatLng{Lat: 23.0, Lng: 120.227}},
	{Name: "高雄市", LatLng: LatLng{Lat: 22.627, Lng: 120.301}},
	{Name: "屏東縣", LatLng: LatLng{Lat: 22.551, Lng: 120.548}},
	{Name: "宜蘭縣", LatLng: LatLng{Lat: 24.702, Lng: 121.738}},
	{Name: "花蓮縣", LatLng: LatLng{Lat: 23.991, Lng: 121.601}},
	{Name: "臺東縣", LatLng: LatLng{Lat: 22.984, Lng: 121.332}},
	{Name: "澎湖縣", LatLng: LatLng{Lat: 23.571, Lng: 119.579}},
	{Name: "金門縣", LatLng: LatLng{Lat: 24.436, Lng: 118.318}},
	{Name: "連江縣", LatLng: LatLng{Lat: 26.16, Lng: 119.95}},
}

// ErrNoCentroids is returned when a classifier is built from an empty table.
var ErrNoCentroids = errors.New("geo: classifier needs at least one centroid")

// Classifier assigns a coordinate to the nearest reference point.
//
// This is a nearest-centroid approximation, not a boundary lookup; points
// near a border can land in the neighbouring region.
// Safe for concurrent use.
type Classifier struct {
	centroids []Centroid
}

// NewClassifier copies centroids into a new Classifier.
func NewClassifier(centroids []Centroid) (*Classifier, error) {
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}
	cs := make([]Centroid, len(centroids))
	copy(cs, centroids)
	return &Classifier{centroids: cs}, nil
}

// Classify returns the label of the nearest centroid.
//
// The table is scanned in order with a strict less-than, so the first of
// several equidistant centroids wins. A non-comparable input (NaN) yields the
// first label.
func (c *Classifier) Classify(p LatLng) string {
	best := c.centroids[0].Name
	bestD := math.Inf(1)
	for _, ct := range c.centroids {
		if d := DistanceKm(p, ct.LatLng); d < bestD {
			bestD = d
			best = ct.Name
		}
	}
	return best
}

// Regions returns the centroid labels in table order.
func (c *Classifier) Regions() []string {
	names := make([]string, len(c.centroids))
	for i, ct := range c.centroids {
		names[i] = ct.Name
	}
	return names
}

var defaultClassifier = &Classifier{centroids: TaiwanCounties}

// DefaultClassifier returns the classifier over TaiwanCounties.
func DefaultClassifier() *Classifier {
	return defaultClassifier
}

// Classify uses the default county table.
func Classify(p LatLng) string {
	return defaultClassifier.Classify(p)
}
