package geo

// LatLng is a WGS84 coordinate in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is a closed latitude/longitude box used as a plausibility test.
type Bounds struct {
	MinLat float64 `yaml:"min_lat"`
	MaxLat float64 `yaml:"max_lat"`
	MinLng float64 `yaml:"min_lng"`
	MaxLng float64 `yaml:"max_lng"`
}

// TaiwanBounds covers the main island plus Penghu and Matsu.
// Kinmen (lng ~118.3) falls outside and is never swap-corrected.
var TaiwanBounds = Bounds{MinLat: 21, MaxLat: 26.5, MinLng: 119, MaxLng: 123.5}

func (b Bounds) latOK(v float64) bool { return v >= b.MinLat && v <= b.MaxLat }
func (b Bounds) lngOK(v float64) bool { return v >= b.MinLng && v <= b.MaxLng }

// Contains reports whether p lies inside the box. NaN is never contained.
func (b Bounds) Contains(p LatLng) bool {
	return b.latOK(p.Lat) && b.lngOK(p.Lng)
}

// Normalize repairs a transposed coordinate pair.
//
// The pair is returned unchanged when it is plausible as given. If only the
// swapped pair is plausible, the swap is returned. Otherwise the original,
// uncorrected pair comes back; coordinates are swapped, never fabricated.
func (b Bounds) Normalize(lat, lng float64) LatLng {
	if b.latOK(lat) && b.lngOK(lng) {
		return LatLng{Lat: lat, Lng: lng}
	}
	if b.latOK(lng) && b.lngOK(lat) {
		return LatLng{Lat: lng, Lng: lat}
	}
	return LatLng{Lat: lat, Lng: lng}
}

// Normalize applies TaiwanBounds.Normalize.
func Normalize(lat, lng float64) LatLng {
	return TaiwanBounds.Normalize(lat, lng)
}
