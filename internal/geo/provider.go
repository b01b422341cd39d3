package geo

import (
	"context"
	"errors"
)

// ErrLocationUnavailable means no coordinate could be obtained. Callers must
// not rank without one.
var ErrLocationUnavailable = errors.New("geo: location unavailable")

// CoordinateProvider supplies the user's current position.
type CoordinateProvider interface {
	Locate(ctx context.Context) (LatLng, error)
}

// StaticProvider returns a fixed coordinate, or ErrLocationUnavailable when
// none was set.
type StaticProvider struct {
	point *LatLng
}

// NewStaticProvider wraps p. A nil p produces a provider that always fails.
func NewStaticProvider(p *LatLng) StaticProvider {
	if p == nil {
		return StaticProvider{}
	}
	pt := *p
	return StaticProvider{point: &pt}
}

func (s StaticProvider) Locate(ctx context.Context) (LatLng, error) {
	if err := ctx.Err(); err != nil {
		return LatLng{}, err
	}
	if s.point == nil {
		return LatLng{}, ErrLocationUnavailable
	}
	return *s.point, nil
}
