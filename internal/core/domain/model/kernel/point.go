package kernel

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	LongitudeMin = -180.0
	LongitudeMax = 180.0
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
)

var ErrPointIsNotConstructed = errs.NewValueIsRequiredError("point must be created via NewPoint constructor")

// Point is a geographic position stored in [longitude, latitude] order,
// the order the delivery agent location is reported in.
type Point struct { //nolint:recvcheck //using for validation
	lon   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewPoint validates that lon lies in [-180, 180] and lat in [-90, 90].
func NewPoint(lon, lat float64) (Point, error) {
	p := Point{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLon(lon), p.setLat(lat)); err != nil {
		return Point{}, err
	}

	return p, nil
}

func (p Point) Validate() error {
	return p.guard.Validate(ErrPointIsNotConstructed)
}

func (p Point) Lon() float64 {
	return p.lon
}

func (p Point) Lat() float64 {
	return p.lat
}

func (p Point) IsEqual(other Point) bool {
	return p.lon == other.lon && p.lat == other.lat
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g,%g)", p.lon, p.lat)
}

func (p *Point) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}

func (p *Point) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}
