package geo

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Coordinates is a WGS84 latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"-1.2921"`
	Longitude float64 `json:"longitude" example:"36.8219"`
}

// Valid reports whether the pair is inside the WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Viewport is a latitude/longitude bounding box used to scope map queries.
type Viewport struct {
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// rect builds the S2 rectangle for the viewport. The longitude interval is an
// s1.Interval so boxes crossing the antimeridian behave correctly.
func (vp Viewport) rect() s2.Rect {
	lo := s2.LatLngFromDegrees(vp.LatMin, vp.LngMin)
	hi := s2.LatLngFromDegrees(vp.LatMax, vp.LngMax)

	return s2.Rect{
		Lat: r1.Interval{Lo: lo.Lat.Radians(), Hi: hi.Lat.Radians()},
		Lng: s1.IntervalFromEndpoints(lo.Lng.Radians(), hi.Lng.Radians()),
	}
}

// Contains reports whether the coordinates fall inside the viewport.
func (vp Viewport) Contains(c Coordinates) bool {
	return vp.rect().ContainsLatLng(s2.LatLngFromDegrees(c.Latitude, c.Longitude))
}
