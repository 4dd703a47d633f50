package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

var ErrInvalidCoordinate = errors.New("latitude must be in [-90,90] and longitude in [-180,180]")

// Coordinate is an immutable geographic point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinate lies inside the valid lat/lng ranges.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// String formats the coordinate as "lat, lng" with 6 decimal places.
// Used as the display fallback when reverse geocoding is unavailable.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b Coordinate) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
