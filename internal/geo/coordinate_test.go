package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineZeroDistance(t *testing.T) {
	points := []Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 12.9716, Longitude: 77.5946},
		{Latitude: -90, Longitude: 180},
	}

	for _, p := range points {
		require.Zero(t, Haversine(p, p))
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	b := Coordinate{Latitude: 13.0827, Longitude: 80.2707}

	require.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
}

func TestHaversineKnownDistances(t *testing.T) {
	// Bangalore -> Chennai, roughly 290 km straight line.
	bangalore := Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	chennai := Coordinate{Latitude: 13.0827, Longitude: 80.2707}
	require.InDelta(t, 290, Haversine(bangalore, chennai), 5)

	// Antipodal points approach half the Earth's circumference.
	north := Coordinate{Latitude: 90, Longitude: 0}
	south := Coordinate{Latitude: -90, Longitude: 0}
	require.InDelta(t, 20015, Haversine(north, south), 5)
}

func TestCoordinateValidate(t *testing.T) {
	require.NoError(t, Coordinate{Latitude: 45, Longitude: -120}.Validate())
	require.NoError(t, Coordinate{Latitude: -90, Longitude: 180}.Validate())

	require.ErrorIs(t, Coordinate{Latitude: 90.1, Longitude: 0}.Validate(), ErrInvalidCoordinate)
	require.ErrorIs(t, Coordinate{Latitude: 0, Longitude: -180.5}.Validate(), ErrInvalidCoordinate)
}

func TestCoordinateString(t *testing.T) {
	c := Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	require.Equal(t, "12.971600, 77.594600", c.String())
}
