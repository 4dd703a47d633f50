package delivery

import (
	"github.com/artisora/artisan-BE/internal/geo"
	"github.com/artisora/artisan-BE/internal/pricing"
)

// RouteData is what a routing provider reports for one driving route.
type RouteData struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        []geo.Coordinate
	Instructions    []string
}

// RouteResult is the resolved route returned to callers. In fallback mode the
// geometry degrades to the origin and destination endpoints.
type RouteResult struct {
	GeometryPoints  []geo.Coordinate   `json:"geometry_points"`
	DistanceKm      float64            `json:"distance_km"`
	DurationMinutes int64              `json:"duration_minutes"`
	Instructions    []string           `json:"instructions"`
	Quote           pricing.Quote      `json:"quote"`
	Source          pricing.RateSource `json:"source"`
}

// osrmRouteResponse mirrors the OSRM /route/v1 response shape.
// Geometry coordinates arrive as [lng, lat] pairs.
type osrmRouteResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Steps []struct {
				Maneuver struct {
					Instruction string `json:"instruction"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}
