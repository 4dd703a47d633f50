package delivery

import (
	"context"
	"fmt"

	"github.com/artisora/artisan-BE/internal/geo"
)

// GetRoute requests the shortest driving route between origin and destination.
// A single attempt is made; callers are expected to fall back on error.
func (s *OSRMService) GetRoute(ctx context.Context, origin, destination geo.Coordinate) (*RouteData, error) {
	// OSRM takes coordinates as lng,lat pairs.
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f",
		s.baseURL,
		origin.Longitude, origin.Latitude,
		destination.Longitude, destination.Latitude)

	var response osrmRouteResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"overview":     "full",
			"geometries":   "geojson",
			"steps":        "true",
			"alternatives": "false",
		}).
		SetResult(&response).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to call routing service: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("routing service returned status %d", resp.StatusCode())
	}

	if response.Code != "Ok" || len(response.Routes) == 0 {
		return nil, fmt.Errorf("routing service returned no routes: code=%s message=%s",
			response.Code, response.Message)
	}

	route := response.Routes[0]

	geometry := make([]geo.Coordinate, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		geometry = append(geometry, geo.Coordinate{Latitude: pair[1], Longitude: pair[0]})
	}

	var instructions []string
	if len(route.Legs) > 0 {
		instructions = make([]string, 0, len(route.Legs[0].Steps))
		for _, step := range route.Legs[0].Steps {
			if step.Maneuver.Instruction != "" {
				instructions = append(instructions, step.Maneuver.Instruction)
			}
		}
	}

	return &RouteData{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Geometry:        geometry,
		Instructions:    instructions,
	}, nil
}
