package delivery

import (
	"context"
	"time"

	"github.com/artisora/artisan-BE/internal/geo"
	"resty.dev/v3"
)

const (
	// DefaultOSRMBaseURL is the public OSRM demo server.
	DefaultOSRMBaseURL = "https://router.project-osrm.org"

	// DefaultRequestTimeout bounds a single routing attempt. The haversine
	// fallback is cheap, so hanging on the provider is never worth it.
	DefaultRequestTimeout = 4 * time.Second
)

// RouteProvider returns a real driving route between two coordinates.
type RouteProvider interface {
	GetRoute(ctx context.Context, origin, destination geo.Coordinate) (*RouteData, error)
}

// OSRMService talks to an OSRM-compatible routing server.
type OSRMService struct {
	client  *resty.Client
	baseURL string
}

func NewOSRMService(baseURL string, timeout time.Duration) *OSRMService {
	if baseURL == "" {
		baseURL = DefaultOSRMBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &OSRMService{
		client:  resty.New().SetTimeout(timeout),
		baseURL: baseURL,
	}
}
