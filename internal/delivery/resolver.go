package delivery

import (
	"context"
	"math"

	"github.com/artisora/artisan-BE/internal/geo"
	"github.com/artisora/artisan-BE/internal/pricing"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// FallbackInstruction marks a synthesized straight-line route.
const FallbackInstruction = "Direct route (detailed navigation unavailable)"

// Resolver produces delivery quotes and routes, degrading to a straight-line
// estimate whenever the routing provider fails. Quotes never fail outright.
type Resolver struct {
	provider RouteProvider
}

func NewResolver(provider RouteProvider) *Resolver {
	return &Resolver{provider: provider}
}

// QuoteDelivery returns a delivery charge breakdown for the trip.
func (r *Resolver) QuoteDelivery(ctx context.Context, origin, destination geo.Coordinate) pricing.Quote {
	route, err := r.provider.GetRoute(ctx, origin, destination)
	if err != nil {
		log.Warn().Err(err).Msg("routing provider unavailable, using straight-line estimate")
		km := roundKm(geo.Haversine(origin, destination))
		return pricing.Price(km, pricing.EstimateDurationMinutes(km), pricing.SourceFallback)
	}

	km := roundKm(route.DistanceMeters / 1000)
	return pricing.Price(km, roundMinutes(route.DurationSeconds), pricing.SourceRouted)
}

// ResolveRoute returns the route geometry and turn instructions alongside the
// quote. In fallback mode the geometry is the two endpoints and a single
// direct-route instruction.
func (r *Resolver) ResolveRoute(ctx context.Context, origin, destination geo.Coordinate) RouteResult {
	route, err := r.provider.GetRoute(ctx, origin, destination)
	if err != nil {
		log.Warn().Err(err).Msg("routing provider unavailable, synthesizing direct route")
		return r.fallbackRoute(origin, destination)
	}

	km := roundKm(route.DistanceMeters / 1000)
	minutes := roundMinutes(route.DurationSeconds)

	geometry := route.Geometry
	if len(geometry) < 2 {
		geometry = []geo.Coordinate{origin, destination}
	}

	return RouteResult{
		GeometryPoints:  geometry,
		DistanceKm:      km,
		DurationMinutes: minutes,
		Instructions:    route.Instructions,
		Quote:           pricing.Price(km, minutes, pricing.SourceRouted),
		Source:          pricing.SourceRouted,
	}
}

func (r *Resolver) fallbackRoute(origin, destination geo.Coordinate) RouteResult {
	km := roundKm(geo.Haversine(origin, destination))
	minutes := pricing.EstimateDurationMinutes(km)

	return RouteResult{
		GeometryPoints:  []geo.Coordinate{origin, destination},
		DistanceKm:      km,
		DurationMinutes: minutes,
		Instructions:    []string{FallbackInstruction},
		Quote:           pricing.Price(km, minutes, pricing.SourceFallback),
		Source:          pricing.SourceFallback,
	}
}

func roundKm(km float64) float64 {
	rounded, _ := decimal.NewFromFloat(km).Round(2).Float64()
	return rounded
}

func roundMinutes(seconds float64) int64 {
	return int64(math.Round(seconds / 60))
}
