package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/artisora/artisan-BE/internal/geo"
	"github.com/artisora/artisan-BE/internal/pricing"
	"github.com/stretchr/testify/require"
)

var (
	bangalore = geo.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	chennai   = geo.Coordinate{Latitude: 13.0827, Longitude: 80.2707}
)

const osrmRouteBody = `{
	"code": "Ok",
	"routes": [{
		"distance": 347500.0,
		"duration": 18000.0,
		"geometry": {"coordinates": [[77.5946,12.9716],[78.5,13.0],[80.2707,13.0827]]},
		"legs": [{"steps": [
			{"maneuver": {"instruction": "Head east on NH 75"}},
			{"maneuver": {"instruction": "Arrive at destination"}}
		]}]
	}]
}`

func newFakeOSRM(t *testing.T, handler http.HandlerFunc) *OSRMService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOSRMService(server.URL, time.Second)
}

func TestQuoteDeliveryRouted(t *testing.T) {
	service := newFakeOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(osrmRouteBody))
	})
	resolver := NewResolver(service)

	quote := resolver.QuoteDelivery(context.Background(), bangalore, chennai)

	require.Equal(t, pricing.SourceRouted, quote.Source)
	require.Equal(t, 347.5, quote.DistanceKm)
	require.Equal(t, int64(300), quote.DurationMinutes)
	require.Equal(t, int64(15), quote.BaseFare)
	require.Equal(t, int64(1043), quote.DistanceFare) // round(347.5 * 3)
	require.Equal(t, int64(1058), quote.TotalCharge)
}

func TestQuoteDeliveryFallbackOnServerError(t *testing.T) {
	service := newFakeOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "routing unavailable", http.StatusBadGateway)
	})
	resolver := NewResolver(service)

	quote := resolver.QuoteDelivery(context.Background(), bangalore, chennai)

	require.Equal(t, pricing.SourceFallback, quote.Source)
	require.InDelta(t, 290, quote.DistanceKm, 5)
	require.InDelta(t, 1015, quote.DistanceFare, 5)
	require.InDelta(t, 1030, quote.TotalCharge, 5)
	require.Equal(t, quote.BaseFare+quote.DistanceFare, quote.TotalCharge)
}

func TestQuoteDeliveryFallbackOnEmptyRoutes(t *testing.T) {
	service := newFakeOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	})
	resolver := NewResolver(service)

	quote := resolver.QuoteDelivery(context.Background(), bangalore, chennai)
	require.Equal(t, pricing.SourceFallback, quote.Source)
}

func TestQuoteDeliveryFallbackOnUnreachableProvider(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on
	resolver := NewResolver(NewOSRMService(server.URL, time.Second))

	quote := resolver.QuoteDelivery(context.Background(), bangalore, chennai)
	require.Equal(t, pricing.SourceFallback, quote.Source)
	require.Positive(t, quote.TotalCharge)
}

func TestQuoteDeliveryDeterministic(t *testing.T) {
	service := newFakeOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(osrmRouteBody))
	})
	resolver := NewResolver(service)

	first := resolver.QuoteDelivery(context.Background(), bangalore, chennai)
	second := resolver.QuoteDelivery(context.Background(), bangalore, chennai)
	require.Equal(t, first, second)
}

func TestResolveRouteRouted(t *testing.T) {
	service := newFakeOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(osrmRouteBody))
	})
	resolver := NewResolver(service)

	route := resolver.ResolveRoute(context.Background(), bangalore, chennai)

	require.Equal(t, pricing.SourceRouted, route.Source)
	require.Len(t, route.GeometryPoints, 3)
	require.Equal(t, bangalore, route.GeometryPoints[0])
	require.Equal(t, chennai, route.GeometryPoints[2])
	require.Equal(t, []string{"Head east on NH 75", "Arrive at destination"}, route.Instructions)
	require.Equal(t, 347.5, route.DistanceKm)
	require.Equal(t, int64(300), route.DurationMinutes)
}

func TestResolveRouteFallbackShape(t *testing.T) {
	service := newFakeOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	resolver := NewResolver(service)

	route := resolver.ResolveRoute(context.Background(), bangalore, chennai)

	require.Equal(t, pricing.SourceFallback, route.Source)
	require.Len(t, route.GeometryPoints, 2)
	require.Equal(t, bangalore, route.GeometryPoints[0])
	require.Equal(t, chennai, route.GeometryPoints[1])
	require.Equal(t, []string{FallbackInstruction}, route.Instructions)
	require.Equal(t, route.Quote.BaseFare+route.Quote.DistanceFare, route.Quote.TotalCharge)
}
