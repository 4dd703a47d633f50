package geocode

import (
	"context"
	"fmt"
	"time"

	"github.com/artisora/artisan-BE/internal/geo"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"resty.dev/v3"
)

const (
	// DefaultNominatimBaseURL is the public Nominatim instance.
	DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

	cacheKeyPrefix = "geocode:reverse:"
	cacheTTL       = 24 * time.Hour
)

// ReverseGeocoder resolves coordinates to human-readable place names.
// Results are cached in redis; on any provider failure the raw coordinate is
// formatted instead, so callers always get a displayable string.
type ReverseGeocoder struct {
	client      *resty.Client
	redisClient *redis.Client
	baseURL     string
}

func NewReverseGeocoder(baseURL string, timeout time.Duration, redisClient *redis.Client) *ReverseGeocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}

	return &ReverseGeocoder{
		client:      resty.New().SetTimeout(timeout),
		redisClient: redisClient,
		baseURL:     baseURL,
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
}

// DisplayName returns a place name for the coordinate, falling back to the
// formatted coordinate when the provider or cache cannot help.
func (g *ReverseGeocoder) DisplayName(ctx context.Context, coordinate geo.Coordinate) string {
	cacheKey := cacheKeyPrefix + coordinate.String()

	if g.redisClient != nil {
		cached, err := g.redisClient.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			return cached
		}
	}

	var response nominatimResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"lat":    fmt.Sprintf("%f", coordinate.Latitude),
			"lon":    fmt.Sprintf("%f", coordinate.Longitude),
		}).
		SetResult(&response).
		Get(g.baseURL + "/reverse")
	if err != nil || resp.IsError() || response.DisplayName == "" {
		log.Warn().Err(err).Msg("reverse geocoding unavailable, returning raw coordinate")
		return coordinate.String()
	}

	if g.redisClient != nil {
		if err := g.redisClient.Set(ctx, cacheKey, response.DisplayName, cacheTTL).Err(); err != nil {
			log.Warn().Err(err).Msg("failed to cache reverse geocode result")
		}
	}

	return response.DisplayName
}
