package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// RateSource tells the policy which path produced the distance, so the
// per-kilometer rate is explicit instead of being inferred from the code path.
type RateSource string

const (
	SourceRouted   RateSource = "routed"
	SourceFallback RateSource = "fallback"
)

const (
	// BaseFare is charged on every delivery regardless of distance.
	BaseFare int64 = 15

	routedRatePerKm   = 3.0
	fallbackRatePerKm = 3.5

	// fallbackMinutesPerKm approximates an average speed of 20 km/h for
	// straight-line estimates.
	fallbackMinutesPerKm = 3.0
)

// Quote is the user-visible delivery charge breakdown.
type Quote struct {
	DistanceKm      float64    `json:"distance_km"`
	DurationMinutes int64      `json:"duration_minutes"`
	BaseFare        int64      `json:"base_fare"`
	DistanceFare    int64      `json:"distance_fare"`
	TotalCharge     int64      `json:"total_charge"`
	Source          RateSource `json:"source"`
}

// Rate returns the per-kilometer rate for a source. The fallback rate is
// higher because straight-line distance systematically underestimates road
// distance.
func Rate(source RateSource) float64 {
	if source == SourceFallback {
		return fallbackRatePerKm
	}
	return routedRatePerKm
}

// Price converts a distance and duration into a delivery charge breakdown.
// The distance fare is rounded once; the total is the exact sum of the two
// components, so total == base + distance always holds.
func Price(distanceKm float64, durationMinutes int64, source RateSource) Quote {
	km := decimal.NewFromFloat(distanceKm).Round(2)
	rate := decimal.NewFromFloat(Rate(source))

	distanceFare := km.Mul(rate).Round(0).IntPart()

	distance, _ := km.Float64()

	return Quote{
		DistanceKm:      distance,
		DurationMinutes: durationMinutes,
		BaseFare:        BaseFare,
		DistanceFare:    distanceFare,
		TotalCharge:     BaseFare + distanceFare,
		Source:          source,
	}
}

// EstimateDurationMinutes estimates travel time for a straight-line distance.
func EstimateDurationMinutes(distanceKm float64) int64 {
	return int64(math.Round(distanceKm * fallbackMinutesPerKm))
}
