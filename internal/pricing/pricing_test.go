package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceBreakdown(t *testing.T) {
	quote := Price(10, 18, SourceRouted)

	require.Equal(t, int64(15), quote.BaseFare)
	require.Equal(t, int64(30), quote.DistanceFare)
	require.Equal(t, int64(45), quote.TotalCharge)
	require.Equal(t, int64(18), quote.DurationMinutes)
	require.Equal(t, SourceRouted, quote.Source)
}

func TestPriceTotalIsExactSum(t *testing.T) {
	for _, km := range []float64{0, 0.4, 1.17, 12.345, 290.17, 1999.99} {
		for _, source := range []RateSource{SourceRouted, SourceFallback} {
			quote := Price(km, 0, source)
			require.Equal(t, quote.BaseFare+quote.DistanceFare, quote.TotalCharge,
				"km=%v source=%v", km, source)
		}
	}
}

func TestPriceMonotonicInDistance(t *testing.T) {
	distances := []float64{0, 1, 2.5, 10, 50, 100, 500}

	for _, source := range []RateSource{SourceRouted, SourceFallback} {
		prev := int64(-1)
		for _, km := range distances {
			quote := Price(km, 0, source)
			require.GreaterOrEqual(t, quote.TotalCharge, prev)
			prev = quote.TotalCharge
		}
	}
}

func TestFallbackRateNeverCheaperThanRouted(t *testing.T) {
	for _, km := range []float64{0, 0.5, 3, 17.25, 290, 1200} {
		routed := Price(km, 0, SourceRouted)
		fallback := Price(km, 0, SourceFallback)
		require.GreaterOrEqual(t, fallback.DistanceFare, routed.DistanceFare)
	}
}

func TestFallbackScenarioBangaloreChennai(t *testing.T) {
	// Straight-line distance between the two cities is about 290 km.
	quote := Price(290, EstimateDurationMinutes(290), SourceFallback)

	require.Equal(t, int64(1015), quote.DistanceFare)
	require.Equal(t, int64(1030), quote.TotalCharge)
	require.Equal(t, int64(870), quote.DurationMinutes)
}

func TestEstimateDurationMinutes(t *testing.T) {
	require.Equal(t, int64(0), EstimateDurationMinutes(0))
	require.Equal(t, int64(30), EstimateDurationMinutes(10))
	require.Equal(t, int64(31), EstimateDurationMinutes(10.4))
}
