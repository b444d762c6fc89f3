package overview

import (
	"math/rand"
	"time"
)

// TrendDays is the fixed width of the dashboard trend chart.
const TrendDays = 30

// TrendPoint is one day on the trend chart.
type TrendPoint struct {
	Label string // "Jan 2"
	Price float64
}

// Trend fabricates a 30-day price series around the given mean: one point
// per calendar day ending at now, each jittered by up to ±5% of the mean.
//
// This is placeholder data, not real history. The API exposes no aggregate
// time-series endpoint, so the chart illustrates the current average rather
// than past prices, and templates caption it as illustrative. Callers pass
// a time-seeded rng in production, so the series differs on every render;
// tests pin the seed.
func Trend(mean float64, now time.Time, rng *rand.Rand) []TrendPoint {
	points := make([]TrendPoint, TrendDays)
	for i := range points {
		day := now.AddDate(0, 0, -(TrendDays - 1 - i))
		points[i] = TrendPoint{
			Label: day.Format("Jan 2"),
			Price: mean + (rng.Float64()*mean*0.1 - mean*0.05),
		}
	}
	return points
}
