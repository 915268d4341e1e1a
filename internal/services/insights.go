package services

import "city-insights-service/internal/domain"

// Traffic condition labels derived from the average delay percentage
// across a route set.
const (
	TrafficHeavy    = "heavy"
	TrafficModerate = "moderate"
	TrafficGood     = "good"
)

// Comparative insights across a ranked route set.
// TimeSavingsMinutes is the gap between the slowest candidate and the best
// route; it is only reported when the gap exceeds five minutes, since smaller
// differences are within traffic estimate noise.
type TripInsights struct {
	TimeSavingsMinutes     float64
	AverageDelayPercentage float64
	TrafficCondition       string
}

// Thresholds for insight reporting, in the units of the fields they gate.
const (
	minReportedSavingsMinutes = 5.0
	heavyTrafficDelayPct      = 20.0
	goodTrafficDelayPct       = 10.0
)

// ComputeInsights derives comparison insights from a ranked route set.
// Comparing best against worst is only meaningful with at least two
// candidates; ok is false otherwise.
func ComputeInsights(ranked []domain.RankedRoute) (TripInsights, bool) {
	if len(ranked) < 2 {
		return TripInsights{}, false
	}

	// Best route is the head of the ranked set; worst is the slowest in traffic.
	best := ranked[0]
	worst := ranked[0]
	var pctSum float64
	for _, r := range ranked {
		if r.TrafficDurationSeconds > worst.TrafficDurationSeconds {
			worst = r
		}
		pctSum += r.TrafficDelay.DelayPercentage
	}

	savings := round1(float64(worst.TrafficDurationSeconds-best.TrafficDurationSeconds) / 60)
	if savings <= minReportedSavingsMinutes {
		savings = 0
	}

	avgDelayPct := round1(pctSum / float64(len(ranked)))
	condition := TrafficModerate
	switch {
	case avgDelayPct > heavyTrafficDelayPct:
		condition = TrafficHeavy
	case avgDelayPct < goodTrafficDelayPct:
		condition = TrafficGood
	}

	return TripInsights{
		TimeSavingsMinutes:     savings,
		AverageDelayPercentage: avgDelayPct,
		TrafficCondition:       condition,
	}, true
}
