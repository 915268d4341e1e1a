package domain

// Represents one proposed driving path between two points as returned by a
// directions provider. Numeric fields are non-negative and defaulted to zero
// at the API boundary, so the ranking core can assume well-formed input.
// Identifying metadata (addresses, summary, polyline) is opaque to scoring
// and passed through unchanged.
type RouteCandidate struct {
	Summary                string
	StartAddress           string
	EndAddress             string
	DistanceMeters         int
	DurationSeconds        int
	TrafficDurationSeconds int
	Polyline               string
	Warnings               []string
}

// Difference between traffic-adjusted and nominal travel time for a route.
// DelaySeconds may be negative when the traffic estimate beats the baseline;
// the raw value is kept for transparency and only clamped during scoring.
type TrafficDelay struct {
	DelaySeconds    int
	DelayMinutes    float64
	DelayPercentage float64
}

// A route candidate annotated with its efficiency score and delay detail.
// RankedRoutes are request-scoped derived data and are never persisted.
type RankedRoute struct {
	RouteCandidate
	EfficiencyScore float64
	TrafficDelay    TrafficDelay
}

// TimeRange spans the fastest and slowest traffic-adjusted travel times
// across a route set, in minutes.
type TimeRange struct {
	MinMinutes float64
	MaxMinutes float64
}

// Aggregate statistics across all candidates of one route set.
type RouteSummary struct {
	TotalRoutes         int
	AverageTimeMinutes  float64
	AverageDistanceKM   float64
	AverageDelayMinutes float64
	TimeRange           TimeRange
}
