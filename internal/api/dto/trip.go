package dto

type TripRequest struct {
	StartAddress string `json:"start_address"`
	EndAddress   string `json:"end_address"`
}

type TrafficDelayResponse struct {
	DelaySeconds    int     `json:"delay_seconds"`
	DelayMinutes    float64 `json:"delay_minutes"`
	DelayPercentage float64 `json:"delay_percentage"`
}

type RouteResponse struct {
	Summary                string               `json:"summary"`
	StartAddress           string               `json:"start_address"`
	EndAddress             string               `json:"end_address"`
	DistanceMeters         int                  `json:"distance_meters"`
	DurationSeconds        int                  `json:"duration_seconds"`
	TrafficDurationSeconds int                  `json:"traffic_duration_seconds"`
	Polyline               string               `json:"polyline,omitempty"`
	Warnings               []string             `json:"warnings,omitempty"`
	EfficiencyScore        float64              `json:"efficiency_score"`
	TrafficDelay           TrafficDelayResponse `json:"traffic_delay"`
}

type TimeRangeResponse struct {
	MinMinutes float64 `json:"min_minutes"`
	MaxMinutes float64 `json:"max_minutes"`
}

type RouteSummaryResponse struct {
	TotalRoutes         int               `json:"total_routes"`
	AverageTimeMinutes  float64           `json:"average_time_minutes"`
	AverageDistanceKM   float64           `json:"average_distance_km"`
	AverageDelayMinutes float64           `json:"average_delay_minutes"`
	TimeRange           TimeRangeResponse `json:"time_range"`
}

type InsightsResponse struct {
	TimeSavingsMinutes     float64 `json:"time_savings_minutes"`
	AverageDelayPercentage float64 `json:"average_delay_percentage"`
	TrafficCondition       string  `json:"traffic_condition"`
}

type TripResponse struct {
	Routes    []RouteResponse      `json:"routes"`
	BestRoute RouteResponse        `json:"best_route"`
	Summary   RouteSummaryResponse `json:"summary"`
	Insights  *InsightsResponse    `json:"insights,omitempty"`
}
