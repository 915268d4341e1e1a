package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type TrafficEventResponse struct {
	Road        string               `json:"road"`
	Description string               `json:"description"`
	Severity    string               `json:"severity"`
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	Location    *CoordinatesResponse `json:"location,omitempty"`
}

type ListTrafficEventsResponse struct {
	Events []TrafficEventResponse `json:"events"`
}
