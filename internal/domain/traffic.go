package domain

// A live traffic incident reported by the 511NY event feed.
// Location is nil when the feed did not supply usable coordinates.
type TrafficEvent struct {
	Road        string
	Description string
	Severity    string
	StartTime   string
	EndTime     string
	Location    *Coordinates
}
