package ports

import (
	"city-insights-service/internal/domain"
	"context"
)

// Contract for retrieving candidate driving routes between two addresses.
type DirectionsProvider interface {
	// Return all route alternatives between two addresses, annotated with
	// traffic-adjusted durations. An empty slice means no routes exist.
	GetRoutes(ctx context.Context, start string, end string) ([]domain.RouteCandidate, error)
}
