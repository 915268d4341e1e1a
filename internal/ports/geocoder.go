package ports

import (
	"city-insights-service/internal/domain"
	"context"
)

// Port: resolves a street address to geographic coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
