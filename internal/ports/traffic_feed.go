package ports

import (
	"city-insights-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving live traffic incidents from an external feed.
type TrafficFeed interface {
	GetEvents(ctx context.Context) ([]domain.TrafficEvent, error)
}
