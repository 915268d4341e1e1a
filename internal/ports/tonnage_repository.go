package ports

import (
	"city-insights-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving waste tonnage records from the warehouse.
type TonnageRepository interface {
	// Retrieve all tonnage records, ordered by month then borough.
	ListTonnage(ctx context.Context) ([]domain.TonnageRecord, error)
}
