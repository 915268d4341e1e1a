package repositories

import (
	"city-insights-service/internal/domain"
	"city-insights-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the TonnageRepository port.
// The warehouse table plays the role of the sanitation department's monthly
// tonnage views; aggregation into metrics happens in the service layer.
type PgTonnageRepository struct{ DB *sql.DB }

func NewPgTonnageRepository(db *sql.DB) *PgTonnageRepository {
	return &PgTonnageRepository{DB: db}
}

// Return all tonnage records, ordered by month then borough.
func (r *PgTonnageRepository) ListTonnage(ctx context.Context) (_ []domain.TonnageRecord, err error) {
	defer obs.Time(ctx, "tonnage.ListTonnage")(&err)

	if r.DB == nil {
		return nil, errors.New("tonnage repository: DB is nil")
	}

	query := `
	SELECT
		borough,
		month,
		refuse_tons,
		paper_tons,
		mgp_tons
	FROM waste_tonnage
	ORDER BY month, borough;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tonnage: query waste_tonnage table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TonnageRecord, 0, 64)
	for rows.Next() {
		var rec domain.TonnageRecord
		if err := rows.Scan(&rec.Borough, &rec.Month, &rec.RefuseTons, &rec.PaperTons, &rec.MGPTons); err != nil {
			return nil, fmt.Errorf("list tonnage: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tonnage: row iteration: %w", err)
	}

	return records, nil
}
