package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the warehouse schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTonnageQuery := `
	CREATE TABLE IF NOT EXISTS waste_tonnage (
		borough TEXT NOT NULL,
		month TEXT NOT NULL,
		refuse_tons DOUBLE PRECISION NOT NULL,
		paper_tons DOUBLE PRECISION NOT NULL,
		mgp_tons DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (borough, month)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_waste_tonnage_month
	ON waste_tonnage(month);
	`

	statements := []string{
		createTonnageQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TonnageSeed struct {
	Borough    string  `json:"borough"`
	Month      string  `json:"month"`
	RefuseTons float64 `json:"refuse_tons"`
	PaperTons  float64 `json:"paper_tons"`
	MGPTons    float64 `json:"mgp_tons"`
}

// Populate the warehouse with tonnage data from a JSON file.
// Returns the number of records written.
func SeedFromJSON(db *sql.DB, jsonPath string) (int, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed tonnage: read %q: %w", jsonPath, err)
	}

	var data []TonnageSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return 0, fmt.Errorf("seed tonnage: parse json: %w", err)
	}

	rows := make([]TonnageSeed, 0, len(data))
	for i, item := range data {
		borough := strings.TrimSpace(item.Borough)
		if borough == "" {
			return 0, fmt.Errorf("seed tonnage: item at index %d: borough cannot be empty", i+1)
		}

		if _, err := time.Parse("2006-01", item.Month); err != nil {
			return 0, fmt.Errorf("seed tonnage: item at index %d: month %q must be YYYY-MM", i+1, item.Month)
		}

		if item.RefuseTons < 0 || item.PaperTons < 0 || item.MGPTons < 0 {
			return 0, fmt.Errorf("seed tonnage: item at index %d: tonnage cannot be negative", i+1)
		}

		rows = append(rows, TonnageSeed{
			Borough:    borough,
			Month:      item.Month,
			RefuseTons: item.RefuseTons,
			PaperTons:  item.PaperTons,
			MGPTons:    item.MGPTons,
		})
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("seed tonnage: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO waste_tonnage (
		borough,
		month,
		refuse_tons,
		paper_tons,
		mgp_tons
	)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (borough, month) DO UPDATE
	SET refuse_tons = EXCLUDED.refuse_tons,
		paper_tons = EXCLUDED.paper_tons,
		mgp_tons = EXCLUDED.mgp_tons;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("seed tonnage: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range rows {
		if _, err := stmt.Exec(t.Borough, t.Month, t.RefuseTons, t.PaperTons, t.MGPTons); err != nil {
			return 0, fmt.Errorf("seed tonnage: insert borough=%q month=%q: %w", t.Borough, t.Month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed tonnage: commit tx: %w", err)
	}

	return len(rows), nil
}
