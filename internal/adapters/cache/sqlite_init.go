package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite schema backing the route and geocode caches.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init cache schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init cache schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        route_index INTEGER NOT NULL,
        summary TEXT NOT NULL,
        start_address TEXT NOT NULL,
        end_address TEXT NOT NULL,
        distance_meters INTEGER NOT NULL,
        duration_seconds INTEGER NOT NULL,
        traffic_duration_seconds INTEGER NOT NULL,
        polyline TEXT NOT NULL,
        warnings TEXT NOT NULL,
        fetched_at INTEGER NOT NULL,
        PRIMARY KEY (origin, destination, route_index)
    );
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon REAL NOT NULL,
        lat REAL NOT NULL
    );
	`

	statements := []string{
		createRouteCacheQuery,
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init cache schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init cache schema: commit tx: %w", err)
	}

	return nil
}
