package cache

import (
	"city-insights-service/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLite backed cache for full route sets keyed by (origin, destination).
// Directions responses go stale quickly, so reads are bounded by a max age
// rather than kept forever. Keys are expected to be normalized by the caller.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch the cached route set for one origin/destination pair.
// The second return is false on a miss or when every cached row is older
// than maxAge.
func (s *SqliteRouteCache) Get(
	origin string,
	destination string,
	maxAge time.Duration,
) ([]domain.RouteCandidate, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" {
		return nil, false, errors.New("get route cache: origin and destination must not be empty")
	}

	cutoff := time.Now().Add(-maxAge).UnixNano()

	q := `
	SELECT
        summary,
        start_address,
        end_address,
        distance_meters,
        duration_seconds,
        traffic_duration_seconds,
        polyline,
        warnings
    FROM route_cache
    WHERE origin = ?
        AND destination = ?
        AND fetched_at >= ?
    ORDER BY route_index;
	`

	rows, err := s.DB.Query(q, origin, destination, cutoff)
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}
	defer rows.Close()

	var routes []domain.RouteCandidate
	for rows.Next() {
		var r domain.RouteCandidate
		var warnings string
		if err := rows.Scan(
			&r.Summary,
			&r.StartAddress,
			&r.EndAddress,
			&r.DistanceMeters,
			&r.DurationSeconds,
			&r.TrafficDurationSeconds,
			&r.Polyline,
			&warnings,
		); err != nil {
			return nil, false, fmt.Errorf("get route cache: scan rows: %w", err)
		}
		if warnings != "" {
			if err := json.Unmarshal([]byte(warnings), &r.Warnings); err != nil {
				return nil, false, fmt.Errorf("get route cache: parse warnings: %w", err)
			}
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("get route cache: row iteration: %w", err)
	}

	if len(routes) == 0 {
		return nil, false, nil
	}

	return routes, true, nil
}

// Store a full route set for one origin/destination pair, replacing any
// previously cached rows for that pair.
func (s *SqliteRouteCache) Put(origin string, destination string, routes []domain.RouteCandidate) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert route cache: origin and destination must not be empty")
	}

	if len(routes) == 0 {
		return nil
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("insert route cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Stale rows for the pair are dropped wholesale so route_index stays dense.
	if _, err := tx.Exec(
		`DELETE FROM route_cache WHERE origin = ? AND destination = ?;`,
		origin, destination,
	); err != nil {
		return fmt.Errorf("insert route cache: clear stale rows: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO route_cache (
        origin,
        destination,
        route_index,
        summary,
        start_address,
        end_address,
        distance_meters,
        duration_seconds,
        traffic_duration_seconds,
        polyline,
        warnings,
        fetched_at
    )
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("insert route cache: db prepare: %w", err)
	}
	defer stmt.Close()

	fetchedAt := time.Now().UnixNano()
	for i, r := range routes {
		warnings := ""
		if len(r.Warnings) > 0 {
			b, err := json.Marshal(r.Warnings)
			if err != nil {
				return fmt.Errorf("insert route cache route_index=%d: encode warnings: %w", i, err)
			}
			warnings = string(b)
		}

		if _, err := stmt.Exec(
			origin, destination, i,
			r.Summary, r.StartAddress, r.EndAddress,
			r.DistanceMeters, r.DurationSeconds, r.TrafficDurationSeconds,
			r.Polyline, warnings, fetchedAt,
		); err != nil {
			return fmt.Errorf("insert route cache route_index=%d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert route cache commit: %w", err)
	}

	return nil
}
