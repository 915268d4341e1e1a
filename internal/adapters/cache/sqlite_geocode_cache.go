package cache

import (
	"city-insights-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache mapping address strings to geographic coordinates.
// Geocodes do not go stale, so entries have no expiry. Address keys are
// expected to be normalized by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch cached coordinates for an address; the second return is false on a
// miss.
func (s *SqliteGeocodeCache) Get(address string) (domain.Coordinates, bool, error) {
	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, errors.New("get geocode cache: address must not be empty")
	}

	var c domain.Coordinates
	err := s.DB.QueryRow(
		`SELECT lon, lat FROM geocode_cache WHERE address = ?;`,
		address,
	).Scan(&c.Lon, &c.Lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return c, true, nil
}

// Store one address -> coordinate mapping.
func (s *SqliteGeocodeCache) Put(address string, c domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	if _, err := s.DB.Exec(
		`INSERT OR REPLACE INTO geocode_cache (address, lon, lat) VALUES (?, ?, ?);`,
		address, c.Lon, c.Lat,
	); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
