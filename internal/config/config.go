package config

import (
	"city-insights-service/internal/domain"
	"city-insights-service/internal/services"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Get returns the value of an environment variable, or fallback when unset
// or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetFloat reads a float-valued environment variable, falling back on unset
// or unparsable values.
func GetFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// NYCBounds returns the configured city bounding box. Defaults approximate
// the New York City limits.
func NYCBounds() domain.Bounds {
	return domain.Bounds{
		North: GetFloat("NYC_BOUNDS_NORTH", 40.9176),
		South: GetFloat("NYC_BOUNDS_SOUTH", 40.4774),
		East:  GetFloat("NYC_BOUNDS_EAST", -73.7004),
		West:  GetFloat("NYC_BOUNDS_WEST", -74.2591),
	}
}

// LoadRankingPolicy reads ranking-policy overrides from a YAML file.
// An empty or missing path keeps the defaults; a present file must parse and
// validate, since silently ranking with half-applied weights would be worse
// than failing startup.
func LoadRankingPolicy(path string) (services.RankingPolicy, error) {
	policy := services.DefaultRankingPolicy()
	if path == "" {
		return policy, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return policy, nil
		}
		return policy, fmt.Errorf("load ranking policy: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &policy); err != nil {
		return policy, fmt.Errorf("load ranking policy: parse %q: %w", path, err)
	}

	if err := policy.Validate(); err != nil {
		return policy, fmt.Errorf("load ranking policy: %w", err)
	}

	return policy, nil
}
