package directions

import (
	"city-insights-service/internal/domain"
	"city-insights-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

// Geocode resolves an address to coordinates via the Google geocoding API,
// reading through the persistent geocode cache.
func (g *GoogleDirectionsProvider) Geocode(
	ctx context.Context,
	address string,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "directions.Geocode")(&err)

	norm := g.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	if g.geocodeCache != nil {
		coord, ok, err := g.geocodeCache.Get(norm)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode cache: %w", err)
		}
		if ok {
			return coord, nil
		}
	}

	query := map[string]string{
		"address": norm,
		"region":  "us",
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, "/maps/api/geocode/json", query)
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q (status %q)", address, decoded.Status)
	}

	loc := decoded.Results[0].Geometry.Location
	coord := domain.Coordinates{Lon: loc.Lng, Lat: loc.Lat}

	if g.geocodeCache != nil {
		if err := g.geocodeCache.Put(norm, coord); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coord, nil
}
