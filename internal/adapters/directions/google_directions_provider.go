package directions

import (
	"city-insights-service/internal/adapters/cache"
	"city-insights-service/internal/domain"
	"city-insights-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// GoogleDirectionsProvider implements DirectionsProvider and Geocoder against
// the Google Maps web APIs.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - Short-lived route set caching (directions responses go stale fast)
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	trafficModel string
	maxRoutes    int
	cacheTTL     time.Duration
	routeCache   *cache.SqliteRouteCache
	geocodeCache *cache.SqliteGeocodeCache
}

func NewGoogleDirectionsProvider(
	apiKey string,
	routeCache *cache.SqliteRouteCache,
	geocodeCache *cache.SqliteGeocodeCache,
) (*GoogleDirectionsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	provider := &GoogleDirectionsProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://maps.googleapis.com",
		trafficModel: "best_guess",
		maxRoutes:    5,
		cacheTTL:     5 * time.Minute,
		routeCache:   routeCache,
		geocodeCache: geocodeCache,
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GoogleDirectionsProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Summary string `json:"summary"`
		Legs    []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
			DurationInTraffic *struct {
				Value int `json:"value"`
			} `json:"duration_in_traffic"`
			StartAddress string `json:"start_address"`
			EndAddress   string `json:"end_address"`
		} `json:"legs"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Warnings []string `json:"warnings"`
	} `json:"routes"`
	ErrorMessage string `json:"error_message"`
}

// GetRoutes returns all driving route alternatives between two addresses
// with best-guess traffic for an immediate departure.
//
// Cached route sets younger than the TTL are served without touching the
// external API. Zero results are not an error: the empty slice is returned
// for the ranking layer to classify.
func (g *GoogleDirectionsProvider) GetRoutes(
	ctx context.Context,
	start string,
	end string,
) (_ []domain.RouteCandidate, err error) {
	defer obs.Time(ctx, "directions.GetRoutes")(&err)

	normStart := g.normalize(start)
	normEnd := g.normalize(end)
	if normStart == "" || normEnd == "" {
		return nil, errors.New("get routes: start and end must be non-empty")
	}

	// Serve fresh cached responses before issuing external API calls.
	if g.routeCache != nil {
		routes, ok, err := g.routeCache.Get(normStart, normEnd, g.cacheTTL)
		if err != nil {
			return nil, fmt.Errorf("get routes cache: %w", err)
		}
		if ok {
			return routes, nil
		}
	}

	query := map[string]string{
		"origin":         normStart,
		"destination":    normEnd,
		"mode":           "driving",
		"alternatives":   "true",
		"traffic_model":  g.trafficModel,
		"departure_time": "now",
		"units":          "metric",
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, "/maps/api/directions/json", query)
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	switch decoded.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []domain.RouteCandidate{}, nil
	default:
		return nil, fmt.Errorf("directions status %q: %s", decoded.Status, decoded.ErrorMessage)
	}

	routes := make([]domain.RouteCandidate, 0, len(decoded.Routes))
	for i, raw := range decoded.Routes {
		if i >= g.maxRoutes {
			break
		}
		if len(raw.Legs) == 0 {
			return nil, fmt.Errorf("directions route %d has no legs", i)
		}

		// Single-leg journeys only; point-to-point requests never have more.
		leg := raw.Legs[0]

		summary := raw.Summary
		if summary == "" {
			summary = fmt.Sprintf("Route %d", i+1)
		}

		// Without live traffic data the nominal duration stands in.
		trafficSeconds := leg.Duration.Value
		if leg.DurationInTraffic != nil {
			trafficSeconds = leg.DurationInTraffic.Value
		}

		routes = append(routes, domain.RouteCandidate{
			Summary:                summary,
			StartAddress:           leg.StartAddress,
			EndAddress:             leg.EndAddress,
			DistanceMeters:         nonNegative(leg.Distance.Value),
			DurationSeconds:        nonNegative(leg.Duration.Value),
			TrafficDurationSeconds: nonNegative(trafficSeconds),
			Polyline:               raw.OverviewPolyline.Points,
			Warnings:               raw.Warnings,
		})
	}

	if g.routeCache != nil && len(routes) > 0 {
		if err := g.routeCache.Put(normStart, normEnd, routes); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return routes, nil
}

// nonNegative defaults malformed provider values to zero so the ranking core
// can assume well-formed input.
func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
