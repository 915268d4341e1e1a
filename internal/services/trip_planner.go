package services

import (
	"city-insights-service/internal/domain"
	"city-insights-service/internal/ports"
	"city-insights-service/internal/validate"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrDirectionsUnavailable wraps failures of the upstream directions
// provider so the API layer can report them as a gateway problem.
var ErrDirectionsUnavailable = errors.New("directions provider unavailable")

type TripRequest struct {
	StartAddress string
	EndAddress   string
	SessionID    string
}

type TripResult struct {
	Routes      []domain.RankedRoute
	Summary     domain.RouteSummary
	Insights    TripInsights
	HasInsights bool
}

// TripPlanner orchestrates endpoint validation, route retrieval, ranking and
// best-effort search-history recording. It holds no per-request state; every
// call works purely on its inputs and the configured collaborators.
type TripPlanner struct {
	Policy   RankingPolicy
	Bounds   domain.Bounds
	Provider ports.DirectionsProvider
	Geocoder ports.Geocoder      // optional; skips the bounds check when nil
	History  ports.SearchHistory // optional; skips history recording when nil
}

// PlanTrip computes the ranked route set for one start/end pair.
//
// Validation failures wrap validate.ErrInvalidAddress; an empty candidate set
// wraps ErrNoRoutes; provider failures wrap ErrDirectionsUnavailable. All
// other computation is deterministic and total.
func (t *TripPlanner) PlanTrip(ctx context.Context, req TripRequest) (TripResult, error) {
	start := validate.SanitizeAddress(req.StartAddress)
	end := validate.SanitizeAddress(req.EndAddress)

	if err := validate.CheckEndpoints(start, end); err != nil {
		return TripResult{}, fmt.Errorf("plan trip: %w", err)
	}

	if t.Geocoder != nil {
		for _, addr := range []string{start, end} {
			coord, err := t.Geocoder.Geocode(ctx, addr)
			if err != nil {
				return TripResult{}, fmt.Errorf("plan trip: geocode %q: %w: %v", addr, ErrDirectionsUnavailable, err)
			}
			if !t.Bounds.Contains(coord) {
				return TripResult{}, fmt.Errorf(
					"plan trip: %w: address %q is outside New York City boundaries",
					validate.ErrInvalidAddress, addr,
				)
			}
		}
	}

	routes, err := t.Provider.GetRoutes(ctx, start, end)
	if err != nil {
		return TripResult{}, fmt.Errorf("plan trip: get routes %q -> %q: %w: %v", start, end, ErrDirectionsUnavailable, err)
	}

	ranked, err := Rank(t.Policy, routes)
	if err != nil {
		return TripResult{}, fmt.Errorf("plan trip: %w", err)
	}

	summary, _ := Summarize(ranked)
	insights, hasInsights := ComputeInsights(ranked)

	// History is a convenience, not part of the trip result; failures only log.
	if t.History != nil && req.SessionID != "" {
		s := ports.Search{StartAddress: start, EndAddress: end, SearchedAt: time.Now().UTC()}
		if err := t.History.Add(ctx, req.SessionID, s); err != nil {
			log.Printf("search history write failed: %v", err)
		}
	}

	return TripResult{
		Routes:      ranked,
		Summary:     summary,
		Insights:    insights,
		HasInsights: hasInsights,
	}, nil
}
