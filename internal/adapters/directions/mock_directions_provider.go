package directions

import (
	"city-insights-service/internal/domain"
	"context"
	"fmt"
)

type MockRouteSet struct {
	Start, End string
	Routes     []domain.RouteCandidate
}

// In-memory DirectionsProvider and Geocoder for tests.
type MockDirectionsProvider struct {
	m      map[string][]domain.RouteCandidate
	coords map[string]domain.Coordinates
}

func NewMockDirectionsProvider(sets []MockRouteSet) *MockDirectionsProvider {
	m := make(map[string][]domain.RouteCandidate, len(sets))
	for _, s := range sets {
		m[s.Start+"|"+s.End] = s.Routes
	}
	return &MockDirectionsProvider{m: m, coords: map[string]domain.Coordinates{}}
}

// SetCoordinates registers a geocode result for an address.
func (p *MockDirectionsProvider) SetCoordinates(address string, c domain.Coordinates) {
	p.coords[address] = c
}

func (p *MockDirectionsProvider) GetRoutes(ctx context.Context, start, end string) ([]domain.RouteCandidate, error) {
	r, ok := p.m[start+"|"+end]
	if !ok {
		return nil, fmt.Errorf("missing route set %q -> %q", start, end)
	}

	return r, nil
}

func (p *MockDirectionsProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	c, ok := p.coords[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("missing geocode for %q", address)
	}

	return c, nil
}
