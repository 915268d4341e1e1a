package traffic

import (
	"city-insights-service/internal/domain"
	"city-insights-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// NY511Feed implements TrafficFeed against the 511NY event API.
// Events with usable coordinates outside the configured bounds are dropped;
// events without coordinates are kept with a nil location, since a citywide
// advisory is still worth showing.
type NY511Feed struct {
	session *http.Client
	apiKey  string
	baseURL string
	bounds  domain.Bounds
}

func NewNY511Feed(apiKey string, bounds domain.Bounds) (*NY511Feed, error) {
	if apiKey == "" {
		return nil, errors.New("511NY api key is empty")
	}

	return &NY511Feed{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://511ny.org/api/getevents",
		bounds:  bounds,
	}, nil
}

type eventsResponse struct {
	Events []struct {
		RoadwayName         string          `json:"roadwayName"`
		HeadlineDescription string          `json:"headlineDescription"`
		Severity            string          `json:"severity"`
		StartTime           string          `json:"starttime"`
		EndTime             string          `json:"endtime"`
		Latitude            json.RawMessage `json:"latitude"`
		Longitude           json.RawMessage `json:"longitude"`
	} `json:"events"`
}

// GetEvents fetches the current live traffic events within the feed's bounds.
func (f *NY511Feed) GetEvents(ctx context.Context) (_ []domain.TrafficEvent, err error) {
	defer obs.Time(ctx, "traffic.GetEvents")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("get traffic events: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("apiKey", f.apiKey)
	q.Set("format", "json")
	q.Set("type", "event")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := f.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get traffic events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get traffic events: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("get traffic events: decode response: %w", err)
	}

	events := make([]domain.TrafficEvent, 0, len(decoded.Events))
	for _, raw := range decoded.Events {
		ev := domain.TrafficEvent{
			Road:        orDefault(raw.RoadwayName, "Unknown Road"),
			Description: orDefault(raw.HeadlineDescription, "No description"),
			Severity:    orDefault(raw.Severity, "Unknown"),
			StartTime:   raw.StartTime,
			EndTime:     raw.EndTime,
		}

		lat, latOK := parseCoord(raw.Latitude)
		lon, lonOK := parseCoord(raw.Longitude)
		if latOK && lonOK {
			loc := domain.Coordinates{Lon: lon, Lat: lat}
			if !f.bounds.Contains(loc) {
				continue
			}
			ev.Location = &loc
		}

		events = append(events, ev)
	}

	return events, nil
}

// parseCoord accepts the feed's mixed number/string coordinate encoding.
// Zero means "unset" in the feed, never a real NYC coordinate.
func parseCoord(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return 0, false
	}

	return v, true
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
