package handlers

import (
	"city-insights-service/internal/api/dto"
	"city-insights-service/internal/ports"
	"log"
	"net/http"
)

// TrafficHandler exposes live traffic event retrieval.
type TrafficHandler struct {
	Feed ports.TrafficFeed
}

func (h *TrafficHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Feed.GetEvents(r.Context())
	if err != nil {
		log.Printf("list traffic events failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "traffic feed unavailable")
		return
	}

	res := dto.ListTrafficEventsResponse{
		Events: make([]dto.TrafficEventResponse, 0, len(events)),
	}
	for _, ev := range events {
		out := dto.TrafficEventResponse{
			Road:        ev.Road,
			Description: ev.Description,
			Severity:    ev.Severity,
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
		}
		if ev.Location != nil {
			out.Location = &dto.CoordinatesResponse{Lat: ev.Location.Lat, Lon: ev.Location.Lon}
		}
		res.Events = append(res.Events, out)
	}

	writeJSON(w, r, http.StatusOK, res)
}
