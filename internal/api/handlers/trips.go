package handlers

import (
	"city-insights-service/internal/api/dto"
	"city-insights-service/internal/domain"
	"city-insights-service/internal/services"
	"city-insights-service/internal/validate"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

// TripHandler exposes route planning over HTTP.
type TripHandler struct {
	Planner *services.TripPlanner
}

// Plan computes the ranked route set for one start/end pair.
// The optional X-Session-ID header ties the search to the caller's history.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq := services.TripRequest{
		StartAddress: req.StartAddress,
		EndAddress:   req.EndAddress,
		SessionID:    r.Header.Get("X-Session-ID"),
	}

	res, err := h.Planner.PlanTrip(r.Context(), svcReq)
	switch {
	case err == nil:
	case errors.Is(err, validate.ErrInvalidAddress):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrNoRoutes):
		writeError(w, r, http.StatusNotFound, "no routes found between the specified locations")
		return
	case errors.Is(err, services.ErrDirectionsUnavailable):
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "directions service unavailable")
		return
	default:
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	routes := make([]dto.RouteResponse, 0, len(res.Routes))
	for _, rr := range res.Routes {
		routes = append(routes, toRouteResponse(rr))
	}

	out := dto.TripResponse{
		Routes:    routes,
		BestRoute: routes[0],
		Summary: dto.RouteSummaryResponse{
			TotalRoutes:         res.Summary.TotalRoutes,
			AverageTimeMinutes:  res.Summary.AverageTimeMinutes,
			AverageDistanceKM:   res.Summary.AverageDistanceKM,
			AverageDelayMinutes: res.Summary.AverageDelayMinutes,
			TimeRange: dto.TimeRangeResponse{
				MinMinutes: res.Summary.TimeRange.MinMinutes,
				MaxMinutes: res.Summary.TimeRange.MaxMinutes,
			},
		},
	}

	// Insights only exist when there is more than one candidate to compare.
	if res.HasInsights {
		out.Insights = &dto.InsightsResponse{
			TimeSavingsMinutes:     res.Insights.TimeSavingsMinutes,
			AverageDelayPercentage: res.Insights.AverageDelayPercentage,
			TrafficCondition:       res.Insights.TrafficCondition,
		}
	}

	writeJSON(w, r, http.StatusOK, out)
}

func toRouteResponse(r domain.RankedRoute) dto.RouteResponse {
	return dto.RouteResponse{
		Summary:                r.Summary,
		StartAddress:           r.StartAddress,
		EndAddress:             r.EndAddress,
		DistanceMeters:         r.DistanceMeters,
		DurationSeconds:        r.DurationSeconds,
		TrafficDurationSeconds: r.TrafficDurationSeconds,
		Polyline:               r.Polyline,
		Warnings:               r.Warnings,
		EfficiencyScore:        r.EfficiencyScore,
		TrafficDelay: dto.TrafficDelayResponse{
			DelaySeconds:    r.TrafficDelay.DelaySeconds,
			DelayMinutes:    r.TrafficDelay.DelayMinutes,
			DelayPercentage: r.TrafficDelay.DelayPercentage,
		},
	}
}
