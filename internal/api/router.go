package api

import (
	"city-insights-service/internal/api/handlers"
	"city-insights-service/internal/ports"
	"city-insights-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Deps carries the collaborators the API surface needs. Handlers stay
// unaware of concrete adapters.
type Deps struct {
	Planner *services.TripPlanner
	Feed    ports.TrafficFeed
	Tonnage ports.TonnageRepository
	History ports.SearchHistory
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(deps Deps) http.Handler {
	tripHandler := &handlers.TripHandler{Planner: deps.Planner}
	trafficHandler := &handlers.TrafficHandler{Feed: deps.Feed}
	wasteHandler := &handlers.WasteHandler{Repo: deps.Tonnage}
	historyHandler := &handlers.HistoryHandler{History: deps.History}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "X-Session-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.Health)
	r.Post("/trips", tripHandler.Plan)
	r.Get("/traffic/events", trafficHandler.List)
	r.Get("/waste/metrics", wasteHandler.Metrics)
	r.Get("/history", historyHandler.Recent)

	return r
}
