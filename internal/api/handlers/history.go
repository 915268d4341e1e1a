package handlers

import (
	"city-insights-service/internal/api/dto"
	"city-insights-service/internal/ports"
	"log"
	"net/http"
	"strings"
)

// HistoryHandler exposes per-session recent searches.
type HistoryHandler struct {
	History ports.SearchHistory
}

func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.Header.Get("X-Session-ID"))
	if sessionID == "" {
		writeError(w, r, http.StatusBadRequest, "X-Session-ID header is required")
		return
	}

	searches, err := h.History.Recent(r.Context(), sessionID, 10)
	if err != nil {
		log.Printf("get search history failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSearchesResponse{
		Searches: make([]dto.SearchResponse, 0, len(searches)),
	}
	for _, s := range searches {
		res.Searches = append(res.Searches, dto.SearchResponse{
			StartAddress: s.StartAddress,
			EndAddress:   s.EndAddress,
			SearchedAt:   s.SearchedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
