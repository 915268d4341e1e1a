package handlers

import (
	"city-insights-service/internal/api/dto"
	"city-insights-service/internal/ports"
	"city-insights-service/internal/services"
	"log"
	"net/http"
	"strconv"
)

// WasteHandler exposes monthly waste metrics computed from warehouse data.
type WasteHandler struct {
	Repo ports.TonnageRepository
}

// Metrics returns citywide monthly totals and diversion rates, oldest first.
// An optional ?months=N query keeps only the N most recent months.
func (h *WasteHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.ListTonnage(r.Context())
	if err != nil {
		log.Printf("list tonnage failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics := services.AggregateMonthlyWaste(records)

	if v := r.URL.Query().Get("months"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "months must be a positive integer")
			return
		}
		if n < len(metrics) {
			metrics = metrics[len(metrics)-n:]
		}
	}

	res := dto.ListWasteMetricsResponse{
		Months: make([]dto.MonthlyWasteResponse, 0, len(metrics)),
	}
	for _, m := range metrics {
		res.Months = append(res.Months, dto.MonthlyWasteResponse{
			Month:         m.Month,
			TotalTons:     m.TotalTons,
			RecycledTons:  m.RecycledTons,
			DiversionRate: m.DiversionRate,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
