package services

import (
	"city-insights-service/internal/domain"
	"sort"
)

// AggregateMonthlyWaste folds raw tonnage records into citywide per-month
// totals with diversion rates. Records for the same month across boroughs are
// combined; months are returned in ascending order. A month with zero total
// tonnage reports a zero diversion rate rather than dividing by zero.
//
// Single-pass and stateless; empty input yields an empty slice.
func AggregateMonthlyWaste(records []domain.TonnageRecord) []domain.MonthlyWasteMetrics {
	byMonth := make(map[string]*domain.MonthlyWasteMetrics)
	for _, rec := range records {
		m, ok := byMonth[rec.Month]
		if !ok {
			m = &domain.MonthlyWasteMetrics{Month: rec.Month}
			byMonth[rec.Month] = m
		}

		recycled := rec.PaperTons + rec.MGPTons
		m.TotalTons += rec.RefuseTons + recycled
		m.RecycledTons += recycled
	}

	out := make([]domain.MonthlyWasteMetrics, 0, len(byMonth))
	for _, m := range byMonth {
		if m.TotalTons > 0 {
			m.DiversionRate = round1(m.RecycledTons / m.TotalTons * 100)
		}
		out = append(out, *m)
	}

	// YYYY-MM months sort correctly as strings.
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })

	return out
}
