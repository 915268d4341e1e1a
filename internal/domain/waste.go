package domain

// One borough-month of collected waste tonnage, as reported by the city
// sanitation warehouse. Refuse is landfill-bound; paper and MGP
// (metal/glass/plastic) streams count as recycled.
type TonnageRecord struct {
	Borough    string
	Month      string // YYYY-MM
	RefuseTons float64
	PaperTons  float64
	MGPTons    float64
}

// Citywide waste totals for a single month, with the diversion rate:
// (recycled tonnage / total tonnage) x 100.
type MonthlyWasteMetrics struct {
	Month         string
	TotalTons     float64
	RecycledTons  float64
	DiversionRate float64
}
