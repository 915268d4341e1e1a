package dto

type MonthlyWasteResponse struct {
	Month         string  `json:"month"`
	TotalTons     float64 `json:"total_tons"`
	RecycledTons  float64 `json:"recycled_tons"`
	DiversionRate float64 `json:"diversion_rate"`
}

type ListWasteMetricsResponse struct {
	Months []MonthlyWasteResponse `json:"months"`
}
