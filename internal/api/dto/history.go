package dto

import "time"

type SearchResponse struct {
	StartAddress string    `json:"start_address"`
	EndAddress   string    `json:"end_address"`
	SearchedAt   time.Time `json:"searched_at"`
}

type ListSearchesResponse struct {
	Searches []SearchResponse `json:"searches"`
}
