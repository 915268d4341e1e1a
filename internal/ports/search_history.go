package ports

import (
	"context"
	"time"
)

// One recorded route search.
type Search struct {
	StartAddress string    `json:"start_address"`
	EndAddress   string    `json:"end_address"`
	SearchedAt   time.Time `json:"searched_at"`
}

// Port: a capped, per-session store of recent route searches.
// Sessions are identified by a caller-supplied opaque ID; the store keeps
// no global state and entries are transient.
type SearchHistory interface {
	// Record a search for the session, evicting the oldest beyond the cap.
	Add(ctx context.Context, sessionID string, s Search) error
	// Return up to limit searches for the session, newest first.
	Recent(ctx context.Context, sessionID string, limit int) ([]Search, error)
}
