package history

import (
	"city-insights-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the SearchHistory port.
// Each session keeps a capped list of its most recent searches, newest
// first. Keys expire a day after the last write; history is a convenience,
// not a durable record.
type RedisSearchHistory struct {
	Client *redis.Client
	cap    int64
	ttl    time.Duration
}

func NewRedisSearchHistory(client *redis.Client, maxEntries int) *RedisSearchHistory {
	if maxEntries <= 0 {
		maxEntries = 10
	}

	return &RedisSearchHistory{
		Client: client,
		cap:    int64(maxEntries),
		ttl:    24 * time.Hour,
	}
}

func historyKey(sessionID string) string {
	return "search:history:" + sessionID
}

// Record a search for the session, evicting the oldest beyond the cap.
func (h *RedisSearchHistory) Add(ctx context.Context, sessionID string, s ports.Search) error {
	if h.Client == nil {
		return errors.New("search history: client is nil")
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return errors.New("add search history: session id must not be empty")
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("add search history: marshal entry: %w", err)
	}

	key := historyKey(sessionID)
	pipe := h.Client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, h.cap-1)
	pipe.Expire(ctx, key, h.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add search history session=%q: %w", sessionID, err)
	}

	return nil
}

// Return up to limit searches for the session, newest first.
func (h *RedisSearchHistory) Recent(ctx context.Context, sessionID string, limit int) ([]ports.Search, error) {
	if h.Client == nil {
		return nil, errors.New("search history: client is nil")
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errors.New("get search history: session id must not be empty")
	}

	if limit <= 0 || int64(limit) > h.cap {
		limit = int(h.cap)
	}

	raw, err := h.Client.LRange(ctx, historyKey(sessionID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("get search history session=%q: %w", sessionID, err)
	}

	out := make([]ports.Search, 0, len(raw))
	for _, entry := range raw {
		var s ports.Search
		if err := json.Unmarshal([]byte(entry), &s); err != nil {
			return nil, fmt.Errorf("get search history: parse entry: %w", err)
		}
		out = append(out, s)
	}

	return out, nil
}
