package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"weathering-atlas/internal/shared/redis"
)

// ResponseCache caches serialized JSON list responses in redis. Keys
// include the store generation, so a rescan invalidates every cached
// entry without explicit deletes. A nil client disables caching.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, ttl: ttl}
}

func cacheKey(generation uint64, path string) string {
	return fmt.Sprintf("catalog:%d:%s", generation, path)
}

func (c *ResponseCache) get(r *http.Request, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(r.Context(), key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *ResponseCache) set(r *http.Request, key string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(r.Context(), key, payload, c.ttl).Err(); err != nil {
		slog.Debug("Failed to cache response", "key", key, "error", err)
	}
}

func writeCachedJSON(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
