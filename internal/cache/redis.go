package cache

import (
	"context"
	"encoding/json"
	"time"

	"flightsearch-service/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

// RedisPriceCache caches computed price summaries per search id
type RedisPriceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPriceCache creates a new redis-backed price summary cache
func NewRedisPriceCache(addr, password string, db int, ttl time.Duration) *RedisPriceCache {
	return &RedisPriceCache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl:    ttl,
	}
}

// GetSummary returns the cached summary for a search, or nil on a miss
func (c *RedisPriceCache) GetSummary(ctx context.Context, searchID string) (*entity.PriceSummary, error) {
	data, err := c.client.Get(ctx, summaryKey(searchID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var summary entity.PriceSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetSummary stores the summary for a search with the configured TTL
func (c *RedisPriceCache) SetSummary(ctx context.Context, searchID string, summary *entity.PriceSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey(searchID), payload, c.ttl).Err()
}

func summaryKey(searchID string) string {
	return "cache:search:prices:" + searchID
}
