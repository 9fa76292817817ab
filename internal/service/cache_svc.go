package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

// CounterCacheTTL bounds how stale a counter snapshot can get if an
// invalidation is missed; writes invalidate eagerly, the worker refreshes.
const CounterCacheTTL = 60 * time.Second

// CacheService provides a Redis read-through cache for per-item engagement
// counters. Only the viewer-independent counts are cached; the viewer's own
// like state is always looked up fresh.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops and every read falls through to a full log scan).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetCounts retrieves cached counters for a content ref. Returns nil if not
// cached or the cache is disabled.
func (c *CacheService) GetCounts(ctx context.Context, ref model.ContentRef) (*model.EngagementCounts, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, counterKey(ref)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var counts model.EngagementCounts
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

// SetCounts stores a counter snapshot for a content ref.
func (c *CacheService) SetCounts(ctx context.Context, ref model.ContentRef, counts model.EngagementCounts) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, counterKey(ref), b, CounterCacheTTL).Err()
}

// InvalidateCounts removes a ref's counter snapshot (called after engagement
// or comment writes).
func (c *CacheService) InvalidateCounts(ctx context.Context, ref model.ContentRef) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, counterKey(ref)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func counterKey(ref model.ContentRef) string {
	return fmt.Sprintf("engagement:%s:%d", ref.Type, ref.ID)
}
