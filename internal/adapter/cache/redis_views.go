package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
)

const viewKeyPrefix = "education:views:"

// RedisViewCounter tracks article view counts in Redis. Counters are cheap
// request-path increments and deliberately live outside Postgres.
type RedisViewCounter struct {
	client redis.UniversalClient
}

var _ repository.ViewCounter = (*RedisViewCounter)(nil)

// NewRedisViewCounter constructs a Redis-backed view counter.
func NewRedisViewCounter(client redis.UniversalClient) *RedisViewCounter {
	return &RedisViewCounter{client: client}
}

// Increment bumps and returns the article's view count.
func (c *RedisViewCounter) Increment(ctx context.Context, articleID int64) (int64, error) {
	count, err := c.client.Incr(ctx, viewKey(articleID)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return count, nil
}

// Get returns the article's current view count; missing keys read as zero.
func (c *RedisViewCounter) Get(ctx context.Context, articleID int64) (int64, error) {
	count, err := c.client.Get(ctx, viewKey(articleID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("load views: %w", err)
	}
	return count, nil
}

func viewKey(articleID int64) string {
	return fmt.Sprintf("%s%d", viewKeyPrefix, articleID)
}
