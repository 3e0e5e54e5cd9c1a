package stormguard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed implementation of the Store interface, for
// deployments where multiple engine instances must share one storm budget.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a counter store on the given Redis client.
func NewRedisStore(client redis.UniversalClient) (*RedisStore, error) {
	if client == nil {
		return nil, ErrClientRequired
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// NX keeps the expiry anchored to the bucket's first increment.
	pipe.ExpireNX(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment redis counter %s: %w", key, err)
	}
	return incr.Val(), nil
}
