package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyKeyPrefix = "checkout:idempotency:"

// IdempotencyStore replays a completed checkout response for a reused
// Idempotency-Key instead of re-running the saga.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Save(ctx context.Context, key string, response []byte)
}

// RedisIdempotencyStore is best-effort: Redis trouble means the checkout
// simply runs again, it never fails the request.
type RedisIdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisIdempotencyStore(rdb *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{rdb: rdb, ttl: ttl}
}

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.rdb.Get(ctx, idempotencyKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("idempotency lookup failed", zap.Error(err))
		}
		return nil, false
	}
	return value, true
}

func (s *RedisIdempotencyStore) Save(ctx context.Context, key string, response []byte) {
	if err := s.rdb.Set(ctx, idempotencyKeyPrefix+key, response, s.ttl).Err(); err != nil {
		zap.L().Warn("idempotency save failed", zap.Error(err))
	}
}
