package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

const operationKeyPrefix = "operations:"

// RedisStore keeps operations in Redis so they survive restarts and expire
// instead of accumulating forever. Each operation has a single background
// writer, so read-modify-write on the terminal transition is safe.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, op *models.Operation) error {
	return s.set(ctx, op)
}

func (s *RedisStore) Complete(ctx context.Context, id string, result *models.OrderSummary) error {
	op, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if op.Status != models.OperationPending {
		return nil
	}
	op.Status = models.OperationCompleted
	op.Result = result
	return s.set(ctx, op)
}

func (s *RedisStore) Fail(ctx context.Context, id string, message string) error {
	op, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if op.Status != models.OperationPending {
		return nil
	}
	op.Status = models.OperationFailed
	op.Error = message
	return s.set(ctx, op)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Operation, error) {
	value, err := s.rdb.Get(ctx, operationKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrOperationNotFound
	}
	if err != nil {
		return nil, err
	}
	var op models.Operation
	if err := json.Unmarshal([]byte(value), &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (s *RedisStore) set(ctx context.Context, op *models.Operation) error {
	payload, err := json.Marshal(op)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, operationKeyPrefix+op.OperationID, payload, s.ttl).Err()
}
