package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
)

const AggregateKey = "analytics:aggregate"

var _ dashboard.AggregateCache = (*RedisService)(nil)

// RedisService stores the published aggregate in Redis and hands out the lock client used
// to serialize refreshes between instances.
type RedisService struct {
	rdb    *redis.Client
	locker *redislock.Client
	ttl    time.Duration
}

func NewRedisService(rdb *redis.Client, ttl time.Duration) *RedisService {
	return &RedisService{
		rdb:    rdb,
		locker: redislock.New(rdb),
		ttl:    ttl,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Locker() *redislock.Client {
	return a.locker
}

func (a *RedisService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return a.rdb.Ping(ctx).Err()
}

// Load implements dashboard.AggregateCache.
func (a *RedisService) Load(ctx context.Context) (dashboard.Snapshot, bool, error) {
	data, err := a.rdb.Get(ctx, AggregateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return dashboard.Snapshot{}, false, nil
	}
	if err != nil {
		return dashboard.Snapshot{}, false, fmt.Errorf("failed to read cached aggregate: %w", err)
	}

	var snap dashboard.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return dashboard.Snapshot{}, false, fmt.Errorf("failed to decode cached aggregate: %w", err)
	}
	return snap, true, nil
}

// Store implements dashboard.AggregateCache.
func (a *RedisService) Store(ctx context.Context, snap dashboard.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode aggregate: %w", err)
	}
	if err := a.rdb.Set(ctx, AggregateKey, data, a.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache aggregate: %w", err)
	}
	return nil
}
