package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix  = "wirpackens:booking-lock:"
	eventKeyPrefix = "wirpackens:stripe-event:"
)

type redisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

// NewRedisLocker returns a Locker backed by redsync, for deployments with
// more than one instance.
func NewRedisLocker(client *redis.Client, expiry time.Duration) Locker {
	return &redisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
	}
}

func (l *redisLocker) Lock(ctx context.Context, key string) (func(context.Context) error, error) {
	mutex := l.rs.NewMutex(lockKeyPrefix+key,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(64),
		redsync.WithRetryDelay(50*time.Millisecond),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}, nil
}

type redisEventTracker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEventTracker(client *redis.Client, ttl time.Duration) EventTracker {
	return &redisEventTracker{client: client, ttl: ttl}
}

func (t *redisEventTracker) Claim(ctx context.Context, eventID string) (bool, error) {
	ok, err := t.client.SetNX(ctx, eventKeyPrefix+eventID, time.Now().Unix(), t.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim event %s: %w", eventID, err)
	}
	return ok, nil
}

func (t *redisEventTracker) Release(ctx context.Context, eventID string) error {
	return t.client.Del(ctx, eventKeyPrefix+eventID).Err()
}
