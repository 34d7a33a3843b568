package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the lock key only if it still holds our token, so an
// expired lock re-acquired by another request is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisSlotLocker serializes booking writes per (ground, slot, date) via
// short-lived Redis locks.
type RedisSlotLocker struct {
	Client *redis.Client
}

// NewRedisSlotLocker returns a locker backed by the shared cache client.
func NewRedisSlotLocker() *RedisSlotLocker {
	return &RedisSlotLocker{Client: GetCacheClient()}
}

// Acquire attempts to take the lock for key, retrying briefly. It returns a
// release func and whether the lock was obtained.
func (l *RedisSlotLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	token := uuid.New().String()

	const attempts = 5
	for i := 0; i < attempts; i++ {
		ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, false, fmt.Errorf("failed to acquire slot lock %s: %w", key, err)
		}
		if ok {
			release := func() {
				relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := releaseScript.Run(relCtx, l.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
					GetLogger().Sugar().Warnf("failed to release slot lock %s: %v", key, err)
				}
			}
			return release, true, nil
		}

		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
	return nil, false, nil
}

// SlotLockKey builds the lock key for a ground/slot/date combination.
func SlotLockKey(groundID string, slot int, date string) string {
	return fmt.Sprintf("bookinglock:%s:%d:%s", groundID, slot, date)
}
