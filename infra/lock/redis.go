package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/lock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockTimeout is returned when a key could not be acquired before ctx ended.
var ErrLockTimeout = errors.New("lock: timed out waiting for key")

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker holds a SET NX PX lease per key so several API instances can
// share one ledger database.
type RedisLocker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	retry  time.Duration
	logger *slog.Logger
}

// NewRedisLocker creates a RedisLocker. ttl bounds how long a crashed holder
// can block others.
func NewRedisLocker(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
		logger: logger.With("locker", "redis"),
	}
}

func (r *RedisLocker) key(key string) string {
	return r.prefix + "lock:" + key
}

// Lock acquires every key in sorted order, retrying until ctx is done.
func (r *RedisLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	token := uuid.NewString()
	keys = lock.Keys(keys...)
	held := make([]string, 0, len(keys))
	release := func() {
		// Release must run even when the request context is already cancelled.
		ctx := context.WithoutCancel(ctx)
		for i := len(held) - 1; i >= 0; i-- {
			if err := releaseScript.Run(ctx, r.client, []string{r.key(held[i])}, token).Err(); err != nil {
				r.logger.Error("failed to release lock", "key", held[i], "error", err)
			}
		}
	}

	for _, key := range keys {
		if err := r.acquire(ctx, key, token); err != nil {
			release()
			return nil, err
		}
		held = append(held, key)
	}
	return release, nil
}

func (r *RedisLocker) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()
	for {
		ok, err := r.client.SetNX(ctx, r.key(key), token, r.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("lock %s: %w", key, err)
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s", ErrLockTimeout, key)
		case <-ticker.C:
		}
	}
}

var _ lock.Locker = (*RedisLocker)(nil)
