package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/six-jars/backend/internal/application/adapter"
)

const (
	lockKeyPrefix     = "sixjars:lock:"
	lockRetryInterval = 20 * time.Millisecond
)

// releaseScript deletes the lock only if this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLocker implements adapter.UserLocker with SET NX PX.
type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker creates a distributed per-user lock. ttl bounds how long a
// crashed holder can block the user.
func NewRedisLocker(client *redis.Client, ttl time.Duration) adapter.UserLocker {
	return &redisLocker{client: client, ttl: ttl}
}

// Lock retries until the lock is acquired or ctx is done.
func (l *redisLocker) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	key := lockKeyPrefix + userID.String()
	token := uuid.NewString()

	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire budget lock: %w", err)
		}
		if ok {
			return func() {
				// the caller's ctx may already be cancelled
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
					slog.Warn("failed to release budget lock", "user_id", userID, "error", err)
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to acquire budget lock: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// memoryLocker implements adapter.UserLocker with one channel per user.
type memoryLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]chan struct{}
}

// NewMemoryLocker creates an in-process per-user lock.
func NewMemoryLocker() adapter.UserLocker {
	return &memoryLocker{locks: make(map[uuid.UUID]chan struct{})}
}

func (l *memoryLocker) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	l.mu.Lock()
	ch, ok := l.locks[userID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[userID] = ch
	}
	l.mu.Unlock()

	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to acquire budget lock: %w", ctx.Err())
	}
}
