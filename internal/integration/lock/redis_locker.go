// Package lock provides distributed job locks backed by Redis.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ledgerline/receivables/internal/application/adapter"
)

// KeyPrefix namespaces every lock key.
const KeyPrefix = "receivables:lock:"

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements adapter.JobLocker with SET NX and a token-checked release.
type RedisLocker struct {
	client redis.UniversalClient
}

// NewRedisLocker creates a new Redis-backed job locker.
func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

// JobKey builds the lock key for a tenant-scoped job.
func JobKey(tenantID uuid.UUID, job string) string {
	return fmt.Sprintf("%s:%s", tenantID, job)
}

// Acquire implements adapter.JobLocker.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, KeyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release implements adapter.JobLocker. Releasing a lock that expired or
// passed to another holder is a no-op.
func (l *RedisLocker) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{KeyPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	return nil
}

// Ensure RedisLocker implements adapter.JobLocker.
var _ adapter.JobLocker = (*RedisLocker)(nil)
