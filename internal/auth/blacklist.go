package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "auth:revoked:"

// Blacklist stores revoked token ids until their expiry
type Blacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisBlacklist keeps revoked token ids in Redis with a TTL
type RedisBlacklist struct {
	client redis.Cmdable
}

// NewRedisBlacklist creates a Redis backed blacklist
func NewRedisBlacklist(client redis.Cmdable) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

// Revoke stores the token id with the remaining token lifetime as TTL
func (b *RedisBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := b.client.Set(ctx, blacklistKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id was revoked
func (b *RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := b.client.Get(ctx, blacklistKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read token blacklist: %w", err)
	}
	return true, nil
}

// MemoryBlacklist is the single-process fallback used when Redis is not configured
type MemoryBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryBlacklist creates an in-memory blacklist
func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke records the token id until now+ttl
func (b *MemoryBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	for id, expiry := range b.entries {
		if !expiry.After(now) {
			delete(b.entries, id)
		}
	}
	b.entries[jti] = now.Add(ttl)
	return nil
}

// IsRevoked reports whether the token id is still blacklisted
func (b *MemoryBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expiry, ok := b.entries[jti]
	if !ok {
		return false, nil
	}
	if !expiry.After(b.now()) {
		delete(b.entries, jti)
		return false, nil
	}
	return true, nil
}
