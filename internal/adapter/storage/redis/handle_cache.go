package redis

import (
	"context"
	"fmt"
	"time"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// HandleCache implements ports.HandleCache using Redis. It caches the hex
// form of each identity's current total handle. The cache is best-effort:
// the accounts table is always authoritative and callers fall through to it
// on any miss or error.
type HandleCache struct {
	client *goredis.Client
	prefix string
}

// NewHandleCache creates a new Redis-backed handle cache.
func NewHandleCache(client *goredis.Client) *HandleCache {
	return &HandleCache{
		client: client,
		prefix: "total_handle:",
	}
}

// Get retrieves the cached handle for an identity.
// Returns present=false if the key does not exist.
func (c *HandleCache) Get(ctx context.Context, owner uuid.UUID) (domain.Handle, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+owner.String()).Result()
	if err != nil {
		if err == goredis.Nil {
			return domain.NullHandle, false, nil
		}
		return domain.NullHandle, false, fmt.Errorf("redis handle get: %w", err)
	}

	h, err := domain.ParseHandle(val)
	if err != nil {
		// A corrupt entry behaves like a miss; the next Set repairs it.
		return domain.NullHandle, false, fmt.Errorf("redis handle decode: %w", err)
	}
	return h, true, nil
}

// Set stores the current handle for an identity with TTL.
func (c *HandleCache) Set(ctx context.Context, owner uuid.UUID, h domain.Handle, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+owner.String(), h.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis handle set: %w", err)
	}
	return nil
}
