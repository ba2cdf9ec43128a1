package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReplayGuard implements ports.ReplayGuard using Redis SET NX. It remembers
// submission digests per owner so an exact resubmission of the same
// ciphertext/proof pair is rejected within the TTL window.
type ReplayGuard struct {
	client *goredis.Client
	prefix string
}

// NewReplayGuard creates a new Redis-backed replay guard.
func NewReplayGuard(client *goredis.Client) *ReplayGuard {
	return &ReplayGuard{
		client: client,
		prefix: "submission:",
	}
}

// CheckAndSet atomically records a digest, returning true if it is new and
// false if it was already seen.
func (g *ReplayGuard) CheckAndSet(ctx context.Context, owner string, digest string, ttl time.Duration) (bool, error) {
	key := g.prefix + owner + ":" + digest
	result, err := g.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists: the digest was seen before.
			return false, nil
		}
		return false, fmt.Errorf("redis replay check: %w", err)
	}
	return result == "OK", nil
}

// Release forgets a previously recorded digest. Deleting a key that has
// already expired is a no-op.
func (g *ReplayGuard) Release(ctx context.Context, owner string, digest string) error {
	key := g.prefix + owner + ":" + digest
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis replay release: %w", err)
	}
	return nil
}
