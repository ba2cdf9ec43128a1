package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayGuard_CheckAndSet_NewDigest(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()

	ok, err := guard.CheckAndSet(ctx, "owner-1", "digest-abc", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "new digest should return true")
}

func TestReplayGuard_CheckAndSet_Replay(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()

	ok, err := guard.CheckAndSet(ctx, "owner-1", "digest-xyz", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.CheckAndSet(ctx, "owner-1", "digest-xyz", 10*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "repeated digest should return false")
}

func TestReplayGuard_CheckAndSet_ScopedByOwner(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()

	// Same digest under different owners stays independent.
	ok1, err := guard.CheckAndSet(ctx, "owner-A", "digest-123", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok1)

	ok2, err := guard.CheckAndSet(ctx, "owner-B", "digest-123", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok2)
}

func TestReplayGuard_Release(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()

	ok, err := guard.CheckAndSet(ctx, "owner-1", "digest-retry", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// The submission that recorded the digest failed; releasing it lets the
	// caller resubmit the identical pair within the TTL.
	require.NoError(t, guard.Release(ctx, "owner-1", "digest-retry"))

	ok, err = guard.CheckAndSet(ctx, "owner-1", "digest-retry", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "released digest should be accepted again")
}

func TestReplayGuard_Release_UnknownDigest(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)

	// Deleting a digest that was never recorded is a no-op, not an error.
	assert.NoError(t, guard.Release(context.Background(), "owner-1", "digest-unseen"))
}

func TestReplayGuard_CheckAndSet_ExpiredDigest(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()

	ok, err := guard.CheckAndSet(ctx, "owner-1", "digest-old", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = guard.CheckAndSet(ctx, "owner-1", "digest-old", time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "digest should be accepted again after TTL")
}
