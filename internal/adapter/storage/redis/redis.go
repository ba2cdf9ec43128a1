package redis

import (
	"context"
	"fmt"
	"time"

	"confidential-ledger/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// pingTimeout bounds the startup connectivity check so a wrong address
// fails fast instead of hanging boot.
const pingTimeout = 5 * time.Second

// NewClient connects to Redis, which backs the handle cache, the replay
// guard and the rate limiter. All three degrade gracefully at runtime, but
// a client that cannot reach Redis at all is a configuration error, so
// connectivity is verified up front.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}
