package redis

import (
	"context"
	"fmt"

	"smartpay-rewards/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// keyPrefix namespaces every key the reward stores write.
const keyPrefix = "rewards:"

func namespaced(kind string) string {
	return keyPrefix + kind + ":"
}

// NewClient opens the client behind the processed-transaction cache, the
// auth challenge store, the rate limiter and the event publisher, and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging reward cache at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("key_prefix", keyPrefix).
		Msg("Reward cache connected")

	return client, nil
}
