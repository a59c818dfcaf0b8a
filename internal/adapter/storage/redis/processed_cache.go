package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	goredis "github.com/redis/go-redis/v9"
)

// ProcessedCache implements ports.ProcessedCache using Redis.
// A hit means the transaction record already exists; a miss means nothing,
// the record store stays authoritative.
type ProcessedCache struct {
	client *goredis.Client
	prefix string
}

// NewProcessedCache creates a new Redis-backed processed-transaction cache.
func NewProcessedCache(client *goredis.Client) *ProcessedCache {
	return &ProcessedCache{
		client: client,
		prefix: namespaced("processed"),
	}
}

// IsProcessed reports whether the record address has been marked.
func (c *ProcessedCache) IsProcessed(ctx context.Context, recordKey solana.PublicKey) (bool, error) {
	err := c.client.Get(ctx, c.prefix+recordKey.String()).Err()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis processed get: %w", err)
	}
	return true, nil
}

// MarkProcessed records the address with a TTL.
func (c *ProcessedCache) MarkProcessed(ctx context.Context, recordKey solana.PublicKey, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+recordKey.String(), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis processed set: %w", err)
	}
	return nil
}
