package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gagliardetto/solana-go"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessedCache_MissThenHit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewProcessedCache(client)
	ctx := context.Background()
	record := solana.NewWallet().PublicKey()

	hit, err := cache.IsProcessed(ctx, record)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.MarkProcessed(ctx, record, time.Hour))

	hit, err = cache.IsProcessed(ctx, record)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.True(t, s.Exists("rewards:processed:"+record.String()))
}

func TestProcessedCache_Expires(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewProcessedCache(client)
	ctx := context.Background()
	record := solana.NewWallet().PublicKey()

	require.NoError(t, cache.MarkProcessed(ctx, record, time.Minute))
	s.FastForward(2 * time.Minute)

	hit, err := cache.IsProcessed(ctx, record)
	require.NoError(t, err)
	assert.False(t, hit, "expired mark must fall through to the record store")
}

func TestProcessedCache_RedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewProcessedCache(client)
	s.Close()

	_, err := cache.IsProcessed(context.Background(), solana.NewWallet().PublicKey())
	assert.Error(t, err)
}
