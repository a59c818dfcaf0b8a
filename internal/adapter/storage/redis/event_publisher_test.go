package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"smartpay-rewards/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/gagliardetto/solana-go"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	defer client.Close()
	ctx := context.Background()

	sub := client.Subscribe(ctx, "rewards.events")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewEventPublisher(client, "rewards.events")
	assert.Equal(t, "rewards.events", pub.Channel())

	user := solana.NewWallet().PublicKey()
	ev := domain.NewRewardMinted(user, 100, 2, "tx-1", time.Now().UTC())
	require.NoError(t, pub.Publish(ctx, ev))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, "REWARD_MINTED", got["kind"])
	assert.Equal(t, user.String(), got["user"])
	assert.Equal(t, "tx-1", got["transaction_id"])
	assert.EqualValues(t, 2, got["reward_amount"])
}

func TestEventPublisher_RedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	s.Close()

	err := NewEventPublisher(client, "rewards.events").
		Publish(context.Background(), domain.NewRewardRedeemed(solana.NewWallet().PublicKey(), 1, time.Now()))
	assert.Error(t, err)
}
