package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	goredis "github.com/redis/go-redis/v9"
)

// ErrChallengeExists is returned when the same nonce is issued twice.
var ErrChallengeExists = errors.New("challenge already issued")

// ChallengeStore implements ports.ChallengeStore using Redis SET NX + DEL.
type ChallengeStore struct {
	client *goredis.Client
	prefix string
}

// NewChallengeStore creates a new Redis-backed challenge store.
func NewChallengeStore(client *goredis.Client) *ChallengeStore {
	return &ChallengeStore{
		client: client,
		prefix: namespaced("challenge"),
	}
}

func (s *ChallengeStore) key(identity solana.PublicKey, nonce string) string {
	return s.prefix + identity.String() + ":" + nonce
}

// Issue stores a nonce for identity until ttl elapses.
func (s *ChallengeStore) Issue(ctx context.Context, identity solana.PublicKey, nonce string, ttl time.Duration) error {
	result, err := s.client.SetArgs(ctx, s.key(identity, nonce), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrChallengeExists
		}
		return fmt.Errorf("redis challenge issue: %w", err)
	}
	if result != "OK" {
		return ErrChallengeExists
	}
	return nil
}

// Consume deletes the nonce. Only the first caller sees true.
func (s *ChallengeStore) Consume(ctx context.Context, identity solana.PublicKey, nonce string) (bool, error) {
	n, err := s.client.Del(ctx, s.key(identity, nonce)).Result()
	if err != nil {
		return false, fmt.Errorf("redis challenge consume: %w", err)
	}
	return n == 1, nil
}
