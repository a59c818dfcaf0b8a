package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"smartpay-rewards/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventPublisher implements ports.EventPublisher over Redis pub/sub.
// Events are JSON encoded; keys are rendered as base58.
type EventPublisher struct {
	client  *goredis.Client
	channel string
}

// NewEventPublisher creates a publisher bound to one channel.
func NewEventPublisher(client *goredis.Client, channel string) *EventPublisher {
	return &EventPublisher{client: client, channel: channel}
}

// Publish sends the event to every current subscriber.
func (p *EventPublisher) Publish(ctx context.Context, event *domain.RewardEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal reward event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}

// Channel returns the pub/sub channel name.
func (p *EventPublisher) Channel() string {
	return p.channel
}
