package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventPublisher implements ports.EventPublisher over Redis pub/sub.
type EventPublisher struct {
	client  goredis.UniversalClient
	channel string
}

// NewEventPublisher publishes every event on channel.
func NewEventPublisher(client goredis.UniversalClient, channel string) *EventPublisher {
	return &EventPublisher{client: client, channel: channel}
}

// Publish sends event as JSON. Delivery is at-most-once; subscribers that are
// offline miss it and must reconcile from the read endpoints.
func (p *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", event.Type, err)
	}
	return nil
}
