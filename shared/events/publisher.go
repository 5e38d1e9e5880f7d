package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// EventPublisher is implemented by Publisher and NopPublisher.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

type Publisher struct {
	client *redis.Client
	now    func() time.Time
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client, now: time.Now}
}

func (p *Publisher) Publish(ctx context.Context, stream, eventType string, data any) error {
	eventJSON, err := encodeEvent(eventType, p.now(), data)
	if err != nil {
		return err
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"event": eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func encodeEvent(eventType string, at time.Time, data any) ([]byte, error) {
	eventJSON, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: at.UTC(),
		Data:      data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return eventJSON, nil
}

// NopPublisher drops every event. Used when no Redis address is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) error { return nil }
