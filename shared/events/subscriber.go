package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Handler processes one decoded event. A non-nil error leaves the message
// pending in the consumer group.
type Handler func(ctx context.Context, event Event) error

const (
	defaultBatchSize     = 10
	defaultBlockDuration = 5 * time.Second
	retryDelay           = time.Second
)

// Subscriber consumes one ledger stream as a member of a consumer group.
type Subscriber struct {
	client  *redis.Client
	cfg     SubscriberConfig
	handler Handler
}

type SubscriberConfig struct {
	Group         string
	Consumer      string
	Stream        string
	Handler       Handler
	BatchSize     int64
	BlockDuration time.Duration
}

func NewSubscriber(client *redis.Client, cfg SubscriberConfig) *Subscriber {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.BlockDuration <= 0 {
		cfg.BlockDuration = defaultBlockDuration
	}
	return &Subscriber{client: client, cfg: cfg, handler: cfg.Handler}
}

// Start joins the group, creating stream and group when missing, and
// processes new entries until ctx is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	if err := s.ensureGroup(ctx); err != nil {
		return err
	}
	log.Printf("Subscriber started: stream=%s, group=%s, consumer=%s", s.cfg.Stream, s.cfg.Group, s.cfg.Consumer)

	for ctx.Err() == nil {
		if _, err := s.poll(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Error reading %s: %v", s.cfg.Stream, err)
			select {
			case <-ctx.Done():
			case <-time.After(retryDelay):
			}
		}
	}
	log.Printf("Subscriber stopping: %s", s.cfg.Stream)
	return ctx.Err()
}

// ensureGroup creates the consumer group at the start of the stream. An
// existing group is left as is.
func (s *Subscriber) ensureGroup(ctx context.Context) error {
	err := s.client.XGroupCreateMkStream(ctx, s.cfg.Stream, s.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group %s on %s: %w", s.cfg.Group, s.cfg.Stream, err)
	}
	return nil
}

// poll reads one batch of undelivered entries and returns how many were
// acknowledged.
func (s *Subscriber) poll(ctx context.Context) (int, error) {
	streams, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.cfg.Group,
		Consumer: s.cfg.Consumer,
		Streams:  []string{s.cfg.Stream, ">"},
		Count:    s.cfg.BatchSize,
		Block:    s.cfg.BlockDuration,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read from stream: %w", err)
	}

	acked := 0
	for _, stream := range streams {
		for _, message := range stream.Messages {
			if s.process(ctx, message) {
				acked++
			}
		}
	}
	return acked, nil
}

func (s *Subscriber) process(ctx context.Context, message redis.XMessage) bool {
	event, err := decodeMessage(message)
	if err == nil {
		err = s.handler(ctx, event)
	}
	if err != nil {
		log.Printf("Failed to process message %s on %s: %v", message.ID, s.cfg.Stream, err)
		return false
	}
	if err := s.client.XAck(ctx, s.cfg.Stream, s.cfg.Group, message.ID).Err(); err != nil {
		log.Printf("Failed to ACK message %s: %v", message.ID, err)
		return false
	}
	return true
}

// envelope mirrors Event with the payload left undecoded.
type envelope struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// decodeMessage restores the typed payload published for event.Type.
// Payloads of unknown types are kept as json.RawMessage.
func decodeMessage(message redis.XMessage) (Event, error) {
	raw, ok := message.Values["event"].(string)
	if !ok {
		return Event{}, fmt.Errorf("message %s has no event field", message.ID)
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	event := Event{Type: env.Type, Timestamp: env.Timestamp}
	var err error
	switch env.Type {
	case UserCreated:
		event.Data, err = decodeData[UserCreatedEvent](env.Data)
	case ExpenseCreated:
		event.Data, err = decodeData[ExpenseCreatedEvent](env.Data)
	case ExpenseDeleted:
		event.Data, err = decodeData[ExpenseDeletedEvent](env.Data)
	default:
		event.Data = env.Data
	}
	if err != nil {
		return Event{}, fmt.Errorf("failed to decode %s payload: %w", env.Type, err)
	}
	return event, nil
}

func decodeData[T any](raw json.RawMessage) (T, error) {
	var data T
	err := json.Unmarshal(raw, &data)
	return data, err
}
