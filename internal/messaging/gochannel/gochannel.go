// Package gochannel adapts Watermill's in-process Go channel Pub/Sub to the
// messaging interfaces. Everything stays inside the process: there is no
// broker and nothing survives a restart.
package gochannel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/MehmetGoekce/go-examples/internal/entity"
)

// Bus is an in-memory message bus. It implements messaging.Publisher and
// messaging.Subscriber.
type Bus struct {
	pubSub *gochannel.GoChannel
}

// NewBus creates a new in-memory bus logging through the given slog logger.
func NewBus(logger *slog.Logger) *Bus {
	// Persistent delivery: subscribers attached after a publish still see
	// the message, so wiring order does not matter.
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64, Persistent: true},
		watermill.NewSlogLogger(logger),
	)
	return &Bus{pubSub: pubSub}
}

// PublishEvent marshals the event as JSON and publishes it on topic. The
// routing key and, for domain events, the event type travel in the message
// metadata.
func (b *Bus) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), payload)
	msg.Metadata.Set("key", key)
	if e, ok := event.(entity.Event); ok {
		msg.Metadata.Set("event_type", e.EventType())
	}
	msg.SetContext(ctx)

	return b.pubSub.Publish(topic, msg)
}

// Consume reads messages from topic and calls the handler for each one. It
// blocks until the context is cancelled or the bus is closed. Handler errors
// are logged and the message is acked anyway; nothing is redelivered on an
// in-memory bus.
func (b *Bus) Consume(ctx context.Context, topic string, handler func(ctx context.Context, payload []byte) error) error {
	messages, err := b.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	for msg := range messages {
		if err := handler(ctx, msg.Payload); err != nil {
			slog.Error("Error handling message", "topic", topic, "err", err)
		}
		msg.Ack()
	}
	return nil
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}
