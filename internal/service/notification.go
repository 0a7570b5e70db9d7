package service

import (
	"context"
	"time"

	"github.com/MehmetGoekce/go-examples/internal/entity"
	"github.com/MehmetGoekce/go-examples/internal/messaging"
)

// NotificationSink delivers a message to a customer. Delivery is
// best-effort; the orchestrator logs failures and moves on.
type NotificationSink interface {
	Notify(ctx context.Context, customerID string, message string) error
}

// BusNotifier publishes customer notifications on the message bus, where a
// subscriber picks them up and logs them. Nothing leaves the process.
type BusNotifier struct {
	publisher messaging.Publisher
}

func NewBusNotifier(publisher messaging.Publisher) *BusNotifier {
	return &BusNotifier{publisher: publisher}
}

func (n *BusNotifier) Notify(ctx context.Context, customerID string, message string) error {
	event := entity.CustomerNotified{
		CustomerID: customerID,
		Message:    message,
		SentAt:     time.Now(),
	}
	return n.publisher.PublishEvent(ctx, messaging.TopicNotifications, customerID, event)
}
