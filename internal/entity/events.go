package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event represents a domain event.
type Event interface {
	EventType() string
}

// OrderCreated is emitted when an order is stored in status CREATED.
type OrderCreated struct {
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (e OrderCreated) EventType() string { return "OrderCreated" }

// OrderPaid is emitted after a payment record is attached to an order.
type OrderPaid struct {
	OrderID       string          `json:"order_id"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
}

func (e OrderPaid) EventType() string { return "OrderPaid" }

// OrderShipped is emitted once a tracking code has been obtained.
type OrderShipped struct {
	OrderID      string    `json:"order_id"`
	TrackingCode string    `json:"tracking_code"`
	ShippedAt    time.Time `json:"shipped_at"`
}

func (e OrderShipped) EventType() string { return "OrderShipped" }

// CustomerNotified is published on the notification topic for every
// customer-facing message.
type CustomerNotified struct {
	CustomerID string    `json:"customer_id"`
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sent_at"`
}

func (e CustomerNotified) EventType() string { return "CustomerNotified" }
