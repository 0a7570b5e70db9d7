package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. Transitions are strictly
// forward: CREATED -> PAID -> PREPARING -> SHIPPED. There is no cancellation
// or refund path.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
)

var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusCreated:   OrderStatusPaid,
	OrderStatusPaid:      OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusShipped,
}

// CanTransitionTo reports whether target is the immediate successor of s.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return nextStatus[s] == target
}

// Order represents a customer order. The item list is immutable after
// creation; status and payment changes produce a new Order value rather
// than mutating in place.
type Order struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Items      []OrderItem    `json:"items"`
	CreatedAt  time.Time      `json:"created_at"`
	Status     OrderStatus    `json:"status"`
	Payment    *PaymentRecord `json:"payment,omitempty"`
}

// Total is the sum of item subtotals. It is fixed at creation because every
// item carries its captured unit price.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// WithStatus returns a copy of the order in the given status.
func (o Order) WithStatus(status OrderStatus) Order {
	o.Status = status
	return o
}

// WithPayment returns a copy of the order with the payment record attached.
func (o Order) WithPayment(payment PaymentRecord) Order {
	o.Payment = &payment
	return o
}
