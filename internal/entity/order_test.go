package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{OrderStatusCreated, OrderStatusPaid, true},
		{OrderStatusPaid, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusShipped, true},
		{OrderStatusCreated, OrderStatusShipped, false},
		{OrderStatusPaid, OrderStatusCreated, false},
		{OrderStatusShipped, OrderStatusPaid, false},
		{OrderStatusShipped, OrderStatusShipped, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderTotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromFloat(1299.99)},
			{ProductID: "p2", Quantity: 2, UnitPrice: decimal.NewFromFloat(149.99)},
		},
	}

	require.True(t, order.Total().Equal(decimal.NewFromFloat(1599.97)))
}

func TestOrderCopyOnWrite(t *testing.T) {
	original := Order{
		ID:        "o1",
		Status:    OrderStatusCreated,
		CreatedAt: time.Now(),
		Items: []OrderItem{
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromFloat(10)},
		},
	}

	paid := original.WithStatus(OrderStatusPaid).WithPayment(PaymentRecord{
		TransactionID: "tx1",
		Method:        "credit_card",
		Amount:        decimal.NewFromFloat(10),
		ProcessedAt:   time.Now(),
	})

	// The original value is untouched.
	assert.Equal(t, OrderStatusCreated, original.Status)
	assert.Nil(t, original.Payment)

	assert.Equal(t, OrderStatusPaid, paid.Status)
	require.NotNil(t, paid.Payment)
	assert.Equal(t, "tx1", paid.Payment.TransactionID)

	// The total is derived from the captured unit prices and cannot drift.
	assert.True(t, paid.Total().Equal(original.Total()))
}
