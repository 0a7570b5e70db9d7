package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a buyer known to the store. Immutable once created.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product represents a product in the store. Stock is the only mutable
// field and must never go negative.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// OrderItem is a line item within an order. UnitPrice is a snapshot taken
// at order creation; later product price changes do not affect it.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity x captured unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PaymentRecord is created exactly once per successful payment attempt.
type PaymentRecord struct {
	TransactionID string          `json:"transaction_id"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	ProcessedAt   time.Time       `json:"processed_at"`
}

// ShippingRecord holds the tracking confirmation for a shipped order.
type ShippingRecord struct {
	OrderID      string    `json:"order_id"`
	Address      string    `json:"address"`
	TrackingCode string    `json:"tracking_code"`
	ShippedAt    time.Time `json:"shipped_at"`
}
