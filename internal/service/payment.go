package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MehmetGoekce/go-examples/internal/entity"
)

// PaymentProcessor charges a customer and returns a payment record.
type PaymentProcessor interface {
	Process(ctx context.Context, customerID string, amount decimal.Decimal, method string) (entity.PaymentRecord, error)
}

// Payments is a stub processor: every payment succeeds and gets a fresh
// transaction id. There is no decline modeling and no gateway behind it.
type Payments struct{}

func NewPayments() *Payments {
	return &Payments{}
}

func (p *Payments) Process(ctx context.Context, customerID string, amount decimal.Decimal, method string) (entity.PaymentRecord, error) {
	return entity.PaymentRecord{
		TransactionID: uuid.New().String(),
		Method:        method,
		Amount:        amount,
		ProcessedAt:   time.Now(),
	}, nil
}
