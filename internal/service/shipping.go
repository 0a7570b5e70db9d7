package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MehmetGoekce/go-examples/internal/entity"
)

// ShippingProvider hands an order to a carrier and returns the tracking
// confirmation.
type ShippingProvider interface {
	Ship(ctx context.Context, order entity.Order, address string) (entity.ShippingRecord, error)
}

// Shipping is a stub provider that synthesizes a tracking code.
type Shipping struct{}

func NewShipping() *Shipping {
	return &Shipping{}
}

func (s *Shipping) Ship(ctx context.Context, order entity.Order, address string) (entity.ShippingRecord, error) {
	code := "SHIP-" + strings.ToUpper(uuid.New().String()[:8])
	return entity.ShippingRecord{
		OrderID:      order.ID,
		Address:      address,
		TrackingCode: code,
		ShippedAt:    time.Now(),
	}, nil
}
