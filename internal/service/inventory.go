package service

import (
	"context"

	"github.com/MehmetGoekce/go-examples/internal/repository"
)

// Inventory answers availability questions and reserves stock.
type Inventory struct {
	products repository.ProductRepository
}

func NewInventory(products repository.ProductRepository) *Inventory {
	return &Inventory{products: products}
}

// CheckAvailability reports whether the product exists and has at least qty
// units in stock. The answer is advisory: only Reserve decides atomically.
func (s *Inventory) CheckAvailability(ctx context.Context, productID string, qty int) bool {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return false
	}
	return product.Stock >= qty
}

// Reserve decrements qty units of stock. The repository holds its lock
// across the check and the write, so concurrent reservations against the
// same product cannot oversell. On insufficient stock it fails with
// entity.ErrInsufficientStock and leaves the level untouched.
func (s *Inventory) Reserve(ctx context.Context, productID string, qty int) error {
	return s.products.DecrementStock(ctx, productID, qty)
}

// Release returns qty units of stock, undoing a reservation.
func (s *Inventory) Release(ctx context.Context, productID string, qty int) error {
	return s.products.IncrementStock(ctx, productID, qty)
}
