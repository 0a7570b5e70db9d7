package repository

import (
	"context"

	"github.com/MehmetGoekce/go-examples/internal/entity"
)

// CustomerRepository handles lookup and storage of customers.
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (entity.Customer, error)
	Save(ctx context.Context, customer entity.Customer) error
}

// ProductRepository handles lookup and storage of products, including the
// stock level mutations the order workflow depends on.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (entity.Product, error)
	// FindAllByID returns the products that exist among ids, in unspecified
	// order. Missing ids are simply absent from the result.
	FindAllByID(ctx context.Context, ids []string) ([]entity.Product, error)
	FindAll(ctx context.Context) ([]entity.Product, error)
	Save(ctx context.Context, product entity.Product) error
	UpdateStock(ctx context.Context, productID string, newStock int) error
	// DecrementStock atomically reserves qty units of stock. It fails with
	// entity.ErrInsufficientStock and performs no mutation when the current
	// level is below qty. The check and the write happen under a single
	// critical section, so concurrent reservations cannot oversell.
	DecrementStock(ctx context.Context, productID string, qty int) error
	// IncrementStock returns qty units, used to roll back reservations.
	IncrementStock(ctx context.Context, productID string, qty int) error
}

// OrderRepository handles storage of orders. Save upserts by id with
// last-write-wins semantics.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (entity.Order, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]entity.Order, error)
	Save(ctx context.Context, order entity.Order) error
}
