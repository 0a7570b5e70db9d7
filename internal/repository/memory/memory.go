// Package memory provides in-memory repository implementations backed by
// mutex-guarded maps. They stand in for a database and are safe for
// concurrent use from the batch-processing workers.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MehmetGoekce/go-examples/internal/entity"
)

// CustomerStore is an in-memory CustomerRepository.
type CustomerStore struct {
	mu        sync.RWMutex
	customers map[string]entity.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{customers: make(map[string]entity.Customer)}
}

func (s *CustomerStore) FindByID(ctx context.Context, id string) (entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return entity.Customer{}, fmt.Errorf("%w: %s", entity.ErrCustomerNotFound, id)
	}
	return customer, nil
}

func (s *CustomerStore) Save(ctx context.Context, customer entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers[customer.ID] = customer
	return nil
}

// ProductStore is an in-memory ProductRepository.
type ProductStore struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[string]entity.Product)}
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return entity.Product{}, fmt.Errorf("%w: %s", entity.ErrProductNotFound, id)
	}
	return product, nil
}

func (s *ProductStore) FindAllByID(ctx context.Context, ids []string) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := s.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *ProductStore) FindAll(ctx context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]entity.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, product)
	}
	return products, nil
}

func (s *ProductStore) Save(ctx context.Context, product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID] = product
	return nil
}

func (s *ProductStore) UpdateStock(ctx context.Context, productID string, newStock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}
	product.Stock = newStock
	s.products[productID] = product
	return nil
}

// DecrementStock holds the write lock across the check and the write, so
// two concurrent reservations against the same product cannot both pass the
// availability check and oversell.
func (s *ProductStore) DecrementStock(ctx context.Context, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}
	if product.Stock < qty {
		return fmt.Errorf("%w: product %s (available: %d, requested: %d)",
			entity.ErrInsufficientStock, productID, product.Stock, qty)
	}
	product.Stock -= qty
	s.products[productID] = product
	return nil
}

func (s *ProductStore) IncrementStock(ctx context.Context, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}
	product.Stock += qty
	s.products[productID] = product
	return nil
}

// OrderStore is an in-memory OrderRepository.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]entity.Order)}
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return entity.Order{}, fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
	}
	return order, nil
}

func (s *OrderStore) FindByCustomerID(ctx context.Context, customerID string) ([]entity.Order, error) {
	return s.ListBy(ctx, func(o entity.Order) bool { return o.CustomerID == customerID })
}

// ListBy returns all orders matching the predicate, in unspecified order.
func (s *OrderStore) ListBy(ctx context.Context, match func(entity.Order) bool) ([]entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []entity.Order
	for _, order := range s.orders {
		if match(order) {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (s *OrderStore) Save(ctx context.Context, order entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID] = order
	return nil
}
