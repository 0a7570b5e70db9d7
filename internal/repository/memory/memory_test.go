package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MehmetGoekce/go-examples/internal/entity"
)

func TestCustomerStore(t *testing.T) {
	ctx := context.Background()
	store := NewCustomerStore()

	_, err := store.FindByID(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrCustomerNotFound)

	require.NoError(t, store.Save(ctx, entity.Customer{ID: "c1", Name: "John Doe", Email: "john@example.com"}))

	customer, err := store.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", customer.Name)

	// Saving the same id again is last-write-wins.
	require.NoError(t, store.Save(ctx, entity.Customer{ID: "c1", Name: "Johnny Doe", Email: "john@example.com"}))
	customer, err = store.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", customer.Name)
}

func TestProductStoreStockMutations(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore()
	require.NoError(t, store.Save(ctx, entity.Product{ID: "p1", Name: "Laptop", Price: decimal.NewFromFloat(999.99), Stock: 10}))

	require.NoError(t, store.DecrementStock(ctx, "p1", 4))
	product, err := store.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 6, product.Stock)

	// A reservation that would go negative fails and mutates nothing.
	err = store.DecrementStock(ctx, "p1", 7)
	require.ErrorIs(t, err, entity.ErrInsufficientStock)
	product, err = store.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 6, product.Stock)

	require.NoError(t, store.IncrementStock(ctx, "p1", 2))
	product, err = store.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 8, product.Stock)

	require.ErrorIs(t, store.DecrementStock(ctx, "missing", 1), entity.ErrProductNotFound)
	require.ErrorIs(t, store.UpdateStock(ctx, "missing", 1), entity.ErrProductNotFound)
}

func TestProductStoreConcurrentDecrements(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore()
	require.NoError(t, store.Save(ctx, entity.Product{ID: "p1", Name: "Laptop", Price: decimal.NewFromFloat(999.99), Stock: 100}))

	// 200 workers race to reserve one unit each; exactly 100 can win.
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.DecrementStock(ctx, "p1", 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, succeeded)
	product, err := store.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestProductStoreFindAllByID(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore()
	require.NoError(t, store.Save(ctx, entity.Product{ID: "p1"}))
	require.NoError(t, store.Save(ctx, entity.Product{ID: "p2"}))

	products, err := store.FindAllByID(ctx, []string{"p1", "p2", "p3"})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestOrderStoreListBy(t *testing.T) {
	ctx := context.Background()
	store := NewOrderStore()
	require.NoError(t, store.Save(ctx, entity.Order{ID: "o1", CustomerID: "c1", Status: entity.OrderStatusCreated}))
	require.NoError(t, store.Save(ctx, entity.Order{ID: "o2", CustomerID: "c1", Status: entity.OrderStatusPaid}))
	require.NoError(t, store.Save(ctx, entity.Order{ID: "o3", CustomerID: "c2", Status: entity.OrderStatusCreated}))

	orders, err := store.FindByCustomerID(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	paid, err := store.ListBy(ctx, func(o entity.Order) bool { return o.Status == entity.OrderStatusPaid })
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "o2", paid[0].ID)

	_, err = store.FindByID(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrOrderNotFound)
}
