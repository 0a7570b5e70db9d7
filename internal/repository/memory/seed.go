package memory

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/MehmetGoekce/go-examples/internal/entity"
)

// Seed loads the demo customers and products into the stores.
func Seed(ctx context.Context, customers *CustomerStore, products *ProductStore) error {
	demoCustomers := []entity.Customer{
		{ID: "cust-001", Name: "John Doe", Email: "john@example.com"},
		{ID: "cust-002", Name: "Jane Smith", Email: "jane@example.com"},
	}

	demoProducts := []entity.Product{
		{ID: "prod-001", Name: "Laptop", Category: "Electronics", Price: decimal.NewFromFloat(1299.99), Stock: 10},
		{ID: "prod-002", Name: "Smartphone", Category: "Electronics", Price: decimal.NewFromFloat(699.99), Stock: 20},
		{ID: "prod-003", Name: "Headphones", Category: "Accessories", Price: decimal.NewFromFloat(149.99), Stock: 50},
		{ID: "prod-004", Name: "Mechanical Keyboard", Category: "Accessories", Price: decimal.NewFromFloat(179.99), Stock: 120},
		{ID: "prod-005", Name: "Ultrawide Monitor", Category: "Electronics", Price: decimal.NewFromFloat(899.99), Stock: 30},
	}

	for _, c := range demoCustomers {
		if err := customers.Save(ctx, c); err != nil {
			return err
		}
	}
	for _, p := range demoProducts {
		if err := products.Save(ctx, p); err != nil {
			return err
		}
	}

	slog.Info("Seeded demo data", "customers", len(demoCustomers), "products", len(demoProducts))
	return nil
}
