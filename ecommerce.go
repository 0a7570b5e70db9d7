package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/MehmetGoekce/go-examples/internal/config"
	"github.com/MehmetGoekce/go-examples/internal/entity"
	"github.com/MehmetGoekce/go-examples/internal/messaging"
	"github.com/MehmetGoekce/go-examples/internal/messaging/gochannel"
	"github.com/MehmetGoekce/go-examples/internal/metrics"
	"github.com/MehmetGoekce/go-examples/internal/repository/memory"
	"github.com/MehmetGoekce/go-examples/internal/service"
)

// runEcommerce wires the order workflow together with in-memory stores and
// the in-process message bus, then walks through the full order lifecycle,
// a couple of failure paths and a concurrent payment batch.
func runEcommerce(cfg *config.Config) {
	fmt.Println("=== E-commerce Order Processing Demo ===")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Message bus ---
	bus := gochannel.NewBus(slog.Default())
	defer bus.Close()

	go bus.Consume(ctx, messaging.TopicNotifications, func(ctx context.Context, payload []byte) error {
		var event entity.CustomerNotified
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to unmarshal notification: %w", err)
		}
		fmt.Printf("Notification sent to customer %s: %s\n", event.CustomerID, event.Message)
		return nil
	})
	go bus.Consume(ctx, messaging.TopicOrderEvents, func(ctx context.Context, payload []byte) error {
		slog.Debug("Order event", "payload", string(payload))
		return nil
	})

	// --- Stores and services ---
	customers := memory.NewCustomerStore()
	products := memory.NewProductStore()
	orders := memory.NewOrderStore()

	if err := memory.Seed(ctx, customers, products); err != nil {
		slog.Error("Failed to seed demo data", "err", err)
		return
	}

	reg := metrics.NewRegistry()
	orderService := service.NewOrders(
		orders,
		customers,
		products,
		service.NewInventory(products),
		service.NewPayments(),
		service.NewShipping(),
		service.NewBusNotifier(bus),
		bus,
		reg,
		cfg.Batch.Concurrency,
	)

	// --- Full lifecycle: create, pay, ship ---
	fmt.Println("\n--- Creating Order ---")
	order, err := orderService.Create(ctx, "cust-001", map[string]int{
		"prod-001": 1, // one laptop
		"prod-003": 2, // two headphones
	})
	if err != nil {
		slog.Error("Failed to create order", "err", err)
		return
	}
	fmt.Printf("Created order %s, status %s, total CHF%s\n", order.ID, order.Status, order.Total().StringFixed(2))

	fmt.Println("\n--- Processing Payment ---")
	paid, err := orderService.Pay(ctx, order.ID, "credit_card")
	if err != nil {
		slog.Error("Failed to process payment", "err", err)
		return
	}
	fmt.Printf("Payment processed. Order status: %s\n", paid.Status)
	fmt.Printf("Payment details: transaction %s via %s for CHF%s\n",
		paid.Payment.TransactionID, paid.Payment.Method, paid.Payment.Amount.StringFixed(2))
	if laptop, err := products.FindByID(ctx, "prod-001"); err == nil {
		fmt.Printf("Remaining stock for %s: %d\n", laptop.Name, laptop.Stock)
	}

	fmt.Println("\n--- Shipping Order ---")
	shipped, err := orderService.Ship(ctx, order.ID, "123 Main St, New York, NY 10001")
	if err != nil {
		slog.Error("Failed to ship order", "err", err)
		return
	}
	fmt.Printf("Order shipped. Status: %s\n", shipped.Status)

	// --- Failure paths ---
	fmt.Println("\n--- Failure Paths ---")
	if _, err := orderService.Create(ctx, "cust-missing", map[string]int{"prod-001": 1}); err != nil {
		fmt.Printf("Expected failure: %v\n", err)
	}
	if _, err := orderService.Create(ctx, "cust-001", map[string]int{"prod-001": 999}); err != nil {
		fmt.Printf("Expected failure: %v\n", err)
	}

	// --- Batch payment processing ---
	fmt.Println("\n--- Batch Processing Orders ---")
	var batchIDs []string
	for i := 0; i < 3; i++ {
		o, err := orderService.Create(ctx, "cust-002", map[string]int{"prod-002": 1})
		if err != nil {
			slog.Error("Failed to create batch order", "err", err)
			return
		}
		batchIDs = append(batchIDs, o.ID)
	}
	// An unknown id shows that one failure does not abort the siblings.
	batchIDs = append(batchIDs, "order-does-not-exist")

	results := orderService.PayBatch(ctx, batchIDs, "paypal")
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf(" - Order %s: FAILED (%v)\n", result.OrderID, result.Err)
			continue
		}
		fmt.Printf(" - Order %s: %s, total CHF%s\n", result.OrderID, result.Order.Status, result.Order.Total().StringFixed(2))
	}

	// --- Customer order listing ---
	fmt.Println("\n--- Retrieving Customer Orders ---")
	customerOrders, err := orderService.ListByCustomer(ctx, "cust-002")
	if err != nil {
		slog.Error("Failed to list orders", "err", err)
		return
	}
	fmt.Printf("Found %d orders for customer:\n", len(customerOrders))
	for _, o := range customerOrders {
		fmt.Printf(" - Order %s: %s, Total: CHF%s\n", o.ID, o.Status, o.Total().StringFixed(2))
	}

	// Let the notification consumer drain before shutting the bus down.
	time.Sleep(200 * time.Millisecond)

	fmt.Println("\n--- Metrics ---")
	for name, value := range reg.Snapshot() {
		fmt.Printf(" %s = %.0f\n", name, value)
	}

	fmt.Println("\nDemo completed successfully!")
}
