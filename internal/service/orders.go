package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MehmetGoekce/go-examples/internal/entity"
	"github.com/MehmetGoekce/go-examples/internal/messaging"
	"github.com/MehmetGoekce/go-examples/internal/metrics"
	"github.com/MehmetGoekce/go-examples/internal/repository"
)

// Orders orchestrates the order workflow: creation, payment, shipping and
// concurrent batch payment.
type Orders struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	inventory *Inventory
	payments  PaymentProcessor
	shipping  ShippingProvider
	notifier  NotificationSink
	events    messaging.Publisher
	metrics   *metrics.Registry

	// batchLimit caps the number of concurrent PayBatch workers.
	batchLimit int
}

func NewOrders(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	inventory *Inventory,
	payments PaymentProcessor,
	shipping ShippingProvider,
	notifier NotificationSink,
	events messaging.Publisher,
	reg *metrics.Registry,
	batchLimit int,
) *Orders {
	if batchLimit <= 0 {
		batchLimit = 8
	}
	return &Orders{
		orders:     orders,
		customers:  customers,
		products:   products,
		inventory:  inventory,
		payments:   payments,
		shipping:   shipping,
		notifier:   notifier,
		events:     events,
		metrics:    reg,
		batchLimit: batchLimit,
	}
}

// Create validates the request, snapshots current unit prices into order
// items and stores the order in status CREATED. No stock is reserved yet;
// reservation happens on payment. Either the whole order is created or
// nothing is.
func (s *Orders) Create(ctx context.Context, customerID string, quantities map[string]int) (entity.Order, error) {
	slog.Info("Creating order", "customer_id", customerID, "items", len(quantities))

	if len(quantities) == 0 {
		return entity.Order{}, fmt.Errorf("order must have at least one item")
	}
	for productID, qty := range quantities {
		if qty <= 0 {
			return entity.Order{}, fmt.Errorf("quantity for product %s must be positive, got %d", productID, qty)
		}
	}

	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return entity.Order{}, err
	}

	productIDs := make([]string, 0, len(quantities))
	for productID := range quantities {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	products, err := s.products.FindAllByID(ctx, productIDs)
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to load products: %w", err)
	}
	if len(products) != len(productIDs) {
		found := make(map[string]bool, len(products))
		for _, p := range products {
			found[p.ID] = true
		}
		var missing []string
		for _, id := range productIDs {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		return entity.Order{}, fmt.Errorf("%w: %v", entity.ErrProductNotFound, missing)
	}

	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Collect every product that cannot be fulfilled before failing, so the
	// caller sees the full picture instead of the first offender.
	var unavailable []string
	items := make([]entity.OrderItem, 0, len(productIDs))
	for _, productID := range productIDs {
		qty := quantities[productID]
		if !s.inventory.CheckAvailability(ctx, productID, qty) {
			unavailable = append(unavailable, productID)
			continue
		}
		items = append(items, entity.OrderItem{
			ProductID: productID,
			Quantity:  qty,
			UnitPrice: byID[productID].Price,
		})
	}
	if len(unavailable) > 0 {
		return entity.Order{}, fmt.Errorf("%w: products %v", entity.ErrInsufficientStock, unavailable)
	}

	order := entity.Order{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Items:      items,
		CreatedAt:  time.Now(),
		Status:     entity.OrderStatusCreated,
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return entity.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	s.metrics.OrdersCreated.Inc()

	s.notify(ctx, customerID, fmt.Sprintf("Your order %s has been created successfully.", order.ID))
	s.publish(ctx, order.ID, entity.OrderCreated{
		OrderID:    order.ID,
		CustomerID: customerID,
		Total:      order.Total(),
		CreatedAt:  order.CreatedAt,
	})

	return order, nil
}

// Pay moves an order from CREATED to PAID. Stock is reserved before the
// payment record is attached; if any item cannot be reserved, reservations
// already made for this call are released and the order stays in CREATED.
func (s *Orders) Pay(ctx context.Context, orderID string, method string) (entity.Order, error) {
	slog.Info("Processing payment", "order_id", orderID, "method", method)

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		s.metrics.PaymentFailures.Inc()
		return entity.Order{}, err
	}
	if !order.Status.CanTransitionTo(entity.OrderStatusPaid) {
		s.metrics.PaymentFailures.Inc()
		return entity.Order{}, fmt.Errorf("%w: order %s is %s, want %s",
			entity.ErrInvalidState, orderID, order.Status, entity.OrderStatusCreated)
	}

	if err := s.reserveItems(ctx, order.Items); err != nil {
		s.metrics.PaymentFailures.Inc()
		return entity.Order{}, err
	}

	start := time.Now()
	payment, err := s.payments.Process(ctx, order.CustomerID, order.Total(), method)
	if err != nil {
		s.releaseItems(ctx, order.Items)
		s.metrics.PaymentFailures.Inc()
		return entity.Order{}, fmt.Errorf("failed to process payment: %w", err)
	}
	s.metrics.PaymentLatencySec.Observe(time.Since(start).Seconds())

	paid := order.WithStatus(entity.OrderStatusPaid).WithPayment(payment)
	if err := s.orders.Save(ctx, paid); err != nil {
		return entity.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	s.metrics.OrdersPaid.Inc()

	s.notify(ctx, order.CustomerID, fmt.Sprintf("Payment for order %s has been processed successfully.", orderID))
	s.publish(ctx, orderID, entity.OrderPaid{
		OrderID:       orderID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		PaidAt:        payment.ProcessedAt,
	})

	return paid, nil
}

// reserveItems reserves stock for every item or none: on failure it releases
// the reservations made so far and returns the original error.
func (s *Orders) reserveItems(ctx context.Context, items []entity.OrderItem) error {
	for i, item := range items {
		if err := s.inventory.Reserve(ctx, item.ProductID, item.Quantity); err != nil {
			s.releaseItems(ctx, items[:i])
			return err
		}
	}
	return nil
}

func (s *Orders) releaseItems(ctx context.Context, items []entity.OrderItem) {
	for _, item := range items {
		if err := s.inventory.Release(ctx, item.ProductID, item.Quantity); err != nil {
			slog.Error("Failed to release reservation", "product_id", item.ProductID, "err", err)
		}
	}
}

// Ship moves a PAID order through PREPARING to SHIPPED, obtaining a tracking
// record from the shipping provider in between.
func (s *Orders) Ship(ctx context.Context, orderID string, address string) (entity.Order, error) {
	slog.Info("Shipping order", "order_id", orderID)

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return entity.Order{}, err
	}
	if !order.Status.CanTransitionTo(entity.OrderStatusPreparing) {
		return entity.Order{}, fmt.Errorf("%w: order %s is %s, want %s",
			entity.ErrInvalidState, orderID, order.Status, entity.OrderStatusPaid)
	}

	preparing := order.WithStatus(entity.OrderStatusPreparing)
	if err := s.orders.Save(ctx, preparing); err != nil {
		return entity.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	record, err := s.shipping.Ship(ctx, preparing, address)
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to ship order: %w", err)
	}

	shipped := preparing.WithStatus(entity.OrderStatusShipped)
	if err := s.orders.Save(ctx, shipped); err != nil {
		return entity.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	s.metrics.OrdersShipped.Inc()

	s.notify(ctx, order.CustomerID, fmt.Sprintf("Your order %s has been shipped. Tracking code: %s", orderID, record.TrackingCode))
	s.publish(ctx, orderID, entity.OrderShipped{
		OrderID:      orderID,
		TrackingCode: record.TrackingCode,
		ShippedAt:    record.ShippedAt,
	})

	return shipped, nil
}

// BatchResult is the outcome of one order inside a PayBatch call.
type BatchResult struct {
	OrderID string
	Order   entity.Order
	Err     error
}

// PayBatch fans Pay out over the given orders concurrently and blocks until
// every task has reached a terminal state. A failure for one order is
// recorded in its result and does not abort sibling tasks. Results are
// returned in the same position as the submitted ids.
func (s *Orders) PayBatch(ctx context.Context, orderIDs []string, method string) []BatchResult {
	slog.Info("Processing payment batch", "orders", len(orderIDs), "concurrency", s.batchLimit)

	results := make([]BatchResult, len(orderIDs))

	var g errgroup.Group
	g.SetLimit(s.batchLimit)
	for i, orderID := range orderIDs {
		g.Go(func() error {
			order, err := s.Pay(ctx, orderID, method)
			if err != nil {
				slog.Error("Batch payment failed", "order_id", orderID, "err", err)
			}
			results[i] = BatchResult{OrderID: orderID, Order: order, Err: err}
			return nil
		})
	}
	g.Wait()

	return results
}

// ListByCustomer returns all orders placed by the customer, in unspecified
// order.
func (s *Orders) ListByCustomer(ctx context.Context, customerID string) ([]entity.Order, error) {
	return s.orders.FindByCustomerID(ctx, customerID)
}

func (s *Orders) notify(ctx context.Context, customerID string, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, customerID, message); err != nil {
		slog.Error("Failed to notify customer", "customer_id", customerID, "err", err)
		return
	}
	s.metrics.NotificationsSent.Inc()
}

func (s *Orders) publish(ctx context.Context, key string, event entity.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(ctx, messaging.TopicOrderEvents, key, event); err != nil {
		slog.Error("Failed to publish event", "event_type", event.EventType(), "err", err)
	}
}
