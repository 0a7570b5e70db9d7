package entity

import "errors"

// Domain validation failures surfaced by the order workflow. They are
// returned to the immediate caller and never retried.
var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidState      = errors.New("order is not in a valid state for this operation")
)
