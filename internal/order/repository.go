package order

import "context"

type Repository interface {
	// Create persists the order and its lines atomically
	Create(ctx context.Context, order *Order) error

	// ListUnassigned returns orders with no restaurant chosen yet and
	// status short of delivered, lines included
	ListUnassigned(ctx context.Context) ([]*Order, error)
}
