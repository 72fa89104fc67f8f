package ports

import (
	"context"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatusFrom persists the aggregate's status fields with a
	// compare-and-swap on the previously loaded status. A stale prior
	// status yields a ConflictError carrying the stored state; no rows
	// are written in that case.
	UpdateStatusFrom(ctx context.Context, aggregate *order.Order, from order.Status) error
}
