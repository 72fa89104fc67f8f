package ports

import (
	"context"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery fulfilling an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// ClaimPending persists an in-memory claim atomically: the row is
	// updated only while still pending and riderless. A lost race yields a
	// ConflictError; a rider already holding an active delivery surfaces
	// as a ConflictError from the partial unique index.
	ClaimPending(ctx context.Context, aggregate *delivery.Delivery) error

	// UpdateStatusFrom persists the aggregate's status fields with a
	// compare-and-swap on the previously loaded status.
	UpdateStatusFrom(ctx context.Context, aggregate *delivery.Delivery, from delivery.Status) error
}
