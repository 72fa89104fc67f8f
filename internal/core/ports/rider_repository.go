package ports

import (
	"context"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider profiles.
type RiderRepository interface {
	// Add persists a new rider profile.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider profile by the owning user's identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// Update persists changes to an existing rider profile.
	Update(ctx context.Context, aggregate *rider.Rider) error
}
