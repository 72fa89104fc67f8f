package queries

import (
	"errors"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/guard"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery lists unclaimed pending deliveries, the feed
// riders pick jobs from.
type GetAvailableDeliveriesQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates the job feed query. A non-positive
// limit falls back to a sane page size.
func NewGetAvailableDeliveriesQuery(limit int) (GetAvailableDeliveriesQuery, error) {
	if limit <= 0 {
		limit = 50
	}
	return GetAvailableDeliveriesQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}

// Limit returns the maximum number of rows to return.
func (q GetAvailableDeliveriesQuery) Limit() int { return q.limit }

// AvailableDelivery is one row of the rider job feed.
type AvailableDelivery struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	PickupAddress   string
	DeliveryAddress string
	DistanceKm      float64
	Fee             int64
	CreatedAt       time.Time
}
