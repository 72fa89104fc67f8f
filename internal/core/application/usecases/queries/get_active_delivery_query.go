package queries

import (
	"errors"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/guard"
)

var ErrGetActiveDeliveryQueryIsNotConstructed = errors.New(
	"GetActiveDeliveryQuery must be created via NewGetActiveDeliveryQuery constructor",
)

// GetActiveDeliveryQuery finds the rider's current in-flight delivery, if any.
type GetActiveDeliveryQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveDeliveryQuery creates an active delivery lookup for a rider.
func NewGetActiveDeliveryQuery(riderID kernel.UUID) (GetActiveDeliveryQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetActiveDeliveryQuery{}, err
	}
	return GetActiveDeliveryQuery{riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveryQueryIsNotConstructed)
}

// RiderID returns the rider's identifier.
func (q GetActiveDeliveryQuery) RiderID() kernel.UUID { return q.riderID }

// ActiveDelivery is the rider's current job read model.
type ActiveDelivery struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Status          string
	PickupAddress   string
	DeliveryAddress string
	DistanceKm      float64
	RiderEarnings   int64
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
}
