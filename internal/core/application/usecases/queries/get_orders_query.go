// Package queries contains the read side: handlers run raw SQL over the
// gorm connection and return flat response models, bypassing the
// aggregates.
package queries

import (
	"errors"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders visible to an actor: customers see their own,
// sellers their shops', riders the orders behind their deliveries, admins
// everything. An optional status filter narrows the result.
type GetOrdersQuery struct {
	actorID kernel.UUID
	role    kernel.Role
	status  *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a role-scoped order listing query.
func NewGetOrdersQuery(actorID kernel.UUID, role kernel.Role, status *order.Status) (GetOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actorID: actorID,
		role:    role,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the requesting actor's identifier.
func (q GetOrdersQuery) ActorID() kernel.UUID { return q.actorID }

// Role returns the requesting actor's role.
func (q GetOrdersQuery) Role() kernel.Role { return q.role }

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	ShopID      kernel.UUID
	Status      string
	TotalAmount int64
	CreatedAt   time.Time
}
