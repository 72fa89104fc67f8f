package queries

import (
	"context"
	"database/sql"
	"errors"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveryQueryHandler finds a rider's non-terminal delivery.
type GetActiveDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveryQueryHandler creates a handler for active delivery lookups.
func NewGetActiveDeliveryQueryHandler(db *gorm.DB) GetActiveDeliveryQueryHandler {
	return GetActiveDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. A rider with no in-flight delivery yields an
// ObjectNotFoundError. At most one row can match: the storage layer keeps a
// partial unique index on rider_id over non-terminal deliveries.
func (h GetActiveDeliveryQueryHandler) Handle(
	ctx context.Context, query GetActiveDeliveryQuery,
) (ActiveDelivery, error) {
	if err := query.Validate(); err != nil {
		return ActiveDelivery{}, err
	}

	var active ActiveDelivery
	var id, orderID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, status, pickup_address, delivery_address,
		       distance_km, rider_earnings, assigned_at, picked_up_at
		FROM deliveries
		WHERE rider_id = ? AND status NOT IN (?, ?)
	`, query.RiderID().Bytes(), int(delivery.Delivered), int(delivery.Failed)).Row()

	err := row.Scan(&id, &orderID, &status, &active.PickupAddress, &active.DeliveryAddress,
		&active.DistanceKm, &active.RiderEarnings, &active.AssignedAt, &active.PickedUpAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ActiveDelivery{}, errs.NewObjectNotFoundError("riderID", query.RiderID().String())
	}
	if err != nil {
		return ActiveDelivery{}, err
	}

	if active.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ActiveDelivery{}, err
	}
	if active.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return ActiveDelivery{}, err
	}
	active.Status = delivery.Status(status).String()
	return active, nil
}
