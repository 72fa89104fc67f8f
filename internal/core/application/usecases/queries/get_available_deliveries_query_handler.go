package queries

import (
	"context"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDeliveriesQueryHandler lists pending, unclaimed deliveries.
type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for the rider job feed.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

// Handle executes the read, oldest first so long-waiting jobs surface.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context, query GetAvailableDeliveriesQuery,
) ([]AvailableDelivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, pickup_address, delivery_address, distance_km, fee, created_at
		FROM deliveries
		WHERE status = ? AND rider_id IS NULL
		ORDER BY created_at
		LIMIT ?
	`, int(delivery.Pending), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]AvailableDelivery, 0)
	for rows.Next() {
		var id, orderID uuid.UUID
		var job AvailableDelivery

		err = rows.Scan(&id, &orderID, &job.PickupAddress, &job.DeliveryAddress,
			&job.DistanceKm, &job.Fee, &job.CreatedAt)
		if err != nil {
			return nil, err
		}

		if job.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if job.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
