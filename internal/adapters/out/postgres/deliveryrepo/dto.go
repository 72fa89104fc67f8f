// Package deliveryrepo persists delivery aggregates, including the atomic
// claim write riders race on.
package deliveryrepo

import (
	"fmt"
	"time"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database row for a delivery aggregate.
//
// RiderActiveIndexSQL adds a partial unique index on rider_id over
// non-terminal rows, so a rider can hold at most one in-flight delivery no
// matter how the claim race resolves.
type DeliveryDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	RiderID *uuid.UUID `gorm:"type:uuid;index"`
	Status  int        `gorm:"index"`

	PickupAddress   string
	DeliveryAddress string
	DistanceKm      float64

	Fee           int64
	RiderEarnings int64

	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
}

// TableName maps the DTO to the "deliveries" table.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// RiderActiveIndexSQL returns the statement creating the partial unique
// index that enforces the one-active-delivery-per-rider rule. AutoMigrate
// cannot express partial indexes, so the bootstrap runs this separately.
func RiderActiveIndexSQL() string {
	return fmt.Sprintf(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_deliveries_rider_active
		ON deliveries (rider_id)
		WHERE rider_id IS NOT NULL AND status NOT IN (%d, %d)
	`, int(delivery.Delivered), int(delivery.Failed))
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	return DeliveryDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		RiderID:         riderID,
		Status:          int(aggregate.Status()),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DistanceKm:      aggregate.DistanceKm(),
		Fee:             aggregate.Fee().Amount(),
		RiderEarnings:   aggregate.RiderEarnings().Amount(),
		AssignedAt:      aggregate.AssignedAt(),
		PickedUpAt:      aggregate.PickedUpAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	fee, err := kernel.NewMoney(dto.Fee)
	if err != nil {
		return nil, err
	}
	earnings, err := kernel.NewMoney(dto.RiderEarnings)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, riderID,
		delivery.Status(dto.Status),
		dto.PickupAddress, dto.DeliveryAddress, dto.DistanceKm,
		fee, earnings,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt,
		dto.CreatedAt,
	)
}
