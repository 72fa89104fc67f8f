package deliveryrepo

import (
	"context"
	"errors"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a delivery repository on the given connection.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the delivery fulfilling an order.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimPending persists an in-memory claim atomically: the row is written
// only while still pending and riderless, so of two racing riders exactly
// one wins. The loser, and a rider already holding an active delivery (the
// partial unique index fires), get a ConflictError.
func (r *GormDeliveryRepository) ClaimPending(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ? AND rider_id IS NULL", dto.ID, int(delivery.Pending)).
		Updates(map[string]any{
			"rider_id":       dto.RiderID,
			"status":         dto.Status,
			"rider_earnings": dto.RiderEarnings,
			"assigned_at":    dto.AssignedAt,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("rider", "already has an active delivery")
		}
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return r.conflictWithStored(ctx, aggregate.ID())
}

// UpdateStatusFrom persists the delivery's status fields guarded by a
// compare-and-swap on the previously loaded status.
func (r *GormDeliveryRepository) UpdateStatusFrom(
	ctx context.Context, aggregate *delivery.Delivery, from delivery.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(from)).
		Updates(map[string]any{
			"status":       dto.Status,
			"picked_up_at": dto.PickedUpAt,
			"delivered_at": dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return r.conflictWithStored(ctx, aggregate.ID())
}

func (r *GormDeliveryRepository) conflictWithStored(ctx context.Context, id kernel.UUID) error {
	var stored int
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Select("status").
		Where("id = ?", id.Bytes()).
		Take(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}
	if err != nil {
		return err
	}

	return errs.NewConflictError("delivery status", delivery.Status(stored).String())
}
