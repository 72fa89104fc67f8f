package orderrepo

import (
	"context"
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates an order repository on the given connection.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its item snapshots.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatusFrom persists the mutable order fields guarded by a
// compare-and-swap on the previously loaded status. When the stored status
// no longer matches, nothing is written and a ConflictError carrying the
// stored state is returned.
func (r *GormOrderRepository) UpdateStatusFrom(
	ctx context.Context, aggregate *order.Order, from order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(from)).
		Updates(map[string]any{
			"status":         int(aggregate.Status()),
			"notes":          aggregate.Notes(),
			"payment_status": string(aggregate.PaymentStatus()),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var stored int
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("status").
		Where("id = ?", aggregate.ID().Bytes()).
		Take(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if err != nil {
		return err
	}

	return errs.NewConflictError("order status", order.Status(stored).String())
}
