package riderrepo

import (
	"context"
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/rider"
	"sokoni/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderRepository implements ports.RiderRepository using GORM.
type GormRiderRepository struct {
	db *gorm.DB
}

// NewGormRiderRepository creates a rider repository on the given connection.
func NewGormRiderRepository(db *gorm.DB) *GormRiderRepository {
	return &GormRiderRepository{db: db}
}

// Add saves a new rider profile. Registering the same user twice surfaces
// as a ConflictError.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("rider", "already registered")
		}
		return err
	}
	return nil
}

// Get retrieves a rider profile by the owning user's ID.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves changes to an existing rider profile.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RiderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"is_available":     dto.IsAvailable,
			"is_verified":      dto.IsVerified,
			"total_deliveries": dto.TotalDeliveries,
			"total_earnings":   dto.TotalEarnings,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rider", aggregate.ID().String())
	}
	return nil
}
