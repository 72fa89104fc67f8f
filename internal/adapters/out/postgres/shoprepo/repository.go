// Package shoprepo reads shops: checkout needs the pickup address and
// active flag, ownership checks need the seller ID.
package shoprepo

import (
	"context"
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/shop"
	"sokoni/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopDTO is the database row for a storefront.
type ShopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Address  string
	IsActive bool
}

// TableName maps the DTO to the "shops" table.
func (ShopDTO) TableName() string {
	return "shops"
}

// GormShopRepository implements ports.ShopRepository using GORM.
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a shop repository on the given connection.
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// Get retrieves a shop by ID.
func (r *GormShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShopDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id.String())
		}
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	return shop.RestoreShop(shopID, sellerID, dto.Name, dto.Address, dto.IsActive)
}
