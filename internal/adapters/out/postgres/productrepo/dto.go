// Package productrepo reads catalog entries and adjusts stock. Catalog CRUD
// is owned by another service; this side only needs purchasable reads and
// atomic stock arithmetic.
package productrepo

import (
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the database row for a catalog entry.
type ProductDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID uuid.UUID `gorm:"type:uuid;index"`

	Name          string
	Price         int64
	DiscountPrice *int64
	StockQuantity int
	IsActive      bool
}

// TableName maps the DTO to the "products" table.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var discount *kernel.Money
	if dto.DiscountPrice != nil {
		d, discountErr := kernel.NewMoney(*dto.DiscountPrice)
		if discountErr != nil {
			return nil, discountErr
		}
		discount = &d
	}

	return product.RestoreProduct(id, shopID, dto.Name, price, discount, dto.StockQuantity, dto.IsActive)
}
