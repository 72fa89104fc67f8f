package queries

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery lists active catalog products, optionally narrowed to one
// shop.
type GetProductsQuery struct {
	shopID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog listing query.
func NewGetProductsQuery(shopID *kernel.UUID) (GetProductsQuery, error) {
	if shopID != nil {
		if err := shopID.Validate(); err != nil {
			return GetProductsQuery{}, err
		}
	}
	return GetProductsQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// ShopID returns the optional shop filter.
func (q GetProductsQuery) ShopID() *kernel.UUID { return q.shopID }

// ProductSummary is one row of the catalog listing. DiscountPrice is nil
// when the product is not on sale.
type ProductSummary struct {
	ID            kernel.UUID
	ShopID        kernel.UUID
	Name          string
	Price         int64
	DiscountPrice *int64
	StockQuantity int
}
