package queries

import (
	"context"

	"sokoni/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler lists active products from the catalog.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listings.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the listing. Inactive products are hidden.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, shop_id, name, price, discount_price, stock_quantity
		FROM products
		WHERE is_active
	`
	args := make([]any, 0, 1)
	if query.ShopID() != nil {
		sql += ` AND shop_id = ?`
		args = append(args, query.ShopID().Bytes())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductSummary, 0)
	for rows.Next() {
		var id, shopID uuid.UUID
		var summary ProductSummary

		err = rows.Scan(&id, &shopID, &summary.Name, &summary.Price,
			&summary.DiscountPrice, &summary.StockQuantity)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}
		products = append(products, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
