package ports

import (
	"context"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/shop"
)

// ShopRepository defines the read contract for shops.
type ShopRepository interface {
	// Get retrieves a shop by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)
}
