package ports

import (
	"context"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog entries.
// This service reads products and adjusts stock; catalog CRUD lives
// elsewhere.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves products for a set of identifiers; missing IDs
	// yield an ObjectNotFoundError naming the first absent product.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// DecrementStock atomically removes purchased units. Insufficient
	// stock yields a ConflictError; no rows are written in that case.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// RestoreStock atomically returns units to stock after a cancellation.
	RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error
}
