package productrepo

import (
	"context"
	"errors"
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/product"
	"sokoni/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a product repository on the given connection.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves products for a set of identifiers. A missing ID yields
// an ObjectNotFoundError naming the first absent product.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		found[dto.ID] = true
		products = append(products, p)
	}

	for _, id := range ids {
		if !found[id.Bytes()] {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
	}

	return products, nil
}

// DecrementStock atomically removes purchased units. The guard in the WHERE
// clause keeps stock non-negative under concurrent checkouts; a failed guard
// yields a ConflictError and writes nothing.
func (r *GormProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := validateQuantity(id, quantity); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND is_active AND stock_quantity >= ?", id.Bytes(), quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var stored ProductDTO
	err := r.db.WithContext(ctx).First(&stored, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	if err != nil {
		return err
	}
	if !stored.IsActive {
		return errs.NewConflictError("product", "inactive")
	}
	return errs.NewConflictErrorWithCause("product stock", fmt.Sprintf("%d", stored.StockQuantity),
		fmt.Errorf("%w: %d requested, %d available", product.ErrInsufficientStock, quantity, stored.StockQuantity))
}

// RestoreStock atomically returns units to stock after a cancellation.
func (r *GormProductRepository) RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := validateQuantity(id, quantity); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return nil
}

func validateQuantity(id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d must be positive", quantity))
	}
	return nil
}
