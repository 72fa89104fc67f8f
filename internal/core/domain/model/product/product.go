package product

import (
	"errors"
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is returned when a stock decrement would leave a
	// negative quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrProductInactive is returned when an inactive product is added to a
	// cart or ordered.
	ErrProductInactive = errors.New("product is not active")
)

// Product is a catalog entry owned by a shop. Checkout prices order items
// from the effective price and adjusts stockQuantity; everything else about
// the product is read-only to this service.
type Product struct {
	id     kernel.UUID
	shopID kernel.UUID

	name          string
	price         kernel.Money
	discountPrice *kernel.Money
	stockQuantity int
	isActive      bool

	isConstructed bool
}

// NewProduct creates an active catalog entry.
func NewProduct(
	id, shopID kernel.UUID,
	name string,
	price kernel.Money,
	discountPrice *kernel.Money,
	stockQuantity int,
) (*Product, error) {
	p := &Product{
		price:         price,
		discountPrice: discountPrice,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setShopID(shopID),
		p.setName(name),
		p.setStockQuantity(stockQuantity),
		p.validateDiscount(price, discountPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id, shopID kernel.UUID,
	name string,
	price kernel.Money,
	discountPrice *kernel.Money,
	stockQuantity int,
	isActive bool,
) (*Product, error) {
	p, err := NewProduct(id, shopID, name, price, discountPrice, stockQuantity)
	if err != nil {
		return nil, err
	}
	p.isActive = isActive
	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// ShopID returns the owning shop's identifier.
func (p *Product) ShopID() kernel.UUID { return p.shopID }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Price returns the list price.
func (p *Product) Price() kernel.Money { return p.price }

// DiscountPrice returns the discounted price, nil when no discount applies.
func (p *Product) DiscountPrice() *kernel.Money { return p.discountPrice }

// StockQuantity returns the units currently in stock.
func (p *Product) StockQuantity() int { return p.stockQuantity }

// IsActive reports whether the product is purchasable.
func (p *Product) IsActive() bool { return p.isActive }

// EffectivePrice returns the price checkout charges: the discount price when
// one is set, the list price otherwise.
func (p *Product) EffectivePrice() kernel.Money {
	if p.discountPrice != nil {
		return *p.discountPrice
	}
	return p.price
}

// ValidatePurchasable checks that the product can be added to a cart or
// ordered in the given quantity.
func (p *Product) ValidatePurchasable(quantity int) error {
	if !p.isActive {
		return ErrProductInactive
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d must be positive", quantity))
	}
	if quantity > p.stockQuantity {
		return fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, quantity, p.stockQuantity)
	}
	return nil
}

// DecrementStock removes purchased units from stock.
func (p *Product) DecrementStock(quantity int) error {
	if err := p.ValidatePurchasable(quantity); err != nil {
		return err
	}
	p.stockQuantity -= quantity
	return nil
}

// RestoreStock returns units to stock after a cancellation.
func (p *Product) RestoreStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d must be positive", quantity))
	}
	p.stockQuantity += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("shopID: %w", err)
	}
	p.shopID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", quantity))
	}
	p.stockQuantity = quantity
	return nil
}

func (p *Product) validateDiscount(price kernel.Money, discount *kernel.Money) error {
	if discount == nil {
		return nil
	}
	if discount.Amount() >= price.Amount() {
		return errs.NewValueIsInvalidErrorWithCause("discountPrice",
			fmt.Errorf("%s is not below the list price %s", discount, price))
	}
	return nil
}
