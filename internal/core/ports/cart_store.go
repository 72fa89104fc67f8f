package ports

import (
	"context"

	"sokoni/internal/core/domain/model/cart"
	"sokoni/internal/core/domain/model/kernel"
)

// CartStore defines the contract for cart persistence. Carts live outside
// the relational store; a missing cart reads as an empty one.
type CartStore interface {
	// Get retrieves a customer's cart, empty when none exists.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save replaces the stored cart with the given one.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Clear removes the customer's cart.
	Clear(ctx context.Context, customerID kernel.UUID) error
}
