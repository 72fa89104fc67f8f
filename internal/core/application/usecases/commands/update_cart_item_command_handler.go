package commands

import (
	"context"

	"sokoni/internal/core/ports"
)

// UpdateCartItemCommandHandler replaces a cart line's quantity,
// stock-checking the new total. Quantity zero removes the line.
type UpdateCartItemCommandHandler struct {
	cartStore ports.CartStore
	products  ports.ProductRepository
}

// NewUpdateCartItemCommandHandler creates a handler for cart quantity
// updates.
func NewUpdateCartItemCommandHandler(cartStore ports.CartStore, products ports.ProductRepository) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{cartStore: cartStore, products: products}
}

// Handle processes the update.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Quantity() > 0 {
		p, err := h.products.Get(ctx, cmd.ProductID())
		if err != nil {
			return err
		}
		if err = p.ValidatePurchasable(cmd.Quantity()); err != nil {
			return err
		}
	}

	customerCart, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if err = customerCart.SetQuantity(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}
	return h.cartStore.Save(ctx, customerCart)
}
