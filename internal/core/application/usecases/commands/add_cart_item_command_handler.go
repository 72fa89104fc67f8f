package commands

import (
	"context"

	"sokoni/internal/core/ports"
)

// AddCartItemCommandHandler adds a product to the cart after checking the
// requested total against current stock. Carts live in Redis, so no unit
// of work is involved; stock is re-checked at checkout anyway.
type AddCartItemCommandHandler struct {
	cartStore ports.CartStore
	products  ports.ProductRepository
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(cartStore ports.CartStore, products ports.ProductRepository) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{cartStore: cartStore, products: products}
}

// Handle processes the addition, merging with an existing line.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	customerCart, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	requested := customerCart.Quantity(cmd.ProductID()) + cmd.Quantity()
	if err = p.ValidatePurchasable(requested); err != nil {
		return err
	}

	if err = customerCart.AddLine(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}
	return h.cartStore.Save(ctx, customerCart)
}
