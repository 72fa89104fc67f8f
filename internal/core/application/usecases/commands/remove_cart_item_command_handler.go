package commands

import (
	"context"

	"sokoni/internal/core/ports"
)

// RemoveCartItemCommandHandler deletes a line from the cart.
type RemoveCartItemCommandHandler struct {
	cartStore ports.CartStore
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(cartStore ports.CartStore) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{cartStore: cartStore}
}

// Handle processes the removal.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customerCart, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if err = customerCart.RemoveLine(cmd.ProductID()); err != nil {
		return err
	}
	return h.cartStore.Save(ctx, customerCart)
}
