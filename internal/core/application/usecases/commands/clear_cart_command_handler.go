package commands

import (
	"context"

	"sokoni/internal/core/ports"
)

// ClearCartCommandHandler empties the customer's cart.
type ClearCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(cartStore ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{cartStore: cartStore}
}

// Handle processes the clear. Clearing an absent cart succeeds.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.cartStore.Clear(ctx, cmd.CustomerID())
}
