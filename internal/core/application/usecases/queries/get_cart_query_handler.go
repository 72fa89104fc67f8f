package queries

import (
	"context"
	"errors"

	"sokoni/internal/core/ports"
	"sokoni/internal/pkg/errs"
)

// GetCartQueryHandler reads the cart and prices it from the live catalog.
// Unlike the other queries it goes through the CartStore port because carts
// live in Redis, not the relational store.
type GetCartQueryHandler struct {
	cartStore   ports.CartStore
	productRepo ports.ProductRepository
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(cartStore ports.CartStore, productRepo ports.ProductRepository) GetCartQueryHandler {
	return GetCartQueryHandler{cartStore: cartStore, productRepo: productRepo}
}

// Handle executes the read. Lines whose product vanished from the catalog,
// went inactive, or ran out of stock are kept but flagged unavailable so the
// customer can fix the cart before checkout.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	aggregate, err := h.cartStore.Get(ctx, query.CustomerID())
	if err != nil {
		return CartView{}, err
	}

	view := CartView{
		CustomerID: query.CustomerID(),
		Lines:      make([]CartLineView, 0, len(aggregate.Lines())),
	}

	for _, line := range aggregate.Lines() {
		lineView := CartLineView{ProductID: line.ProductID, Quantity: line.Quantity}

		p, err := h.productRepo.Get(ctx, line.ProductID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			view.Lines = append(view.Lines, lineView)
			continue
		}
		if err != nil {
			return CartView{}, err
		}

		lineView.ProductName = p.Name()
		lineView.ShopID = p.ShopID()
		lineView.UnitPrice = p.EffectivePrice().Amount()
		lineView.LineTotal = lineView.UnitPrice * int64(line.Quantity)
		lineView.Available = p.ValidatePurchasable(line.Quantity) == nil
		if lineView.Available {
			view.Subtotal += lineView.LineTotal
		}
		view.Lines = append(view.Lines, lineView)
	}

	return view, nil
}
