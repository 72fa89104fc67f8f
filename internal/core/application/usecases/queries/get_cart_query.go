package queries

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart with current catalog prices.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart read query.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID { return q.customerID }

// CartLineView is one cart line priced at the product's current effective
// price. Available reports whether the product is still active and in stock
// for the requested quantity.
type CartLineView struct {
	ProductID   kernel.UUID
	ProductName string
	ShopID      kernel.UUID
	Quantity    int
	UnitPrice   int64
	LineTotal   int64
	Available   bool
}

// CartView is the cart read model. Subtotal sums available lines only.
type CartView struct {
	CustomerID kernel.UUID
	Lines      []CartLineView
	Subtotal   int64
}
