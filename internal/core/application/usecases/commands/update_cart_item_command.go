package commands

import (
	"errors"
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
	"sokoni/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand replaces a cart line's quantity; zero removes it.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a quantity update request.
func NewUpdateCartItemCommand(customerID, productID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c UpdateCartItemCommand) CustomerID() kernel.UUID { return c.customerID }

// ProductID returns the product's identifier.
func (c UpdateCartItemCommand) ProductID() kernel.UUID { return c.productID }

// Quantity returns the replacement quantity, zero meaning removal.
func (c UpdateCartItemCommand) Quantity() int { return c.quantity }

func (c *UpdateCartItemCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *UpdateCartItemCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *UpdateCartItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	c.quantity = quantity
	return nil
}
