// Package cart provides the customer's shopping cart: an ordered list of
// product/quantity lines kept in Redis until checkout converts it into
// per-shop orders.
package cart

import (
	"errors"
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout runs against an empty cart.
var ErrCartIsEmpty = errors.New("cart is empty")

// Line is one product entry in the cart.
type Line struct {
	ProductID kernel.UUID
	Quantity  int
}

// Cart holds a customer's pending purchase. Lines keep insertion order;
// adding an existing product increases its quantity in place.
type Cart struct {
	customerID kernel.UUID
	lines      []Line
}

// NewCart creates an empty cart for a customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{customerID: customerID}, nil
}

// RestoreCart reconstructs a cart from storage.
func RestoreCart(customerID kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err = c.AddLine(line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID { return c.customerID }

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Quantity returns the quantity for a product, zero when absent.
func (c *Cart) Quantity(productID kernel.UUID) int {
	for _, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			return line.Quantity
		}
	}
	return 0
}

// AddLine adds quantity units of a product, merging with an existing line.
func (c *Cart) AddLine(productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d must be positive", quantity))
	}

	for i, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, Line{ProductID: productID, Quantity: quantity})
	return nil
}

// SetQuantity replaces a line's quantity; zero removes the line.
func (c *Cart) SetQuantity(productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if quantity == 0 {
		return c.RemoveLine(productID)
	}

	for i, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return errs.NewObjectNotFoundError("productID", productID.String())
}

// RemoveLine deletes a product from the cart.
func (c *Cart) RemoveLine(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	for i, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("productID", productID.String())
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.lines = nil
}
