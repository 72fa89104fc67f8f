package order

import (
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

// Item is an immutable snapshot of a product line at the time the order was
// placed. It keeps the product name and unit price as they were, so later
// catalog edits do not rewrite history.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
}

// NewItem creates an order line snapshot. Quantity must be positive.
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ProductID returns the identifier of the snapshotted product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name at order time.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unit price multiplied by quantity.
func (i Item) TotalPrice() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}
