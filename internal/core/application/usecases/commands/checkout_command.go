package commands

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
	"sokoni/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand converts a customer's cart into one order per shop.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	deliveryAddress string
	phone           string
	notes           string
	paymentMethod   string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout request. Notes are optional;
// everything else is required.
func NewCheckoutCommand(
	customerID kernel.UUID,
	deliveryAddress, phone, notes, paymentMethod string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPhone(phone),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID { return c.customerID }

// DeliveryAddress returns the drop-off address.
func (c CheckoutCommand) DeliveryAddress() string { return c.deliveryAddress }

// Phone returns the customer's contact phone.
func (c CheckoutCommand) Phone() string { return c.phone }

// Notes returns the optional delivery notes.
func (c CheckoutCommand) Notes() string { return c.notes }

// PaymentMethod returns the chosen payment method.
func (c CheckoutCommand) PaymentMethod() string { return c.paymentMethod }

func (c *CheckoutCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CheckoutCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = method
	return nil
}
