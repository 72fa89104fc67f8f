package order

import (
	"errors"
	"fmt"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTotalAmountMismatch is returned when a restored order violates the
	// amount invariant.
	ErrTotalAmountMismatch = errors.New("total amount must equal subtotal + delivery fee + platform fee")
)

// PaymentStatus tracks whether the order has been paid for.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate checks that the payment status is one of the defined values.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}

// Order is the aggregate root for a customer's purchase against one shop.
//
// Invariants:
//   - identifiers, items and amounts are validated at construction
//   - totalAmount = subtotal + deliveryFee + platformFee, always
//   - status transitions follow the rules encoded in Status.Advance
//   - orders are never hard-deleted; cancellation is a status value
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	shopID     kernel.UUID

	items  []Item
	status Status

	subtotal    kernel.Money
	deliveryFee kernel.Money
	platformFee kernel.Money
	totalAmount kernel.Money

	deliveryAddress string
	phone           string
	notes           string
	paymentMethod   string
	paymentStatus   PaymentStatus

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status from item snapshots and the
// fees computed by the pricing policy. The subtotal is derived from the
// items and the total amount from the invariant, so a freshly created order
// can never violate it.
func NewOrder(
	id, customerID, shopID kernel.UUID,
	items []Item,
	deliveryFee, platformFee kernel.Money,
	deliveryAddress, phone, notes, paymentMethod string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentUnpaid,
		deliveryFee:   deliveryFee,
		platformFee:   platformFee,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShopID(shopID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPhone(phone),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.subtotal = subtotalOf(o.items)
	o.totalAmount = o.subtotal.Add(o.deliveryFee).Add(o.platformFee)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, re-validating all
// invariants including the amount equation.
func RestoreOrder(
	id, customerID, shopID kernel.UUID,
	items []Item,
	status Status,
	subtotal, deliveryFee, platformFee, totalAmount kernel.Money,
	deliveryAddress, phone, notes, paymentMethod string,
	paymentStatus PaymentStatus,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, shopID, items, deliveryFee, platformFee,
		deliveryAddress, phone, notes, paymentMethod, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}
	if !subtotal.IsEqual(o.subtotal) || !totalAmount.IsEqual(subtotal.Add(deliveryFee).Add(platformFee)) {
		return nil, ErrTotalAmountMismatch
	}

	o.status = status
	o.paymentStatus = paymentStatus
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// ShopID returns the identifier of the shop the order was placed against.
func (o *Order) ShopID() kernel.UUID { return o.shopID }

// Items returns the immutable item snapshots.
func (o *Order) Items() []Item { return o.items }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Subtotal returns the sum of the item totals.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// DeliveryFee returns the delivery fee charged for the order.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// PlatformFee returns the marketplace cut charged for the order.
func (o *Order) PlatformFee() kernel.Money { return o.platformFee }

// TotalAmount returns subtotal + delivery fee + platform fee.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// DeliveryAddress returns the drop-off address supplied at checkout.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// Phone returns the contact phone supplied at checkout.
func (o *Order) Phone() string { return o.phone }

// Notes returns free-form notes; after cancellation it holds the reason.
func (o *Order) Notes() string { return o.notes }

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// PaymentStatus returns the payment state of the order.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ChangeStatus transitions the order to the target status on behalf of the
// given role. Requesting the status the order already has is an idempotent
// no-op.
func (o *Order) ChangeStatus(to Status, role kernel.Role) error {
	if to == o.status {
		return nil
	}

	newStatus, err := o.status.Advance(to, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled and records the reason in the
// notes. Customers must supply a non-empty reason and may cancel only while
// the order is pending or confirmed; re-cancelling is a no-op.
func (o *Order) Cancel(reason string, role kernel.Role) error {
	if o.status == Cancelled {
		return nil
	}
	if role == kernel.RoleCustomer && reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Advance(Cancelled, role)
	if err != nil {
		return err
	}

	o.status = newStatus
	if reason != "" {
		o.notes = reason
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("customerID: %w", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("shopID: %w", err)
	}
	o.shopID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = method
	return nil
}

func subtotalOf(items []Item) kernel.Money {
	var sum kernel.Money
	for _, item := range items {
		sum = sum.Add(item.TotalPrice())
	}
	return sum
}
