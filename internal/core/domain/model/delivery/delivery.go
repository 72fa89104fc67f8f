package delivery

import (
	"errors"
	"fmt"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// Delivery is the aggregate root for the physical transport of one order.
//
// Invariants:
//   - linked to exactly one order for its whole lifetime
//   - riderless while pending; owned by exactly one rider once claimed
//   - only the claiming rider may progress the delivery
//   - status follows the sequence encoded in Status; delivered and failed
//     are absorbing
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	riderID *kernel.UUID

	status Status

	pickupAddress   string
	deliveryAddress string
	distanceKm      float64

	fee           kernel.Money
	riderEarnings kernel.Money

	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewDelivery creates a pending, unclaimed delivery for an order.
func NewDelivery(
	id, orderID kernel.UUID,
	pickupAddress, deliveryAddress string,
	distanceKm float64,
	fee kernel.Money,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		fee:           fee,
		distanceKm:    distanceKm,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setPickupAddress(pickupAddress),
		d.setDeliveryAddress(deliveryAddress),
		d.validateDistance(distanceKm),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence, re-validating
// the status/rider consistency rules.
func RestoreDelivery(
	id, orderID kernel.UUID,
	riderID *kernel.UUID,
	status Status,
	pickupAddress, deliveryAddress string,
	distanceKm float64,
	fee, riderEarnings kernel.Money,
	assignedAt, pickedUpAt, deliveredAt *time.Time,
	createdAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, pickupAddress, deliveryAddress, distanceKm, fee, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveRider(riderID != nil); err != nil {
		return nil, err
	}
	if riderID != nil {
		if err = riderID.Validate(); err != nil {
			return nil, err
		}
	}

	d.status = status
	d.riderID = riderID
	d.riderEarnings = riderEarnings
	d.assignedAt = assignedAt
	d.pickedUpAt = pickedUpAt
	d.deliveredAt = deliveredAt
	return d, nil
}

// Validate ensures the delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// OrderID returns the identifier of the fulfilled order.
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }

// Rider returns the claiming rider's ID, nil while unclaimed.
func (d *Delivery) Rider() *kernel.UUID { return d.riderID }

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status { return d.status }

// PickupAddress returns the shop-side address.
func (d *Delivery) PickupAddress() string { return d.pickupAddress }

// DeliveryAddress returns the customer-side address.
func (d *Delivery) DeliveryAddress() string { return d.deliveryAddress }

// DistanceKm returns the estimated trip distance.
func (d *Delivery) DistanceKm() float64 { return d.distanceKm }

// Fee returns the delivery fee charged to the customer.
func (d *Delivery) Fee() kernel.Money { return d.fee }

// RiderEarnings returns the rider's share of the fee, set at claim time.
func (d *Delivery) RiderEarnings() kernel.Money { return d.riderEarnings }

// AssignedAt returns the claim timestamp, nil while unclaimed.
func (d *Delivery) AssignedAt() *time.Time { return d.assignedAt }

// PickedUpAt returns the pickup timestamp, nil before pickup.
func (d *Delivery) PickedUpAt() *time.Time { return d.pickedUpAt }

// DeliveredAt returns the completion timestamp, nil before delivery.
func (d *Delivery) DeliveredAt() *time.Time { return d.deliveredAt }

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// Claim assigns the delivery to a rider and records the rider's earnings
// share. Only pending, unclaimed deliveries can be claimed; the storage
// layer enforces the same condition atomically.
func (d *Delivery) Claim(riderID kernel.UUID, earnings kernel.Money, at time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.riderID = &riderID
	d.riderEarnings = earnings
	d.assignedAt = &at
	return nil
}

// MarkPickedUp records the pickup by the claiming rider. Re-issuing the
// transition on an already picked-up delivery is a no-op.
func (d *Delivery) MarkPickedUp(riderID kernel.UUID, at time.Time) error {
	if err := d.validateRider(riderID); err != nil {
		return err
	}
	if d.status == PickedUp {
		return nil
	}

	newStatus, err := d.status.PickUp()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.pickedUpAt = &at
	return nil
}

// MarkInTransit records that the claiming rider is en route to the
// customer. Re-issuing the transition on an in-transit delivery is a no-op.
func (d *Delivery) MarkInTransit(riderID kernel.UUID) error {
	if err := d.validateRider(riderID); err != nil {
		return err
	}
	if d.status == InTransit {
		return nil
	}

	newStatus, err := d.status.Transit()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkDelivered records the successful completion by the claiming rider.
// Re-issuing the transition on an already-delivered delivery is a no-op.
func (d *Delivery) MarkDelivered(riderID kernel.UUID, at time.Time) error {
	if err := d.validateRider(riderID); err != nil {
		return err
	}
	if d.status == Delivered {
		return nil
	}

	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.deliveredAt = &at
	return nil
}

// MarkFailed aborts the delivery. Unclaimed deliveries fail without a rider
// (the order was cancelled before any claim); claimed ones only through
// their rider. Re-issuing the transition on a failed delivery is a no-op.
func (d *Delivery) MarkFailed(riderID *kernel.UUID) error {
	if d.riderID != nil {
		if riderID == nil || !d.riderID.IsEqual(*riderID) {
			return errs.NewActorNotAllowedError(kernel.RoleRider.String(), "fail another rider's delivery")
		}
	}
	if d.status == Failed {
		return nil
	}

	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) validateRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if d.riderID == nil || !d.riderID.IsEqual(riderID) {
		return errs.NewActorNotAllowedError(kernel.RoleRider.String(), "progress another rider's delivery")
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("orderID: %w", err)
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	d.pickupAddress = address
	return nil
}

func (d *Delivery) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	d.deliveryAddress = address
	return nil
}

func (d *Delivery) validateDistance(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is negative", distanceKm))
	}
	return nil
}
