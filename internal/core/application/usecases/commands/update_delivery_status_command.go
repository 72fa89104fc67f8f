package commands

import (
	"errors"
	"fmt"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
	"sokoni/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is the claiming rider's request to progress
// (or fail) their delivery.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	riderID    kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a progression request. Only
// picked_up, in_transit, delivered and failed are reachable through it;
// assignment goes through AcceptDeliveryCommand.
func NewUpdateDeliveryStatusCommand(
	deliveryID, riderID kernel.UUID,
	status delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setRiderID(riderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// RiderID returns the requesting rider's identifier.
func (c UpdateDeliveryStatusCommand) RiderID() kernel.UUID { return c.riderID }

// Status returns the requested target status.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status { return c.status }

func (c *UpdateDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *UpdateDeliveryStatusCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status delivery.Status) error {
	switch status {
	case delivery.PickedUp, delivery.InTransit, delivery.Delivered, delivery.Failed:
		c.status = status
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not reachable through a rider update", status))
	}
}
