package commands

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand is a rider's claim on a pending delivery.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	riderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a claim request.
func NewAcceptDeliveryCommand(deliveryID, riderID kernel.UUID) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setRiderID(riderID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c AcceptDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// RiderID returns the claiming rider's identifier.
func (c AcceptDeliveryCommand) RiderID() kernel.UUID { return c.riderID }

func (c *AcceptDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *AcceptDeliveryCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}
