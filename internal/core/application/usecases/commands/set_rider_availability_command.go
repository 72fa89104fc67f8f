package commands

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand toggles whether a rider accepts deliveries.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID   kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand creates an availability toggle request.
func NewSetRiderAvailabilityCommand(riderID kernel.UUID, available bool) (SetRiderAvailabilityCommand, error) {
	cmd := SetRiderAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setRiderID(riderID); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

// RiderID returns the rider's identifier.
func (c SetRiderAvailabilityCommand) RiderID() kernel.UUID { return c.riderID }

// Available returns the requested availability state.
func (c SetRiderAvailabilityCommand) Available() bool { return c.available }

func (c *SetRiderAvailabilityCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}
