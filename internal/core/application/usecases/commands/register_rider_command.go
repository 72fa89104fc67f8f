package commands

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/rider"
	"sokoni/internal/pkg/guard"
)

var ErrRegisterRiderCommandIsNotConstructed = errors.New(
	"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
)

// RegisterRiderCommand creates a delivery profile for a user.
type RegisterRiderCommand struct { //nolint:recvcheck //using for validation
	riderID       kernel.UUID
	vehicleType   rider.VehicleType
	vehiclePlate  string
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewRegisterRiderCommand creates a registration request. Field rules
// mirror the aggregate: plate required for motorized vehicles, license
// always required.
func NewRegisterRiderCommand(
	riderID kernel.UUID,
	vehicleType rider.VehicleType,
	vehiclePlate, licenseNumber string,
) (RegisterRiderCommand, error) {
	cmd := RegisterRiderCommand{
		vehicleType:   vehicleType,
		vehiclePlate:  vehiclePlate,
		licenseNumber: licenseNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setRiderID(riderID); err != nil {
		return RegisterRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

// RiderID returns the registering user's identifier.
func (c RegisterRiderCommand) RiderID() kernel.UUID { return c.riderID }

// VehicleType returns the declared vehicle type.
func (c RegisterRiderCommand) VehicleType() rider.VehicleType { return c.vehicleType }

// VehiclePlate returns the declared registration plate.
func (c RegisterRiderCommand) VehiclePlate() string { return c.vehiclePlate }

// LicenseNumber returns the declared license number.
func (c RegisterRiderCommand) LicenseNumber() string { return c.licenseNumber }

func (c *RegisterRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}
