package rider

import (
	"errors"
	"fmt"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

// VehicleType enumerates the vehicles a rider can register with.
type VehicleType string

const (
	VehicleBicycle    VehicleType = "bicycle"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
)

// VehicleTypeFromString parses a vehicle type received from the transport layer.
func VehicleTypeFromString(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case VehicleBicycle, VehicleMotorcycle, VehicleCar:
		return VehicleType(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", s))
}

// String returns the wire name of the vehicle type.
func (v VehicleType) String() string { return string(v) }

var (
	// ErrRiderIsNotConstructed is returned when a Rider instance was not
	// created through NewRider or RestoreRider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")

	// ErrRiderNotVerified is returned when an unverified rider attempts to
	// claim deliveries.
	ErrRiderNotVerified = errors.New("rider is not verified")
)

// Rider is the aggregate root for a rider's delivery profile, keyed by the
// rider's user ID. Lifetime totals grow only through completed deliveries.
type Rider struct {
	id kernel.UUID

	vehicleType   VehicleType
	vehiclePlate  string
	licenseNumber string

	isAvailable bool
	isVerified  bool

	totalDeliveries int
	totalEarnings   kernel.Money

	createdAt time.Time

	isConstructed bool
}

// NewRider registers a delivery profile for a user. Fresh profiles start
// available but unverified; an operator flips isVerified out of band.
func NewRider(
	id kernel.UUID,
	vehicleType VehicleType,
	vehiclePlate, licenseNumber string,
	createdAt time.Time,
) (*Rider, error) {
	r := &Rider{
		isAvailable:   true,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setVehicle(vehicleType, vehiclePlate),
		r.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider profile from persistence.
func RestoreRider(
	id kernel.UUID,
	vehicleType VehicleType,
	vehiclePlate, licenseNumber string,
	isAvailable, isVerified bool,
	totalDeliveries int,
	totalEarnings kernel.Money,
	createdAt time.Time,
) (*Rider, error) {
	r, err := NewRider(id, vehicleType, vehiclePlate, licenseNumber, createdAt)
	if err != nil {
		return nil, err
	}

	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalDeliveries",
			fmt.Errorf("%d is negative", totalDeliveries))
	}

	r.isAvailable = isAvailable
	r.isVerified = isVerified
	r.totalDeliveries = totalDeliveries
	r.totalEarnings = totalEarnings
	return r, nil
}

// Validate ensures the rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// IsEqual compares two riders by identifier.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's identifier (the owning user's ID).
func (r *Rider) ID() kernel.UUID { return r.id }

// Vehicle returns the registered vehicle type.
func (r *Rider) Vehicle() VehicleType { return r.vehicleType }

// VehiclePlate returns the registration plate, empty for bicycles.
func (r *Rider) VehiclePlate() string { return r.vehiclePlate }

// LicenseNumber returns the rider's license number.
func (r *Rider) LicenseNumber() string { return r.licenseNumber }

// IsAvailable reports whether the rider accepts new deliveries.
func (r *Rider) IsAvailable() bool { return r.isAvailable }

// IsVerified reports whether an operator has verified the rider.
func (r *Rider) IsVerified() bool { return r.isVerified }

// TotalDeliveries returns the lifetime count of completed deliveries.
func (r *Rider) TotalDeliveries() int { return r.totalDeliveries }

// TotalEarnings returns the lifetime sum of earned delivery shares.
func (r *Rider) TotalEarnings() kernel.Money { return r.totalEarnings }

// CreatedAt returns the profile creation timestamp.
func (r *Rider) CreatedAt() time.Time { return r.createdAt }

// SetAvailability toggles whether the rider accepts new deliveries.
func (r *Rider) SetAvailability(available bool) {
	r.isAvailable = available
}

// Verify marks the rider as verified by an operator.
func (r *Rider) Verify() {
	r.isVerified = true
}

// ValidateCanClaim checks the preconditions for claiming a delivery:
// the rider must be verified and currently available. The "no other active
// delivery" rule is enforced by the storage layer.
func (r *Rider) ValidateCanClaim() error {
	if !r.isVerified {
		return ErrRiderNotVerified
	}
	if !r.isAvailable {
		return errs.NewConflictError("rider availability", "unavailable")
	}
	return nil
}

// RecordCompletedDelivery adds a completed delivery to the lifetime totals.
func (r *Rider) RecordCompletedDelivery(earnings kernel.Money) {
	r.totalDeliveries++
	r.totalEarnings = r.totalEarnings.Add(earnings)
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setVehicle(vehicleType VehicleType, plate string) error {
	if _, err := VehicleTypeFromString(string(vehicleType)); err != nil {
		return err
	}
	if vehicleType != VehicleBicycle && plate == "" {
		return errs.NewValueIsRequiredError("vehiclePlate")
	}
	r.vehicleType = vehicleType
	r.vehiclePlate = plate
	return nil
}

func (r *Rider) setLicenseNumber(license string) error {
	if license == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	r.licenseNumber = license
	return nil
}
