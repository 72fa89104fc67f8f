// Package riderrepo persists rider profiles.
package riderrepo

import (
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO is the database row for a rider profile. The primary key is the
// owning user's ID.
type RiderDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	VehicleType   string
	VehiclePlate  string
	LicenseNumber string

	IsAvailable bool
	IsVerified  bool

	TotalDeliveries int
	TotalEarnings   int64

	CreatedAt time.Time
}

// TableName maps the DTO to the "riders" table.
func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:              aggregate.ID().Bytes(),
		VehicleType:     aggregate.Vehicle().String(),
		VehiclePlate:    aggregate.VehiclePlate(),
		LicenseNumber:   aggregate.LicenseNumber(),
		IsAvailable:     aggregate.IsAvailable(),
		IsVerified:      aggregate.IsVerified(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		TotalEarnings:   aggregate.TotalEarnings().Amount(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := rider.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	earnings, err := kernel.NewMoney(dto.TotalEarnings)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id, vehicleType,
		dto.VehiclePlate, dto.LicenseNumber,
		dto.IsAvailable, dto.IsVerified,
		dto.TotalDeliveries, earnings,
		dto.CreatedAt,
	)
}
