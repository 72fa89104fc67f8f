package queries

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/guard"
)

var ErrGetRiderStatsQueryIsNotConstructed = errors.New(
	"GetRiderStatsQuery must be created via NewGetRiderStatsQuery constructor",
)

// GetRiderStatsQuery retrieves a rider's earnings dashboard.
type GetRiderStatsQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderStatsQuery creates a rider stats query.
func NewGetRiderStatsQuery(riderID kernel.UUID) (GetRiderStatsQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderStatsQuery{}, err
	}
	return GetRiderStatsQuery{riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderStatsQueryIsNotConstructed)
}

// RiderID returns the rider's identifier.
func (q GetRiderStatsQuery) RiderID() kernel.UUID { return q.riderID }

// RiderStats is the rider dashboard read model: lifetime totals from the
// rider profile plus counters over today's completed deliveries.
type RiderStats struct {
	RiderID          kernel.UUID
	IsAvailable      bool
	IsVerified       bool
	TotalDeliveries  int
	TotalEarnings    int64
	TodayDeliveries  int
	TodayEarnings    int64
	ActiveDeliveries int
}
