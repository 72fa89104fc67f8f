package commands

import (
	"context"
	"time"

	"sokoni/internal/core/domain/model/rider"
)

// RegisterRiderCommandHandler creates rider profiles. Vehicle validation
// happens in the aggregate constructor; a duplicate profile surfaces as a
// conflict from the repository.
type RegisterRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewRegisterRiderCommandHandler creates a handler for rider registration.
func NewRegisterRiderCommandHandler(uowFactory RiderUoWFactory) RegisterRiderCommandHandler {
	return RegisterRiderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration.
func (h *RegisterRiderCommandHandler) Handle(ctx context.Context, cmd RegisterRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newRider, err := rider.NewRider(
		cmd.RiderID(), cmd.VehicleType(),
		cmd.VehiclePlate(), cmd.LicenseNumber(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RiderRepository().Add(ctx, newRider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
