package commands

import (
	"context"
)

// SetRiderAvailabilityCommandHandler toggles a rider's availability flag.
type SetRiderAvailabilityCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewSetRiderAvailabilityCommandHandler creates a handler for availability
// toggles.
func NewSetRiderAvailabilityCommandHandler(uowFactory RiderUoWFactory) SetRiderAvailabilityCommandHandler {
	return SetRiderAvailabilityCommandHandler{uowFactory: uowFactory}
}

// Handle processes the toggle.
func (h *SetRiderAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetRiderAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile, err := uow.RiderRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	profile.SetAvailability(cmd.Available())
	if err = uow.RiderRepository().Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
