package commands

import (
	"context"
	"fmt"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"
	"sokoni/internal/core/domain/services"
)

// AcceptDeliveryCommandHandler handles rider claims. The rider must be
// verified, available and free of active deliveries; the claim itself is a
// conditional write, so exactly one of any set of concurrent claims wins
// and the rest get a conflict.
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	feePolicy  services.FeePolicy
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery claims.
func NewAcceptDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	feePolicy services.FeePolicy,
) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		feePolicy:  feePolicy,
	}
}

// Handle processes the claim, fixing the rider's earnings share at claim
// time.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	claimingRider, err := uow.RiderRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}
	if err = claimingRider.ValidateCanClaim(); err != nil {
		return err
	}

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	earnings := h.feePolicy.RiderEarnings(d.Fee())
	if err = d.Claim(cmd.RiderID(), earnings, time.Now().UTC()); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().ClaimPending(ctx, d); err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return err
	}
	err = queueNotification(ctx, uow.OutboxRepository(),
		o.CustomerID(), kernel.RoleCustomer,
		notification.EventDeliveryAssigned,
		"Rider assigned",
		fmt.Sprintf("A rider accepted the delivery for your order %s.", o.ID()),
		map[string]any{
			"delivery_id": d.ID().String(),
			"order_id":    o.ID().String(),
			"rider_id":    cmd.RiderID().String(),
			"status":      d.Status().String(),
		},
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
