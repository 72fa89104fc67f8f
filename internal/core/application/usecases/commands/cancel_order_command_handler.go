package commands

import (
	"context"
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated cancellations:
// allowed only while the order is pending or confirmed, requires a reason,
// restores stock and fails the pending delivery. The owning seller is
// notified.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for customer
// cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancellation. Cancelling an already-cancelled order
// succeeds without writing.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewActorNotAllowedError(kernel.RoleCustomer.String(), "cancel another customer's order")
	}

	prior := o.Status()
	if err = o.Cancel(cmd.Reason(), kernel.RoleCustomer); err != nil {
		return err
	}
	if prior == order.Cancelled {
		return uow.Commit(ctx)
	}

	if err = uow.OrderRepository().UpdateStatusFrom(ctx, o, prior); err != nil {
		return err
	}
	if err = cascadeOrderCancellation(ctx, uow, o); err != nil {
		return err
	}

	orderShop, err := uow.ShopRepository().Get(ctx, o.ShopID())
	if err != nil {
		return err
	}
	err = queueNotification(ctx, uow.OutboxRepository(),
		orderShop.SellerID(), kernel.RoleSeller,
		notification.EventOrderCancelled,
		"Order cancelled",
		fmt.Sprintf("Order %s was cancelled by the customer: %s.", o.ID(), cmd.Reason()),
		map[string]any{
			"order_id": o.ID().String(),
			"status":   o.Status().String(),
			"reason":   cmd.Reason(),
		},
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
