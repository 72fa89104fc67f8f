package commands

import (
	"context"
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies seller/admin order transitions:
// one-hop advances through the preparation stages, or cancellation while
// the order has not been picked up. The write is compare-and-swap guarded,
// so a concurrent transition surfaces as a conflict instead of a lost
// update.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for seller/admin
// order status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the status update. Re-applying the order's current
// status succeeds without writing.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if cmd.Role() == kernel.RoleSeller {
		orderShop, err := uow.ShopRepository().Get(ctx, o.ShopID())
		if err != nil {
			return err
		}
		if !orderShop.SellerID().IsEqual(cmd.ActorID()) {
			return errs.NewActorNotAllowedError(cmd.Role().String(), "update another shop's order")
		}
	}

	prior := o.Status()
	if cmd.Status() == order.Cancelled {
		err = o.Cancel(cmd.Reason(), cmd.Role())
	} else {
		err = o.ChangeStatus(cmd.Status(), cmd.Role())
	}
	if err != nil {
		return err
	}

	if o.Status() == prior {
		return uow.Commit(ctx)
	}

	if err = uow.OrderRepository().UpdateStatusFrom(ctx, o, prior); err != nil {
		return err
	}

	if o.Status() == order.Cancelled {
		if err = cascadeOrderCancellation(ctx, uow, o); err != nil {
			return err
		}
	}

	event := notification.EventOrderStatus
	if o.Status() == order.Cancelled {
		event = notification.EventOrderCancelled
	}
	err = queueNotification(ctx, uow.OutboxRepository(),
		o.CustomerID(), kernel.RoleCustomer,
		event,
		"Order updated",
		fmt.Sprintf("Your order is now %s.", o.Status()),
		map[string]any{
			"order_id": o.ID().String(),
			"status":   o.Status().String(),
		},
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
