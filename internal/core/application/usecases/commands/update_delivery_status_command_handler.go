package commands

import (
	"context"
	"fmt"
	"time"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"
	"sokoni/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler progresses a delivery through its
// rider and cascades the change to the order with the system role:
// picked_up and in_transit mirror onto the order, delivered completes the
// order and credits the rider's totals, failed cancels the order and
// restores its stock.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for rider
// delivery progression.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the progression. Re-applying a state the delivery has
// already reached succeeds without writing.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	prior := d.Status()
	if err = h.applyTransition(d, cmd); err != nil {
		return err
	}
	if d.Status() == prior {
		return uow.Commit(ctx)
	}

	if err = uow.DeliveryRepository().UpdateStatusFrom(ctx, d, prior); err != nil {
		return err
	}

	o, err := h.cascadeToOrder(ctx, uow, d)
	if err != nil {
		return err
	}

	if d.Status() == delivery.Delivered {
		if err = h.creditRider(ctx, uow, cmd.RiderID(), d); err != nil {
			return err
		}
	}

	err = queueNotification(ctx, uow.OutboxRepository(),
		o.CustomerID(), kernel.RoleCustomer,
		notification.EventDeliveryStatus,
		"Delivery updated",
		fmt.Sprintf("The delivery for your order %s is now %s.", o.ID(), d.Status()),
		map[string]any{
			"delivery_id": d.ID().String(),
			"order_id":    o.ID().String(),
			"status":      d.Status().String(),
		},
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateDeliveryStatusCommandHandler) applyTransition(d *delivery.Delivery, cmd UpdateDeliveryStatusCommand) error {
	switch cmd.Status() {
	case delivery.PickedUp:
		return d.MarkPickedUp(cmd.RiderID(), time.Now().UTC())
	case delivery.InTransit:
		return d.MarkInTransit(cmd.RiderID())
	case delivery.Delivered:
		return d.MarkDelivered(cmd.RiderID(), time.Now().UTC())
	case delivery.Failed:
		riderID := cmd.RiderID()
		return d.MarkFailed(&riderID)
	default:
		// Unreachable: the command constructor rejects other targets.
		return fmt.Errorf("unexpected delivery status %s", cmd.Status())
	}
}

// cascadeToOrder mirrors the delivery change onto the order with the
// system role and returns the order for notification building.
func (h *UpdateDeliveryStatusCommandHandler) cascadeToOrder(
	ctx context.Context,
	uow DeliveryUoW,
	d *delivery.Delivery,
) (*order.Order, error) {
	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return nil, err
	}

	prior := o.Status()
	switch d.Status() {
	case delivery.PickedUp:
		err = o.ChangeStatus(order.PickedUp, kernel.RoleSystem)
	case delivery.InTransit:
		err = o.ChangeStatus(order.InTransit, kernel.RoleSystem)
	case delivery.Delivered:
		err = o.ChangeStatus(order.Delivered, kernel.RoleSystem)
	case delivery.Failed:
		err = o.Cancel("delivery failed", kernel.RoleSystem)
	default:
		return o, nil
	}
	if err != nil {
		return nil, err
	}
	if o.Status() == prior {
		return o, nil
	}

	if err = uow.OrderRepository().UpdateStatusFrom(ctx, o, prior); err != nil {
		return nil, err
	}

	if o.Status() == order.Cancelled {
		if err = cascadeOrderCancellation(ctx, uow, o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (h *UpdateDeliveryStatusCommandHandler) creditRider(
	ctx context.Context,
	uow DeliveryUoW,
	riderID kernel.UUID,
	d *delivery.Delivery,
) error {
	claimingRider, err := uow.RiderRepository().Get(ctx, riderID)
	if err != nil {
		return err
	}
	claimingRider.RecordCompletedDelivery(d.RiderEarnings())
	return uow.RiderRepository().Update(ctx, claimingRider)
}
