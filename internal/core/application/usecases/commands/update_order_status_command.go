package commands

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"
	"sokoni/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is the seller/admin request to advance an order
// one stage or to cancel it.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    kernel.Role
	status  order.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update request. Only sellers
// and admins may issue it; reason is used when the target is cancelled.
func NewUpdateOrderStatusCommand(
	orderID, actorID kernel.UUID,
	role kernel.Role,
	status order.Status,
	reason string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorID, role),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the requesting actor's identifier.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID { return c.actorID }

// Role returns the requesting actor's role.
func (c UpdateOrderStatusCommand) Role() kernel.Role { return c.role }

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// Reason returns the cancellation reason, empty for advances.
func (c UpdateOrderStatusCommand) Reason() string { return c.reason }

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(id kernel.UUID, role kernel.Role) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if role != kernel.RoleSeller && role != kernel.RoleAdmin {
		return errs.NewActorNotAllowedError(role.String(), "update order status")
	}
	c.actorID = id
	c.role = role
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
