package commands

import (
	"errors"

	"sokoni/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand triggers one outbox drain pass: queued
// notifications are published to the broker and their dispatch state
// updated. The dispatch job issues this command on a schedule.
type DispatchNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command to drain the outbox.
func NewDispatchNotificationsCommand() DispatchNotificationsCommand {
	return DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}
