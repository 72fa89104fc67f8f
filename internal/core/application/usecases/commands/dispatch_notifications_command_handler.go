package commands

import (
	"context"
	"time"

	"sokoni/internal/core/ports"
)

const (
	// dispatchBatchSize caps how many notifications one drain pass handles.
	dispatchBatchSize = 100

	// dispatchMaxAttempts is how many failed publishes a notification
	// survives before it is abandoned.
	dispatchMaxAttempts = 5
)

// DispatchNotificationsCommandHandler drains the notification outbox: it
// loads queued rows, publishes each to the broker, and records the result.
// A publish failure only affects that notification; the rest of the batch
// proceeds.
type DispatchNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox drain passes.
func NewDispatchNotificationsCommandHandler(
	uowFactory OutboxUoWFactory, publisher ports.EventPublisher,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one drain pass. Returns the first persistence error;
// publish errors are absorbed into the notifications' attempt counts.
func (h DispatchNotificationsCommandHandler) Handle(ctx context.Context, command DispatchNotificationsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()

	queued, err := outbox.GetQueued(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, n := range queued {
		if publishErr := h.publisher.Publish(ctx, n); publishErr != nil {
			n.RecordFailedAttempt(dispatchMaxAttempts)
		} else {
			n.MarkSent(time.Now().UTC())
		}

		if err = outbox.Update(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
