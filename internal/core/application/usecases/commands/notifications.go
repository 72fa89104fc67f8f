package commands

import (
	"context"
	"encoding/json"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"
	"sokoni/internal/core/ports"
)

// queueNotification writes an outbox record inside the handler's
// transaction. The payload map becomes the JSON event body published to the
// broker.
func queueNotification(
	ctx context.Context,
	outbox ports.OutboxRepository,
	recipientID kernel.UUID,
	recipientRole kernel.Role,
	event notification.Event,
	title, message string,
	payload map[string]any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	n, err := notification.NewNotification(
		kernel.NewUUID(), recipientID, recipientRole,
		event, title, message, body, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	return outbox.Add(ctx, n)
}
