package ports

import (
	"context"

	"sokoni/internal/core/domain/model/notification"
)

// OutboxRepository defines the persistence contract for queued
// notifications. Add runs inside the transaction of the state change that
// queues the notification.
type OutboxRepository interface {
	// Add persists a queued notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// GetQueued retrieves up to limit queued notifications, oldest first.
	GetQueued(ctx context.Context, limit int) ([]*notification.Notification, error)

	// Update persists dispatch state changes (sent / attempt counts).
	Update(ctx context.Context, aggregate *notification.Notification) error
}
