package ports

import (
	"context"

	"sokoni/internal/core/domain/model/notification"
)

// EventPublisher publishes a notification's event to the message broker.
// The implementation maps the event type to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, aggregate *notification.Notification) error
}
