package notification

import (
	"errors"
	"fmt"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

// Event identifies what happened. The prefix selects the Kafka topic the
// dispatcher publishes to.
type Event string

const (
	EventOrderConfirmation Event = "order.created"
	EventOrderStatus       Event = "order.status_changed"
	EventOrderCancelled    Event = "order.cancelled"
	EventDeliveryAssigned  Event = "delivery.assigned"
	EventDeliveryStatus    Event = "delivery.status_changed"
)

// DispatchStatus is the outbox state of a notification.
type DispatchStatus int

const (
	// Queued means the notification awaits dispatch.
	Queued DispatchStatus = iota + 1

	// Sent means the notification was published.
	Sent

	// Abandoned means dispatch was given up after repeated failures.
	Abandoned
)

func (s DispatchStatus) String() string {
	switch s {
	case Queued:
		return "queued"
	case Sent:
		return "sent"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification or RestoreNotification")
)

// Notification is an outbox record: written in the same transaction as the
// state change it describes, published asynchronously by the dispatch job.
// Dispatch failures never roll back the originating transition.
type Notification struct {
	id kernel.UUID

	recipientID   kernel.UUID
	recipientRole kernel.Role

	event   Event
	title   string
	message string
	payload []byte

	status   DispatchStatus
	attempts int

	createdAt time.Time
	sentAt    *time.Time

	isConstructed bool
}

// NewNotification queues a notification for a recipient. Payload is the
// JSON event body published to Kafka verbatim.
func NewNotification(
	id, recipientID kernel.UUID,
	recipientRole kernel.Role,
	event Event,
	title, message string,
	payload []byte,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		event:         event,
		payload:       payload,
		status:        Queued,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipient(recipientID, recipientRole),
		n.setContent(title, message),
		validateEvent(event),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs an outbox record from persistence.
func RestoreNotification(
	id, recipientID kernel.UUID,
	recipientRole kernel.Role,
	event Event,
	title, message string,
	payload []byte,
	status DispatchStatus,
	attempts int,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, recipientID, recipientRole, event, title, message, payload, createdAt)
	if err != nil {
		return nil, err
	}

	if status < Queued || status > Abandoned {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid dispatch status", status))
	}
	if attempts < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("attempts",
			fmt.Errorf("%d is negative", attempts))
	}

	n.status = status
	n.attempts = attempts
	n.sentAt = sentAt
	return n, nil
}

// Validate ensures the notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// RecipientID returns the target user's identifier.
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }

// RecipientRole returns the target user's role.
func (n *Notification) RecipientRole() kernel.Role { return n.recipientRole }

// EventType returns the event identifier.
func (n *Notification) EventType() Event { return n.event }

// Title returns the short human-readable summary.
func (n *Notification) Title() string { return n.title }

// Message returns the human-readable body.
func (n *Notification) Message() string { return n.message }

// Payload returns the JSON event body for publishing.
func (n *Notification) Payload() []byte { return n.payload }

// Status returns the outbox dispatch state.
func (n *Notification) Status() DispatchStatus { return n.status }

// Attempts returns the number of failed dispatch attempts so far.
func (n *Notification) Attempts() int { return n.attempts }

// CreatedAt returns the enqueue timestamp.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// SentAt returns the publish timestamp, nil until sent.
func (n *Notification) SentAt() *time.Time { return n.sentAt }

// MarkSent records a successful publish.
func (n *Notification) MarkSent(at time.Time) {
	n.status = Sent
	n.sentAt = &at
}

// RecordFailedAttempt counts a failed publish. Once maxAttempts is reached
// the notification is abandoned and the dispatcher stops retrying it.
func (n *Notification) RecordFailedAttempt(maxAttempts int) {
	n.attempts++
	if n.attempts >= maxAttempts {
		n.status = Abandoned
	}
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipient(id kernel.UUID, role kernel.Role) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("recipientID: %w", err)
	}
	if err := role.Validate(); err != nil {
		return err
	}
	n.recipientID = id
	n.recipientRole = role
	return nil
}

func (n *Notification) setContent(title, message string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.title = title
	n.message = message
	return nil
}

func validateEvent(event Event) error {
	switch event {
	case EventOrderConfirmation, EventOrderStatus, EventOrderCancelled,
		EventDeliveryAssigned, EventDeliveryStatus:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("event",
		fmt.Errorf("%q is not a valid notification event", event))
}
