// Package outboxrepo persists queued notifications. Rows are written inside
// the transaction of the state change that queued them; the dispatch job
// reads and updates them outside any business transaction.
package outboxrepo

import (
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the database row for an outbox notification.
type NotificationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID   uuid.UUID `gorm:"type:uuid;index"`
	RecipientRole string

	Event   string
	Title   string
	Message string
	Payload []byte `gorm:"type:jsonb"`

	Status   int `gorm:"index"`
	Attempts int

	CreatedAt time.Time
	SentAt    *time.Time
}

// TableName maps the DTO to the "outbox_notifications" table.
func (NotificationDTO) TableName() string {
	return "outbox_notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:            aggregate.ID().Bytes(),
		RecipientID:   aggregate.RecipientID().Bytes(),
		RecipientRole: aggregate.RecipientRole().String(),
		Event:         string(aggregate.EventType()),
		Title:         aggregate.Title(),
		Message:       aggregate.Message(),
		Payload:       aggregate.Payload(),
		Status:        int(aggregate.Status()),
		Attempts:      aggregate.Attempts(),
		CreatedAt:     aggregate.CreatedAt(),
		SentAt:        aggregate.SentAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, recipientID,
		kernel.Role(dto.RecipientRole),
		notification.Event(dto.Event),
		dto.Title, dto.Message,
		dto.Payload,
		notification.DispatchStatus(dto.Status),
		dto.Attempts,
		dto.CreatedAt,
		dto.SentAt,
	)
}
