package notification_test

import (
	"testing"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/notification"
	"sokoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNotification(t *testing.T) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(
		kernel.NewUUID(), kernel.NewUUID(), kernel.RoleCustomer,
		notification.EventOrderConfirmation,
		"Order placed", "Your order has been placed.",
		[]byte(`{"order_id":"abc"}`),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return n
}

func TestNewNotification(t *testing.T) {
	t.Run("should queue a valid notification", func(t *testing.T) {
		n := validNotification(t)

		assert.NoError(t, n.Validate())
		assert.Equal(t, notification.Queued, n.Status())
		assert.Equal(t, 0, n.Attempts())
		assert.Nil(t, n.SentAt())
	})

	t.Run("should reject an unknown event", func(t *testing.T) {
		_, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.RoleCustomer,
			notification.Event("payment.settled"),
			"t", "m", nil, time.Now(),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require title and message", func(t *testing.T) {
		_, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.RoleCustomer,
			notification.EventOrderStatus,
			"", "m", nil, time.Now(),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var n notification.Notification
		assert.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}

func TestNotification_MarkSent(t *testing.T) {
	n := validNotification(t)
	sentAt := time.Now().UTC()

	n.MarkSent(sentAt)

	assert.Equal(t, notification.Sent, n.Status())
	require.NotNil(t, n.SentAt())
	assert.Equal(t, sentAt, *n.SentAt())
}

func TestNotification_RecordFailedAttempt(t *testing.T) {
	t.Run("stays queued below the attempt cap", func(t *testing.T) {
		n := validNotification(t)

		n.RecordFailedAttempt(5)

		assert.Equal(t, notification.Queued, n.Status())
		assert.Equal(t, 1, n.Attempts())
	})

	t.Run("is abandoned once the cap is reached", func(t *testing.T) {
		n := validNotification(t)

		for i := 0; i < 5; i++ {
			n.RecordFailedAttempt(5)
		}

		assert.Equal(t, notification.Abandoned, n.Status())
		assert.Equal(t, 5, n.Attempts())
	})
}

func TestRestoreNotification(t *testing.T) {
	t.Run("should restore dispatch state", func(t *testing.T) {
		sentAt := time.Now().UTC()
		n, err := notification.RestoreNotification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.RoleRider,
			notification.EventDeliveryAssigned,
			"Delivery assigned", "You have a new delivery.",
			[]byte(`{}`),
			notification.Sent, 2,
			sentAt.Add(-time.Minute), &sentAt,
		)

		require.NoError(t, err)
		assert.Equal(t, notification.Sent, n.Status())
		assert.Equal(t, 2, n.Attempts())
		require.NotNil(t, n.SentAt())
	})

	t.Run("should reject an invalid dispatch status", func(t *testing.T) {
		_, err := notification.RestoreNotification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.RoleRider,
			notification.EventDeliveryAssigned,
			"t", "m", nil,
			notification.DispatchStatus(9), 0,
			time.Now(), nil,
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative attempts", func(t *testing.T) {
		_, err := notification.RestoreNotification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.RoleRider,
			notification.EventDeliveryAssigned,
			"t", "m", nil,
			notification.Queued, -1,
			time.Now(), nil,
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
