package delivery_test

import (
	"testing"
	"time"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(),
		"Kariakoo Market, Dar es Salaam", "Mikocheni B, Dar es Salaam",
		7.5, kernel.MustMoney(2000), time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts pending and unclaimed", func(t *testing.T) {
		d := newTestDelivery(t)

		assert.Equal(t, delivery.Pending, d.Status())
		assert.Nil(t, d.Rider())
		assert.Nil(t, d.AssignedAt())
	})

	t.Run("requires both addresses", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), "", "",
			1, kernel.MustMoney(2000), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}

func TestDelivery_Claim(t *testing.T) {
	t.Run("claim sets rider, earnings and timestamp", func(t *testing.T) {
		d := newTestDelivery(t)
		rider := kernel.NewUUID()

		require.NoError(t, d.Claim(rider, kernel.MustMoney(1600), time.Now()))

		assert.Equal(t, delivery.Assigned, d.Status())
		require.NotNil(t, d.Rider())
		assert.True(t, d.Rider().IsEqual(rider))
		assert.Equal(t, int64(1600), d.RiderEarnings().Amount())
		assert.NotNil(t, d.AssignedAt())
	})

	t.Run("claiming an already-claimed delivery conflicts", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Claim(kernel.NewUUID(), kernel.MustMoney(1600), time.Now()))

		err := d.Claim(kernel.NewUUID(), kernel.MustMoney(1600), time.Now())
		require.ErrorIs(t, err, errs.ErrConflict)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "assigned", conflict.CurrentState)
	})
}

func TestDelivery_Progression(t *testing.T) {
	rider := kernel.NewUUID()

	claimed := func(t *testing.T) *delivery.Delivery {
		d := newTestDelivery(t)
		require.NoError(t, d.Claim(rider, kernel.MustMoney(1600), time.Now()))
		return d
	}

	t.Run("full happy path", func(t *testing.T) {
		d := claimed(t)

		require.NoError(t, d.MarkPickedUp(rider, time.Now()))
		assert.Equal(t, delivery.PickedUp, d.Status())
		assert.NotNil(t, d.PickedUpAt())

		require.NoError(t, d.MarkInTransit(rider))
		assert.Equal(t, delivery.InTransit, d.Status())

		require.NoError(t, d.MarkDelivered(rider, time.Now()))
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.NotNil(t, d.DeliveredAt())
	})

	t.Run("only the claiming rider may progress", func(t *testing.T) {
		d := claimed(t)

		err := d.MarkPickedUp(kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrActorNotAllowed)
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("cannot skip pickup", func(t *testing.T) {
		d := claimed(t)

		err := d.MarkInTransit(rider)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("picked up is idempotent", func(t *testing.T) {
		d := claimed(t)
		require.NoError(t, d.MarkPickedUp(rider, time.Now()))
		pickedUpAt := d.PickedUpAt()

		require.NoError(t, d.MarkPickedUp(rider, time.Now().Add(time.Hour)))
		assert.Equal(t, delivery.PickedUp, d.Status())
		assert.Equal(t, pickedUpAt, d.PickedUpAt())
	})

	t.Run("in transit is idempotent", func(t *testing.T) {
		d := claimed(t)
		require.NoError(t, d.MarkPickedUp(rider, time.Now()))
		require.NoError(t, d.MarkInTransit(rider))

		require.NoError(t, d.MarkInTransit(rider))
		assert.Equal(t, delivery.InTransit, d.Status())
	})

	t.Run("only the claiming rider may re-apply a reached state", func(t *testing.T) {
		d := claimed(t)
		require.NoError(t, d.MarkPickedUp(rider, time.Now()))

		err := d.MarkPickedUp(kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrActorNotAllowed)
	})

	t.Run("delivered is idempotent", func(t *testing.T) {
		d := claimed(t)
		require.NoError(t, d.MarkPickedUp(rider, time.Now()))
		require.NoError(t, d.MarkInTransit(rider))
		require.NoError(t, d.MarkDelivered(rider, time.Now()))
		deliveredAt := d.DeliveredAt()

		require.NoError(t, d.MarkDelivered(rider, time.Now().Add(time.Hour)))
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.Equal(t, deliveredAt, d.DeliveredAt())
	})

	t.Run("delivered before transit conflicts", func(t *testing.T) {
		d := claimed(t)
		require.NoError(t, d.MarkPickedUp(rider, time.Now()))

		err := d.MarkDelivered(rider, time.Now())
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestDelivery_MarkFailed(t *testing.T) {
	t.Run("unclaimed delivery fails without a rider", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.MarkFailed(nil))
		assert.Equal(t, delivery.Failed, d.Status())
	})

	t.Run("claimed delivery fails only through its rider", func(t *testing.T) {
		d := newTestDelivery(t)
		rider := kernel.NewUUID()
		require.NoError(t, d.Claim(rider, kernel.MustMoney(1600), time.Now()))

		other := kernel.NewUUID()
		require.ErrorIs(t, d.MarkFailed(&other), errs.ErrActorNotAllowed)
		require.NoError(t, d.MarkFailed(&rider))
		assert.Equal(t, delivery.Failed, d.Status())
	})

	t.Run("failing a failed delivery again is a no-op", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.MarkFailed(nil))

		require.NoError(t, d.MarkFailed(nil))
		assert.Equal(t, delivery.Failed, d.Status())
	})

	t.Run("delivered delivery cannot fail", func(t *testing.T) {
		d := newTestDelivery(t)
		rider := kernel.NewUUID()
		require.NoError(t, d.Claim(rider, kernel.MustMoney(1600), time.Now()))
		require.NoError(t, d.MarkPickedUp(rider, time.Now()))
		require.NoError(t, d.MarkInTransit(rider))
		require.NoError(t, d.MarkDelivered(rider, time.Now()))

		require.ErrorIs(t, d.MarkFailed(&rider), errs.ErrConflict)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("rejects rider on pending delivery", func(t *testing.T) {
		rider := kernel.NewUUID()
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), &rider, delivery.Pending,
			"Kariakoo", "Mikocheni", 2, kernel.MustMoney(2000), kernel.Money{},
			nil, nil, nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects missing rider on assigned delivery", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), nil, delivery.Assigned,
			"Kariakoo", "Mikocheni", 2, kernel.MustMoney(2000), kernel.Money{},
			nil, nil, nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
