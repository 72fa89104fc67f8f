package delivery_test

import (
	"testing"

	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	for _, name := range []string{"pending", "assigned", "picked_up", "in_transit", "delivered", "failed"} {
		t.Run(name, func(t *testing.T) {
			status, err := delivery.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		})
	}

	t.Run("unknown values are rejected", func(t *testing.T) {
		_, err := delivery.StatusFromString("teleported")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = delivery.StatusFromString("unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("assign only from pending", func(t *testing.T) {
		next, err := delivery.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, next)

		for _, s := range []delivery.Status{delivery.Assigned, delivery.PickedUp, delivery.InTransit, delivery.Delivered, delivery.Failed} {
			_, err = s.Assign()
			require.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})

	t.Run("forward chain is strict", func(t *testing.T) {
		next, err := delivery.Assigned.PickUp()
		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, next)

		next, err = delivery.PickedUp.Transit()
		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, next)

		next, err = delivery.InTransit.Deliver()
		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, next)

		_, err = delivery.Assigned.Transit()
		require.ErrorIs(t, err, errs.ErrConflict)
		_, err = delivery.PickedUp.Deliver()
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("fail from any non-terminal state", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.Pending, delivery.Assigned, delivery.PickedUp, delivery.InTransit} {
			next, err := s.Fail()
			require.NoError(t, err, s.String())
			assert.Equal(t, delivery.Failed, next)
		}

		_, err := delivery.Delivered.Fail()
		require.ErrorIs(t, err, errs.ErrConflict)
		_, err = delivery.Failed.Fail()
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("conflict carries the current state", func(t *testing.T) {
		_, err := delivery.InTransit.Assign()

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "in_transit", conflict.CurrentState)
	})
}

func TestStatus_ValidateCanHaveRider(t *testing.T) {
	assert.Error(t, delivery.Pending.ValidateCanHaveRider(true))
	assert.NoError(t, delivery.Pending.ValidateCanHaveRider(false))

	for _, s := range []delivery.Status{delivery.Assigned, delivery.PickedUp, delivery.InTransit, delivery.Delivered} {
		assert.NoError(t, s.ValidateCanHaveRider(true), s.String())
		assert.Error(t, s.ValidateCanHaveRider(false), s.String())
	}

	assert.NoError(t, delivery.Failed.ValidateCanHaveRider(true))
	assert.NoError(t, delivery.Failed.ValidateCanHaveRider(false))
}
