package order_test

import (
	"testing"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses all lifecycle values", func(t *testing.T) {
		for _, name := range []string{
			"pending", "confirmed", "preparing", "ready",
			"picked_up", "in_transit", "delivered", "cancelled",
		} {
			s, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromString("unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Advance_ForwardOnly(t *testing.T) {
	t.Run("seller advances one step at a time", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.Confirmed},
			{order.Confirmed, order.Preparing},
			{order.Preparing, order.Ready},
		}
		for _, step := range steps {
			got, err := step.from.Advance(step.to, kernel.RoleSeller)
			require.NoError(t, err)
			assert.Equal(t, step.to, got)
		}
	})

	t.Run("seller cannot skip steps", func(t *testing.T) {
		_, err := order.Pending.Advance(order.Ready, kernel.RoleSeller)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("backward moves are rejected for every role", func(t *testing.T) {
		roles := []kernel.Role{
			kernel.RoleCustomer, kernel.RoleSeller, kernel.RoleRider,
			kernel.RoleAdmin, kernel.RoleSystem,
		}
		for _, role := range roles {
			_, err := order.Delivered.Advance(order.Preparing, role)
			require.Error(t, err, "role %s must not move delivered backward", role)
		}
	})

	t.Run("seller cannot set picked_up or delivered directly", func(t *testing.T) {
		_, err := order.Ready.Advance(order.PickedUp, kernel.RoleSeller)
		require.ErrorIs(t, err, errs.ErrActorNotAllowed)

		_, err = order.InTransit.Advance(order.Delivered, kernel.RoleAdmin)
		require.ErrorIs(t, err, errs.ErrActorNotAllowed)
	})

	t.Run("system cascades pickup through delivered", func(t *testing.T) {
		got, err := order.Ready.Advance(order.PickedUp, kernel.RoleSystem)
		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, got)

		got, err = order.PickedUp.Advance(order.InTransit, kernel.RoleSystem)
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, got)

		got, err = order.InTransit.Advance(order.Delivered, kernel.RoleSystem)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, got)
	})

	t.Run("system cascade may skip preparation stages", func(t *testing.T) {
		got, err := order.Confirmed.Advance(order.PickedUp, kernel.RoleSystem)
		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, got)
	})

	t.Run("customer cannot advance at all", func(t *testing.T) {
		_, err := order.Pending.Advance(order.Confirmed, kernel.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrActorNotAllowed)
	})

	t.Run("terminal states reject any transition", func(t *testing.T) {
		_, err := order.Delivered.Advance(order.Cancelled, kernel.RoleAdmin)
		require.ErrorIs(t, err, errs.ErrConflict)

		_, err = order.Cancelled.Advance(order.Confirmed, kernel.RoleAdmin)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestStatus_Advance_Cancellation(t *testing.T) {
	t.Run("customer may cancel pending and confirmed only", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Confirmed} {
			got, err := from.Advance(order.Cancelled, kernel.RoleCustomer)
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, got)
		}

		for _, from := range []order.Status{order.Preparing, order.Ready, order.PickedUp, order.InTransit} {
			_, err := from.Advance(order.Cancelled, kernel.RoleCustomer)
			require.ErrorIs(t, err, errs.ErrConflict, "customer cancel from %s", from)
		}
	})

	t.Run("seller may cancel before pickup", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.Ready} {
			got, err := from.Advance(order.Cancelled, kernel.RoleSeller)
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, got)
		}

		_, err := order.PickedUp.Advance(order.Cancelled, kernel.RoleSeller)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("system may cancel any non-terminal state", func(t *testing.T) {
		for _, from := range []order.Status{order.Ready, order.PickedUp, order.InTransit} {
			got, err := from.Advance(order.Cancelled, kernel.RoleSystem)
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, got)
		}
	})

	t.Run("rider may not cancel", func(t *testing.T) {
		_, err := order.Pending.Advance(order.Cancelled, kernel.RoleRider)
		require.ErrorIs(t, err, errs.ErrActorNotAllowed)
	})
}
