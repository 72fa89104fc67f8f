package order_test

import (
	"testing"
	"time"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Kitenge fabric", 2, kernel.MustMoney(10000))
	require.NoError(t, err)
	return []order.Item{item}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testItems(t),
		kernel.MustMoney(2000), kernel.MustMoney(2000),
		"Mikocheni B, Dar es Salaam", "+255700000001", "", "cash",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes amounts from items and fees", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
		assert.Equal(t, int64(20000), o.Subtotal().Amount())
		assert.Equal(t, int64(24000), o.TotalAmount().Amount())
		assert.Equal(t,
			o.Subtotal().Add(o.DeliveryFee()).Add(o.PlatformFee()).Amount(),
			o.TotalAmount().Amount())
	})

	t.Run("requires items, address, phone and payment method", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil,
			kernel.MustMoney(2000), kernel.MustMoney(2000),
			"", "", "", "",
			time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rejects a total amount that breaks the invariant", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t),
			order.Confirmed,
			kernel.MustMoney(20000), kernel.MustMoney(2000), kernel.MustMoney(2000),
			kernel.MustMoney(99999),
			"Mikocheni B", "+255700000001", "", "cash",
			order.PaymentUnpaid,
			time.Now(),
		)
		require.ErrorIs(t, err, order.ErrTotalAmountMismatch)
	})

	t.Run("restores status and payment state", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t),
			order.Preparing,
			kernel.MustMoney(20000), kernel.MustMoney(2000), kernel.MustMoney(2000),
			kernel.MustMoney(24000),
			"Mikocheni B", "+255700000001", "call on arrival", "mobile_money",
			order.PaymentPaid,
			time.Now(),
		)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, "call on arrival", o.Notes())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("advances through the seller stages", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Confirmed, kernel.RoleSeller))
		require.NoError(t, o.ChangeStatus(order.Preparing, kernel.RoleSeller))
		require.NoError(t, o.ChangeStatus(order.Ready, kernel.RoleSeller))
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("re-applying the current status is a no-op", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, kernel.RoleSeller))

		require.NoError(t, o.ChangeStatus(order.Confirmed, kernel.RoleSeller))
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("rejects illegal transitions", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.ChangeStatus(order.Delivered, kernel.RoleSeller))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("customer cancel stores the reason", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel("changed my mind", kernel.RoleCustomer))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "changed my mind", o.Notes())
	})

	t.Run("customer cancel requires a reason", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Cancel("", kernel.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("customer cannot cancel after preparation started", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, kernel.RoleSeller))
		require.NoError(t, o.ChangeStatus(order.Preparing, kernel.RoleSeller))

		err := o.Cancel("too late", kernel.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("re-cancelling is a no-op", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel("changed my mind", kernel.RoleCustomer))

		require.NoError(t, o.Cancel("again", kernel.RoleCustomer))
		assert.Equal(t, "changed my mind", o.Notes())
	})
}
