package product_test

import (
	"testing"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/product"
	"sokoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, discount *kernel.Money, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(),
		"Kitenge fabric", kernel.MustMoney(10000), discount, stock,
	)
	require.NoError(t, err)
	return p
}

func TestProduct_EffectivePrice(t *testing.T) {
	t.Run("list price without discount", func(t *testing.T) {
		p := newTestProduct(t, nil, 10)
		assert.Equal(t, int64(10000), p.EffectivePrice().Amount())
	})

	t.Run("discount price wins", func(t *testing.T) {
		discount := kernel.MustMoney(8000)
		p := newTestProduct(t, &discount, 10)
		assert.Equal(t, int64(8000), p.EffectivePrice().Amount())
	})

	t.Run("discount must be below list price", func(t *testing.T) {
		discount := kernel.MustMoney(10000)
		_, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(),
			"Kitenge fabric", kernel.MustMoney(10000), &discount, 10,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Stock(t *testing.T) {
	t.Run("decrement reduces stock", func(t *testing.T) {
		p := newTestProduct(t, nil, 5)

		require.NoError(t, p.DecrementStock(3))
		assert.Equal(t, 2, p.StockQuantity())
	})

	t.Run("decrement beyond stock fails", func(t *testing.T) {
		p := newTestProduct(t, nil, 2)

		require.ErrorIs(t, p.DecrementStock(3), product.ErrInsufficientStock)
		assert.Equal(t, 2, p.StockQuantity())
	})

	t.Run("restore adds stock back", func(t *testing.T) {
		p := newTestProduct(t, nil, 5)
		require.NoError(t, p.DecrementStock(5))

		require.NoError(t, p.RestoreStock(5))
		assert.Equal(t, 5, p.StockQuantity())
	})

	t.Run("inactive products are not purchasable", func(t *testing.T) {
		p, err := product.RestoreProduct(
			kernel.NewUUID(), kernel.NewUUID(),
			"Kitenge fabric", kernel.MustMoney(10000), nil, 5, false,
		)
		require.NoError(t, err)

		require.ErrorIs(t, p.ValidatePurchasable(1), product.ErrProductInactive)
	})
}
