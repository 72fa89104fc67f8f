package cart_test

import (
	"testing"

	"sokoni/internal/core/domain/model/cart"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart(t *testing.T) {
	customer := kernel.NewUUID()
	productA := kernel.NewUUID()
	productB := kernel.NewUUID()

	t.Run("adding an existing product merges quantities", func(t *testing.T) {
		c, err := cart.NewCart(customer)
		require.NoError(t, err)

		require.NoError(t, c.AddLine(productA, 2))
		require.NoError(t, c.AddLine(productB, 1))
		require.NoError(t, c.AddLine(productA, 3))

		assert.Equal(t, 5, c.Quantity(productA))
		assert.Len(t, c.Lines(), 2)
	})

	t.Run("set quantity to zero removes the line", func(t *testing.T) {
		c, err := cart.NewCart(customer)
		require.NoError(t, err)
		require.NoError(t, c.AddLine(productA, 2))

		require.NoError(t, c.SetQuantity(productA, 0))
		assert.True(t, c.IsEmpty())
	})

	t.Run("set quantity on a missing product is not found", func(t *testing.T) {
		c, err := cart.NewCart(customer)
		require.NoError(t, err)

		require.ErrorIs(t, c.SetQuantity(productA, 1), errs.ErrObjectNotFound)
	})

	t.Run("rejects non-positive additions", func(t *testing.T) {
		c, err := cart.NewCart(customer)
		require.NoError(t, err)

		require.ErrorIs(t, c.AddLine(productA, 0), errs.ErrValueIsInvalid)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		c, err := cart.NewCart(customer)
		require.NoError(t, err)
		require.NoError(t, c.AddLine(productA, 2))

		c.Clear()
		assert.True(t, c.IsEmpty())
	})
}
